// Package cart holds a client-local shopping cart. It mirrors the server
// cart contract over an in-process list: adds merge on product and option
// selection, totals are derived from the current lines on every read, and
// the whole cart is snapshotted to a named storage slot after each change.
package cart

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// StorageName is the fixed slot the cart snapshot lives under.
const StorageName = "cart-storage"

// TaxRate is applied to the subtotal when computing Tax and Total.
const TaxRate = 0.08

// Item is a single cart line. Price is a decimal string, matching the
// catalog wire format; SelectedOptions carries the serialized option
// selection and participates in merge identity.
type Item struct {
	ID              string `json:"id"`
	ProductID       string `json:"productId"`
	Name            string `json:"name"`
	Price           string `json:"price"`
	ImageURL        string `json:"imageUrl"`
	Quantity        int    `json:"quantity"`
	SelectedOptions string `json:"selectedOptions,omitempty"`
}

// Cart is a concurrency-safe local cart. All mutations persist a snapshot
// before returning; derived figures are recomputed on every read.
type Cart struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
}

// Open restores the cart persisted under StorageName, or starts empty when
// no snapshot exists. A nil storage yields a purely in-memory cart.
func Open(storage Storage) (*Cart, error) {
	c := &Cart{storage: storage}
	if storage == nil {
		return c, nil
	}

	data, err := storage.Load(StorageName)
	if err != nil {
		if err == ErrNoSnapshot {
			return c, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c.items); err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem adds a line to the cart. When a line with the same product and
// option selection already exists, the quantities are summed instead.
// The resulting line is returned.
func (c *Cart) AddItem(item Item) (Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == item.ProductID && c.items[i].SelectedOptions == item.SelectedOptions {
			c.items[i].Quantity += item.Quantity
			return c.items[i], c.persist()
		}
	}

	item.ID = uuid.New().String()
	c.items = append(c.items, item)
	return item, c.persist()
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line; removed reports whether that happened. Unknown IDs are
// ignored, matching the server contract.
func (c *Cart) UpdateQuantity(id string, quantity int) (removed bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.remove(id)
		return true, c.persist()
	}

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			break
		}
	}
	return false, c.persist()
}

// RemoveItem deletes a line by ID.
func (c *Cart) RemoveItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remove(id)
	return c.persist()
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	return c.persist()
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the sum of line quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums price times quantity across all lines. Unparseable prices
// contribute zero rather than failing the read.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.subtotal()
}

// Tax is the subtotal at TaxRate.
func (c *Cart) Tax() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.subtotal() * TaxRate
}

// Total is subtotal plus tax.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub := c.subtotal()
	return sub + sub*TaxRate
}

func (c *Cart) subtotal() float64 {
	total := 0.0
	for _, item := range c.items {
		price, err := strconv.ParseFloat(item.Price, 64)
		if err != nil {
			continue
		}
		total += price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) remove(id string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *Cart) persist() error {
	if c.storage == nil {
		return nil
	}
	data, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	return c.storage.Save(StorageName, data)
}
