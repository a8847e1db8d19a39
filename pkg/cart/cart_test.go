// pkg/cart/cart_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesOnProductAndOptions(t *testing.T) {
	c, err := Open(nil)
	require.NoError(t, err)

	first, err := c.AddItem(Item{
		ProductID:       "prod-3",
		Name:            "Sony WH-1000XM5",
		Price:           "399.00",
		Quantity:        1,
		SelectedOptions: `{"color":"black"}`,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	merged, err := c.AddItem(Item{
		ProductID:       "prod-3",
		Price:           "399.00",
		Quantity:        2,
		SelectedOptions: `{"color":"black"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 3, merged.Quantity)

	// A different option selection is a separate line.
	silver, err := c.AddItem(Item{
		ProductID:       "prod-3",
		Price:           "399.00",
		Quantity:        1,
		SelectedOptions: `{"color":"silver"}`,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, silver.ID)
	assert.Len(t, c.Items(), 2)
	assert.Equal(t, 4, c.ItemCount())
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	c, err := Open(nil)
	require.NoError(t, err)

	item, err := c.AddItem(Item{ProductID: "prod-1", Price: "1999.00", Quantity: 2})
	require.NoError(t, err)

	removed, err := c.UpdateQuantity(item.ID, 5)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 5, c.ItemCount())

	removed, err = c.UpdateQuantity(item.ID, 0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, c.Items())
}

func TestDerivedTotals(t *testing.T) {
	c, err := Open(nil)
	require.NoError(t, err)

	_, err = c.AddItem(Item{ProductID: "prod-3", Price: "399.00", Quantity: 1})
	require.NoError(t, err)
	_, err = c.AddItem(Item{ProductID: "prod-2", Price: "1199.00", Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, c.ItemCount())
	assert.InDelta(t, 2797.00, c.Subtotal(), 0.001)
	assert.InDelta(t, 223.76, c.Tax(), 0.001)
	assert.InDelta(t, 3020.76, c.Total(), 0.001)

	// Totals track mutations, nothing is cached.
	require.NoError(t, c.Clear())
	assert.Zero(t, c.ItemCount())
	assert.Zero(t, c.Subtotal())
	assert.Zero(t, c.Total())
}

func TestUnparseablePriceContributesZero(t *testing.T) {
	c, err := Open(nil)
	require.NoError(t, err)

	_, err = c.AddItem(Item{ProductID: "prod-x", Price: "not-a-price", Quantity: 3})
	require.NoError(t, err)
	_, err = c.AddItem(Item{ProductID: "prod-3", Price: "399.00", Quantity: 1})
	require.NoError(t, err)

	assert.InDelta(t, 399.00, c.Subtotal(), 0.001)
}

func TestSnapshotRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	c, err := Open(storage)
	require.NoError(t, err)

	item, err := c.AddItem(Item{ProductID: "prod-3", Name: "Sony WH-1000XM5", Price: "399.00", Quantity: 2})
	require.NoError(t, err)

	// A fresh cart over the same storage sees the persisted lines.
	restored, err := Open(storage)
	require.NoError(t, err)
	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 798.00, restored.Subtotal(), 0.001)
}

func TestFileStorageRoundTrip(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	c, err := Open(storage)
	require.NoError(t, err)
	assert.Empty(t, c.Items())

	_, err = c.AddItem(Item{ProductID: "prod-1", Price: "1999.00", Quantity: 1})
	require.NoError(t, err)

	restored, err := Open(storage)
	require.NoError(t, err)
	assert.Len(t, restored.Items(), 1)
}
