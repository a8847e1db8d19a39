// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/techvault/techvault-backend/internal/models"
	"github.com/techvault/techvault-backend/internal/storage"
	"github.com/techvault/techvault-backend/internal/utils"
)

type CartService struct {
	store storage.Store
}

type AddToCartRequest struct {
	UserID          string           `json:"userId" validate:"required"`
	ProductID       string           `json:"productId" validate:"required"`
	Quantity        int              `json:"quantity" validate:"omitempty,gt=0"`
	SelectedOptions models.StringMap `json:"selectedOptions"`
}

func NewCartService(store storage.Store) *CartService {
	return &CartService{store: store}
}

// Items returns the user's cart with each line enriched with the referenced
// product's current snapshot, so price changes since adding show up live.
// A dangling product reference yields a nil product, not an error.
func (s *CartService) Items(userID string) ([]models.EnrichedCartItem, error) {
	items, err := s.store.CartItems(userID)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedCartItem, 0, len(items))
	for _, item := range items {
		product, err := s.store.GetProduct(item.ProductID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		enriched = append(enriched, models.EnrichedCartItem{CartItem: item, Product: product})
	}
	return enriched, nil
}

// Add merges into an existing line when the (user, product, selected
// options) tuple already has one, incrementing its quantity by the requested
// amount; otherwise it inserts a new line. A missing quantity means 1.
func (s *CartService) Add(req *AddToCartRequest) (*models.CartItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	existing, err := s.store.CartItems(req.UserID)
	if err != nil {
		return nil, err
	}
	for _, item := range existing {
		if item.ProductID == req.ProductID &&
			item.SelectedOptions.Canonical() == req.SelectedOptions.Canonical() {
			return s.store.UpdateCartItem(item.ID, item.Quantity+quantity)
		}
	}

	return s.store.AddToCart(&models.CartItem{
		UserID:          req.UserID,
		ProductID:       req.ProductID,
		Quantity:        quantity,
		SelectedOptions: req.SelectedOptions,
	})
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line instead of storing a non-positive value; removed reports which
// path was taken.
func (s *CartService) UpdateQuantity(id string, quantity int) (item *models.CartItem, removed bool, err error) {
	if quantity <= 0 {
		if err := s.store.RemoveFromCart(id); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	item, err = s.store.UpdateCartItem(id, quantity)
	return item, false, err
}

func (s *CartService) Remove(id string) error {
	return s.store.RemoveFromCart(id)
}

func (s *CartService) Clear(userID string) error {
	return s.store.ClearCart(userID)
}
