// internal/services/order_service.go
package services

import (
	"fmt"

	"github.com/techvault/techvault-backend/internal/models"
	"github.com/techvault/techvault-backend/internal/storage"
	"github.com/techvault/techvault-backend/internal/utils"
)

type OrderService struct {
	store storage.Store
}

type OrderItemRequest struct {
	ProductID       string           `json:"productId" validate:"required"`
	Quantity        int              `json:"quantity" validate:"required,gt=0"`
	Price           string           `json:"price" validate:"required,price"`
	SelectedOptions models.StringMap `json:"selectedOptions"`
}

type CreateOrderRequest struct {
	UserID    string             `json:"userId" validate:"required"`
	Total     string             `json:"total" validate:"required,price"`
	Email     string             `json:"email" validate:"omitempty,email"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Address   string             `json:"address"`
	City      string             `json:"city"`
	ZipCode   string             `json:"zipCode"`
	Items     []OrderItemRequest `json:"items" validate:"dive"`
}

type OrderWithItems struct {
	models.Order
	Items []models.OrderItem `json:"items"`
}

func NewOrderService(store storage.Store) *OrderService {
	return &OrderService{store: store}
}

// Create records the order and its line items. Status defaults to pending;
// line prices are whatever the client captured at purchase time. There is no
// stock decrement, payment step, or idempotency key.
func (s *OrderService) Create(req *CreateOrderRequest) (*OrderWithItems, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.store.CreateOrder(&models.Order{
		UserID:    req.UserID,
		Total:     req.Total,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		ZipCode:   req.ZipCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		created, err := s.store.AddOrderItem(&models.OrderItem{
			OrderID:         order.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			Price:           item.Price,
			SelectedOptions: item.SelectedOptions,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add order item: %w", err)
		}
		items = append(items, *created)
	}

	return &OrderWithItems{Order: *order, Items: items}, nil
}

func (s *OrderService) UserOrders(userID string) ([]models.Order, error) {
	return s.store.UserOrders(userID)
}

// OrderItems returns the line items of one of the user's orders. The order
// must exist and belong to the user.
func (s *OrderService) OrderItems(userID, orderID string) ([]models.OrderItem, error) {
	order, err := s.store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, storage.ErrNotFound
	}
	return s.store.OrderItems(orderID)
}
