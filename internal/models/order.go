// internal/models/order.go
package models

import "time"

// Order is a bookkeeping record of a placed order. There is no stock
// decrement, payment-gateway interaction, or idempotency key.
type Order struct {
	ID        string      `json:"id" gorm:"type:uuid;primary_key"`
	UserID    string      `json:"userId" gorm:"type:uuid;not null;index"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Total     string      `json:"total" gorm:"type:decimal(10,2);not null"`
	Email     string      `json:"email" gorm:"size:255"`
	FirstName string      `json:"firstName" gorm:"size:100"`
	LastName  string      `json:"lastName" gorm:"size:100"`
	Address   string      `json:"address" gorm:"type:text"`
	City      string      `json:"city" gorm:"size:100"`
	ZipCode   string      `json:"zipCode" gorm:"size:20"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderItem is one line of an order. Price is captured at purchase time and
// does not track later catalog changes.
type OrderItem struct {
	ID              string    `json:"id" gorm:"type:uuid;primary_key"`
	OrderID         string    `json:"orderId" gorm:"type:uuid;not null;index"`
	ProductID       string    `json:"productId" gorm:"type:uuid;not null"`
	Quantity        int       `json:"quantity" gorm:"not null"`
	Price           string    `json:"price" gorm:"type:decimal(10,2);not null"`
	SelectedOptions StringMap `json:"selectedOptions,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"createdAt"`
}
