// internal/models/cart.go
package models

import "time"

// CartItem is one line of a user's server-side cart. SelectedOptions
// distinguishes configurations of the same product (e.g. storage variants);
// at most one item exists per (UserID, ProductID, SelectedOptions) tuple,
// which the cart service enforces by merging quantities on add.
type CartItem struct {
	ID              string    `json:"id" gorm:"type:uuid;primary_key"`
	UserID          string    `json:"userId" gorm:"type:uuid;not null;index"`
	ProductID       string    `json:"productId" gorm:"type:uuid;not null"`
	Quantity        int       `json:"quantity" gorm:"not null;default:1"`
	SelectedOptions StringMap `json:"selectedOptions,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"createdAt"`
}

// EnrichedCartItem is a cart item with the referenced product's current
// snapshot attached at read time, so price changes after adding show up live.
type EnrichedCartItem struct {
	CartItem
	Product *Product `json:"product"`
}
