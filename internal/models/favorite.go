// internal/models/favorite.go
package models

import "time"

// Favorite marks a (user, product) pair. Uniqueness is not stored as a
// constraint; callers are expected to check before inserting.
type Favorite struct {
	ID        string    `json:"id" gorm:"type:uuid;primary_key"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	ProductID string    `json:"productId" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// EnrichedFavorite carries the product snapshot for list responses.
type EnrichedFavorite struct {
	Favorite
	Product *Product `json:"product"`
}
