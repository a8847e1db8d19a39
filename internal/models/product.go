// internal/models/product.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is a catalog entry. Prices are decimal strings ("399.00") and are
// only parsed to floats where totals are derived. CategoryID references a
// Category but is not enforced.
type Product struct {
	ID               string         `json:"id" gorm:"type:uuid;primary_key"`
	Name             string         `json:"name" gorm:"size:255;not null"`
	Description      string         `json:"description" gorm:"type:text;not null"`
	ShortDescription string         `json:"shortDescription" gorm:"type:text"`
	Price            string         `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice    string         `json:"originalPrice,omitempty" gorm:"type:decimal(10,2)"`
	CategoryID       string         `json:"categoryId" gorm:"type:uuid;index"`
	Brand            string         `json:"brand" gorm:"size:100"`
	SKU              string         `json:"sku" gorm:"size:100"`
	Stock            int            `json:"stock" gorm:"default:0"`
	Rating           string         `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount      int            `json:"reviewCount" gorm:"default:0"`
	ImageURL         string         `json:"imageUrl" gorm:"type:text"`
	Images           pq.StringArray `json:"images" gorm:"type:text[]"`
	Specifications   StringMap      `json:"specifications" gorm:"type:text"`
	Featured         bool           `json:"featured" gorm:"default:false;index"`
	CreatedAt        time.Time      `json:"createdAt"`
}
