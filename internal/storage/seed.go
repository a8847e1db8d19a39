// internal/storage/seed.go
package storage

import (
	"time"

	"github.com/techvault/techvault-backend/internal/models"
)

// seed loads the demo catalog: three categories and six products. IDs are
// fixed so the storefront client and tests can reference them.
func (s *MemoryStore) seed() {
	now := time.Now()
	categories := []models.Category{
		{ID: "cat-1", Name: "Laptops", Slug: "laptops", Description: "Professional and gaming laptops", CreatedAt: now},
		{ID: "cat-2", Name: "Mobile Devices", Slug: "mobile-devices", Description: "Smartphones and tablets", CreatedAt: now},
		{ID: "cat-3", Name: "Accessories", Slug: "accessories", Description: "Audio, storage, and more", CreatedAt: now},
	}
	for _, c := range categories {
		s.categories[c.ID] = c
		s.catOrder = append(s.catOrder, c.ID)
	}
	products := []models.Product{
		{
			ID:               "prod-1",
			Name:             `Apple MacBook Pro 2024 14"`,
			Description:      "The MacBook Pro 14-inch with M3 chip delivers exceptional performance for professionals. Features include a stunning Liquid Retina XDR display, advanced camera and audio, and all-day battery life. Perfect for creative work, development, and demanding applications.",
			ShortDescription: "Professional laptop with M3 chip and advanced features",
			Price:            "1999.00",
			OriginalPrice:    "2199.00",
			CategoryID:       "cat-1",
			Brand:            "Apple",
			SKU:              "MBP-14-2024-SG",
			Stock:            25,
			Rating:           "4.8",
			ReviewCount:      142,
			ImageURL:         "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Images: []string{
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
				"https://images.unsplash.com/photo-1541807084-5c52b6b3adef?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			},
			Specifications: models.StringMap{
				"processor": "Apple M3 Pro chip",
				"display":   "14.2-inch Liquid Retina XDR",
				"memory":    "16GB unified memory",
				"storage":   "512GB SSD",
				"graphics":  "18-core GPU",
				"battery":   "Up to 18 hours",
				"weight":    "3.5 pounds (1.6 kg)",
				"ports":     "3x Thunderbolt 4, HDMI, SD card",
			},
			Featured:  true,
			CreatedAt: now,
		},
		{
			ID:               "prod-2",
			Name:             "iPhone 15 Pro Max",
			Description:      "Latest iPhone with titanium design and A17 Pro chip. Advanced camera system with 5x telephoto zoom and Action Button for quick access to features.",
			ShortDescription: "Latest iPhone with titanium design and A17 Pro chip",
			Price:            "1199.00",
			CategoryID:       "cat-2",
			Brand:            "Apple",
			SKU:              "IPHONE-15-PRO-MAX",
			Stock:            50,
			Rating:           "4.6",
			ReviewCount:      89,
			ImageURL:         "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Images:           []string{"https://images.unsplash.com/photo-1592750475338-74b7b21085ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400"},
			Specifications: models.StringMap{
				"display":  "6.7-inch Super Retina XDR",
				"chip":     "A17 Pro",
				"storage":  "256GB",
				"camera":   "48MP Main, 12MP Ultra Wide, 12MP Telephoto",
				"battery":  "Up to 29 hours video playback",
				"material": "Titanium",
			},
			Featured:  true,
			CreatedAt: now,
		},
		{
			ID:               "prod-3",
			Name:             "Sony WH-1000XM5",
			Description:      "Industry-leading noise canceling wireless headphones with premium sound quality and all-day comfort.",
			ShortDescription: "Noise canceling wireless headphones",
			Price:            "399.00",
			CategoryID:       "cat-3",
			Brand:            "Sony",
			SKU:              "SONY-XM5-BK",
			Stock:            15,
			Rating:           "4.9",
			ReviewCount:      256,
			ImageURL:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Images:           []string{"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400"},
			Specifications: models.StringMap{
				"type":         "Over-ear",
				"connectivity": "Bluetooth 5.2, 3.5mm",
				"battery":      "30 hours with ANC",
				"features":     "Active Noise Canceling, Touch controls",
				"weight":       "250g",
			},
			Featured:  true,
			CreatedAt: now,
		},
		{
			ID:               "prod-4",
			Name:             "Samsung Galaxy S24 Ultra",
			Description:      "Premium Android smartphone with S Pen, exceptional camera system, and titanium build quality.",
			ShortDescription: "256GB, 12GB RAM, S Pen included",
			Price:            "1299.00",
			CategoryID:       "cat-2",
			Brand:            "Samsung",
			SKU:              "SGS24-256-TB",
			Stock:            30,
			Rating:           "4.6",
			ReviewCount:      124,
			ImageURL:         "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Images:           []string{"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400"},
			Specifications: models.StringMap{
				"display":   "6.8-inch Dynamic AMOLED 2X",
				"processor": "Snapdragon 8 Gen 3",
				"storage":   "256GB",
				"ram":       "12GB",
				"camera":    "200MP Main, 50MP Periscope Telephoto",
				"battery":   "5000mAh",
			},
			CreatedAt: now,
		},
		{
			ID:               "prod-5",
			Name:             "ASUS ROG Strix G15",
			Description:      "High-performance gaming laptop with RTX graphics and advanced cooling system for demanding games.",
			ShortDescription: "Gaming laptop with RTX 4060, 16GB RAM",
			Price:            "1499.00",
			CategoryID:       "cat-1",
			Brand:            "ASUS",
			SKU:              "ASUS-ROG-G15",
			Stock:            12,
			Rating:           "4.2",
			ReviewCount:      67,
			ImageURL:         "https://images.unsplash.com/photo-1593642702821-c8da6771f0c6?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Images:           []string{"https://images.unsplash.com/photo-1593642702821-c8da6771f0c6?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400"},
			Specifications: models.StringMap{
				"processor": "AMD Ryzen 7 7735HS",
				"graphics":  "NVIDIA RTX 4060",
				"memory":    "16GB DDR5",
				"storage":   "1TB PCIe SSD",
				"display":   "15.6-inch 144Hz IPS",
			},
			CreatedAt: now,
		},
		{
			ID:               "prod-6",
			Name:             `iPad Pro 12.9"`,
			Description:      "Most advanced iPad with M2 chip, Liquid Retina XDR display, and Apple Pencil support.",
			ShortDescription: "M2 chip, 128GB, WiFi + Cellular",
			Price:            "1099.00",
			CategoryID:       "cat-2",
			Brand:            "Apple",
			SKU:              "IPAD-PRO-129",
			Stock:            20,
			Rating:           "4.7",
			ReviewCount:      98,
			ImageURL:         "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Images:           []string{"https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400"},
			Specifications: models.StringMap{
				"chip":         "Apple M2",
				"display":      "12.9-inch Liquid Retina XDR",
				"storage":      "128GB",
				"connectivity": "WiFi + Cellular",
				"camera":       "12MP Wide, 10MP Ultra Wide",
				"battery":      "Up to 10 hours",
			},
			CreatedAt: now,
		},
	}
	for _, p := range products {
		s.products[p.ID] = p
		s.prodOrder = append(s.prodOrder, p.ID)
	}
}
