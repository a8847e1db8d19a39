// internal/storage/storage.go
package storage

import (
	"errors"

	"github.com/techvault/techvault-backend/internal/models"
)

// ErrNotFound is returned when a lookup or mutation targets an id (or
// composite key) that does not exist.
var ErrNotFound = errors.New("record not found")

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Email     *string          `json:"email,omitempty"`
	Password  *string          `json:"password,omitempty"`
	FirstName *string          `json:"firstName,omitempty"`
	LastName  *string          `json:"lastName,omitempty"`
	Role      *models.UserRole `json:"role,omitempty"`
}

// ProductUpdate is a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name             *string          `json:"name,omitempty"`
	Description      *string          `json:"description,omitempty"`
	ShortDescription *string          `json:"shortDescription,omitempty"`
	Price            *string          `json:"price,omitempty"`
	OriginalPrice    *string          `json:"originalPrice,omitempty"`
	CategoryID       *string          `json:"categoryId,omitempty"`
	Brand            *string          `json:"brand,omitempty"`
	SKU              *string          `json:"sku,omitempty"`
	Stock            *int             `json:"stock,omitempty"`
	Rating           *string          `json:"rating,omitempty"`
	ReviewCount      *int             `json:"reviewCount,omitempty"`
	ImageURL         *string          `json:"imageUrl,omitempty"`
	Images           []string         `json:"images,omitempty"`
	Specifications   models.StringMap `json:"specifications,omitempty"`
	Featured         *bool            `json:"featured,omitempty"`
}

func (u UserUpdate) apply(user *models.User) {
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Password != nil {
		user.Password = *u.Password
	}
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.Role != nil {
		user.Role = *u.Role
	}
}

func (p ProductUpdate) apply(product *models.Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.ShortDescription != nil {
		product.ShortDescription = *p.ShortDescription
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.OriginalPrice != nil {
		product.OriginalPrice = *p.OriginalPrice
	}
	if p.CategoryID != nil {
		product.CategoryID = *p.CategoryID
	}
	if p.Brand != nil {
		product.Brand = *p.Brand
	}
	if p.SKU != nil {
		product.SKU = *p.SKU
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.Rating != nil {
		product.Rating = *p.Rating
	}
	if p.ReviewCount != nil {
		product.ReviewCount = *p.ReviewCount
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
	if p.Images != nil {
		product.Images = p.Images
	}
	if p.Specifications != nil {
		product.Specifications = p.Specifications
	}
	if p.Featured != nil {
		product.Featured = *p.Featured
	}
}

// Store is the storage contract behind every API operation. Create methods
// assign ids and creation timestamps and fill documented defaults; list
// methods return results in insertion order. Implementations must be safe for
// concurrent use.
type Store interface {
	// Users
	GetUser(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) (*models.User, error)
	UpdateUser(id string, update UserUpdate) (*models.User, error)
	DeleteUser(id string) error
	AllUsers() ([]models.User, error)

	// Categories
	GetCategory(id string) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	CreateCategory(category *models.Category) (*models.Category, error)
	AllCategories() ([]models.Category, error)

	// Products
	GetProduct(id string) (*models.Product, error)
	CreateProduct(product *models.Product) (*models.Product, error)
	UpdateProduct(id string, update ProductUpdate) (*models.Product, error)
	DeleteProduct(id string) error
	AllProducts() ([]models.Product, error)
	ProductsByCategory(categoryID string) ([]models.Product, error)
	FeaturedProducts() ([]models.Product, error)
	SearchProducts(query string) ([]models.Product, error)

	// Cart
	CartItems(userID string) ([]models.CartItem, error)
	AddToCart(item *models.CartItem) (*models.CartItem, error)
	UpdateCartItem(id string, quantity int) (*models.CartItem, error)
	RemoveFromCart(id string) error
	ClearCart(userID string) error

	// Favorites
	Favorites(userID string) ([]models.Favorite, error)
	AddToFavorites(favorite *models.Favorite) (*models.Favorite, error)
	RemoveFromFavorites(userID, productID string) error

	// Orders
	GetOrder(id string) (*models.Order, error)
	CreateOrder(order *models.Order) (*models.Order, error)
	UserOrders(userID string) ([]models.Order, error)
	AddOrderItem(item *models.OrderItem) (*models.OrderItem, error)
	OrderItems(orderID string) ([]models.OrderItem, error)
}
