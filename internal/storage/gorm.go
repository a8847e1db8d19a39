// internal/storage/gorm.go
package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techvault/techvault-backend/internal/models"
)

// GormStore is the persistent backing over PostgreSQL. It carries the same
// contracts as MemoryStore; list results are ordered by creation time so both
// backings agree on ordering.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Users

func (s *GormStore) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(user *models.User) (*models.User, error) {
	created := *user
	created.ID = uuid.NewString()
	if created.Role == "" {
		created.Role = models.UserRoleCustomer
	}
	created.CreatedAt = time.Now()

	if err := s.db.Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (s *GormStore) UpdateUser(id string, update UserUpdate) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	update.apply(&user)
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

func (s *GormStore) DeleteUser(id string) error {
	result := s.db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) AllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Categories

func (s *GormStore) GetCategory(id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &category, nil
}

func (s *GormStore) GetCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "slug = ?", slug).Error; err != nil {
		return nil, translateErr(err)
	}
	return &category, nil
}

func (s *GormStore) CreateCategory(category *models.Category) (*models.Category, error) {
	created := *category
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	if err := s.db.Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &created, nil
}

func (s *GormStore) AllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("created_at").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Products

func (s *GormStore) GetProduct(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &product, nil
}

func (s *GormStore) CreateProduct(product *models.Product) (*models.Product, error) {
	created := *product
	created.ID = uuid.NewString()
	if created.Rating == "" {
		created.Rating = "0"
	}
	created.CreatedAt = time.Now()

	if err := s.db.Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &created, nil
}

func (s *GormStore) UpdateProduct(id string, update ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	update.apply(&product)
	if err := s.db.Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

func (s *GormStore) DeleteProduct(id string) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) AllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("created_at").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStore) ProductsByCategory(categoryID string) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("category_id = ?", categoryID).Order("created_at").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStore) FeaturedProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("featured = ?", true).Order("created_at").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStore) SearchProducts(query string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var products []models.Product
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern, pattern).
		Order("created_at").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Cart

func (s *GormStore) CartItems(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) AddToCart(item *models.CartItem) (*models.CartItem, error) {
	created := *item
	created.ID = uuid.NewString()
	if created.Quantity == 0 {
		created.Quantity = 1
	}
	created.CreatedAt = time.Now()

	if err := s.db.Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return &created, nil
}

func (s *GormStore) UpdateCartItem(id string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	item.Quantity = quantity
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return &item, nil
}

func (s *GormStore) RemoveFromCart(id string) error {
	result := s.db.Delete(&models.CartItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ClearCart(userID string) error {
	return s.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error
}

// Favorites

func (s *GormStore) Favorites(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (s *GormStore) AddToFavorites(favorite *models.Favorite) (*models.Favorite, error) {
	created := *favorite
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()

	if err := s.db.Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	return &created, nil
}

func (s *GormStore) RemoveFromFavorites(userID, productID string) error {
	var favorite models.Favorite
	err := s.db.
		Where("user_id = ? AND product_id = ?", userID, productID).
		Order("created_at").
		First(&favorite).Error
	if err != nil {
		return translateErr(err)
	}
	return s.db.Delete(&favorite).Error
}

// Orders

func (s *GormStore) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &order, nil
}

func (s *GormStore) CreateOrder(order *models.Order) (*models.Order, error) {
	created := *order
	created.ID = uuid.NewString()
	if created.Status == "" {
		created.Status = models.OrderStatusPending
	}
	created.CreatedAt = time.Now()

	if err := s.db.Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &created, nil
}

func (s *GormStore) UserOrders(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) AddOrderItem(item *models.OrderItem) (*models.OrderItem, error) {
	created := *item
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()

	if err := s.db.Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to add order item: %w", err)
	}
	return &created, nil
}

func (s *GormStore) OrderItems(orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := s.db.Where("order_id = ?", orderID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
