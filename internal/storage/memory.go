// internal/storage/memory.go
package storage

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/techvault/techvault-backend/internal/models"
)

// MemoryStore keeps everything in process-local maps. List results come back
// in insertion order, which the order slices preserve. A single RWMutex
// guards all collections; the workload is small enough that finer sharding
// buys nothing.
type MemoryStore struct {
	mtx sync.RWMutex

	users      map[string]models.User
	userOrder  []string
	categories map[string]models.Category
	catOrder   []string
	products   map[string]models.Product
	prodOrder  []string
	cartItems  map[string]models.CartItem
	cartOrder  []string
	favorites  map[string]models.Favorite
	favOrder   []string
	orders     map[string]models.Order
	orderOrder []string
	orderItems map[string]models.OrderItem
	itemOrder  []string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]models.User),
		categories: make(map[string]models.Category),
		products:   make(map[string]models.Product),
		cartItems:  make(map[string]models.CartItem),
		favorites:  make(map[string]models.Favorite),
		orders:     make(map[string]models.Order),
		orderItems: make(map[string]models.OrderItem),
	}
}

// NewSeededMemoryStore returns a store preloaded with the demo catalog.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	s.seed()
	return s
}

func dropID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// Users

func (s *MemoryStore) GetUser(id string) (*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, id := range s.userOrder {
		if user := s.users[id]; user.Email == email {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(user *models.User) (*models.User, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	created := *user
	created.ID = uuid.NewString()
	if created.Role == "" {
		created.Role = models.UserRoleCustomer
	}
	created.CreatedAt = time.Now()

	s.users[created.ID] = created
	s.userOrder = append(s.userOrder, created.ID)
	return &created, nil
}

func (s *MemoryStore) UpdateUser(id string, update UserUpdate) (*models.User, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	update.apply(&user)
	s.users[id] = user
	return &user, nil
}

func (s *MemoryStore) DeleteUser(id string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	s.userOrder = dropID(s.userOrder, id)
	return nil
}

func (s *MemoryStore) AllUsers() ([]models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	users := make([]models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id])
	}
	return users, nil
}

// Categories

func (s *MemoryStore) GetCategory(id string) (*models.Category, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (s *MemoryStore) GetCategoryBySlug(slug string) (*models.Category, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, id := range s.catOrder {
		if category := s.categories[id]; category.Slug == slug {
			return &category, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateCategory(category *models.Category) (*models.Category, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	created := *category
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	s.categories[created.ID] = created
	s.catOrder = append(s.catOrder, created.ID)
	return &created, nil
}

func (s *MemoryStore) AllCategories() ([]models.Category, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	categories := make([]models.Category, 0, len(s.catOrder))
	for _, id := range s.catOrder {
		categories = append(categories, s.categories[id])
	}
	return categories, nil
}

// Products

func (s *MemoryStore) GetProduct(id string) (*models.Product, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (s *MemoryStore) CreateProduct(product *models.Product) (*models.Product, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	created := *product
	created.ID = uuid.NewString()
	if created.Rating == "" {
		created.Rating = "0"
	}
	created.CreatedAt = time.Now()

	s.products[created.ID] = created
	s.prodOrder = append(s.prodOrder, created.ID)
	return &created, nil
}

func (s *MemoryStore) UpdateProduct(id string, update ProductUpdate) (*models.Product, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	update.apply(&product)
	s.products[id] = product
	return &product, nil
}

func (s *MemoryStore) DeleteProduct(id string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	s.prodOrder = dropID(s.prodOrder, id)
	return nil
}

func (s *MemoryStore) AllProducts() ([]models.Product, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.filterProducts(func(models.Product) bool { return true }), nil
}

func (s *MemoryStore) ProductsByCategory(categoryID string) ([]models.Product, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.filterProducts(func(p models.Product) bool {
		return p.CategoryID == categoryID
	}), nil
}

func (s *MemoryStore) FeaturedProducts() ([]models.Product, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.filterProducts(func(p models.Product) bool {
		return p.Featured
	}), nil
}

// SearchProducts does a case-insensitive substring match against name,
// description, and brand. No ranking; results keep insertion order.
func (s *MemoryStore) SearchProducts(query string) ([]models.Product, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	q := strings.ToLower(query)
	return s.filterProducts(func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand), q)
	}), nil
}

// filterProducts must be called with the lock held.
func (s *MemoryStore) filterProducts(keep func(models.Product) bool) []models.Product {
	products := make([]models.Product, 0)
	for _, id := range s.prodOrder {
		if p := s.products[id]; keep(p) {
			products = append(products, p)
		}
	}
	return products
}

// Cart

func (s *MemoryStore) CartItems(userID string) ([]models.CartItem, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	items := make([]models.CartItem, 0)
	for _, id := range s.cartOrder {
		if item := s.cartItems[id]; item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *MemoryStore) AddToCart(item *models.CartItem) (*models.CartItem, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	created := *item
	created.ID = uuid.NewString()
	if created.Quantity == 0 {
		created.Quantity = 1
	}
	created.CreatedAt = time.Now()

	s.cartItems[created.ID] = created
	s.cartOrder = append(s.cartOrder, created.ID)
	return &created, nil
}

func (s *MemoryStore) UpdateCartItem(id string, quantity int) (*models.CartItem, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	item.Quantity = quantity
	s.cartItems[id] = item
	return &item, nil
}

func (s *MemoryStore) RemoveFromCart(id string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.cartItems[id]; !ok {
		return ErrNotFound
	}
	delete(s.cartItems, id)
	s.cartOrder = dropID(s.cartOrder, id)
	return nil
}

func (s *MemoryStore) ClearCart(userID string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	remaining := s.cartOrder[:0]
	for _, id := range s.cartOrder {
		if s.cartItems[id].UserID == userID {
			delete(s.cartItems, id)
		} else {
			remaining = append(remaining, id)
		}
	}
	s.cartOrder = remaining
	return nil
}

// Favorites

func (s *MemoryStore) Favorites(userID string) ([]models.Favorite, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	favorites := make([]models.Favorite, 0)
	for _, id := range s.favOrder {
		if fav := s.favorites[id]; fav.UserID == userID {
			favorites = append(favorites, fav)
		}
	}
	return favorites, nil
}

// AddToFavorites inserts unconditionally; duplicate prevention is the
// caller's responsibility.
func (s *MemoryStore) AddToFavorites(favorite *models.Favorite) (*models.Favorite, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	created := *favorite
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()

	s.favorites[created.ID] = created
	s.favOrder = append(s.favOrder, created.ID)
	return &created, nil
}

// RemoveFromFavorites deletes the first match for the pair and reports
// ErrNotFound when there is none.
func (s *MemoryStore) RemoveFromFavorites(userID, productID string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, id := range s.favOrder {
		fav := s.favorites[id]
		if fav.UserID == userID && fav.ProductID == productID {
			delete(s.favorites, id)
			s.favOrder = dropID(s.favOrder, id)
			return nil
		}
	}
	return ErrNotFound
}

// Orders

func (s *MemoryStore) GetOrder(id string) (*models.Order, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (s *MemoryStore) CreateOrder(order *models.Order) (*models.Order, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	created := *order
	created.ID = uuid.NewString()
	if created.Status == "" {
		created.Status = models.OrderStatusPending
	}
	created.CreatedAt = time.Now()

	s.orders[created.ID] = created
	s.orderOrder = append(s.orderOrder, created.ID)
	return &created, nil
}

func (s *MemoryStore) UserOrders(userID string) ([]models.Order, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	orders := make([]models.Order, 0)
	for _, id := range s.orderOrder {
		if order := s.orders[id]; order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (s *MemoryStore) AddOrderItem(item *models.OrderItem) (*models.OrderItem, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	created := *item
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()

	s.orderItems[created.ID] = created
	s.itemOrder = append(s.itemOrder, created.ID)
	return &created, nil
}

func (s *MemoryStore) OrderItems(orderID string) ([]models.OrderItem, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	items := make([]models.OrderItem, 0)
	for _, id := range s.itemOrder {
		if item := s.orderItems[id]; item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items, nil
}
