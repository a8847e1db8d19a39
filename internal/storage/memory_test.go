// internal/storage/memory_test.go
package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techvault/techvault-backend/internal/models"
)

func TestSeededCatalog(t *testing.T) {
	store := NewSeededMemoryStore()

	categories, err := store.AllCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 3)
	assert.Equal(t, "laptops", categories[0].Slug)

	products, err := store.AllProducts()
	require.NoError(t, err)
	assert.Len(t, products, 6)

	// Insertion order is preserved across lists.
	featured, err := store.FeaturedProducts()
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, "prod-1", featured[0].ID)
	assert.Equal(t, "prod-2", featured[1].ID)
	assert.Equal(t, "prod-3", featured[2].ID)
}

func TestSearchProducts(t *testing.T) {
	store := NewSeededMemoryStore()

	// Case-insensitive match across name, description and brand.
	results, err := store.SearchProducts("sony")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "prod-3", results[0].ID)

	results, err = store.SearchProducts("APPLE")
	require.NoError(t, err)
	assert.Len(t, results, 3)

	results, err = store.SearchProducts("no-such-product")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProductsByCategory(t *testing.T) {
	store := NewSeededMemoryStore()

	laptops, err := store.ProductsByCategory("cat-1")
	require.NoError(t, err)
	assert.Len(t, laptops, 2)
	for _, p := range laptops {
		assert.Equal(t, "cat-1", p.CategoryID)
	}
}

func TestCreateCategoryStampsCreationTime(t *testing.T) {
	store := NewSeededMemoryStore()

	created, err := store.CreateCategory(&models.Category{Name: "Wearables", Slug: "wearables"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// New categories list after the seeded ones.
	categories, err := store.AllCategories()
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, created.ID, categories[3].ID)
}

func TestUserLifecycle(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.CreateUser(&models.User{
		Email:     "jo@example.com",
		Password:  "secret123",
		FirstName: "Jo",
		LastName:  "Miller",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.UserRoleCustomer, created.Role)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := store.GetUserByEmail("jo@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = store.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	newName := "Josephine"
	updated, err := store.UpdateUser(created.ID, UserUpdate{FirstName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Josephine", updated.FirstName)
	assert.Equal(t, "Miller", updated.LastName)

	require.NoError(t, store.DeleteUser(created.ID))
	_, err = store.GetUser(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.DeleteUser(created.ID), ErrNotFound)
}

func TestProductUpdatePartial(t *testing.T) {
	store := NewSeededMemoryStore()

	newPrice := "379.00"
	updated, err := store.UpdateProduct("prod-3", ProductUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "379.00", updated.Price)
	assert.Equal(t, "Sony WH-1000XM5", updated.Name)

	_, err = store.UpdateProduct("prod-999", ProductUpdate{Price: &newPrice})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartOperations(t *testing.T) {
	store := NewSeededMemoryStore()

	item, err := store.AddToCart(&models.CartItem{
		UserID:    "user-1",
		ProductID: "prod-3",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 1, item.Quantity, "quantity defaults to 1")

	updated, err := store.UpdateCartItem(item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	items, err := store.CartItems("user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Other users see an empty cart.
	items, err = store.CartItems("user-2")
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, store.RemoveFromCart(item.ID))
	assert.ErrorIs(t, store.RemoveFromCart(item.ID), ErrNotFound)
}

func TestClearCartOnlyTouchesOneUser(t *testing.T) {
	store := NewSeededMemoryStore()

	_, err := store.AddToCart(&models.CartItem{UserID: "user-1", ProductID: "prod-1"})
	require.NoError(t, err)
	_, err = store.AddToCart(&models.CartItem{UserID: "user-1", ProductID: "prod-2"})
	require.NoError(t, err)
	other, err := store.AddToCart(&models.CartItem{UserID: "user-2", ProductID: "prod-3"})
	require.NoError(t, err)

	require.NoError(t, store.ClearCart("user-1"))

	items, err := store.CartItems("user-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = store.CartItems("user-2")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, other.ID, items[0].ID)
}

func TestFavorites(t *testing.T) {
	store := NewSeededMemoryStore()

	_, err := store.AddToFavorites(&models.Favorite{UserID: "user-1", ProductID: "prod-1"})
	require.NoError(t, err)

	// Inserts are unconditional; duplicates accumulate.
	_, err = store.AddToFavorites(&models.Favorite{UserID: "user-1", ProductID: "prod-1"})
	require.NoError(t, err)

	favorites, err := store.Favorites("user-1")
	require.NoError(t, err)
	assert.Len(t, favorites, 2)

	// Removal deletes the first match only.
	require.NoError(t, store.RemoveFromFavorites("user-1", "prod-1"))
	favorites, err = store.Favorites("user-1")
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	require.NoError(t, store.RemoveFromFavorites("user-1", "prod-1"))
	assert.ErrorIs(t, store.RemoveFromFavorites("user-1", "prod-1"), ErrNotFound)
}

func TestOrders(t *testing.T) {
	store := NewSeededMemoryStore()

	order, err := store.CreateOrder(&models.Order{
		UserID:    "user-1",
		Total:     "431.92",
		Email:     "jo@example.com",
		FirstName: "Jo",
		LastName:  "Miller",
		Address:   "1 Main St",
		City:      "Springfield",
		ZipCode:   "12345",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	_, err = store.AddOrderItem(&models.OrderItem{
		OrderID:   order.ID,
		ProductID: "prod-3",
		Quantity:  1,
		Price:     "399.00",
	})
	require.NoError(t, err)

	items, err := store.OrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "399.00", items[0].Price)
	assert.False(t, items[0].CreatedAt.IsZero(), "line items carry a creation time so both backings list them in insertion order")

	orders, err := store.UserOrders("user-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = store.UserOrders("user-2")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
