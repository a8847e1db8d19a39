// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techvault/techvault-backend/internal/models"
	"github.com/techvault/techvault-backend/internal/storage"
)

func TestCartAddMergesRegardlessOfOptionKeyOrder(t *testing.T) {
	service := NewCartService(storage.NewSeededMemoryStore())

	first, err := service.Add(&AddToCartRequest{
		UserID:          "user-1",
		ProductID:       "prod-3",
		Quantity:        1,
		SelectedOptions: models.StringMap{"color": "black", "size": "standard"},
	})
	require.NoError(t, err)

	// Equality is over the canonical serialization, not map iteration order.
	merged, err := service.Add(&AddToCartRequest{
		UserID:          "user-1",
		ProductID:       "prod-3",
		Quantity:        2,
		SelectedOptions: models.StringMap{"size": "standard", "color": "black"},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 3, merged.Quantity)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	service := NewCartService(storage.NewSeededMemoryStore())

	item, err := service.Add(&AddToCartRequest{UserID: "user-1", ProductID: "prod-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartUpdateQuantityRemovesAtZero(t *testing.T) {
	service := NewCartService(storage.NewSeededMemoryStore())

	item, err := service.Add(&AddToCartRequest{UserID: "user-1", ProductID: "prod-1", Quantity: 2})
	require.NoError(t, err)

	updated, removed, err := service.UpdateQuantity(item.ID, 5)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 5, updated.Quantity)

	updated, removed, err = service.UpdateQuantity(item.ID, 0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Nil(t, updated)

	items, err := service.Items("user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartItemsCarryLiveProductSnapshot(t *testing.T) {
	store := storage.NewSeededMemoryStore()
	service := NewCartService(store)

	_, err := service.Add(&AddToCartRequest{UserID: "user-1", ProductID: "prod-3"})
	require.NoError(t, err)

	newPrice := "379.00"
	_, err = store.UpdateProduct("prod-3", storage.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	items, err := service.Items("user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "379.00", items[0].Product.Price)
}

func TestCartItemsSurviveDanglingProduct(t *testing.T) {
	store := storage.NewSeededMemoryStore()
	service := NewCartService(store)

	_, err := service.Add(&AddToCartRequest{UserID: "user-1", ProductID: "prod-3"})
	require.NoError(t, err)
	require.NoError(t, store.DeleteProduct("prod-3"))

	items, err := service.Items("user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Product)
}
