// internal/services/favorite_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/techvault/techvault-backend/internal/models"
	"github.com/techvault/techvault-backend/internal/storage"
	"github.com/techvault/techvault-backend/internal/utils"
)

type FavoriteService struct {
	store storage.Store
}

type AddFavoriteRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

func NewFavoriteService(store storage.Store) *FavoriteService {
	return &FavoriteService{store: store}
}

// List returns the user's favorites with product snapshots attached.
func (s *FavoriteService) List(userID string) ([]models.EnrichedFavorite, error) {
	favorites, err := s.store.Favorites(userID)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedFavorite, 0, len(favorites))
	for _, fav := range favorites {
		product, err := s.store.GetProduct(fav.ProductID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		enriched = append(enriched, models.EnrichedFavorite{Favorite: fav, Product: product})
	}
	return enriched, nil
}

// Add inserts unconditionally. Duplicate prevention is the caller's
// responsibility; repeated adds create repeated rows.
func (s *FavoriteService) Add(req *AddFavoriteRequest) (*models.Favorite, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return s.store.AddToFavorites(&models.Favorite{
		UserID:    req.UserID,
		ProductID: req.ProductID,
	})
}

// Remove deletes the first matching (user, product) pair and reports
// storage.ErrNotFound when there is none.
func (s *FavoriteService) Remove(userID, productID string) error {
	return s.store.RemoveFromFavorites(userID, productID)
}
