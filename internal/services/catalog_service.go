// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/techvault/techvault-backend/internal/models"
	"github.com/techvault/techvault-backend/internal/storage"
	"github.com/techvault/techvault-backend/internal/utils"
)

type CatalogService struct {
	store storage.Store
}

// ProductQuery carries the mutually-exclusive list filters. Resolution order
// is featured, then category (by slug), then search, else all products.
type ProductQuery struct {
	Featured bool
	Category string
	Search   string
}

type CreateProductRequest struct {
	Name             string           `json:"name" validate:"required"`
	Description      string           `json:"description" validate:"required"`
	ShortDescription string           `json:"shortDescription"`
	Price            string           `json:"price" validate:"required,price"`
	OriginalPrice    string           `json:"originalPrice" validate:"omitempty,price"`
	CategoryID       string           `json:"categoryId" validate:"required"`
	Brand            string           `json:"brand"`
	SKU              string           `json:"sku"`
	Stock            int              `json:"stock" validate:"gte=0"`
	Rating           string           `json:"rating"`
	ReviewCount      int              `json:"reviewCount" validate:"gte=0"`
	ImageURL         string           `json:"imageUrl"`
	Images           []string         `json:"images"`
	Specifications   models.StringMap `json:"specifications"`
	Featured         bool             `json:"featured"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
}

func NewCatalogService(store storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ListProducts resolves the query filters in their documented priority
// order. An unknown category slug yields an empty list, not an error.
func (s *CatalogService) ListProducts(q ProductQuery) ([]models.Product, error) {
	switch {
	case q.Featured:
		return s.store.FeaturedProducts()
	case q.Category != "":
		category, err := s.store.GetCategoryBySlug(q.Category)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return []models.Product{}, nil
			}
			return nil, err
		}
		return s.store.ProductsByCategory(category.ID)
	case q.Search != "":
		return s.store.SearchProducts(q.Search)
	default:
		return s.store.AllProducts()
	}
}

func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.store.GetProduct(id)
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return s.store.CreateProduct(&models.Product{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		CategoryID:       req.CategoryID,
		Brand:            req.Brand,
		SKU:              req.SKU,
		Stock:            req.Stock,
		Rating:           req.Rating,
		ReviewCount:      req.ReviewCount,
		ImageURL:         req.ImageURL,
		Images:           req.Images,
		Specifications:   req.Specifications,
		Featured:         req.Featured,
	})
}

func (s *CatalogService) UpdateProduct(id string, update storage.ProductUpdate) (*models.Product, error) {
	return s.store.UpdateProduct(id, update)
}

func (s *CatalogService) DeleteProduct(id string) error {
	return s.store.DeleteProduct(id)
}

func (s *CatalogService) AllCategories() ([]models.Category, error) {
	return s.store.AllCategories()
}

func (s *CatalogService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return s.store.CreateCategory(&models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
}
