// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/techvault/techvault-backend/internal/services"
	"github.com/techvault/techvault-backend/internal/storage"
	"github.com/techvault/techvault-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	uploadService  *services.UploadService
}

func NewProductHandler(catalogService *services.CatalogService, uploadService *services.UploadService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		uploadService:  uploadService,
	}
}

// GET /products?category=&search=&featured=
func (h *ProductHandler) GetProducts(c *gin.Context) {
	query := services.ProductQuery{
		Featured: c.Query("featured") == "true",
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	products, err := h.catalogService.ListProducts(query)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch products")
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to fetch product")
		return
	}

	utils.SuccessResponse(c, product)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid product data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, product)
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var update storage.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid product data", err.Error())
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Param("id"), update)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, product)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Param("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete product")
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true})
}

// POST /products/upload-images
func (h *ProductHandler) UploadProductImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "File upload failed", err.Error())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No images uploaded", nil)
		return
	}

	var uploaded []services.UploadResult
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			continue
		}

		if err := h.uploadService.ValidateImage(file); err != nil {
			file.Close()
			continue
		}

		result, err := h.uploadService.UploadImage(file, fileHeader)
		file.Close()

		if err != nil {
			continue
		}
		uploaded = append(uploaded, *result)
	}

	utils.SuccessResponse(c, gin.H{
		"images": uploaded,
	})
}

// GET /categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.AllCategories()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch categories")
		return
	}

	utils.SuccessResponse(c, categories)
}

// POST /categories
func (h *ProductHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid category data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, category)
}
