// internal/handlers/favorite.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/techvault/techvault-backend/internal/services"
	"github.com/techvault/techvault-backend/internal/storage"
	"github.com/techvault/techvault-backend/internal/utils"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// GET /favorites/:userId
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	favorites, err := h.favoriteService.List(c.Param("userId"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch favorites")
		return
	}

	utils.SuccessResponse(c, favorites)
}

// POST /favorites
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req services.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid favorite data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	favorite, err := h.favoriteService.Add(&req)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid favorite data", nil)
		return
	}

	utils.SuccessResponse(c, favorite)
}

// DELETE /favorites/:userId/:productId
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	err := h.favoriteService.Remove(c.Param("userId"), c.Param("productId"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFoundResponse(c, "Favorite")
			return
		}
		utils.InternalErrorResponse(c, "Failed to remove favorite")
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true})
}
