// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/techvault/techvault-backend/internal/services"
	"github.com/techvault/techvault-backend/internal/storage"
	"github.com/techvault/techvault-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /cart/:userId
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.cartService.Items(c.Param("userId"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch cart items")
		return
	}

	utils.SuccessResponse(c, items)
}

// POST /cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid cart item data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	item, err := h.cartService.Add(&req)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart item data", nil)
		return
	}

	utils.SuccessResponse(c, item)
}

// PATCH /cart/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Failed to update cart item", err.Error())
		return
	}

	item, removed, err := h.cartService.UpdateQuantity(c.Param("id"), req.Quantity)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFoundResponse(c, "Cart item")
			return
		}
		utils.BadRequestResponse(c, "Failed to update cart item", nil)
		return
	}

	if removed {
		utils.SuccessResponse(c, gin.H{"removed": true})
		return
	}
	utils.SuccessResponse(c, item)
}

// DELETE /cart/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	if err := h.cartService.Remove(c.Param("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFoundResponse(c, "Cart item")
			return
		}
		utils.InternalErrorResponse(c, "Failed to remove cart item")
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true})
}

// DELETE /cart/user/:userId
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Param("userId")); err != nil {
		utils.InternalErrorResponse(c, "Failed to clear cart")
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true})
}
