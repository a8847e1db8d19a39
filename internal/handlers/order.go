// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/techvault/techvault-backend/internal/services"
	"github.com/techvault/techvault-backend/internal/storage"
	"github.com/techvault/techvault-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid order data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.Create(&req)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order data", nil)
		return
	}

	utils.SuccessResponse(c, order)
}

// GET /orders/:userId
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	orders, err := h.orderService.UserOrders(c.Param("userId"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch orders")
		return
	}

	utils.SuccessResponse(c, orders)
}

// GET /orders/:userId/:orderId/items
func (h *OrderHandler) GetOrderItems(c *gin.Context) {
	items, err := h.orderService.OrderItems(c.Param("userId"), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		utils.InternalErrorResponse(c, "Failed to fetch order items")
		return
	}

	utils.SuccessResponse(c, items)
}
