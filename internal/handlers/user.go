// internal/handlers/user.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/techvault/techvault-backend/internal/services"
	"github.com/techvault/techvault-backend/internal/storage"
	"github.com/techvault/techvault-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.AllUsers()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch users")
		return
	}

	utils.SuccessResponse(c, users)
}

// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.NotFoundResponse(c, "User")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete user")
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true})
}
