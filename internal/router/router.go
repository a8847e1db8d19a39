// internal/router/router.go
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techvault/techvault-backend/internal/config"
	"github.com/techvault/techvault-backend/internal/handlers"
	"github.com/techvault/techvault-backend/internal/middleware"
	"github.com/techvault/techvault-backend/internal/services"
	"github.com/techvault/techvault-backend/internal/storage"
	"github.com/techvault/techvault-backend/internal/utils"
)

func Initialize(store storage.Store, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	uploadService, err := services.NewUploadService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload service: %w", err)
	}

	authService := services.NewAuthService(store, cfg)
	catalogService := services.NewCatalogService(store)
	cartService := services.NewCartService(store)
	favoriteService := services.NewFavoriteService(store)
	orderService := services.NewOrderService(store)
	userService := services.NewUserService(store)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService, uploadService)
	cartHandler := handlers.NewCartHandler(cartService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userHandler := handlers.NewUserHandler(userService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	limits := middleware.NewLimiters(cfg.RateLimit)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(limits.General())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(limits.Auth())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Catalog routes. Browsing is open; mutation is admin-only.
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)

			admin := products.Group("")
			admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				admin.POST("", productHandler.CreateProduct)
				admin.PUT("/:id", productHandler.UpdateProduct)
				admin.DELETE("/:id", productHandler.DeleteProduct)
				admin.POST("/upload-images", limits.Upload(), productHandler.UploadProductImages)
			}
		}

		categories := api.Group("/categories")
		{
			categories.GET("", productHandler.GetCategories)
			categories.POST("", middleware.AuthRequired(), middleware.AdminRequired(), productHandler.CreateCategory)
		}

		// Cart routes
		cart := api.Group("/cart")
		{
			cart.GET("/:userId", cartHandler.GetCart)
			cart.POST("", cartHandler.AddToCart)
			cart.PATCH("/:id", cartHandler.UpdateCartItem)
			cart.DELETE("/:id", cartHandler.RemoveFromCart)
			cart.DELETE("/user/:userId", cartHandler.ClearCart)
		}

		// Favorites routes
		favorites := api.Group("/favorites")
		{
			favorites.GET("/:userId", favoriteHandler.GetFavorites)
			favorites.POST("", favoriteHandler.AddFavorite)
			favorites.DELETE("/:userId/:productId", favoriteHandler.RemoveFavorite)
		}

		// Orders routes
		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:userId", orderHandler.GetUserOrders)
			orders.GET("/:userId/:orderId/items", orderHandler.GetOrderItems)
		}

		// User management routes (admin dashboard)
		users := api.Group("/users")
		users.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			users.GET("", userHandler.GetUsers)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	return r, nil
}
