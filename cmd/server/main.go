// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/techvault/techvault-backend/internal/config"
	"github.com/techvault/techvault-backend/internal/database"
	"github.com/techvault/techvault-backend/internal/models"
	"github.com/techvault/techvault-backend/internal/router"
	"github.com/techvault/techvault-backend/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Initialize storage backend
	store, cleanup, err := buildStore(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage: ", err)
	}
	defer cleanup()

	// Ensure the admin account exists
	if err := seedAdmin(store, cfg); err != nil {
		logrus.Fatal("Failed to seed admin account: ", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r, err := router.Initialize(store, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize router: ", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Starting server on port %s (storage: %s)", cfg.Server.Port, cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exited")
}

// buildStore wires the configured backing. The memory backing serves local
// development and tests; postgres serves deployments.
func buildStore(cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "postgres":
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			database.Close(db)
			return nil, nil, err
		}
		return storage.NewGormStore(db), func() { database.Close(db) }, nil
	default:
		if cfg.Storage.Seed {
			return storage.NewSeededMemoryStore(), func() {}, nil
		}
		return storage.NewMemoryStore(), func() {}, nil
	}
}

func seedAdmin(store storage.Store, cfg *config.Config) error {
	_, err := store.GetUserByEmail(cfg.Admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	_, err = store.CreateUser(&models.User{
		Email:     cfg.Admin.Email,
		Password:  cfg.Admin.Password,
		FirstName: cfg.Admin.FirstName,
		LastName:  cfg.Admin.LastName,
		Role:      models.UserRoleAdmin,
	})
	return err
}
