package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"community-portal-backend/internal/api/routes"
	"community-portal-backend/internal/cache"
	"community-portal-backend/internal/config"
	"community-portal-backend/internal/database"
	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "community-portal-backend/docs" // This is needed for swag
)

const shutdownTimeout = 15 * time.Second

//	@title			Community Portal Backend API
//	@version		1.0
//	@description	Backend API of the community portal: about page, volunteer dashboard, forum attachments and reports, news, newsletter, notifications and organization invitations.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipMigrate: cfg.SkipMigrations})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	appCache, redisClient, err := cache.New(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize cache: ", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	ctx := context.Background()
	store, err := storage.New(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize attachment storage: ", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(cfg, routes.Dependencies{
		DB:      db,
		Cache:   appCache,
		Storage: store,
		Redis:   redisClient,
	})
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
