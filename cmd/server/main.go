package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fourdx-backend/internal/api/routes"
	"fourdx-backend/internal/config"
	"fourdx-backend/internal/logger"
	"fourdx-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "fourdx-backend/docs" // This is needed for swag
)

//	@title			4DX Backend API
//	@version		1.0
//	@description	Backend API for 4DX goal tracking: teams, users, wildly important goals, lead measures, the weekly cadence and the scoreboard.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
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
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)

	// Initialize store
	store, closeStore, err := repository.Open(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize store:", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logrus.WithError(err).Warn("Failed to close store")
		}
	}()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(store, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":     port,
			"driver":   cfg.StoreDriver,
			"timezone": cfg.Location().String(),
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
}
