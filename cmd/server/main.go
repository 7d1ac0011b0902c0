package main

import (
	"log"
	"os"

	"deployment-tracker-backend/internal/api/routes"
	"deployment-tracker-backend/internal/config"
	"deployment-tracker-backend/internal/database"
	"deployment-tracker-backend/internal/repository"
	"deployment-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "deployment-tracker-backend/docs" // This is needed for swag
)

//	@title			Deployment Tracker API
//	@version		1.0
//	@description	REST API for recording and querying software deployments across applications and regions, protected by API-key authentication.

//	@host		localhost:3000
//	@BasePath	/api

//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key

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
	setupLogging(cfg.LogLevel)

	// Initialize database; the schema exists before any request is served
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Seed known applications and regions (idempotent)
	if cfg.SeedData {
		if err := database.Seed(db); err != nil {
			logrus.Fatal("Failed to seed database:", err)
		}
	}

	// Mint the default API key on first run so the system is usable
	// out of the box
	apiKeyService := service.NewAPIKeyService(repository.NewAPIKeyRepository(db), validator.New())
	if err := apiKeyService.EnsureDefaultKey(); err != nil {
		logrus.Fatal("Failed to bootstrap default API key:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "3000"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
