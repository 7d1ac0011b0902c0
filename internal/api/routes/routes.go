package routes

import (
	"log"

	"deployment-tracker-backend/internal/api/handlers"
	"deployment-tracker-backend/internal/api/middleware"
	"deployment-tracker-backend/internal/auth"
	"deployment-tracker-backend/internal/config"
	"deployment-tracker-backend/internal/repository"
	"deployment-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	applicationRepo := repository.NewApplicationRepository(db)
	regionRepo := repository.NewRegionRepository(db)
	deploymentRepo := repository.NewDeploymentRepository(db)
	apiKeyRepo := repository.NewAPIKeyRepository(db)

	// Initialize services
	applicationService := service.NewApplicationService(applicationRepo, validator)
	regionService := service.NewRegionService(regionRepo)
	deploymentService := service.NewDeploymentService(deploymentRepo, validator)
	apiKeyService := service.NewAPIKeyService(apiKeyRepo, validator)

	// Initialize the request gate. The policy file is optional; defaults
	// keep the health probe, static assets and the admin API exempt.
	gatePolicy, err := auth.LoadGatePolicy(cfg.AuthConfigPath)
	if err != nil {
		log.Printf("Warning: failed to load gate policy, using defaults: %v", err)
		gatePolicy = auth.DefaultGatePolicy()
	}
	gate := auth.NewAPIKeyMiddleware(apiKeyService, gatePolicy)

	// Every request passes through the gate; exempt paths skip validation
	// inside it rather than by route placement.
	router.Use(gate.RequireAPIKey())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	deploymentHandler := handlers.NewDeploymentHandler(deploymentService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	regionHandler := handlers.NewRegionHandler(regionService)
	apiKeyHandler := handlers.NewAPIKeyHandler(apiKeyService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Primary API routes - protected by the gate
	api := router.Group("/api")
	{
		deployments := api.Group("/deployments")
		{
			deployments.POST("", deploymentHandler.CreateDeployment)
			deployments.GET("", deploymentHandler.ListDeployments)
			deployments.GET("/application/:id", deploymentHandler.ListDeploymentsByApplication)
			deployments.GET("/region/:id", deploymentHandler.ListDeploymentsByRegion)
		}

		applications := api.Group("/applications")
		{
			applications.GET("", applicationHandler.ListApplications)
			applications.POST("", applicationHandler.CreateApplication)
		}

		api.GET("/regions", regionHandler.ListRegions)
	}

	// Key administration routes - exempt from the gate by default policy
	admin := router.Group("/api/admin")
	{
		keys := admin.Group("/keys")
		{
			keys.GET("", apiKeyHandler.ListAPIKeys)
			keys.GET("/:id/full", apiKeyHandler.GetFullAPIKey)
			keys.POST("", apiKeyHandler.CreateAPIKey)
			keys.PUT("/:id/toggle", apiKeyHandler.ToggleAPIKey)
			keys.DELETE("/:id", apiKeyHandler.DeleteAPIKey)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
