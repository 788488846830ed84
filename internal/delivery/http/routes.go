package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopfeed/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/brands", handler.ListBrands)

		sync := v1.Group("/sync")
		{
			sync.POST("", handler.SyncAll)
			sync.POST("/:brand", handler.SyncBrand)
		}

		v1.GET("/reports/:brand", handler.GetReport)
	}

	return router
}
