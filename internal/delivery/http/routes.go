package http

import (
	"github.com/consumesafe/backend/config"
	"github.com/consumesafe/backend/internal/infrastructure/ratelimit"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	perClient := ratelimit.NewSlidingWindow(cfg.RateLimit.PerClient, cfg.RateLimit.Window)
	global := rate.NewLimiter(rate.Limit(cfg.RateLimit.GlobalRPS), cfg.RateLimit.GlobalBurst)

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLoggerMiddleware())
	router.Use(SecurityHeadersMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(perClient, global))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/check", handler.CheckProduct)
			products.GET("/search", handler.SearchProducts)
			products.GET("/alternatives", handler.GetAlternatives)
		}

		v1.GET("/categories", handler.GetCategories)
		v1.GET("/categories/:category", handler.GetByCategory)
		v1.GET("/intensity/:intensity", handler.GetByIntensity)
		v1.GET("/stats", handler.GetStats)

		v1.POST("/chat", handler.Chat)
		v1.GET("/recommendations", handler.GetRecommendations)
		v1.POST("/feedback", handler.AnalyzeFeedback)
	}

	return router
}
