package main

import (
	"fmt"
	"log"

	"github.com/consumesafe/backend/config"
	httpDelivery "github.com/consumesafe/backend/internal/delivery/http"
	"github.com/consumesafe/backend/internal/infrastructure/cache"
	"github.com/consumesafe/backend/internal/infrastructure/catalog"
	"github.com/consumesafe/backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zap.L().Sync()

	logger := zap.L().With(zap.String("component", "server"))
	logger.Info("starting ConsumeSafe backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	// Load the catalog snapshot. A missing dataset starts the service in a
	// degraded state: every catalog-backed endpoint answers 503 until the
	// file is fixed and the process restarted.
	products, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error("catalog load failed, serving degraded", zap.Error(err))
		products = nil
	}

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache(cfg.Cache.CleanupInterval)

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(products, memoryCache, usecase.CatalogServiceConfig{
		CacheTTL: cfg.Cache.TTL,
	})
	recommender := usecase.NewRecommendationEngine(products)
	sentiment := usecase.NewSentimentClassifier()
	chatService := usecase.NewChatService(products, cfg.Chat.MaxTranscriptTurns)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, recommender, sentiment, chatService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
