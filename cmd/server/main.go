package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopfeed/backend/config"
	httpDelivery "github.com/shopfeed/backend/internal/delivery/http"
	"github.com/shopfeed/backend/internal/infrastructure/cache"
	"github.com/shopfeed/backend/internal/infrastructure/csvstore"
	"github.com/shopfeed/backend/internal/infrastructure/shopify"
	"github.com/shopfeed/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopFeed Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Output dir: %s", cfg.Output.Dir)
	log.Printf("Brands configured: %d", len(cfg.Brands))

	// Initialize infrastructure dependencies
	catalogClient := shopify.NewClient(shopify.ClientConfig{
		PageSize:          cfg.Catalog.PageSize,
		Timeout:           cfg.Catalog.Timeout,
		UserAgent:         cfg.Catalog.UserAgent,
		RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	tableStore := csvstore.NewStore(cfg.Output.Dir)
	catalogCache := cache.NewMemoryCache()
	log.Printf("Catalog cache TTL: %s", cfg.Cache.TTL)

	// Initialize usecase layer
	calculator := usecase.NewPriceCalculator(usecase.PricingConfig{
		ProfitMarginPercent: cfg.Pricing.ProfitMarginPercent,
		Customs:             cfg.Pricing.Customs,
		ShippingPricePerKG:  cfg.Pricing.ShippingPricePerKG,
	})
	log.Printf("Pricing: %s", calculator.Summary())

	expander := usecase.NewRowExpander(calculator, cfg.Brands)

	syncService := usecase.NewSyncService(
		catalogClient,
		tableStore,
		catalogCache,
		expander,
		cfg.Brands,
		usecase.SyncServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Server.Environment == "development",
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(syncService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
