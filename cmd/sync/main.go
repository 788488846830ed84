package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/shopfeed/backend/config"
	"github.com/shopfeed/backend/internal/infrastructure/cache"
	"github.com/shopfeed/backend/internal/infrastructure/csvstore"
	"github.com/shopfeed/backend/internal/infrastructure/shopify"
	"github.com/shopfeed/backend/internal/usecase"
)

// One-shot pipeline run: scrape every configured brand (or a single brand
// given with -brand) and merge into its table.
func main() {
	brandFlag := flag.String("brand", "", "sync only this brand tag")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	catalogClient := shopify.NewClient(shopify.ClientConfig{
		PageSize:          cfg.Catalog.PageSize,
		Timeout:           cfg.Catalog.Timeout,
		UserAgent:         cfg.Catalog.UserAgent,
		RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
	})
	tableStore := csvstore.NewStore(cfg.Output.Dir)
	catalogCache := cache.NewMemoryCache()

	calculator := usecase.NewPriceCalculator(usecase.PricingConfig{
		ProfitMarginPercent: cfg.Pricing.ProfitMarginPercent,
		Customs:             cfg.Pricing.Customs,
		ShippingPricePerKG:  cfg.Pricing.ShippingPricePerKG,
	})
	expander := usecase.NewRowExpander(calculator, cfg.Brands)

	syncService := usecase.NewSyncService(
		catalogClient,
		tableStore,
		catalogCache,
		expander,
		cfg.Brands,
		usecase.SyncServiceConfig{CacheTTL: cfg.Cache.TTL},
	)

	log.Printf("Pricing: %s", calculator.Summary())

	ctx := context.Background()
	var reports []*usecase.RunReport

	if *brandFlag != "" {
		report, err := syncService.SyncBrand(ctx, *brandFlag)
		if err != nil {
			log.Fatalf("Sync failed for %s: %v", *brandFlag, err)
		}
		reports = append(reports, report)
	} else {
		reports, err = syncService.SyncAll(ctx)
		if err != nil {
			log.Fatalf("Sync failed: %v", err)
		}
	}

	for _, report := range reports {
		log.Printf("Brand %s: %s", report.Brand, report.Outcome)
		log.Printf("  products=%d variants=%d images=%d", report.Products, report.Variants, report.Images)
		log.Printf("  rows: variant=%d image=%d appended=%d skipped=%d", report.VariantRows, report.ImageRows, report.Appended, report.Skipped)
		if report.Path != "" {
			log.Printf("  table: %s", report.Path)
		}

		// Pricing example for the first product in the table, matching the
		// console summary the report endpoint serves.
		if report.Outcome == usecase.OutcomeCreated || report.Outcome == usecase.OutcomeAppended {
			if analysis, err := syncService.Analyze(ctx, report.Brand); err == nil && len(analysis.Samples) > 0 {
				sample := analysis.Samples[0]
				log.Printf("  example: %s -> %s", sample.Title, sample.Price)
			}
		}
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(os.Stdout)
}
