package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopfeed/backend/internal/domain"
)

// Run outcomes, reported distinctly so callers can tell an empty run from
// a write.
const (
	OutcomeCreated    = "created"
	OutcomeAppended   = "appended"
	OutcomeNoNewRows  = "no_new_rows"
	OutcomeNoProducts = "no_products"
)

// RunReport summarizes one sync run for a brand.
type RunReport struct {
	Brand       string `json:"brand"`
	Outcome     string `json:"outcome"`
	Products    int    `json:"products"`
	Variants    int    `json:"variants"`
	Images      int    `json:"images"`
	VariantRows int    `json:"variantRows"`
	ImageRows   int    `json:"imageRows"`
	Appended    int    `json:"appended"`
	Skipped     int    `json:"skipped"`
	Path        string `json:"path,omitempty"`
}

// SyncServiceConfig holds configuration for the sync service
type SyncServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// SyncService runs the fetch -> expand -> merge -> write pipeline for a
// brand. Flow mirrors the rest of the codebase: check cache -> fetch
// catalog -> transform -> persist -> report.
type SyncService struct {
	catalog  domain.CatalogClient
	store    domain.TableStore
	cache    domain.CacheRepository
	expander *RowExpander
	merger   *MergeEngine
	brands   map[string]domain.Brand
	order    []string
	cacheTTL time.Duration
}

// NewSyncService creates a sync service with dependencies.
func NewSyncService(
	catalog domain.CatalogClient,
	store domain.TableStore,
	cache domain.CacheRepository,
	expander *RowExpander,
	brands []domain.Brand,
	config SyncServiceConfig,
) *SyncService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}

	byTag := make(map[string]domain.Brand, len(brands))
	order := make([]string, 0, len(brands))
	for _, b := range brands {
		byTag[b.Tag] = b
		order = append(order, b.Tag)
	}

	return &SyncService{
		catalog:  catalog,
		store:    store,
		cache:    cache,
		expander: expander,
		merger:   NewMergeEngine(config.EnableDebugLogging),
		brands:   byTag,
		order:    order,
		cacheTTL: cacheTTL,
	}
}

// Brands returns the configured brands in configuration order.
func (s *SyncService) Brands() []domain.Brand {
	brands := make([]domain.Brand, 0, len(s.order))
	for _, tag := range s.order {
		brands = append(brands, s.brands[tag])
	}
	return brands
}

// SyncBrand runs the full pipeline for one brand tag.
func (s *SyncService) SyncBrand(ctx context.Context, brandTag string) (*RunReport, error) {
	brand, ok := s.brands[brandTag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBrandNotFound, brandTag)
	}

	products, err := s.fetchProducts(ctx, brand)
	if err != nil {
		return nil, err
	}

	report := &RunReport{Brand: brand.Tag}
	report.Products = len(products)

	if len(products) == 0 {
		log.Printf("[SYNC] no products found for %s", brand.Tag)
		report.Outcome = OutcomeNoProducts
		return report, nil
	}

	log.Printf("[SYNC] processing %d products for %s", len(products), brand.Tag)

	var candidates []domain.Row
	for _, product := range products {
		candidates = append(candidates, s.expander.Expand(product, brand.Tag)...)
		report.Variants += len(product.Variants)
		report.Images += len(product.Images)
	}
	for _, row := range candidates {
		if row.IsVariantRow() {
			report.VariantRows++
		} else {
			report.ImageRows++
		}
	}

	state, existing, err := s.store.ReadState(ctx, brand.Tag)
	if err != nil {
		return nil, fmt.Errorf("reading table state for %s: %w", brand.Tag, err)
	}

	merged := s.merger.Merge(existing, candidates)
	report.Appended = len(merged.Accepted)
	report.Skipped = merged.Skipped
	report.Path = s.store.Path(brand.Tag)

	if len(merged.Accepted) == 0 {
		// No-op merge: every candidate already persisted, storage untouched.
		log.Printf("[SYNC] no new variants for %s (skipped %d existing)", brand.Tag, merged.Skipped)
		report.Outcome = OutcomeNoNewRows
		return report, nil
	}

	switch state {
	case domain.TableStateEmpty:
		if err := s.store.Create(ctx, brand.Tag, merged.Accepted); err != nil {
			return nil, fmt.Errorf("creating table for %s: %w", brand.Tag, err)
		}
		report.Outcome = OutcomeCreated
		log.Printf("[SYNC] created table for %s with %d rows", brand.Tag, len(merged.Accepted))
	case domain.TableStateExisting:
		if err := s.store.Append(ctx, brand.Tag, merged.Accepted); err != nil {
			return nil, fmt.Errorf("appending rows for %s: %w", brand.Tag, err)
		}
		report.Outcome = OutcomeAppended
		log.Printf("[SYNC] appended %d rows for %s, skipped %d existing", len(merged.Accepted), brand.Tag, merged.Skipped)
	}

	return report, nil
}

// SyncAll runs every configured brand in order, collecting per-brand
// reports. A failing brand does not stop the others.
func (s *SyncService) SyncAll(ctx context.Context) ([]*RunReport, error) {
	var reports []*RunReport
	var lastErr error

	for _, tag := range s.order {
		report, err := s.SyncBrand(ctx, tag)
		if err != nil {
			log.Printf("[SYNC] brand %s failed: %v", tag, err)
			lastErr = err
			continue
		}
		reports = append(reports, report)
	}

	if len(reports) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return reports, nil
}

// Analyze summarizes a brand's persisted table.
func (s *SyncService) Analyze(ctx context.Context, brandTag string) (*TableAnalysis, error) {
	brand, ok := s.brands[brandTag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBrandNotFound, brandTag)
	}

	state, _, err := s.store.ReadState(ctx, brand.Tag)
	if err != nil {
		return nil, err
	}
	if state == domain.TableStateEmpty {
		return nil, fmt.Errorf("%w: %s", domain.ErrTableNotFound, brand.Tag)
	}

	rows, err := s.store.ReadRows(ctx, brand.Tag)
	if err != nil {
		return nil, fmt.Errorf("reading table for %s: %w", brand.Tag, err)
	}

	analysis := AnalyzeRows(rows)
	analysis.Brand = brand.Tag
	analysis.Path = s.store.Path(brand.Tag)
	return analysis, nil
}

// fetchProducts returns the brand's product list, from cache when fresh so
// repeated sync triggers don't hammer the storefront. Stale or missing
// cache falls through to the catalog client.
func (s *SyncService) fetchProducts(ctx context.Context, brand domain.Brand) ([]domain.RawProduct, error) {
	cacheKey := "catalog:" + brand.Tag

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		if products, ok := decodeCachedProducts(cached); ok {
			log.Printf("[SYNC] using cached catalog for %s (%d products)", brand.Tag, len(products))
			return products, nil
		}
	}

	collectionURL := brand.BestSellersURL
	if collectionURL == "" {
		collectionURL = brand.AllProductsURL
	}

	products, err := s.catalog.FetchAllProducts(ctx, collectionURL)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog for %s: %w", brand.Tag, err)
	}

	if err := s.cache.Set(ctx, cacheKey, products, s.cacheTTL); err != nil {
		log.Printf("[SYNC] failed to cache catalog for %s: %v", brand.Tag, err)
	}

	return products, nil
}

// decodeCachedProducts converts a cached value back into typed products.
// The cache stores JSON-shaped data, so round-trip through json handles
// whatever concrete shape comes back.
func decodeCachedProducts(cached interface{}) ([]domain.RawProduct, bool) {
	data, err := json.Marshal(cached)
	if err != nil {
		return nil, false
	}
	var products []domain.RawProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}
	return products, true
}
