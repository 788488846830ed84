package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfeed/backend/config"
	"github.com/shopfeed/backend/internal/domain"
	"github.com/shopfeed/backend/internal/infrastructure/cache"
	"github.com/shopfeed/backend/internal/infrastructure/csvstore"
	"github.com/shopfeed/backend/internal/infrastructure/shopify"
	"github.com/shopfeed/backend/internal/usecase"
)

// storefrontPayload is a single-page catalog: one product with two
// variants and two images, expanding to three table rows.
const storefrontPayload = `{
	"products": [
		{
			"id": 1,
			"title": "Wild Honey",
			"handle": "wild-honey",
			"body_html": "<p>Raw honey from forest hives.</p>",
			"vendor": "The Divine Foods",
			"product_type": "Food",
			"options": [{"name": "Size", "position": 1}],
			"variants": [
				{"id": 11, "title": "250g", "option1": "250g", "sku": "WH-250", "price": "100.0", "grams": 500, "available": true, "position": 1, "requires_shipping": true, "taxable": true},
				{"id": 12, "title": "500g", "option1": "500g", "sku": "WH-500", "price": "180.0", "grams": 900, "available": true, "position": 2, "requires_shipping": true, "taxable": true}
			],
			"images": [
				{"id": 21, "position": 1, "src": "https://cdn.example.com/honey-1.jpg"},
				{"id": 22, "position": 2, "src": "https://cdn.example.com/honey-2.jpg"}
			]
		}
	]
}`

// newTestStack wires the real pipeline against a fake storefront and a
// temp output directory, returning the router.
func newTestStack(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storefront := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/best-sellers/products.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, storefrontPayload)
			return
		}
		fmt.Fprint(w, `{"products": []}`)
	}))
	t.Cleanup(storefront.Close)

	brands := []domain.Brand{
		{
			Tag:            "divine_foods",
			Name:           "The Divine Foods",
			URL:            storefront.URL,
			BestSellersURL: storefront.URL + "/collections/best-sellers",
		},
	}

	catalog := shopify.NewClient(shopify.ClientConfig{
		PageSize:          50,
		Timeout:           5 * time.Second,
		RequestsPerSecond: 100,
	})
	store := csvstore.NewStore(t.TempDir())
	calculator := usecase.NewPriceCalculator(usecase.DefaultPricingConfig())
	expander := usecase.NewRowExpander(calculator, brands)
	syncService := usecase.NewSyncService(
		catalog, store, cache.NewMemoryCache(), expander, brands,
		usecase.SyncServiceConfig{CacheTTL: time.Minute},
	)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
	}
	return SetupRouter(cfg, NewHandler(syncService))
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestHealthCheck(t *testing.T) {
	router := newTestStack(t)

	var body map[string]string
	w := doJSON(t, router, http.MethodGet, "/health", &body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "shopfeed-backend", body["service"])
}

func TestListBrands(t *testing.T) {
	router := newTestStack(t)

	var body struct {
		Brands []domain.Brand `json:"brands"`
	}
	w := doJSON(t, router, http.MethodGet, "/api/v1/brands", &body)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Brands, 1)
	assert.Equal(t, "divine_foods", body.Brands[0].Tag)
}

func TestSyncBrandEndToEnd(t *testing.T) {
	router := newTestStack(t)

	// Before any sync, the report endpoint has nothing to summarize.
	w := doJSON(t, router, http.MethodGet, "/api/v1/reports/divine_foods", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var report usecase.RunReport
	w = doJSON(t, router, http.MethodPost, "/api/v1/sync/divine_foods", &report)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "divine_foods", report.Brand)
	assert.Equal(t, usecase.OutcomeCreated, report.Outcome)
	assert.Equal(t, 1, report.Products)
	assert.Equal(t, 2, report.VariantRows)
	assert.Equal(t, 1, report.ImageRows)
	assert.Equal(t, 3, report.Appended)
	assert.Equal(t, 0, report.Skipped)

	// A second run finds every variant already persisted.
	var second usecase.RunReport
	w = doJSON(t, router, http.MethodPost, "/api/v1/sync/divine_foods", &second)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecase.OutcomeNoNewRows, second.Outcome)
	assert.Equal(t, 0, second.Appended)
	assert.Equal(t, 2, second.Skipped)

	var analysis usecase.TableAnalysis
	w = doJSON(t, router, http.MethodGet, "/api/v1/reports/divine_foods", &analysis)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "divine_foods", analysis.Brand)
	assert.Equal(t, 3, analysis.TotalRows)
	assert.Equal(t, 2, analysis.VariantRows)
	assert.Equal(t, 1, analysis.ImageRows)
	assert.Equal(t, 1, analysis.UniqueProducts)
}

func TestSyncUnknownBrand(t *testing.T) {
	router := newTestStack(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/sync/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSyncAllEndpoint(t *testing.T) {
	router := newTestStack(t)

	var body struct {
		Reports []usecase.RunReport `json:"reports"`
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/sync", &body)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Reports, 1)
	assert.Equal(t, usecase.OutcomeCreated, body.Reports[0].Outcome)
}
