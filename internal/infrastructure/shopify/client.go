package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopfeed/backend/internal/domain"
	"golang.org/x/time/rate"
)

// defaultUserAgent mimics a browser; some storefronts refuse requests with
// obvious bot agents.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

const maxAttempts = 3

// Client fetches product catalogs from a Shopify storefront's public
// products.json endpoint.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	pageSize    int
	rateLimiter *rate.Limiter
	debug       bool
}

// ClientConfig holds catalog client settings.
type ClientConfig struct {
	PageSize          int
	Timeout           time.Duration
	UserAgent         string
	RequestsPerSecond float64
}

// NewClient creates a storefront catalog client.
func NewClient(config ClientConfig) *Client {
	if config.PageSize <= 0 {
		config.PageSize = 50
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = 2
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		userAgent:   config.UserAgent,
		pageSize:    config.PageSize,
		rateLimiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 5),
	}
}

// SetDebug enables verbose per-page logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// productsResponse is the wire shape of a products.json page.
type productsResponse struct {
	Products []domain.RawProduct `json:"products"`
}

// FetchAllProducts pages through <collectionURL>/products.json until a
// short or empty page signals the end. A failing page after the first
// returns what was fetched so far; a failing first page is an error.
func (c *Client) FetchAllProducts(ctx context.Context, collectionURL string) ([]domain.RawProduct, error) {
	var all []domain.RawProduct

	for page := 1; ; page++ {
		products, err := c.fetchPage(ctx, collectionURL, page)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			log.Printf("[SHOPIFY] page %d failed, returning %d products fetched so far: %v", page, len(all), err)
			break
		}

		if len(products) == 0 {
			break
		}

		all = append(all, Normalize(products)...)
		if c.debug {
			log.Printf("[SHOPIFY] fetched %d products from page %d", len(products), page)
		}

		if len(products) < c.pageSize {
			break
		}
	}

	log.Printf("[SHOPIFY] total products fetched: %d", len(all))
	return all, nil
}

// fetchPage requests a single page, retrying transient failures with
// backoff.
func (c *Client) fetchPage(ctx context.Context, collectionURL string, page int) ([]domain.RawProduct, error) {
	reqURL, err := buildPageURL(collectionURL, page, c.pageSize)
	if err != nil {
		return nil, fmt.Errorf("building products URL: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[SHOPIFY] page %d request error (attempt %d): %v", page, attempt, err)
			lastErr = err
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(exponentialBackoff(attempt)):
			}
			continue
		}

		var resp productsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode products page %d: %w", page, err)
		}
		return resp.Products, nil
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET and returns the body of a 200 response.
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
	}

	return body, nil
}

// buildPageURL appends products.json with page and limit parameters to the
// collection URL.
func buildPageURL(collectionURL string, page, limit int) (string, error) {
	u, err := url.Parse(collectionURL)
	if err != nil {
		return "", err
	}
	u.Path = u.Path + "/products.json"

	params := url.Values{}
	params.Add("page", strconv.Itoa(page))
	params.Add("limit", strconv.Itoa(limit))
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// exponentialBackoff returns the wait before the next retry attempt.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250*(1<<(attempt-1))) * time.Millisecond
}
