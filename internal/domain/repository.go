package domain

import (
	"context"
	"time"
)

// TableState tells the merge pipeline whether a brand's table already
// exists. It is computed once by the store and passed through explicitly
// instead of being re-derived from file existence checks downstream.
type TableState int

const (
	// TableStateEmpty means no table has been written for the brand yet;
	// the next write creates it.
	TableStateEmpty TableState = iota

	// TableStateExisting means a table exists; accepted rows are appended.
	TableStateExisting
)

// CatalogClient defines the interface for fetching raw products from a
// storefront catalog API.
type CatalogClient interface {
	FetchAllProducts(ctx context.Context, collectionURL string) ([]RawProduct, error)
}

// TableStore defines the interface for the persisted per-brand row table.
// Rows handed to Create and Append are already deduplicated; the store must
// not re-check duplicates.
type TableStore interface {
	// ReadState reports whether a table exists for the brand and, when it
	// does, the variant keys it already holds. Malformed persisted data is
	// not fatal: implementations report TableStateEmpty and let the caller
	// recreate the table.
	ReadState(ctx context.Context, brandTag string) (TableState, KeySet, error)

	// Create writes a fresh table with a header and the given rows.
	Create(ctx context.Context, brandTag string, rows []Row) error

	// Append adds rows to an existing table.
	Append(ctx context.Context, brandTag string, rows []Row) error

	// ReadRows returns every persisted row, in table order.
	ReadRows(ctx context.Context, brandTag string) ([]Row, error)

	// Path returns where the brand's table lives, for reporting.
	Path(brandTag string) string
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
