package domain

import "errors"

var (
	// ErrBrandNotFound is returned when a brand tag is not configured
	ErrBrandNotFound = errors.New("brand not configured")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogAPIFailure is returned when a storefront catalog request fails
	ErrCatalogAPIFailure = errors.New("catalog API request failed")

	// ErrTableNotFound is returned when no table has been written for a brand yet
	ErrTableNotFound = errors.New("no table exists for brand")
)
