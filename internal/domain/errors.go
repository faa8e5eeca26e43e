package domain

import "errors"

var (
	// ErrProductNotFound is returned when no catalog record matches a query
	ErrProductNotFound = errors.New("product not found in boycott catalog")

	// ErrCatalogUnavailable is returned when the catalog snapshot is empty or not loaded
	ErrCatalogUnavailable = errors.New("catalog not available")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
