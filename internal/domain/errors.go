package domain

import "errors"

var (
	// ErrInvalidQuery is returned when the query text is empty or whitespace-only
	ErrInvalidQuery = errors.New("query text must not be empty")

	// ErrUnknownSkinType is returned when a requested skin type has no catalog column
	ErrUnknownSkinType = errors.New("skin type not found in catalog")

	// ErrNoProducts is returned when no catalog products match the requested skin type
	ErrNoProducts = errors.New("no products found for skin type")

	// ErrScorerUnavailable is returned when the similarity model cannot be loaded at startup
	ErrScorerUnavailable = errors.New("similarity model unavailable")

	// ErrCatalogUnavailable is returned when the product catalog cannot be loaded at startup
	ErrCatalogUnavailable = errors.New("product catalog unavailable")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
