package domain

import (
	"context"
	"time"
)

// Catalog defines read access to the loaded product catalog. The catalog
// is immutable after startup; implementations must not expose mutation.
type Catalog interface {
	// Products returns all catalog rows in load order.
	Products() []Product

	// HasSkinType reports whether the label was a column in the source data.
	HasSkinType(st SkinType) bool
}

// Vectorizer maps a text string to a fixed-length weighted-term vector
// such that the dot product of two vectors approximates topical
// similarity. Implementations must be stateless transforms, reentrant
// across concurrent requests.
type Vectorizer interface {
	Vectorize(text string) []float64
}

// Classifier is the alternate scoring capability: it predicts a product
// category from a query vector and exposes the model's per-category
// decision score for ranking within that category.
type Classifier interface {
	Predict(vec []float64) string
	DecisionScore(vec []float64, category string) float64
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
