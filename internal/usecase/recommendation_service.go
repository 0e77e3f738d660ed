package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/skinlens/backend/internal/domain"
)

// fallbackMinCandidates is the fixed floor for the concern filter: when
// fewer candidates survive it, the concern filter is discarded and the
// skin-type-only set is scored instead. Fixed at 5 regardless of the
// requested top N.
const fallbackMinCandidates = 5

// defaultTopN is used when the caller passes a non-positive top N.
const defaultTopN = 5

// concernFilters holds one case-insensitive alternation per concern,
// compiled once from the concern keyword table.
var concernFilters = buildConcernFilters()

func buildConcernFilters() map[domain.Concern]*regexp.Regexp {
	filters := make(map[domain.Concern]*regexp.Regexp, len(concernKeywords))
	for _, entry := range concernKeywords {
		quoted := make([]string, len(entry.keywords))
		for i, keyword := range entry.keywords {
			quoted[i] = regexp.QuoteMeta(keyword)
		}
		filters[entry.concern] = regexp.MustCompile(`(?i)` + strings.Join(quoted, "|"))
	}
	return filters
}

// RecommendationConfig holds configuration for the recommendation service
type RecommendationConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// RecommendationService runs the full pipeline: signal extraction,
// catalog filtering with fallback, similarity scoring, and ranking.
// It is pure over the catalog and scorer; it never mutates the catalog.
type RecommendationService struct {
	catalog            domain.Catalog
	scorer             Scorer
	extractor          *SignalExtractor
	cache              domain.CacheRepository
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewRecommendationService creates a recommendation service with its
// dependencies. cache may be nil to disable result caching.
func NewRecommendationService(
	catalog domain.Catalog,
	scorer Scorer,
	cache domain.CacheRepository,
	config RecommendationConfig,
) *RecommendationService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &RecommendationService{
		catalog:            catalog,
		scorer:             scorer,
		extractor:          NewSignalExtractor(),
		cache:              cache,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Recommend returns up to topN products ranked by similarity to the
// query, along with the detected signals. An empty or whitespace-only
// query fails with ErrInvalidQuery; no matches for the detected skin
// type is a valid result with empty items.
func (s *RecommendationService) Recommend(ctx context.Context, query string, topN int) (*domain.RecommendationResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidQuery
	}
	if topN <= 0 {
		topN = defaultTopN
	}

	cacheKey := s.cacheKey(query, topN)
	if cached := s.getFromCache(ctx, cacheKey); cached != nil {
		cached.Source = "cache"
		return cached, nil
	}

	signals := s.extractor.Extract(query)

	candidates := s.filterCandidates(signals)

	if s.enableDebugLogging {
		log.Printf("[RECOMMEND] query=%q skinType=%s concern=%q candidates=%d",
			query, signals.SkinType, signals.Concern, len(candidates))
	}

	result := &domain.RecommendationResult{
		SkinType: signals.SkinType,
		Concern:  signals.Concern,
		Items:    []domain.RecommendationItem{},
	}

	// No products for the detected skin type: valid empty result with
	// signals still populated.
	if len(candidates) == 0 {
		return result, nil
	}

	result.Items = s.rank(query, candidates, topN)

	if err := s.setInCache(ctx, cacheKey, result); err != nil && s.enableDebugLogging {
		log.Printf("[RECOMMEND] cache write failed: %v", err)
	}

	return result, nil
}

// filterCandidates applies the skin-type filter, then the concern
// filter with its fallback: if the concern filter leaves fewer than
// fallbackMinCandidates rows, it is discarded and the skin-type-only
// set is used.
func (s *RecommendationService) filterCandidates(signals domain.DetectedSignals) []domain.Product {
	var bySkinType []domain.Product
	for _, p := range s.catalog.Products() {
		if p.SuitsSkinType(signals.SkinType) {
			bySkinType = append(bySkinType, p)
		}
	}

	if signals.Concern == "" {
		return bySkinType
	}

	filter := concernFilters[signals.Concern]
	var byConcern []domain.Product
	for _, p := range bySkinType {
		if filter.MatchString(p.EffectDescription) {
			byConcern = append(byConcern, p)
		}
	}

	if len(byConcern) < fallbackMinCandidates {
		return bySkinType
	}
	return byConcern
}

// rank scores candidates, stable-sorts them descending, and truncates
// to topN. The sort is stable so equal scores keep catalog order,
// making results deterministic.
func (s *RecommendationService) rank(query string, candidates []domain.Product, topN int) []domain.RecommendationItem {
	scores := s.scorer.ScoreAll(query, candidates)

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if topN > len(order) {
		topN = len(order)
	}

	items := make([]domain.RecommendationItem, 0, topN)
	for _, idx := range order[:topN] {
		items = append(items, domain.RecommendationItem{
			Brand:    candidates[idx].Brand,
			Name:     candidates[idx].Name,
			Category: candidates[idx].Category,
			Score:    scores[idx],
		})
	}
	return items
}

// cacheKey builds a cache key from the query and topN. The
// normalization must be lossless to signal extraction and scoring:
// both are case-insensitive, so lowercasing is safe, but punctuation
// changes what the extractor and tokenizer see and stays in the key.
// Format: "recommend:{normalized_query}:{topN}"
func (s *RecommendationService) cacheKey(query string, topN int) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	return fmt.Sprintf("recommend:%s:%d", normalized, topN)
}

// getFromCache retrieves a cached result; any failure means a miss.
func (s *RecommendationService) getFromCache(ctx context.Context, key string) *domain.RecommendationResult {
	if s.cache == nil {
		return nil
	}
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	if result, ok := value.(*domain.RecommendationResult); ok {
		return result
	}
	if dataMap, ok := value.(map[string]interface{}); ok {
		return mapToRecommendationResult(dataMap)
	}
	return nil
}

// setInCache stores a computed result; failures degrade to recompute.
func (s *RecommendationService) setInCache(ctx context.Context, key string, result *domain.RecommendationResult) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, key, result, s.cacheTTL)
}

// mapToRecommendationResult converts a map (from the JSON cache
// round-trip) back to a RecommendationResult.
func mapToRecommendationResult(data map[string]interface{}) *domain.RecommendationResult {
	result := &domain.RecommendationResult{Items: []domain.RecommendationItem{}}

	if v, ok := data["skinType"].(string); ok {
		result.SkinType = domain.SkinType(v)
	}
	if v, ok := data["concern"].(string); ok {
		result.Concern = domain.Concern(v)
	}

	items, ok := data["items"].([]interface{})
	if !ok {
		return result
	}
	for _, raw := range items {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		item := domain.RecommendationItem{}
		if v, ok := entry["brand"].(string); ok {
			item.Brand = v
		}
		if v, ok := entry["name"].(string); ok {
			item.Name = v
		}
		if v, ok := entry["category"].(string); ok {
			item.Category = v
		}
		if v, ok := entry["score"].(float64); ok {
			item.Score = v
		}
		result.Items = append(result.Items, item)
	}
	return result
}
