package usecase

import (
	"strings"

	"github.com/skinlens/backend/internal/domain"
)

// skinTypeKeywords maps trigger keywords to canonical skin-type labels.
// The table is scanned in full, in order, and every hit overwrites the
// previous one, so later entries take priority on a tie. Matching is
// plain substring matching: "dry" inside "hydrating" counts. That
// imprecision is intentional, documented behavior.
var skinTypeKeywords = []struct {
	keyword string
	label   domain.SkinType
}{
	{"oily", domain.SkinTypeOily},
	{"dry", domain.SkinTypeDry},
	{"normal", domain.SkinTypeNormal},
	{"combination", domain.SkinTypeCombination},
	{"combo", domain.SkinTypeCombination},
	{"sensitive", domain.SkinTypeSensitive},
}

// concernKeywords maps each concern to its ordered trigger keywords.
// Concerns are scanned in order and the first concern with any matching
// keyword wins, stopping the scan (unlike skin types, where the last
// match wins).
var concernKeywords = []struct {
	concern  domain.Concern
	keywords []string
}{
	{domain.ConcernAcne, []string{"acne", "pimple", "breakout"}},
	{domain.ConcernRedness, []string{"redness", "irritation", "inflamed"}},
	{domain.ConcernDryness, []string{"dehydrated", "flaky", "dry"}},
	{domain.ConcernPigmentation, []string{"pigmentation", "dark spot", "uneven tone"}},
}

// SignalExtractor derives structured signals (skin type, concern) from
// raw query text using the fixed keyword tables.
type SignalExtractor struct{}

// NewSignalExtractor creates a signal extractor.
func NewSignalExtractor() *SignalExtractor {
	return &SignalExtractor{}
}

// Extract detects a skin type and an optional concern from query text.
// Empty or unrecognized input yields SkinTypeNormal with no concern;
// that is a valid result, not an error.
func (e *SignalExtractor) Extract(query string) domain.DetectedSignals {
	lowered := strings.ToLower(query)

	signals := domain.DetectedSignals{SkinType: domain.SkinTypeNormal}

	for _, entry := range skinTypeKeywords {
		if strings.Contains(lowered, entry.keyword) {
			signals.SkinType = entry.label
		}
	}

	for _, entry := range concernKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				signals.Concern = entry.concern
				return signals
			}
		}
	}

	return signals
}

// KeywordsForConcern returns the ordered trigger keywords for a concern,
// or nil for an unknown concern. The recommendation pipeline reuses the
// same table for its effect-description filter.
func KeywordsForConcern(c domain.Concern) []string {
	for _, entry := range concernKeywords {
		if entry.concern == c {
			return entry.keywords
		}
	}
	return nil
}
