package domain

// SkinType is one of the five recognized skin-type labels. The catalog
// carries one boolean column per label, named exactly by the label.
type SkinType string

const (
	SkinTypeOily        SkinType = "Oily"
	SkinTypeDry         SkinType = "Dry"
	SkinTypeNormal      SkinType = "Normal"
	SkinTypeCombination SkinType = "Combination"
	SkinTypeSensitive   SkinType = "Sensitive"
)

// SkinTypes lists all recognized skin types in catalog column order.
var SkinTypes = []SkinType{
	SkinTypeOily,
	SkinTypeDry,
	SkinTypeNormal,
	SkinTypeCombination,
	SkinTypeSensitive,
}

// Concern is a closed-set skin problem category detected from free text.
type Concern string

const (
	ConcernAcne         Concern = "acne"
	ConcernRedness      Concern = "redness"
	ConcernDryness      Concern = "dryness"
	ConcernPigmentation Concern = "pigmentation"
)

// Product is one row of the catalog. The catalog is loaded once at
// startup and never mutated, so products are safe to share across
// concurrent requests without locking.
type Product struct {
	Category          string `json:"category"`
	Brand             string `json:"brand"`
	Name              string `json:"name"`
	EffectDescription string `json:"effectDescription"`

	// SkinTypeFlags marks which skin types the product suits. A product
	// may suit more than one.
	SkinTypeFlags map[SkinType]bool `json:"skinTypeFlags"`

	// CombinedText is EffectDescription + " " + Name, computed once at
	// load time. It is the document representation used for similarity
	// scoring; an empty value scores 0 rather than erroring.
	CombinedText string `json:"-"`
}

// SuitsSkinType reports whether the product is flagged for the given type.
func (p *Product) SuitsSkinType(st SkinType) bool {
	return p.SkinTypeFlags[st]
}

// DetectedSignals holds the structured signals extracted from a query.
// Concern is empty when no concern keyword matched.
type DetectedSignals struct {
	SkinType SkinType `json:"skinType"`
	Concern  Concern  `json:"concern,omitempty"`
}

// RecommendationItem is one ranked entry in a recommendation result.
type RecommendationItem struct {
	Brand    string  `json:"brand"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// RecommendationResult is the outcome of one Recommend call. Items are
// sorted by descending similarity score and truncated to the requested
// top N. An empty Items slice with populated signals is a valid result,
// not an error. Source records whether the result was computed or
// served from cache; it is internal only and kept off the wire so
// repeated queries return byte-identical responses.
type RecommendationResult struct {
	SkinType SkinType             `json:"skinType"`
	Concern  Concern              `json:"concern,omitempty"`
	Items    []RecommendationItem `json:"items"`
	Source   string               `json:"-"`
}

// RoutineProduct is one product entry within a routine step.
type RoutineProduct struct {
	Brand    string `json:"brand"`
	Category string `json:"category"`
}

// RoutineStep is one step of the four-step routine with its products,
// taken in catalog order without scoring.
type RoutineStep struct {
	Step     string           `json:"step"`
	Products []RoutineProduct `json:"products"`
}

// Routine is an ordered sequence of steps for a skin type. Steps with
// no matching products are omitted entirely.
type Routine struct {
	SkinType SkinType      `json:"skinType"`
	Steps    []RoutineStep `json:"steps"`
}
