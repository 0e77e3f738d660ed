package usecase

import (
	"strings"
	"testing"

	"github.com/skinlens/backend/internal/domain"
)

// axisVectorizer maps a fixed term list to one axis each: the vector
// counts term occurrences. Deterministic stand-in for the TF-IDF model.
type axisVectorizer struct {
	terms []string
}

func (v *axisVectorizer) Vectorize(text string) []float64 {
	lowered := strings.ToLower(text)
	vec := make([]float64, len(v.terms))
	for i, term := range v.terms {
		vec[i] = float64(strings.Count(lowered, term))
	}
	return vec
}

// tableClassifier predicts a fixed category and scores via a per-axis
// weight row for each category.
type tableClassifier struct {
	predicted string
	weights   map[string][]float64
}

func (c *tableClassifier) Predict(vec []float64) string { return c.predicted }

func (c *tableClassifier) DecisionScore(vec []float64, category string) float64 {
	row, ok := c.weights[category]
	if !ok {
		return 0
	}
	var sum float64
	for i := range row {
		if i < len(vec) {
			sum += row[i] * vec[i]
		}
	}
	return sum
}

func TestEmbeddingScorer(t *testing.T) {
	vectorizer := &axisVectorizer{terms: []string{"acne", "hydrating", "toner"}}
	scorer := NewEmbeddingScorer(vectorizer)

	candidates := []domain.Product{
		product("serum", "B", "Acne Serum", "treats acne and more acne", domain.SkinTypeOily),
		product("toner", "B", "Hydrating Toner", "hydrating formula", domain.SkinTypeOily),
		{Name: "Empty", CombinedText: ""},
	}

	scores := scorer.ScoreAll("help with acne", candidates)

	if len(scores) != 3 {
		t.Fatalf("len(scores) = %d, want 3", len(scores))
	}
	if scores[0] <= scores[1] {
		t.Errorf("acne product should outscore toner for an acne query: %v", scores)
	}
	if scores[2] != 0 {
		t.Errorf("empty combined text must score 0, got %v", scores[2])
	}
}

func TestEmbeddingScorer_NoOverlap(t *testing.T) {
	vectorizer := &axisVectorizer{terms: []string{"acne"}}
	scorer := NewEmbeddingScorer(vectorizer)

	candidates := []domain.Product{
		product("toner", "B", "Rose Toner", "calming rose water", domain.SkinTypeNormal),
	}

	scores := scorer.ScoreAll("something nice", candidates)
	if scores[0] != 0 {
		t.Errorf("score = %v, want 0 for no term overlap", scores[0])
	}
}

func TestClassifierScorer(t *testing.T) {
	vectorizer := &axisVectorizer{terms: []string{"acne", "hydrating"}}
	classifier := &tableClassifier{
		predicted: "serum",
		weights: map[string][]float64{
			// serum weight favors the acne axis
			"serum": {2.0, 0.5},
		},
	}
	scorer := NewClassifierScorer(vectorizer, classifier)

	candidates := []domain.Product{
		product("serum", "B", "Acne Fix", "acne acne acne", domain.SkinTypeOily),
		product("toner", "B", "Hydra Mist", "hydrating mist", domain.SkinTypeOily),
		{Name: "Empty", CombinedText: ""},
	}

	scores := scorer.ScoreAll("acne help", candidates)

	if scores[0] <= scores[1] {
		t.Errorf("acne-heavy candidate should outscore under the serum row: %v", scores)
	}
	if scores[2] != 0 {
		t.Errorf("empty combined text must score 0, got %v", scores[2])
	}
}

func TestDot(t *testing.T) {
	testCases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"basic", []float64{1, 2}, []float64{3, 4}, 11},
		{"zero vectors", []float64{0, 0}, []float64{0, 0}, 0},
		{"mismatched lengths score zero", []float64{1}, []float64{1, 2}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dot(tc.a, tc.b); got != tc.want {
				t.Errorf("dot(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
