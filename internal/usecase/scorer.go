package usecase

import (
	"github.com/skinlens/backend/internal/domain"
)

// Scorer ranks candidate products against a query. The two strategies
// (embedding dot-product and classifier decision score) are
// interchangeable behind this interface but never mixed within one call.
type Scorer interface {
	// ScoreAll returns one score per candidate, index-aligned with the
	// input. Higher is more similar. Candidates with empty combined
	// text score 0.
	ScoreAll(query string, candidates []domain.Product) []float64
}

// EmbeddingScorer is the primary strategy: score = dot product of the
// query vector and the candidate's combined-text vector. Vectors are
// L2-normalized by the vectorizer, so this is cosine similarity.
type EmbeddingScorer struct {
	vectorizer domain.Vectorizer
}

// NewEmbeddingScorer creates the dot-product scorer.
func NewEmbeddingScorer(vectorizer domain.Vectorizer) *EmbeddingScorer {
	return &EmbeddingScorer{vectorizer: vectorizer}
}

// ScoreAll embeds the query once and dots it against each candidate's
// combined text.
func (s *EmbeddingScorer) ScoreAll(query string, candidates []domain.Product) []float64 {
	queryVec := s.vectorizer.Vectorize(query)

	scores := make([]float64, len(candidates))
	for i, candidate := range candidates {
		if candidate.CombinedText == "" {
			continue
		}
		scores[i] = dot(queryVec, s.vectorizer.Vectorize(candidate.CombinedText))
	}
	return scores
}

// ClassifierScorer is the alternate strategy: predict a category from
// the query vector, then rank candidates by the classifier's decision
// score for that predicted category.
type ClassifierScorer struct {
	vectorizer domain.Vectorizer
	classifier domain.Classifier
}

// NewClassifierScorer creates the predict-then-score scorer.
func NewClassifierScorer(vectorizer domain.Vectorizer, classifier domain.Classifier) *ClassifierScorer {
	return &ClassifierScorer{vectorizer: vectorizer, classifier: classifier}
}

// ScoreAll predicts the query's category once, then scores each
// candidate's combined text against that category.
func (s *ClassifierScorer) ScoreAll(query string, candidates []domain.Product) []float64 {
	predicted := s.classifier.Predict(s.vectorizer.Vectorize(query))

	scores := make([]float64, len(candidates))
	for i, candidate := range candidates {
		if candidate.CombinedText == "" {
			continue
		}
		scores[i] = s.classifier.DecisionScore(s.vectorizer.Vectorize(candidate.CombinedText), predicted)
	}
	return scores
}

// dot computes the dot product of two equal-length vectors; mismatched
// lengths score 0.
func dot(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
