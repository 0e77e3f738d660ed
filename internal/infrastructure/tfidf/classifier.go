package tfidf

import "math"

// LinearClassifier is a linear model over TF-IDF vectors, used as the
// alternate predict-then-score strategy. For multi-class models there is
// one coefficient row per class; binary models carry a single row whose
// positive decision selects the second class.
type LinearClassifier struct {
	classes    []string
	coef       [][]float64
	intercepts []float64
}

// NewLinearClassifier builds a classifier from exported model weights.
func NewLinearClassifier(classes []string, coef [][]float64, intercepts []float64) *LinearClassifier {
	return &LinearClassifier{
		classes:    classes,
		coef:       coef,
		intercepts: intercepts,
	}
}

// Classes returns the category labels the model predicts.
func (c *LinearClassifier) Classes() []string {
	return c.classes
}

// Predict returns the category with the highest decision value for the
// given vector, or "" when the model is empty.
func (c *LinearClassifier) Predict(vec []float64) string {
	if len(c.classes) == 0 || len(c.coef) == 0 {
		return ""
	}

	// Binary model: one row, sign picks the class.
	if len(c.coef) == 1 && len(c.classes) == 2 {
		if c.decision(0, vec) > 0 {
			return c.classes[1]
		}
		return c.classes[0]
	}

	best := 0
	bestScore := c.decision(0, vec)
	for i := 1; i < len(c.coef); i++ {
		if score := c.decision(i, vec); score > bestScore {
			best = i
			bestScore = score
		}
	}
	return c.classes[best]
}

// DecisionScore returns the model's decision value for the given
// category; higher means a stronger fit. Unknown categories score the
// most negative possible fit so they rank last.
func (c *LinearClassifier) DecisionScore(vec []float64, category string) float64 {
	row := c.classIndex(category)
	if row < 0 {
		return math.Inf(-1)
	}

	// Binary model: the single row scores the second class; the first
	// class is its negation.
	if len(c.coef) == 1 && len(c.classes) == 2 {
		score := c.decision(0, vec)
		if category == c.classes[0] {
			return -score
		}
		return score
	}

	return c.decision(row, vec)
}

func (c *LinearClassifier) decision(row int, vec []float64) float64 {
	score := Dot(c.coef[row], vec)
	if row < len(c.intercepts) {
		score += c.intercepts[row]
	}
	return score
}

func (c *LinearClassifier) classIndex(category string) int {
	for i, class := range c.classes {
		if class == category {
			return i
		}
	}
	return -1
}
