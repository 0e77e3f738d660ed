package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func multiclassClassifier() *LinearClassifier {
	// Three classes over two features; each row favors one axis.
	return NewLinearClassifier(
		[]string{"cleanser", "serum", "toner"},
		[][]float64{
			{1.0, 0.0},
			{0.0, 1.0},
			{0.5, 0.5},
		},
		[]float64{0.0, 0.0, -0.2},
	)
}

func TestPredict_Multiclass(t *testing.T) {
	c := multiclassClassifier()

	testCases := []struct {
		name string
		vec  []float64
		want string
	}{
		{"first axis wins", []float64{1.0, 0.0}, "cleanser"},
		{"second axis wins", []float64{0.0, 1.0}, "serum"},
		{"intercept breaks balance", []float64{0.5, 0.5}, "cleanser"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Predict(tc.vec))
		})
	}
}

func TestPredict_Binary(t *testing.T) {
	// Binary model: single coefficient row, positive decision selects
	// the second class.
	c := NewLinearClassifier(
		[]string{"cleanser", "serum"},
		[][]float64{{1.0, -1.0}},
		[]float64{0.0},
	)

	assert.Equal(t, "serum", c.Predict([]float64{1.0, 0.0}))
	assert.Equal(t, "cleanser", c.Predict([]float64{0.0, 1.0}))
}

func TestPredict_EmptyModel(t *testing.T) {
	c := NewLinearClassifier(nil, nil, nil)
	assert.Equal(t, "", c.Predict([]float64{1.0}))
}

func TestDecisionScore(t *testing.T) {
	c := multiclassClassifier()

	t.Run("scores a known category", func(t *testing.T) {
		assert.InDelta(t, 1.0, c.DecisionScore([]float64{1.0, 0.0}, "cleanser"), 1e-9)
		assert.InDelta(t, 0.3, c.DecisionScore([]float64{0.5, 0.5}, "toner"), 1e-9)
	})

	t.Run("unknown category ranks last", func(t *testing.T) {
		assert.True(t, math.IsInf(c.DecisionScore([]float64{1.0, 0.0}, "sunscreen"), -1))
	})

	t.Run("binary model negates for the first class", func(t *testing.T) {
		c := NewLinearClassifier(
			[]string{"cleanser", "serum"},
			[][]float64{{1.0, 0.0}},
			[]float64{0.0},
		)
		serum := c.DecisionScore([]float64{1.0, 0.0}, "serum")
		cleanser := c.DecisionScore([]float64{1.0, 0.0}, "cleanser")
		assert.InDelta(t, serum, -cleanser, 1e-9)
	})
}
