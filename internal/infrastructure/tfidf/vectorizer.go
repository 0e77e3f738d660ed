// Package tfidf loads a pre-built TF-IDF similarity model (and its
// optional linear classifier) exported to JSON, and applies it to text.
// Training happens offline; this package only evaluates the model.
package tfidf

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches runs of two or more word characters, mirroring
// the tokenizer the model was trained with. Single-character tokens are
// not in the vocabulary.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer maps text to an L2-normalized TF-IDF vector over a fixed
// vocabulary. The vocabulary and idf weights are frozen at load time,
// so the transform is stateless and safe for concurrent use.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// NewVectorizer builds a vectorizer from an explicit vocabulary and idf
// table. idf must have one entry per vocabulary index.
func NewVectorizer(vocabulary map[string]int, idf []float64) *Vectorizer {
	return &Vectorizer{
		vocabulary: vocabulary,
		idf:        idf,
	}
}

// Dims returns the vector length.
func (v *Vectorizer) Dims() int {
	return len(v.idf)
}

// Vectorize converts text to a TF-IDF vector: term counts weighted by
// idf, then L2-normalized. Terms outside the vocabulary are ignored.
// Empty or out-of-vocabulary text yields a zero vector, never an error.
func (v *Vectorizer) Vectorize(text string) []float64 {
	vec := make([]float64, len(v.idf))

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	for _, tok := range tokens {
		idx, ok := v.vocabulary[tok]
		if !ok {
			continue
		}
		vec[idx] += v.idf[idx]
	}

	// L2 normalize so the dot product of two vectors is their cosine
	// similarity.
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}

// Dot returns the dot product of two equal-length vectors. Mismatched
// lengths score 0 rather than panicking.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// tokenize lowercases text and splits it into vocabulary-shaped tokens.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
