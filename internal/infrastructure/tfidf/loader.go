package tfidf

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/skinlens/backend/internal/domain"
)

// modelFile is the JSON export of the offline-trained model: the TF-IDF
// vocabulary and idf weights, plus optional linear classifier weights.
type modelFile struct {
	Vocabulary map[string]int `json:"vocabulary"`
	Idf        []float64      `json:"idf"`

	Classes    []string    `json:"classes,omitempty"`
	Coef       [][]float64 `json:"coef,omitempty"`
	Intercepts []float64   `json:"intercepts,omitempty"`
}

// Model bundles the loaded vectorizer with its optional classifier.
type Model struct {
	Vectorizer *Vectorizer
	Classifier *LinearClassifier
}

// HasClassifier reports whether the export included classifier weights.
func (m *Model) HasClassifier() bool {
	return m.Classifier != nil
}

// Load reads a model export from disk. Any failure here is a startup
// failure; callers are expected to abort, not retry per-request.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrScorerUnavailable, path, err)
	}

	var file modelFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrScorerUnavailable, path, err)
	}

	if err := validate(&file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrScorerUnavailable, path, err)
	}

	model := &Model{
		Vectorizer: NewVectorizer(file.Vocabulary, file.Idf),
	}

	if len(file.Classes) > 0 {
		model.Classifier = NewLinearClassifier(file.Classes, file.Coef, file.Intercepts)
	}

	return model, nil
}

// validate checks the internal consistency of the exported weights.
func validate(file *modelFile) error {
	if len(file.Vocabulary) == 0 {
		return fmt.Errorf("empty vocabulary")
	}
	if len(file.Idf) == 0 {
		return fmt.Errorf("missing idf weights")
	}

	for term, idx := range file.Vocabulary {
		if idx < 0 || idx >= len(file.Idf) {
			return fmt.Errorf("term %q maps to index %d, outside idf table of length %d", term, idx, len(file.Idf))
		}
	}

	if len(file.Classes) > 0 {
		wantRows := len(file.Classes)
		if wantRows == 2 {
			wantRows = 1 // binary models export a single coefficient row
		}
		if len(file.Coef) != wantRows {
			return fmt.Errorf("classifier has %d coefficient rows, want %d for %d classes",
				len(file.Coef), wantRows, len(file.Classes))
		}
		for i, row := range file.Coef {
			if len(row) != len(file.Idf) {
				return fmt.Errorf("coefficient row %d has length %d, want %d", i, len(row), len(file.Idf))
			}
		}
	}

	return nil
}
