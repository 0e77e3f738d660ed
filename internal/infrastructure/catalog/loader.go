// Package catalog loads the product catalog from a CSV file into an
// immutable in-memory store. Loading happens once at startup; afterwards
// the store is read-only and safe to share across requests.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skinlens/backend/internal/domain"
)

// Required catalog columns besides the per-skin-type flag columns.
const (
	columnCategory = "category"
	columnBrand    = "brand"
	columnName     = "name"
	columnEffect   = "effect_description"
)

// Store holds the loaded catalog. It is immutable after Load returns.
type Store struct {
	products  []domain.Product
	skinTypes map[domain.SkinType]bool
}

// Products returns all catalog rows in file order. Callers must treat
// the slice as read-only.
func (s *Store) Products() []domain.Product {
	return s.products
}

// HasSkinType reports whether the label was a column in the source file.
func (s *Store) HasSkinType(st domain.SkinType) bool {
	return s.skinTypes[st]
}

// Size returns the number of catalog rows.
func (s *Store) Size() int {
	return len(s.products)
}

// Load reads the catalog CSV at path. A missing file, missing required
// column, or empty catalog is a startup failure.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrCatalogUnavailable, path, err)
	}
	defer f.Close()

	store, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCatalogUnavailable, path, err)
	}
	return store, nil
}

// Read parses catalog CSV data from r. Split out from Load so tests can
// feed in-memory data.
func Read(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{columnCategory, columnBrand, columnName, columnEffect} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	// Skin-type columns are named exactly by the capitalized label.
	// Only the labels actually present become filterable.
	skinTypeCols := make(map[domain.SkinType]int)
	for _, st := range domain.SkinTypes {
		if idx, ok := columns[string(st)]; ok {
			skinTypeCols[st] = idx
		}
	}
	if len(skinTypeCols) == 0 {
		return nil, fmt.Errorf("no skin-type columns found")
	}

	var products []domain.Product
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %v", len(products)+2, err)
		}

		products = append(products, parseRow(record, columns, skinTypeCols))
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("catalog has no rows")
	}

	skinTypes := make(map[domain.SkinType]bool, len(skinTypeCols))
	for st := range skinTypeCols {
		skinTypes[st] = true
	}

	return &Store{products: products, skinTypes: skinTypes}, nil
}

// parseRow converts one CSV record into a Product. Null-ish effect text
// is treated as empty so matching and scoring stay well-defined.
func parseRow(record []string, columns map[string]int, skinTypeCols map[domain.SkinType]int) domain.Product {
	p := domain.Product{
		Category:          field(record, columns[columnCategory]),
		Brand:             field(record, columns[columnBrand]),
		Name:              field(record, columns[columnName]),
		EffectDescription: normalizeNull(field(record, columns[columnEffect])),
		SkinTypeFlags:     make(map[domain.SkinType]bool, len(skinTypeCols)),
	}

	for st, idx := range skinTypeCols {
		p.SkinTypeFlags[st] = parseFlag(field(record, idx))
	}

	// Cached once here; scoring never recomputes it per query.
	p.CombinedText = strings.TrimSpace(p.EffectDescription + " " + p.Name)

	return p
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// normalizeNull maps pandas-style null markers to the empty string.
func normalizeNull(s string) string {
	switch strings.ToLower(s) {
	case "nan", "null", "none":
		return ""
	}
	return s
}

// parseFlag accepts the 0/1, 1.0, and true/false encodings seen in
// exported catalog files.
func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "1", "1.0", "true", "yes":
		return true
	}
	return false
}
