package usecase

import (
	"strings"

	"github.com/skinlens/backend/internal/domain"
)

// routineOrder is the fixed four-step routine. Steps match against the
// product category by case-insensitive substring, so compound category
// values like "cleanser/toner" count for both steps.
var routineOrder = [4]string{"cleanser", "toner", "serum", "moisturizer"}

// defaultPerStep is used when the caller passes a non-positive limit.
const defaultPerStep = 2

// RoutineService builds the canned four-step routine for a skin type.
type RoutineService struct {
	catalog domain.Catalog
}

// NewRoutineService creates a routine service over the given catalog.
func NewRoutineService(catalog domain.Catalog) *RoutineService {
	return &RoutineService{catalog: catalog}
}

// Routine returns up to perStep products per routine step for the given
// skin type, in catalog order with no scoring. The skin type is
// capitalized before lookup, so "oily" and "Oily" are equivalent.
// Unknown skin types fail with ErrUnknownSkinType; a known type with no
// flagged products fails with ErrNoProducts. Callers discriminate the
// two with errors.Is, not by inspecting an empty routine.
func (s *RoutineService) Routine(skinType string, perStep int) (*domain.Routine, error) {
	st := canonicalSkinType(skinType)
	if !s.catalog.HasSkinType(st) {
		return nil, domain.ErrUnknownSkinType
	}
	if perStep <= 0 {
		perStep = defaultPerStep
	}

	var matched []domain.Product
	for _, p := range s.catalog.Products() {
		if p.SuitsSkinType(st) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return nil, domain.ErrNoProducts
	}

	routine := &domain.Routine{SkinType: st}
	for _, step := range routineOrder {
		products := make([]domain.RoutineProduct, 0, perStep)
		for _, p := range matched {
			if !strings.Contains(strings.ToLower(p.Category), step) {
				continue
			}
			products = append(products, domain.RoutineProduct{
				Brand:    p.Brand,
				Category: p.Category,
			})
			if len(products) == perStep {
				break
			}
		}
		// Steps with no matches are omitted, not included as empty lists.
		if len(products) > 0 {
			routine.Steps = append(routine.Steps, domain.RoutineStep{
				Step:     step,
				Products: products,
			})
		}
	}

	return routine, nil
}

// canonicalSkinType capitalizes the first letter and lowercases the
// rest, matching the catalog's column naming.
func canonicalSkinType(s string) domain.SkinType {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return domain.SkinType(strings.ToUpper(s[:1]) + strings.ToLower(s[1:]))
}
