package usecase

import (
	"errors"
	"testing"

	"github.com/skinlens/backend/internal/domain"
)

func oilyRoutineCatalog() *fakeCatalog {
	return &fakeCatalog{products: []domain.Product{
		product("cleanser", "CeraVe", "Foaming Cleanser", "removes oil", domain.SkinTypeOily),
		product("cleanser", "La Roche-Posay", "Effaclar Gel", "cleans pores", domain.SkinTypeOily),
		product("cleanser", "Neutrogena", "Oil-Free Wash", "daily wash", domain.SkinTypeOily),
		product("toner", "Paula's Choice", "BHA Toner", "exfoliates pores", domain.SkinTypeOily),
		product("moisturizer", "Cetaphil", "Night Cream", "rich cream", domain.SkinTypeDry),
	}}
}

func TestRoutine_UnknownSkinType(t *testing.T) {
	svc := NewRoutineService(oilyRoutineCatalog())

	_, err := svc.Routine("InvalidType", 2)
	if !errors.Is(err, domain.ErrUnknownSkinType) {
		t.Errorf("error = %v, want ErrUnknownSkinType", err)
	}
}

func TestRoutine_NoProducts(t *testing.T) {
	// Sensitive is a known column but nothing is flagged for it.
	svc := NewRoutineService(oilyRoutineCatalog())

	_, err := svc.Routine("Sensitive", 2)
	if !errors.Is(err, domain.ErrNoProducts) {
		t.Errorf("error = %v, want ErrNoProducts", err)
	}
}

func TestRoutine_BuildsOrderedSteps(t *testing.T) {
	// 3 oily cleansers and 1 oily toner in the catalog. Expect two
	// cleansers (capped), one toner, and serum/moisturizer omitted.
	svc := NewRoutineService(oilyRoutineCatalog())

	routine, err := svc.Routine("oily", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if routine.SkinType != domain.SkinTypeOily {
		t.Errorf("SkinType = %q, want Oily", routine.SkinType)
	}
	if len(routine.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2: %v", len(routine.Steps), routine.Steps)
	}

	if routine.Steps[0].Step != "cleanser" {
		t.Errorf("Steps[0].Step = %q, want cleanser", routine.Steps[0].Step)
	}
	if len(routine.Steps[0].Products) != 2 {
		t.Errorf("len(cleanser products) = %d, want 2", len(routine.Steps[0].Products))
	}
	// Catalog order, no scoring.
	if routine.Steps[0].Products[0].Brand != "CeraVe" {
		t.Errorf("first cleanser brand = %q, want CeraVe", routine.Steps[0].Products[0].Brand)
	}

	if routine.Steps[1].Step != "toner" {
		t.Errorf("Steps[1].Step = %q, want toner", routine.Steps[1].Step)
	}
	if len(routine.Steps[1].Products) != 1 {
		t.Errorf("len(toner products) = %d, want 1", len(routine.Steps[1].Products))
	}
}

func TestRoutine_CapitalizesInput(t *testing.T) {
	svc := NewRoutineService(oilyRoutineCatalog())

	for _, input := range []string{"oily", "OILY", "Oily", "oIlY"} {
		t.Run(input, func(t *testing.T) {
			routine, err := svc.Routine(input, 2)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", input, err)
			}
			if routine.SkinType != domain.SkinTypeOily {
				t.Errorf("SkinType = %q, want Oily", routine.SkinType)
			}
		})
	}
}

func TestRoutine_CategorySubstringMatch(t *testing.T) {
	// Compound category values count for every step they contain.
	catalog := &fakeCatalog{products: []domain.Product{
		product("Cleanser/Toner", "Brand", "Two-in-One", "does both", domain.SkinTypeNormal),
	}}
	svc := NewRoutineService(catalog)

	routine, err := svc.Routine("normal", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routine.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2 (cleanser and toner)", len(routine.Steps))
	}
}

func TestRoutine_DefaultPerStep(t *testing.T) {
	svc := NewRoutineService(oilyRoutineCatalog())

	routine, err := svc.Routine("oily", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routine.Steps[0].Products) != 2 {
		t.Errorf("len(cleanser products) = %d, want default 2", len(routine.Steps[0].Products))
	}
}
