package synthesis_test

import (
	"testing"

	"github.com/Matt777777777/AthletIQ-sub000/internal/synthesis"
)

func TestExtractMealIngredientsMergesDuplicates(t *testing.T) {
	t.Parallel()
	got := synthesis.ExtractMealIngredients("- 100g de riz\n- 50g de riz")
	if len(got) != 1 {
		t.Fatalf("expected 1 merged ingredient, got %d: %+v", len(got), got)
	}
	if got[0].Name != "riz" || got[0].QuantityG != 150 {
		t.Fatalf("expected riz/150g, got %+v", got[0])
	}
}

func TestExtractMealIngredientsUnits(t *testing.T) {
	t.Parallel()
	got := synthesis.ExtractMealIngredients("- 1kg de pommes de terre\n- 2 cuillères de miel\n- 200ml de lait")
	if len(got) != 3 {
		t.Fatalf("expected 3 ingredients, got %d: %+v", len(got), got)
	}
	byName := map[string]float64{}
	for _, ing := range got {
		byName[ing.Name] = ing.QuantityG
	}
	if byName["pommes de terre"] != 1000 {
		t.Fatalf("kg not converted to grams: %+v", byName)
	}
	if byName["miel"] != 30 {
		t.Fatalf("spoons not converted (expected 2x15g): %+v", byName)
	}
	if byName["lait"] != 200 {
		t.Fatalf("ml should pass through unconverted: %+v", byName)
	}
}

func TestExtractMealIngredientsIgnoresProseAndUnmatchedLines(t *testing.T) {
	t.Parallel()
	text := "Voici une idée de repas équilibré.\n- riz sans quantité\n- 150g de quinoa\nBon appétit !"
	got := synthesis.ExtractMealIngredients(text)
	if len(got) != 1 || got[0].Name != "quinoa" {
		t.Fatalf("expected only quinoa, got %+v", got)
	}
}

func TestExtractMealIngredientsEmptyInput(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"", "   \n\t\n", "no list items here"} {
		if got := synthesis.ExtractMealIngredients(text); len(got) != 0 {
			t.Fatalf("expected no ingredients for %q, got %+v", text, got)
		}
	}
}
