package synthesis_test

import (
	"testing"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
	"github.com/Matt777777777/AthletIQ-sub000/internal/synthesis"
)

func TestEstimateMealNutritionFallsBackToBreakfastDefault(t *testing.T) {
	t.Parallel()
	got := synthesis.EstimateMealNutrition("texte sans aucun ingrédient reconnu", "breakfast")
	want := model.MealNutrition{Calories: 400, Carbs: 50, Protein: 20, Fat: 15}
	if got != want {
		t.Fatalf("expected breakfast default %+v, got %+v", want, got)
	}
}

func TestEstimateMealNutritionSumsTableEntries(t *testing.T) {
	t.Parallel()
	// 150 g of rice at 130 kcal / 28 carbs / 2.7 protein / 0.3 fat per 100 g.
	got := synthesis.EstimateMealNutrition("- 100g de riz\n- 50g de riz", "lunch")
	if got.Calories != 195 {
		t.Fatalf("expected 195 kcal for 150g rice, got %d", got.Calories)
	}
	if got.Carbs != 42 {
		t.Fatalf("expected 42g carbs, got %d", got.Carbs)
	}
	if got.Protein != 4 {
		t.Fatalf("expected 4g protein (rounded from 4.05), got %d", got.Protein)
	}
	if got.Fat != 0 {
		t.Fatalf("expected 0g fat (rounded from 0.45), got %d", got.Fat)
	}
}

func TestEstimateMealNutritionSkipsUnknownIngredients(t *testing.T) {
	t.Parallel()
	// The unknown ingredient contributes zero; the known one still counts.
	got := synthesis.EstimateMealNutrition("- 100g de riz\n- 100g de cristaux de wakamoto", "dinner")
	if got.Calories != 130 {
		t.Fatalf("expected 130 kcal from rice alone, got %d", got.Calories)
	}
}

func TestEstimateMealNutritionMealTypeDefaults(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"breakfast": 400,
		"lunch":     600,
		"snack":     200,
		"dinner":    550,
	}
	for mealType, calories := range cases {
		got := synthesis.EstimateMealNutrition("", mealType)
		if got.Calories != calories {
			t.Fatalf("meal type %s: expected %d kcal default, got %d", mealType, calories, got.Calories)
		}
	}
}

func TestEstimateMealNutritionNeverNegative(t *testing.T) {
	t.Parallel()
	got := synthesis.EstimateMealNutrition("- 1g de persil", "snack")
	if got.Calories < 0 || got.Carbs < 0 || got.Protein < 0 || got.Fat < 0 {
		t.Fatalf("negative macro in %+v", got)
	}
}
