package synthesis

import (
	"math"
	"strings"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

// Baseline estimates used when nothing in the text matches the
// nutrition table. Keyed by meal type.
var mealTypeDefaults = map[string]model.MealNutrition{
	"breakfast": {Calories: 400, Carbs: 50, Protein: 20, Fat: 15},
	"lunch":     {Calories: 600, Carbs: 65, Protein: 35, Fat: 20},
	"snack":     {Calories: 200, Carbs: 25, Protein: 10, Fat: 8},
	"dinner":    {Calories: 550, Carbs: 50, Protein: 35, Fat: 18},
}

// EstimateMealNutrition extracts ingredients from a meal description
// and sums their table macros scaled per 100 g. Ingredients absent
// from the table contribute zero. A zero calorie total after the whole
// pass discards the accumulation and substitutes the meal-type
// baseline.
func EstimateMealNutrition(content, mealType string) model.MealNutrition {
	var calories, carbs, protein, fat float64
	for _, ing := range ExtractMealIngredients(content) {
		facts, ok := nutritionPer100g[ing.Name]
		if !ok {
			continue
		}
		factor := ing.QuantityG / 100
		calories += facts.calories * factor
		carbs += facts.carbs * factor
		protein += facts.protein * factor
		fat += facts.fat * factor
	}

	if calories == 0 {
		if d, ok := mealTypeDefaults[strings.ToLower(strings.TrimSpace(mealType))]; ok {
			return d
		}
		return mealTypeDefaults["lunch"]
	}

	return model.MealNutrition{
		Calories: roundNonNegative(calories),
		Carbs:    roundNonNegative(carbs),
		Protein:  roundNonNegative(protein),
		Fat:      roundNonNegative(fat),
	}
}

func roundNonNegative(v float64) int {
	if v < 0 {
		return 0
	}
	return int(math.Round(v))
}
