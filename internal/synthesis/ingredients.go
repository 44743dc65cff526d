package synthesis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

// Meal-line patterns, tried in order. The spoon pattern runs before
// the bare one: a bare "2 cuillères de miel" match would otherwise
// shadow the x15 spoon-to-gram conversion.
var (
	mealGramRe  = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*(g|kg|ml)\s+(?:de\s+|d')?(.+)$`)
	mealSpoonRe = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*cuillères?(?:\s+à\s+(?:soupe|café))?\s+(?:de\s+|d')?(.+)$`)
	mealBareRe  = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s+(.+)$`)
)

const gramsPerSpoon = 15 // flat approximation, soup and coffee spoons alike

// ExtractMealIngredients scans dash-prefixed lines of a meal
// description and returns gram-normalized ingredients. Duplicate
// names are merged by summing quantities. Lines matching no pattern
// contribute nothing.
func ExtractMealIngredients(text string) []model.MealIngredient {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(line, "-•* \t"))
		name, grams, ok := parseMealLine(line)
		if !ok {
			continue
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += grams
	}

	out := make([]model.MealIngredient, 0, len(order))
	for _, name := range order {
		out = append(out, model.MealIngredient{Name: name, QuantityG: totals[name]})
	}
	return out
}

func parseMealLine(line string) (string, float64, bool) {
	if m := mealGramRe.FindStringSubmatch(line); m != nil {
		qty := parseQuantity(m[1])
		if strings.EqualFold(m[2], "kg") {
			qty *= 1000
		}
		return finishMealName(m[3], qty)
	}
	if m := mealSpoonRe.FindStringSubmatch(line); m != nil {
		return finishMealName(m[2], parseQuantity(m[1])*gramsPerSpoon)
	}
	if m := mealBareRe.FindStringSubmatch(line); m != nil {
		return finishMealName(m[2], parseQuantity(m[1]))
	}
	return "", 0, false
}

func finishMealName(raw string, grams float64) (string, float64, bool) {
	name := cleanIngredientName(raw)
	if name == "" || grams <= 0 {
		return "", 0, false
	}
	return name, grams, true
}

func cleanIngredientName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.TrimPrefix(name, "d'")
	name = strings.TrimPrefix(name, "de ")
	name = strings.Trim(name, " .,;:!()")
	return name
}

func parseQuantity(raw string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}
