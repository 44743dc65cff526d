package synthesis

import (
	"regexp"
	"strings"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

const (
	maxRecipeIngredients = 15
	maxInstructions      = 10
)

var (
	mealTitleRes = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^[ \t#*]*recette\s*:\s*(.+)$`),
		regexp.MustCompile(`(?im)^[ \t#*]*(?:titre|nom du plat)\s*:\s*(.+)$`),
		regexp.MustCompile(`(?m)^#+\s*(.+)$`),
	}
	servingsRe = regexp.MustCompile(`(?i)(\d+)\s*(?:portions?|personnes?)`)
	prepTimeRe = regexp.MustCompile(`(?i)(?:préparation|temps)\s*:?\s*(\d+)\s*min`)

	recipeUnit = `g|kg|ml|cl|l|cuillères?(?:\s+à\s+(?:soupe|café))?|c\.\s*à\s*[sc]\.?|tasses?|pincées?|gousses?|tranches?|sachets?|branches?`
)

// Recipe ingredient patterns, strongest first.
var recipeLineRes = []*regexp.Regexp{
	// - 200 g de poulet
	regexp.MustCompile(`(?im)^[ \t]*[-•*]\s*(\d+(?:[.,]\d+)?)\s*(` + recipeUnit + `)\s+(?:de\s+|d')?(.+)$`),
	// - 2 tomates
	regexp.MustCompile(`(?im)^[ \t]*[-•*]\s*(\d+(?:[.,]\d+)?)\s+([^\d].+)$`),
	// 200 g de poulet (no bullet)
	regexp.MustCompile(`(?im)^[ \t]*(\d+(?:[.,]\d+)?)\s*(` + recipeUnit + `)\s+(?:de\s+|d')?(.+)$`),
	// - poulet (200 g)
	regexp.MustCompile(`(?im)^[ \t]*[-•*]\s*(.+?)\s*[:(]\s*(\d+(?:[.,]\d+)?)\s*(` + recipeUnit + `)\s*\)?$`),
}

var (
	numberedStepRe    = regexp.MustCompile(`(?m)^[ \t]*\d+[.)]\s*(.+)$`)
	etapeStepRe       = regexp.MustCompile(`(?im)^[ \t]*étapes?\s*\d*\s*:\s*(.+)$`)
	instructionStepRe = regexp.MustCompile(`(?im)^[ \t]*instructions?\s*:\s*(.+)$`)

	sentenceSplitRe = regexp.MustCompile(`[.!\n]+`)

	actionVerbs = []string{"couper", "mélanger", "cuire", "ajouter", "verser", "chauffer", "mettre", "préparer", "faire"}
)

var (
	nutritionCaloriesRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*(?:kcal|calories)`),
		regexp.MustCompile(`(?i)calories\s*:?\s*(\d+)`),
	}
	nutritionProteinRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*g?\s*(?:de\s+)?protéines?`),
		regexp.MustCompile(`(?i)protéines?\s*:?\s*(\d+)`),
	}
	nutritionCarbsRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*g?\s*(?:de\s+)?glucides?`),
		regexp.MustCompile(`(?i)glucides?\s*:?\s*(\d+)`),
	}
	nutritionFatRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*g?\s*(?:de\s+)?lipides?`),
		regexp.MustCompile(`(?i)lipides?\s*:?\s*(\d+)`),
	}
)

var genericRecipeIngredients = []model.RecipeIngredient{
	{Name: "poulet", Quantity: "200", Unit: "g"},
	{Name: "riz", Quantity: "150", Unit: "g"},
	{Name: "légumes de saison", Quantity: "200", Unit: "g"},
	{Name: "huile d'olive", Quantity: "1", Unit: "cuillère"},
	{Name: "épices", Quantity: "1", Unit: "pincée"},
	{Name: "citron", Quantity: "1"},
}

var genericInstructions = []string{
	"Préparer et laver tous les ingrédients",
	"Cuire les éléments principaux à feu moyen",
	"Assembler le plat et assaisonner",
	"Servir chaud",
}

// SynthesizeMeal extracts a structured recipe from free text with the
// same never-fails contract as SynthesizeWorkout.
func SynthesizeMeal(text string) model.SynthesizedMeal {
	ingredients := tryInOrder(text, recipeIngredientMatchers()...)
	if len(ingredients) == 0 {
		ingredients = append([]model.RecipeIngredient(nil), genericRecipeIngredients...)
	}

	instructions := tryInOrder(text, extractListedInstructions, extractSentenceInstructions)
	if len(instructions) == 0 {
		instructions = append([]string(nil), genericInstructions...)
	}

	return model.SynthesizedMeal{
		Title:        detectMealTitle(text),
		Servings:     detectServings(text),
		PrepTime:     detectPrepTime(text),
		Ingredients:  truncate(ingredients, maxRecipeIngredients),
		Instructions: truncate(instructions, maxInstructions),
		Nutrition:    detectRecipeNutrition(text),
	}
}

func detectMealTitle(text string) string {
	for _, re := range mealTitleRes {
		if m := re.FindStringSubmatch(text); m != nil {
			title := strings.Trim(strings.TrimSpace(m[1]), "*# ")
			if len([]rune(title)) >= 3 {
				return title
			}
		}
	}
	return "Recette"
}

func detectServings(text string) string {
	if m := servingsRe.FindStringSubmatch(text); m != nil {
		return m[1] + " portions"
	}
	return "2 portions"
}

func detectPrepTime(text string) string {
	if m := prepTimeRe.FindStringSubmatch(text); m != nil {
		return m[1] + " min"
	}
	if m := durationRe.FindStringSubmatch(text); m != nil && !strings.HasPrefix(strings.ToLower(m[2]), "h") {
		return m[1] + " min"
	}
	return "20 min"
}

func recipeIngredientMatchers() []matcher[model.RecipeIngredient] {
	matchers := make([]matcher[model.RecipeIngredient], 0, len(recipeLineRes)+1)
	for i, re := range recipeLineRes {
		re := re
		swapped := i == 3 // name-first pattern captures in reverse order
		matchers = append(matchers, func(text string) []model.RecipeIngredient {
			return collectRecipeIngredients(re, text, swapped)
		})
	}
	matchers = append(matchers, extractBulletIngredients)
	return matchers
}

func collectRecipeIngredients(re *regexp.Regexp, text string, nameFirst bool) []model.RecipeIngredient {
	out := make([]model.RecipeIngredient, 0)
	seen := make(map[string]bool)
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		var quantity, unit, rawName string
		switch {
		case nameFirst:
			rawName, quantity, unit = m[1], m[2], m[3]
		case len(m) == 4:
			quantity, unit, rawName = m[1], m[2], m[3]
		default:
			quantity, rawName = m[1], m[2]
		}
		name := cleanShoppingName(rawName)
		if len([]rune(name)) < 2 || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, model.RecipeIngredient{
			Name:     name,
			Quantity: strings.ReplaceAll(quantity, ",", "."),
			Unit:     strings.ToLower(strings.TrimSpace(unit)),
		})
	}
	return out
}

// extractBulletIngredients is the line-scan rung: any bullet line with
// letters becomes an ingredient of quantity 1.
func extractBulletIngredients(text string) []model.RecipeIngredient {
	out := make([]model.RecipeIngredient, 0)
	seen := make(map[string]bool)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "•") {
			continue
		}
		name := cleanShoppingName(strings.TrimLeft(line, "-•* \t"))
		if len([]rune(name)) < 2 || len([]rune(name)) > 60 || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, model.RecipeIngredient{Name: name, Quantity: "1"})
	}
	return out
}

func extractListedInstructions(text string) []string {
	steps := make([]string, 0)
	seen := make(map[string]bool)
	for _, re := range []*regexp.Regexp{numberedStepRe, etapeStepRe, instructionStepRe} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			step := strings.TrimSpace(m[1])
			if len([]rune(step)) < 5 || seen[strings.ToLower(step)] {
				continue
			}
			seen[strings.ToLower(step)] = true
			steps = append(steps, step)
		}
		if len(steps) > 0 {
			return steps
		}
	}
	return steps
}

func extractSentenceInstructions(text string) []string {
	steps := make([]string, 0)
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len([]rune(sentence)) <= 10 {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				steps = append(steps, sentence)
				break
			}
		}
		if len(steps) >= maxInstructions {
			break
		}
	}
	return steps
}

// detectRecipeNutrition extracts each macro independently; the result
// is nil only when all four are absent.
func detectRecipeNutrition(text string) *model.RecipeNutrition {
	n := model.RecipeNutrition{
		Calories: firstNumber(text, nutritionCaloriesRes),
		Protein:  firstNumber(text, nutritionProteinRes),
		Carbs:    firstNumber(text, nutritionCarbsRes),
		Fat:      firstNumber(text, nutritionFatRes),
	}
	if n.Calories == "" && n.Protein == "" && n.Carbs == "" && n.Fat == "" {
		return nil
	}
	return &n
}

func firstNumber(text string, res []*regexp.Regexp) string {
	for _, re := range res {
		if m := re.FindStringSubmatch(text); m != nil {
			for _, g := range m[1:] {
				if g != "" {
					return g
				}
			}
		}
	}
	return ""
}
