package synthesis_test

import (
	"strings"
	"testing"

	"github.com/Matt777777777/AthletIQ-sub000/internal/synthesis"
)

func TestSynthesizeMealStructuredRecipe(t *testing.T) {
	t.Parallel()
	text := `Recette : Poulet au riz
Pour 4 personnes
Préparation : 25 min

Ingrédients :
- 200 g de poulet
- 150 g de riz
- 1 cuillère à soupe d'huile d'olive

1. Couper le poulet en morceaux
2. Cuire le riz dans l'eau bouillante
3. Faire revenir le poulet dans l'huile

Environ 450 kcal par portion, 35 g de protéines`

	m := synthesis.SynthesizeMeal(text)

	if m.Title != "Poulet au riz" {
		t.Fatalf("unexpected title %q", m.Title)
	}
	if m.Servings != "4 portions" {
		t.Fatalf("unexpected servings %q", m.Servings)
	}
	if m.PrepTime != "25 min" {
		t.Fatalf("unexpected prep time %q", m.PrepTime)
	}

	if len(m.Ingredients) != 3 {
		t.Fatalf("expected 3 ingredients, got %+v", m.Ingredients)
	}
	if m.Ingredients[0].Name != "poulet" || m.Ingredients[0].Quantity != "200" || m.Ingredients[0].Unit != "g" {
		t.Fatalf("unexpected first ingredient %+v", m.Ingredients[0])
	}

	if len(m.Instructions) != 3 {
		t.Fatalf("expected 3 instructions, got %+v", m.Instructions)
	}
	if m.Instructions[0] != "Couper le poulet en morceaux" {
		t.Fatalf("unexpected first instruction %q", m.Instructions[0])
	}

	if m.Nutrition == nil {
		t.Fatalf("nutrition should be present")
	}
	if m.Nutrition.Calories != "450" || m.Nutrition.Protein != "35" {
		t.Fatalf("unexpected nutrition %+v", m.Nutrition)
	}
	if m.Nutrition.Carbs != "" || m.Nutrition.Fat != "" {
		t.Fatalf("absent macros must stay empty, got %+v", m.Nutrition)
	}
}

func TestSynthesizeMealDefaults(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"", "   \n ", "rien d'exploitable"} {
		m := synthesis.SynthesizeMeal(text)
		if m.Title != "Recette" {
			t.Fatalf("expected default title for %q, got %q", text, m.Title)
		}
		if m.Servings != "2 portions" || m.PrepTime != "20 min" {
			t.Fatalf("expected default servings/prep, got %+v", m)
		}
		if len(m.Ingredients) != 6 {
			t.Fatalf("expected the 6 generic ingredients, got %+v", m.Ingredients)
		}
		if len(m.Instructions) != 4 {
			t.Fatalf("expected the 4 generic steps, got %+v", m.Instructions)
		}
		if m.Nutrition != nil {
			t.Fatalf("nutrition must be omitted when nothing was found, got %+v", m.Nutrition)
		}
	}
}

func TestSynthesizeMealSentenceScanInstructions(t *testing.T) {
	t.Parallel()
	text := "Mélanger la farine avec les œufs. Verser la pâte dans un moule chaud. Rien à signaler."
	m := synthesis.SynthesizeMeal(text)
	if len(m.Instructions) != 2 {
		t.Fatalf("expected 2 verb-matched sentences, got %+v", m.Instructions)
	}
	if !strings.HasPrefix(m.Instructions[0], "Mélanger") {
		t.Fatalf("unexpected instruction order: %+v", m.Instructions)
	}
}

func TestSynthesizeMealBounds(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	b.WriteString("Ingrédients :\n")
	for i := 0; i < 26; i++ {
		b.WriteString("- 100 g de produit ")
		b.WriteRune(rune('a' + i))
		b.WriteString("\n")
	}
	for i := 0; i < 26; i++ {
		b.WriteString("1. Mélanger encore une fois le produit ")
		b.WriteRune(rune('a' + i))
		b.WriteString("\n")
	}
	m := synthesis.SynthesizeMeal(b.String())
	if len(m.Ingredients) > 15 {
		t.Fatalf("ingredient cap exceeded: %d", len(m.Ingredients))
	}
	if len(m.Instructions) > 10 {
		t.Fatalf("instruction cap exceeded: %d", len(m.Instructions))
	}
}

func TestSynthesizeMealNeverPanics(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"(((( \\ .* $", strings.Repeat("x", 20000), "\x00"} {
		m := synthesis.SynthesizeMeal(text)
		if m.Title == "" || len(m.Ingredients) == 0 || len(m.Instructions) == 0 {
			t.Fatalf("malformed meal for adversarial input: %+v", m)
		}
	}
}
