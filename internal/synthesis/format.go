package synthesis

import (
	"fmt"
	"strings"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

// FormatWorkout renders a synthesized workout as display text. Pure
// serialization: no heuristics, and no round-trip guarantee back
// through SynthesizeWorkout.
func FormatWorkout(w model.SynthesizedWorkout) string {
	var b strings.Builder

	fmt.Fprintf(&b, "💪 %s\n", w.Title)
	fmt.Fprintf(&b, "⏱️ Durée : %s\n", w.Duration)

	if w.Warmup != "" {
		fmt.Fprintf(&b, "\n🔥 Échauffement : %s\n", w.Warmup)
	}

	b.WriteString("\n🏋️ Exercices :\n")
	for i, ex := range w.Exercises {
		fmt.Fprintf(&b, "%d. %s — %sx%s, repos %s", i+1, ex.Name, ex.Sets, ex.Reps, ex.Rest)
		if ex.MuscleGroups != "" {
			fmt.Fprintf(&b, " (%s)", ex.MuscleGroups)
		}
		if ex.Notes != "" {
			fmt.Fprintf(&b, " — %s", ex.Notes)
		}
		b.WriteByte('\n')
	}

	if w.Cooldown != "" {
		fmt.Fprintf(&b, "\n🧘 Retour au calme : %s\n", w.Cooldown)
	}

	if len(w.Tips) > 0 {
		b.WriteString("\n💡 Conseils :\n")
		for _, tip := range w.Tips {
			fmt.Fprintf(&b, "- %s\n", tip)
		}
	}
	return b.String()
}

// FormatMeal renders a synthesized recipe as display text.
func FormatMeal(m model.SynthesizedMeal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🍽️ %s\n", m.Title)
	fmt.Fprintf(&b, "👥 %s\n", m.Servings)
	fmt.Fprintf(&b, "⏱️ Préparation : %s\n", m.PrepTime)

	b.WriteString("\n🛒 Ingrédients :\n")
	for _, ing := range m.Ingredients {
		if ing.Unit != "" {
			fmt.Fprintf(&b, "- %s %s de %s\n", ing.Quantity, ing.Unit, ing.Name)
		} else {
			fmt.Fprintf(&b, "- %s %s\n", ing.Quantity, ing.Name)
		}
	}

	b.WriteString("\n👨‍🍳 Préparation :\n")
	for i, step := range m.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	if m.Nutrition != nil {
		b.WriteString("\n📊 Nutrition (par portion) :\n")
		if m.Nutrition.Calories != "" {
			fmt.Fprintf(&b, "- Calories : %s kcal\n", m.Nutrition.Calories)
		}
		if m.Nutrition.Protein != "" {
			fmt.Fprintf(&b, "- Protéines : %s g\n", m.Nutrition.Protein)
		}
		if m.Nutrition.Carbs != "" {
			fmt.Fprintf(&b, "- Glucides : %s g\n", m.Nutrition.Carbs)
		}
		if m.Nutrition.Fat != "" {
			fmt.Fprintf(&b, "- Lipides : %s g\n", m.Nutrition.Fat)
		}
	}
	return b.String()
}
