package synthesis

import "strings"

type muscleEntry struct {
	keyword string
	label   string
}

// Primary keyword dictionary, French and English synonyms mixed.
// Scanned in insertion order, first substring hit wins.
var muscleKeywords = []muscleEntry{
	{"développé couché", "Poitrine"},
	{"développé incliné", "Poitrine"},
	{"développé militaire", "Épaules"},
	{"développé épaules", "Épaules"},
	{"bench press", "Poitrine"},
	{"écarté", "Poitrine"},
	{"pec deck", "Poitrine"},
	{"pompe", "Poitrine/Triceps"},
	{"push-up", "Poitrine/Triceps"},
	{"push up", "Poitrine/Triceps"},
	{"pushup", "Poitrine/Triceps"},
	{"dips", "Triceps"},
	{"extension triceps", "Triceps"},
	{"barre au front", "Triceps"},
	{"kickback", "Triceps"},
	{"leg curl", "Ischio-jambiers"},
	{"leg extension", "Quadriceps"},
	{"curl marteau", "Biceps"},
	{"curl biceps", "Biceps"},
	{"curl", "Biceps"},
	{"traction", "Dos/Biceps"},
	{"pull-up", "Dos/Biceps"},
	{"pull up", "Dos/Biceps"},
	{"chin-up", "Dos/Biceps"},
	{"rowing", "Dos"},
	{"tirage", "Dos"},
	{"row", "Dos"},
	{"pull-over", "Dos"},
	{"soulevé de terre", "Dos/Jambes"},
	{"deadlift", "Dos/Jambes"},
	{"superman", "Dos"},
	{"élévation latérale", "Épaules"},
	{"élévations latérales", "Épaules"},
	{"lateral raise", "Épaules"},
	{"shoulder press", "Épaules"},
	{"arnold press", "Épaules"},
	{"face pull", "Épaules"},
	{"oiseau", "Épaules"},
	{"shrug", "Trapèzes"},
	{"squat", "Jambes/Fessiers"},
	{"fente", "Jambes/Fessiers"},
	{"lunge", "Jambes/Fessiers"},
	{"leg press", "Jambes"},
	{"presse à cuisses", "Jambes"},
	{"hip thrust", "Fessiers"},
	{"pont fessier", "Fessiers"},
	{"glute bridge", "Fessiers"},
	{"kickback fessier", "Fessiers"},
	{"mollet", "Mollets"},
	{"calf raise", "Mollets"},
	{"gainage", "Abdominaux"},
	{"planche", "Abdominaux"},
	{"plank", "Abdominaux"},
	{"crunch", "Abdominaux"},
	{"relevé de jambes", "Abdominaux"},
	{"russian twist", "Abdominaux"},
	{"mountain climber", "Abdominaux"},
	{"abdo", "Abdominaux"},
	{"burpee", "Full Body"},
	{"jumping jack", "Full Body"},
	{"thruster", "Full Body"},
	{"kettlebell swing", "Full Body"},
	{"corde à sauter", "Full Body"},
}

// Broader fallback groups used when nothing in the dictionary hits.
var muscleFallbacks = []struct {
	keywords []string
	label    string
}{
	{[]string{"pompe", "push", "bench", "pec", "poitrine"}, "Poitrine/Triceps"},
	{[]string{"squat", "fente", "lunge", "jambe", "leg", "cuisse"}, "Jambes/Fessiers"},
	{[]string{"traction", "pull", "row", "dos", "back"}, "Dos/Biceps"},
	{[]string{"épaule", "shoulder", "militaire"}, "Épaules"},
	{[]string{"biceps", "triceps", "bras", "arm"}, "Bras"},
	{[]string{"abdo", "gainage", "core", "ventre"}, "Abdominaux"},
}

// ClassifyMuscleGroups maps exercise text to a muscle-group label.
// Total: falls back to "Full Body" when nothing matches.
func ClassifyMuscleGroups(text string) string {
	lower := strings.ToLower(text)
	for _, e := range muscleKeywords {
		if strings.Contains(lower, e.keyword) {
			return e.label
		}
	}
	for _, group := range muscleFallbacks {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.label
			}
		}
	}
	return "Full Body"
}
