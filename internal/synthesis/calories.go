package synthesis

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

const (
	minWorkoutCalories = 50
	maxWorkoutCalories = 2000

	defaultAge    = 25
	defaultWeight = 70.0
	defaultHeight = 170.0
)

// activityMETs maps activity keywords to MET values (Compendium of
// Physical Activities figures, rounded).
var activityMETs = map[string]float64{
	"course":          9.8,
	"course à pied":   9.8,
	"running":         9.8,
	"jogging":         7.0,
	"footing":         7.0,
	"sprint":          12.0,
	"marche":          3.5,
	"marche rapide":   4.3,
	"randonnée":       6.0,
	"vélo":            7.5,
	"cyclisme":        7.5,
	"vtt":             8.5,
	"spinning":        8.5,
	"natation":        8.0,
	"nage":            8.0,
	"aquagym":         5.5,
	"rameur":          7.0,
	"aviron":          7.0,
	"elliptique":      5.0,
	"escalade":        8.0,
	"corde à sauter":  11.0,
	"hiit":            10.0,
	"tabata":          10.0,
	"crossfit":        9.0,
	"circuit":         8.0,
	"burpees":         8.0,
	"musculation":     5.0,
	"renforcement":    5.0,
	"haltères":        5.0,
	"squat":           5.0,
	"pompes":          8.0,
	"tractions":       8.0,
	"gainage":         3.8,
	"abdos":           3.8,
	"étirements":      2.3,
	"stretching":      2.3,
	"yoga":            2.5,
	"pilates":         3.0,
	"danse":           5.5,
	"zumba":           6.5,
	"boxe":            9.0,
	"kickboxing":      9.0,
	"mma":             10.0,
	"judo":            10.0,
	"karaté":          10.0,
	"football":        8.0,
	"basketball":      7.5,
	"basket":          7.5,
	"tennis":          7.3,
	"badminton":       5.5,
	"volley":          4.0,
	"rugby":           8.3,
	"handball":        8.0,
	"ski":             7.0,
	"patinage":        7.0,
	"golf":            4.3,
	"équitation":      5.5,
}

var (
	highIntensityKeywords = []string{"hiit", "tabata", "intense", "maximal", "explosif", "sprint", "burpees", "crossfit"}
	lowIntensityKeywords  = []string{"léger", "doucement", "récupération", "stretching", "yoga", "marche"}
)

var intensityDefaultMETs = map[string]float64{
	"low":      3.0,
	"moderate": 5.0,
	"high":     8.0,
}

var fallbackCalculation = model.WorkoutCalorieCalculation{
	Calories:     300,
	DurationMin:  45,
	Intensity:    "moderate",
	ActivityType: "unknown",
}

// CalculateWorkoutCalories estimates the calories burned during the
// workout described by content, for the given profile snapshot. Total:
// absent or blank inputs produce the fixed fallback calculation.
func CalculateWorkoutCalories(content string, profile *model.Profile) model.WorkoutCalorieCalculation {
	if profile == nil || strings.TrimSpace(content) == "" {
		return fallbackCalculation
	}

	lower := strings.ToLower(content)
	duration := detectDurationMinutes(lower)
	intensity := detectIntensity(lower)
	activities := detectActivities(lower)

	age, weight, height := profile.Age, profile.WeightKg, profile.HeightCm
	if age <= 0 {
		age = defaultAge
	}
	if weight <= 0 {
		weight = defaultWeight
	}
	if height <= 0 {
		height = defaultHeight
	}

	// Mifflin-St Jeor; BMR/24 is the subject's resting kcal per hour,
	// i.e. their personal 1-MET cost.
	bmr := 10*weight + 6.25*height - 5*float64(age) + 5
	if isFemale(profile.Gender) {
		bmr = 10*weight + 6.25*height - 5*float64(age) - 161
	}

	met := intensityDefaultMETs[intensity]
	activityType := "unknown"
	if len(activities) > 0 {
		var sum float64
		for _, a := range activities {
			sum += activityMETs[a]
		}
		met = sum / float64(len(activities))
		activityType = activities[0]
	}

	switch intensity {
	case "low":
		met *= 0.8
	case "high":
		met *= 1.3
	}
	// The two age adjustments compound past 65. Observed behavior,
	// kept as is.
	if age > 50 {
		met *= 0.95
	}
	if age > 65 {
		met *= 0.9
	}
	level := strings.ToLower(profile.FitnessLevel)
	if strings.Contains(level, "débutant") {
		met *= 0.9
	} else if strings.Contains(level, "avancé") {
		met *= 1.1
	}

	calories := int(math.Round(met * bmr / 24 * float64(duration) / 60))
	if calories < minWorkoutCalories {
		calories = minWorkoutCalories
	}
	if calories > maxWorkoutCalories {
		calories = maxWorkoutCalories
	}

	return model.WorkoutCalorieCalculation{
		Calories:     calories,
		DurationMin:  duration,
		Intensity:    intensity,
		ActivityType: activityType,
	}
}

func detectDurationMinutes(lower string) int {
	m := durationRe.FindStringSubmatch(lower)
	if m == nil {
		return 45
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 45
	}
	if strings.HasPrefix(m[2], "h") {
		n *= 60
	}
	return n
}

func detectIntensity(lower string) string {
	for _, kw := range highIntensityKeywords {
		if strings.Contains(lower, kw) {
			return "high"
		}
	}
	for _, kw := range lowIntensityKeywords {
		if strings.Contains(lower, kw) {
			return "low"
		}
	}
	return "moderate"
}

// detectActivities returns matched activity keywords, longest first so
// "course à pied" beats "course" and the first entry is the most
// specific one.
func detectActivities(lower string) []string {
	matched := make([]string, 0)
	for kw := range activityMETs {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if len(matched[i]) != len(matched[j]) {
			return len(matched[i]) > len(matched[j])
		}
		return matched[i] < matched[j]
	})
	return matched
}

func isFemale(gender string) bool {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "female", "femme", "f", "woman":
		return true
	}
	return false
}
