package model

import "time"

// Shopping list categories, in classification priority order.
const (
	CategoryFruits     = "Fruits"
	CategoryVegetables = "Légumes"
	CategoryProteins   = "Protéines"
	CategoryGrains     = "Céréales"
	CategoryGrocery    = "Épicerie"
	CategoryDairy      = "Laitages"
	CategoryOther      = "Autres"
)

// MealIngredient is one quantity-normalized ingredient pulled out of a
// free-text meal description. QuantityG is always expressed in grams.
type MealIngredient struct {
	Name      string  `json:"name"`
	QuantityG float64 `json:"quantity_g"`
}

// MealNutrition is an estimated macro breakdown for one meal, in kcal
// and integer grams.
type MealNutrition struct {
	Calories int `json:"calories"`
	Carbs    int `json:"carbs"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
}

// ShoppingIngredient is a shopping-list entry as extracted from text,
// before it is persisted and given an id.
type ShoppingIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
	Category string `json:"category"`
	Checked  bool   `json:"checked"`
}

type WorkoutExercise struct {
	Name         string `json:"name"`
	Sets         string `json:"sets"`
	Reps         string `json:"reps"`
	Rest         string `json:"rest"`
	MuscleGroups string `json:"muscle_groups,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type SynthesizedWorkout struct {
	Title     string            `json:"title"`
	Duration  string            `json:"duration"`
	Exercises []WorkoutExercise `json:"exercises"`
	Warmup    string            `json:"warmup,omitempty"`
	Cooldown  string            `json:"cooldown,omitempty"`
	Tips      []string          `json:"tips"`
}

type RecipeIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
}

// RecipeNutrition keeps the values as extracted strings: fields are
// only present when the source text actually mentioned them.
type RecipeNutrition struct {
	Calories string `json:"calories,omitempty"`
	Protein  string `json:"protein,omitempty"`
	Carbs    string `json:"carbs,omitempty"`
	Fat      string `json:"fat,omitempty"`
}

type SynthesizedMeal struct {
	Title        string             `json:"title"`
	Servings     string             `json:"servings"`
	PrepTime     string             `json:"prep_time"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Nutrition    *RecipeNutrition   `json:"nutrition,omitempty"`
}

type WorkoutCalorieCalculation struct {
	Calories     int    `json:"calories"`
	DurationMin  int    `json:"duration_min"`
	Intensity    string `json:"intensity"`
	ActivityType string `json:"activity_type"`
}

// Profile is a read-only snapshot of the user's physiology and
// preferences. The synthesis core never mutates it.
type Profile struct {
	Age             int     `json:"age"`
	WeightKg        float64 `json:"weight_kg"`
	HeightCm        float64 `json:"height_cm"`
	Gender          string  `json:"gender"`
	FitnessLevel    string  `json:"fitness_level"`
	Goal            string  `json:"goal,omitempty"`
	Diet            string  `json:"diet,omitempty"`
	SessionsPerWeek int     `json:"sessions_per_week,omitempty"`
}

// ShoppingItem is a persisted shopping-list row.
type ShoppingItem struct {
	ID        int64
	Name      string
	Quantity  string
	Unit      string
	Category  string
	Checked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MealLog is one persisted nutrition estimate, feeding the daily
// calories-in accumulator.
type MealLog struct {
	ID       int64
	MealType string
	Calories int
	Carbs    int
	Protein  int
	Fat      int
	LoggedAt time.Time
}

// WorkoutLog is one persisted calorie-burn calculation, feeding the
// daily calories-out accumulator.
type WorkoutLog struct {
	ID           int64
	ActivityType string
	Intensity    string
	Calories     int
	DurationMin  int
	LoggedAt     time.Time
}

type DailySummary struct {
	Date        string
	CaloriesIn  int
	CaloriesOut int
	Carbs       int
	Protein     int
	Fat         int
	Meals       int
	Workouts    int
}

// Plan is a saved synthesis result (workout or meal), stored with both
// its source text and its structured JSON payload.
type Plan struct {
	ID        int64
	Kind      string
	Title     string
	Source    string
	Payload   string
	CreatedAt time.Time
}
