package service_test

import (
	"testing"
	"time"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
)

func TestDailyJournalAggregates(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	day := time.Date(2026, 3, 10, 12, 30, 0, 0, time.Local)

	if _, err := service.LogMeal(db, "breakfast", model.MealNutrition{Calories: 400, Carbs: 50, Protein: 20, Fat: 15}, day); err != nil {
		t.Fatalf("log breakfast: %v", err)
	}
	if _, err := service.LogMeal(db, "lunch", model.MealNutrition{Calories: 600, Carbs: 65, Protein: 35, Fat: 20}, day.Add(2*time.Hour)); err != nil {
		t.Fatalf("log lunch: %v", err)
	}
	if _, err := service.LogWorkout(db, model.WorkoutCalorieCalculation{Calories: 350, DurationMin: 45, Intensity: "moderate", ActivityType: "course à pied"}, day.Add(6*time.Hour)); err != nil {
		t.Fatalf("log workout: %v", err)
	}
	// Next day entries must not leak into the summary.
	if _, err := service.LogMeal(db, "dinner", model.MealNutrition{Calories: 550, Carbs: 50, Protein: 35, Fat: 18}, day.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("log next-day dinner: %v", err)
	}

	got, err := service.DailyJournal(db, day)
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	want := model.DailySummary{
		Date: "2026-03-10", CaloriesIn: 1000, CaloriesOut: 350,
		Carbs: 115, Protein: 55, Fat: 35, Meals: 2, Workouts: 1,
	}
	if *got != want {
		t.Fatalf("expected %+v, got %+v", want, *got)
	}
}

func TestDailyJournalEmptyDay(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	got, err := service.DailyJournal(db, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	if got.Meals != 0 || got.Workouts != 0 || got.CaloriesIn != 0 || got.CaloriesOut != 0 {
		t.Fatalf("expected empty summary, got %+v", got)
	}
}

func TestLogMealDefaultsAndValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	if _, err := service.LogMeal(db, "", model.MealNutrition{Calories: 200}, time.Time{}); err != nil {
		t.Fatalf("log with defaults: %v", err)
	}
	if _, err := service.LogMeal(db, "lunch", model.MealNutrition{Calories: -1}, time.Now()); err == nil {
		t.Fatal("expected error for negative calories")
	}
	if _, err := service.LogWorkout(db, model.WorkoutCalorieCalculation{Calories: -5}, time.Now()); err == nil {
		t.Fatal("expected error for negative workout calories")
	}
}
