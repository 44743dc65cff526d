package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

func LogMeal(db *sql.DB, mealType string, n model.MealNutrition, at time.Time) (int64, error) {
	mealType = strings.ToLower(strings.TrimSpace(mealType))
	if mealType == "" {
		mealType = "lunch"
	}
	if n.Calories < 0 || n.Carbs < 0 || n.Protein < 0 || n.Fat < 0 {
		return 0, fmt.Errorf("nutrition values must be >= 0")
	}
	if at.IsZero() {
		at = time.Now()
	}
	res, err := db.Exec(`
INSERT INTO meal_logs(meal_type, calories, carbs, protein, fat, logged_at)
VALUES(?, ?, ?, ?, ?, ?)
`, mealType, n.Calories, n.Carbs, n.Protein, n.Fat, at.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("log meal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve meal log id: %w", err)
	}
	return id, nil
}

func LogWorkout(db *sql.DB, calc model.WorkoutCalorieCalculation, at time.Time) (int64, error) {
	if calc.Calories < 0 || calc.DurationMin < 0 {
		return 0, fmt.Errorf("workout values must be >= 0")
	}
	if at.IsZero() {
		at = time.Now()
	}
	res, err := db.Exec(`
INSERT INTO workout_logs(activity_type, intensity, calories, duration_min, logged_at)
VALUES(?, ?, ?, ?, ?)
`, calc.ActivityType, calc.Intensity, calc.Calories, calc.DurationMin, at.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("log workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve workout log id: %w", err)
	}
	return id, nil
}

// DailyJournal aggregates the meal and workout logs of one calendar day.
func DailyJournal(db *sql.DB, date time.Time) (*model.DailySummary, error) {
	start, end := dayBounds(date)
	summary := &model.DailySummary{Date: start.Format("2006-01-02")}

	err := db.QueryRow(`
SELECT IFNULL(SUM(calories), 0), IFNULL(SUM(carbs), 0), IFNULL(SUM(protein), 0), IFNULL(SUM(fat), 0), COUNT(*)
FROM meal_logs WHERE logged_at >= ? AND logged_at < ?
`, start.Format(time.RFC3339), end.Format(time.RFC3339)).
		Scan(&summary.CaloriesIn, &summary.Carbs, &summary.Protein, &summary.Fat, &summary.Meals)
	if err != nil {
		return nil, fmt.Errorf("aggregate meal logs: %w", err)
	}

	err = db.QueryRow(`
SELECT IFNULL(SUM(calories), 0), COUNT(*)
FROM workout_logs WHERE logged_at >= ? AND logged_at < ?
`, start.Format(time.RFC3339), end.Format(time.RFC3339)).
		Scan(&summary.CaloriesOut, &summary.Workouts)
	if err != nil {
		return nil, fmt.Errorf("aggregate workout logs: %w", err)
	}
	return summary, nil
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}
