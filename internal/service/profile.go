package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

// SaveProfile upserts the single profile row. Zero values overwrite:
// callers merge with the stored profile first when doing partial sets.
func SaveProfile(db *sql.DB, p model.Profile) error {
	if p.Age < 0 {
		return fmt.Errorf("age must be >= 0")
	}
	if p.WeightKg < 0 {
		return fmt.Errorf("weight must be >= 0")
	}
	if p.HeightCm < 0 {
		return fmt.Errorf("height must be >= 0")
	}
	if p.SessionsPerWeek < 0 {
		return fmt.Errorf("sessions per week must be >= 0")
	}

	_, err := db.Exec(`
INSERT INTO profiles(id, age, weight_kg, height_cm, gender, fitness_level, goal, diet, sessions_per_week, updated_at)
VALUES(1, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
  age = excluded.age,
  weight_kg = excluded.weight_kg,
  height_cm = excluded.height_cm,
  gender = excluded.gender,
  fitness_level = excluded.fitness_level,
  goal = excluded.goal,
  diet = excluded.diet,
  sessions_per_week = excluded.sessions_per_week,
  updated_at = CURRENT_TIMESTAMP
`, p.Age, p.WeightKg, p.HeightCm,
		strings.ToLower(strings.TrimSpace(p.Gender)),
		strings.ToLower(strings.TrimSpace(p.FitnessLevel)),
		strings.TrimSpace(p.Goal), strings.TrimSpace(p.Diet), p.SessionsPerWeek)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile, or nil when none was saved yet.
func GetProfile(db *sql.DB) (*model.Profile, error) {
	var p model.Profile
	err := db.QueryRow(`
SELECT age, weight_kg, height_cm, gender, fitness_level, goal, diet, sessions_per_week
FROM profiles WHERE id = 1
`).Scan(&p.Age, &p.WeightKg, &p.HeightCm, &p.Gender, &p.FitnessLevel, &p.Goal, &p.Diet, &p.SessionsPerWeek)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &p, nil
}
