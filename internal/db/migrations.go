package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS shopping_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  name_norm TEXT NOT NULL,
  quantity TEXT NOT NULL DEFAULT '1',
  unit TEXT,
  category TEXT NOT NULL DEFAULT 'Autres',
  checked INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_shopping_items_name_norm ON shopping_items(name_norm);
CREATE INDEX IF NOT EXISTS idx_shopping_items_category ON shopping_items(category);
`,
	},
	{
		version: 2,
		name:    "profile",
		sql: `
CREATE TABLE IF NOT EXISTS profiles (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  age INTEGER NOT NULL DEFAULT 0 CHECK(age >= 0),
  weight_kg REAL NOT NULL DEFAULT 0 CHECK(weight_kg >= 0),
  height_cm REAL NOT NULL DEFAULT 0 CHECK(height_cm >= 0),
  gender TEXT NOT NULL DEFAULT '',
  fitness_level TEXT NOT NULL DEFAULT '',
  goal TEXT NOT NULL DEFAULT '',
  diet TEXT NOT NULL DEFAULT '',
  sessions_per_week INTEGER NOT NULL DEFAULT 0,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 3,
		name:    "daily_journal",
		sql: `
CREATE TABLE IF NOT EXISTS meal_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  meal_type TEXT NOT NULL,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  carbs INTEGER NOT NULL CHECK(carbs >= 0),
  protein INTEGER NOT NULL CHECK(protein >= 0),
  fat INTEGER NOT NULL CHECK(fat >= 0),
  logged_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS workout_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  activity_type TEXT NOT NULL,
  intensity TEXT NOT NULL,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  duration_min INTEGER NOT NULL CHECK(duration_min >= 0),
  logged_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_meal_logs_logged_at ON meal_logs(logged_at);
CREATE INDEX IF NOT EXISTS idx_workout_logs_logged_at ON workout_logs(logged_at);
`,
	},
	{
		version: 4,
		name:    "saved_plans",
		sql: `
CREATE TABLE IF NOT EXISTS plans (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  kind TEXT NOT NULL CHECK(kind IN ('workout', 'meal')),
  title TEXT NOT NULL,
  source TEXT NOT NULL,
  payload_json TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_plans_kind ON plans(kind);
`,
	},
}

// ApplyMigrations brings the schema up to date. Safe to run on every
// start; already-applied versions are skipped.
func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}
	return nil
}
