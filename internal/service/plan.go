package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

const (
	PlanKindWorkout = "workout"
	PlanKindMeal    = "meal"
)

// SavePlan stores a synthesis result together with the text it was
// extracted from. Payload must already be serialized JSON.
func SavePlan(db *sql.DB, kind, title, source, payload string) (int64, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != PlanKindWorkout && kind != PlanKindMeal {
		return 0, fmt.Errorf("invalid plan kind %q (use workout or meal)", kind)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("plan title is required")
	}
	if strings.TrimSpace(payload) == "" {
		return 0, fmt.Errorf("plan payload is required")
	}
	res, err := db.Exec(`
INSERT INTO plans(kind, title, source, payload_json)
VALUES(?, ?, ?, ?)
`, kind, title, source, payload)
	if err != nil {
		return 0, fmt.Errorf("save plan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve plan id: %w", err)
	}
	return id, nil
}

func ListPlans(db *sql.DB, kind string, limit int) ([]model.Plan, error) {
	query := `SELECT id, kind, title, source, payload_json, created_at FROM plans WHERE 1=1`
	args := make([]any, 0)
	if strings.TrimSpace(kind) != "" {
		query += ` AND kind = ?`
		args = append(args, strings.ToLower(strings.TrimSpace(kind)))
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if limit <= 0 {
		limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	plans := make([]model.Plan, 0)
	for rows.Next() {
		var p model.Plan
		var createdRaw string
		if err := rows.Scan(&p.ID, &p.Kind, &p.Title, &p.Source, &p.Payload, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		p.CreatedAt = parseStoredTime(createdRaw)
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}
	return plans, nil
}

func GetPlan(db *sql.DB, id int64) (*model.Plan, error) {
	if id <= 0 {
		return nil, fmt.Errorf("plan id must be > 0")
	}
	var p model.Plan
	var createdRaw string
	err := db.QueryRow(`SELECT id, kind, title, source, payload_json, created_at FROM plans WHERE id = ?`, id).
		Scan(&p.ID, &p.Kind, &p.Title, &p.Source, &p.Payload, &createdRaw)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("plan %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load plan %d: %w", id, err)
	}
	p.CreatedAt = parseStoredTime(createdRaw)
	return &p, nil
}

func DeletePlan(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("plan id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("plan %d not found", id)
	}
	return nil
}
