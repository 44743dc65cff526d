package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

type ListShoppingFilter struct {
	Category    string
	PendingOnly bool
}

// AddShoppingItems persists extracted ingredients. An item matching an
// existing row by normalized name and unit updates that row's quantity
// and category instead of creating a duplicate. Returns the number of
// rows written.
func AddShoppingItems(db *sql.DB, items []model.ShoppingIngredient) (int, error) {
	written := 0
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		quantity := strings.TrimSpace(item.Quantity)
		if quantity == "" {
			quantity = "1"
		}
		category := strings.TrimSpace(item.Category)
		if category == "" {
			category = model.CategoryOther
		}
		unit := strings.TrimSpace(item.Unit)

		var id int64
		err := db.QueryRow(`SELECT id FROM shopping_items WHERE name_norm = ? AND IFNULL(unit, '') = ?`,
			normalizeName(name), unit).Scan(&id)
		switch {
		case err == nil:
			if _, err := db.Exec(`
UPDATE shopping_items
SET quantity = ?, category = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, quantity, category, id); err != nil {
				return written, fmt.Errorf("update shopping item %d: %w", id, err)
			}
		case err == sql.ErrNoRows:
			if _, err := db.Exec(`
INSERT INTO shopping_items(name, name_norm, quantity, unit, category, checked)
VALUES(?, ?, ?, ?, ?, ?)
`, name, normalizeName(name), quantity, nullableString(unit), category, item.Checked); err != nil {
				return written, fmt.Errorf("add shopping item %q: %w", name, err)
			}
		default:
			return written, fmt.Errorf("lookup shopping item %q: %w", name, err)
		}
		written++
	}
	return written, nil
}

func ListShoppingItems(db *sql.DB, f ListShoppingFilter) ([]model.ShoppingItem, error) {
	query := `SELECT id, name, quantity, IFNULL(unit, ''), category, checked, created_at, updated_at FROM shopping_items WHERE 1=1`
	args := make([]any, 0)
	if strings.TrimSpace(f.Category) != "" {
		query += ` AND category = ?`
		args = append(args, strings.TrimSpace(f.Category))
	}
	if f.PendingOnly {
		query += ` AND checked = 0`
	}
	query += ` ORDER BY category, name_norm`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}
	defer rows.Close()

	items := make([]model.ShoppingItem, 0)
	for rows.Next() {
		var item model.ShoppingItem
		var createdRaw, updatedRaw string
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Unit, &item.Category, &item.Checked, &createdRaw, &updatedRaw); err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		item.CreatedAt = parseStoredTime(createdRaw)
		item.UpdatedAt = parseStoredTime(updatedRaw)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shopping items: %w", err)
	}
	return items, nil
}

func SetShoppingItemChecked(db *sql.DB, id int64, checked bool) error {
	if id <= 0 {
		return fmt.Errorf("shopping item id must be > 0")
	}
	res, err := db.Exec(`UPDATE shopping_items SET checked = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, checked, id)
	if err != nil {
		return fmt.Errorf("update shopping item %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("shopping item %d not found", id)
	}
	return nil
}

func DeleteShoppingItem(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("shopping item id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM shopping_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete shopping item %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("shopping item %d not found", id)
	}
	return nil
}

// ClearShoppingItems removes checked items, or every item when
// checkedOnly is false. Returns the number of rows removed.
func ClearShoppingItems(db *sql.DB, checkedOnly bool) (int64, error) {
	query := `DELETE FROM shopping_items`
	if checkedOnly {
		query += ` WHERE checked = 1`
	}
	res, err := db.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("clear shopping items: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected: %w", err)
	}
	return affected, nil
}
