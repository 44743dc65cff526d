package service

import (
	"strings"
	"time"
)

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func nullableString(value string) any {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return value
}

// parseStoredTime accepts both the RFC3339 timestamps we write and the
// "2006-01-02 15:04:05" form SQLite's CURRENT_TIMESTAMP produces.
func parseStoredTime(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", raw, time.UTC); err == nil {
		return t
	}
	return time.Time{}
}
