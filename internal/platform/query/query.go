// Package query implements the shared list-endpoint query parameters:
// Django-style "search" and "ordering".
package query

import (
	"strings"

	"gorm.io/gorm"
)

// ApplyOrdering applies an "ordering" parameter to a gorm query. The raw value
// is a comma-separated list of column names, each optionally prefixed with "-"
// for descending order. Columns outside the whitelist are ignored; when
// nothing valid remains the fallback clause is used.
func ApplyOrdering(q *gorm.DB, raw string, allowed map[string]bool, fallback string) *gorm.DB {
	applied := false
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		direction := " asc"
		if strings.HasPrefix(field, "-") {
			field = field[1:]
			direction = " desc"
		}
		if field == "" || !allowed[field] {
			continue
		}
		q = q.Order(field + direction)
		applied = true
	}
	if !applied && fallback != "" {
		q = q.Order(fallback)
	}
	return q
}

// ApplySearch adds a case-insensitive substring match over the given columns.
// An empty term leaves the query untouched.
func ApplySearch(q *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}

	pattern := "%" + term + "%"
	clause := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		clause = append(clause, col+" LIKE ?")
		args = append(args, pattern)
	}
	return q.Where(strings.Join(clause, " OR "), args...)
}
