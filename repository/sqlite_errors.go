package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/vishaldubey2210/portfolio/database"
)

// isUniqueViolation reports whether err is a SQLite UNIQUE failure on the
// given "table.column". An empty column matches any unique failure.
func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	return column == "" || strings.Contains(msg, column)
}

// countRows runs SELECT COUNT(*) on table. table is always a constant from
// this package.
func countRows(ctx context.Context, db database.TxQuerier, table string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
