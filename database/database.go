// Package database opens the SQLite content store and applies the embedded
// migrations.
//
// The store is a single file. modernc.org/sqlite is a pure-Go driver, so the
// binary needs no CGO toolchain.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vishaldubey2210/portfolio/pkg/logger"

	_ "modernc.org/sqlite"
)

// recoverableErrors are migration failures that mean the statement already
// took effect on a previous, interrupted run.
var recoverableErrors = []string{
	"duplicate column name",
}

// DB wraps the connection pool.
type DB struct {
	Conn *sql.DB
}

// New opens (creating if needed) the database at dbPath and applies every
// migration in migrationsFS that has not been applied yet.
func New(dbPath string, migrationsFS fs.FS) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{Conn: conn}

	if err := db.runMigrations(migrationsFS); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log := logger.For("database")
	log.Info().Str("path", dbPath).Msg("connected and migrations applied")
	return db, nil
}

// Close closes the pool.
func (db *DB) Close() error {
	return db.Conn.Close()
}

// runMigrations applies migrations/*.sql in lexical order (001_, 002_, ...).
// Applied files are recorded in schema_migrations; each file runs in its own
// transaction together with its ledger row, so a failed file leaves no trace.
func (db *DB) runMigrations(migrationsFS fs.FS) error {
	if _, err := db.Conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	entries, err := fs.ReadDir(migrationsFS, ".")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	applied, err := db.appliedMigrations()
	if err != nil {
		return err
	}

	log := logger.For("database")
	for _, file := range sqlFiles {
		if applied[file] {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		err = WithTx(context.Background(), db.Conn, func(tx *sql.Tx) error {
			if err := execStatements(tx, file, string(content)); err != nil {
				return err
			}
			if _, err := tx.Exec("INSERT INTO schema_migrations (filename) VALUES (?)", file); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", file, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		log.Info().Str("file", file).Msg("migration applied")
	}

	return nil
}

func (db *DB) appliedMigrations() (map[string]bool, error) {
	rows, err := db.Conn.Query("SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate migration rows: %w", err)
	}
	return applied, nil
}

// execStatements runs a migration file one statement at a time, skipping
// the failures listed in recoverableErrors.
func execStatements(tx *sql.Tx, filename, content string) error {
	log := logger.For("database")

	for i, stmt := range splitStatements(content) {
		if _, err := tx.Exec(stmt); err != nil {
			errMsg := err.Error()
			recoverable := false
			for _, pattern := range recoverableErrors {
				if strings.Contains(errMsg, pattern) {
					recoverable = true
					break
				}
			}

			if recoverable {
				log.Warn().Str("file", filename).Int("statement", i+1).Str("reason", errMsg).Msg("statement skipped")
				continue
			}

			return fmt.Errorf("failed to execute migration %s (statement %d): %w", filename, i+1, err)
		}
	}

	return nil
}

// splitStatements splits SQL text on semicolons that are outside single
// quoted string literals. Doubled quotes ('') inside a literal are kept.
func splitStatements(sql string) []string {
	var statements []string
	var current strings.Builder
	inString := false

	for i := 0; i < len(sql); i++ {
		ch := sql[i]

		if ch == '\'' {
			if inString && i+1 < len(sql) && sql[i+1] == '\'' {
				current.WriteByte(ch)
				current.WriteByte(sql[i+1])
				i++
				continue
			}
			inString = !inString
		}

		if ch == ';' && !inString {
			if s := strings.TrimSpace(current.String()); s != "" {
				statements = append(statements, s)
			}
			current.Reset()
			continue
		}

		current.WriteByte(ch)
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		statements = append(statements, s)
	}

	return statements
}
