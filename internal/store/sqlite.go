// ABOUTME: SQLite implementation of the backend store using modernc.org/sqlite
// ABOUTME: Opens the database, enables WAL and foreign keys, and creates the schema

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists dashboard data in SQLite
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite store at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "store")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite store initialized", "path", path)
	return s, nil
}

// createSchema creates the database tables if they don't exist
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE COLLATE NOCASE,
			full_name     TEXT NOT NULL,
			phone         TEXT NOT NULL DEFAULT '',
			role          TEXT NOT NULL,
			organization  TEXT NOT NULL DEFAULT '',
			location      TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at    TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS roles (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			permissions TEXT NOT NULL,
			created_at  TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS team_members (
			id         TEXT PRIMARY KEY,
			full_name  TEXT NOT NULL,
			email      TEXT NOT NULL UNIQUE COLLATE NOCASE,
			phone      TEXT NOT NULL,
			role       TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS categories (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			status     TEXT NOT NULL,
			created_at TEXT NOT NULL,

			CHECK (status IN ('Active', 'Inactive'))
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id       TEXT PRIMARY KEY,
			task     TEXT NOT NULL,
			state    TEXT NOT NULL,
			city     TEXT NOT NULL,
			locality TEXT NOT NULL,
			status   TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id           TEXT PRIMARY KEY,
			task         TEXT NOT NULL,
			state        TEXT NOT NULL,
			city         TEXT NOT NULL,
			locality     TEXT NOT NULL,
			completed_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS invoices (
			id          TEXT PRIMARY KEY,
			number      TEXT NOT NULL UNIQUE,
			customer    TEXT NOT NULL,
			date        TEXT NOT NULL,
			due_date    TEXT NOT NULL,
			amount      INTEGER NOT NULL,
			status      TEXT NOT NULL,

			CHECK (status IN ('Paid', 'Pending', 'Overdue'))
		);

		CREATE TABLE IF NOT EXISTS community_members (
			id    TEXT PRIMARY KEY,
			name  TEXT NOT NULL,
			role  TEXT NOT NULL,
			posts INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Stats returns the row count of every table.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	counts := []struct {
		table string
		dst   *int
	}{
		{"users", &st.Users},
		{"roles", &st.Roles},
		{"team_members", &st.Team},
		{"categories", &st.Categories},
		{"bookings", &st.Bookings},
		{"tasks", &st.Tasks},
		{"invoices", &st.Invoices},
		{"community_members", &st.Members},
	}
	for _, c := range counts {
		n, err := s.count(ctx, c.table)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return &st, nil
}

func (s *SQLiteStore) count(ctx context.Context, table string) (int, error) {
	var n int
	// table names come from the fixed list above
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

// deleteByID removes one row and maps a missing row to ErrNotFound.
func (s *SQLiteStore) deleteByID(ctx context.Context, table, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func newID() string {
	return uuid.New().String()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// scanErr maps sql.ErrNoRows to ErrNotFound.
func scanErr(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("getting %s: %w", what, err)
}

// isUniqueConstraintError checks if an error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	// SQLite returns "UNIQUE constraint failed" in the error message
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") || strings.Contains(err.Error(), "unique constraint"))
}
