// internal/scores/store.go
//
// SQLite-backed score store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Creating the scores table on first open (idempotent).
//   - Recording a session's final score and trimming the table to a cap.
//   - Serving the top-K leaderboard.

package scores

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultMax caps how many rows the table may hold after a Record.
const DefaultMax = 100

// ErrUnavailable wraps every storage failure so callers can degrade
// (skip persistence, warn the player) instead of crashing the session.
var ErrUnavailable = errors.New("score storage unavailable")

const schema = `
CREATE TABLE IF NOT EXISTS scores (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT    NOT NULL,
    value      INTEGER NOT NULL CHECK (value >= 0),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Entry is one leaderboard row.
type Entry struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Value     int       `db:"value" json:"value"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Store persists session scores in a single SQLite table.
type Store struct {
	db  *sqlx.DB
	max int
}

// Open opens (and creates if missing) the score database at path.
// A non-positive max falls back to DefaultMax.
func Open(path string, max int) (*Store, error) {
	if max <= 0 {
		max = DefaultMax
	}

	// Ensure directory exists for ./data/scores.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: mkdir %s: %s", ErrUnavailable, dir, err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: set pragmas: %s", ErrUnavailable, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create schema: %s", ErrUnavailable, err)
	}
	return &Store{db: db, max: max}, nil
}

// Record inserts a score and trims the table back to the cap.
// Trim keeps the highest values, newest first among equals, so the store
// never grows beyond max rows.
func (s *Store) Record(ctx context.Context, name string, value int) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %s", ErrUnavailable, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO scores (name, value) VALUES (?, ?)`, name, value,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: insert: %s", ErrUnavailable, err)
	}

	if _, err := tx.ExecContext(ctx, `
        DELETE FROM scores WHERE id NOT IN (
            SELECT id FROM scores
            ORDER BY value DESC, created_at DESC, id DESC
            LIMIT ?
        )`, s.max,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: trim: %s", ErrUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %s", ErrUnavailable, err)
	}
	return nil
}

// Top returns the k highest scores, value descending, older rows first
// among equals.
func (s *Store) Top(ctx context.Context, k int) ([]Entry, error) {
	if k <= 0 {
		k = 5
	}
	entries := make([]Entry, 0, k)
	err := s.db.SelectContext(ctx, &entries, `
        SELECT id, name, value, created_at
        FROM scores
        ORDER BY value DESC, created_at ASC, id ASC
        LIMIT ?`, k,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: select top: %s", ErrUnavailable, err)
	}
	return entries, nil
}

// Count reports the current number of rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(1) FROM scores`); err != nil {
		return 0, fmt.Errorf("%w: count: %s", ErrUnavailable, err)
	}
	return n, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error { return s.db.Close() }
