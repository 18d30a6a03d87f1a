// Package storage provides the SQLite user registry kept by the puzzle
// provider. It records which user ids exist and how many puzzles each was
// issued; game moves and results are never stored.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/rgb-alchemy/internal/provider"
)

// Store manages the SQLite database connection for the user registry.
type Store struct {
	db *sql.DB
}

var _ provider.UserRecorder = (*Store)(nil)

// UserEntry represents one registered user id.
type UserEntry struct {
	UserID        string
	PuzzlesIssued int
	FirstSeen     time.Time
	LastSeen      time.Time
}

// Totals summarizes the registry.
type Totals struct {
	Users   int
	Puzzles int64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	// HTTP handlers record concurrently; one connection serializes writers.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			puzzles_issued INTEGER NOT NULL DEFAULT 0,
			first_seen DATETIME DEFAULT CURRENT_TIMESTAMP,
			last_seen DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_users_last_seen ON users(last_seen DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordIssue registers that a puzzle was issued to userID.
// Unknown ids are inserted; known ids have their counter and last_seen bumped.
func (s *Store) RecordIssue(userID string) error {
	if userID == "" {
		return errors.New("storage: empty user id")
	}
	_, err := s.db.Exec(
		`INSERT INTO users (user_id, puzzles_issued) VALUES (?, 1)
		 ON CONFLICT(user_id) DO UPDATE SET
		   puzzles_issued = puzzles_issued + 1,
		   last_seen = CURRENT_TIMESTAMP`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record issue for %s: %w", userID, err)
	}
	return nil
}

// User retrieves a user by id. Returns nil if the id is unknown.
func (s *Store) User(userID string) (*UserEntry, error) {
	var e UserEntry
	var firstSeen, lastSeen any

	err := s.db.QueryRow(
		`SELECT user_id, puzzles_issued, first_seen, last_seen
		 FROM users
		 WHERE user_id = ?`,
		userID,
	).Scan(&e.UserID, &e.PuzzlesIssued, &firstSeen, &lastSeen)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query user: %w", err)
	}

	e.FirstSeen = parseTime(firstSeen)
	e.LastSeen = parseTime(lastSeen)
	return &e, nil
}

// Users lists registered users, most active first.
func (s *Store) Users(limit int) ([]UserEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT user_id, puzzles_issued, first_seen, last_seen
		 FROM users
		 ORDER BY puzzles_issued DESC, user_id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query users: %w", err)
	}
	defer rows.Close()

	var entries []UserEntry
	for rows.Next() {
		var e UserEntry
		var firstSeen, lastSeen any
		if err := rows.Scan(&e.UserID, &e.PuzzlesIssued, &firstSeen, &lastSeen); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.FirstSeen = parseTime(firstSeen)
		e.LastSeen = parseTime(lastSeen)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Totals returns the number of users and puzzles issued overall.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	var puzzles sql.NullInt64
	err := s.db.QueryRow("SELECT COUNT(*), SUM(puzzles_issued) FROM users").Scan(&t.Users, &puzzles)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	if puzzles.Valid {
		t.Puzzles = puzzles.Int64
	}
	return t, nil
}

// ForgetUser removes a user id from the registry.
func (s *Store) ForgetUser(userID string) error {
	_, err := s.db.Exec("DELETE FROM users WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("storage: cannot forget user: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
