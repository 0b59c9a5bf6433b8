// Package sqlite provides SQLite-backed persistence for the reading lists.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jgold-code/shelfaware/internal/core/ports/driven"
)

// Ensure ListStore implements the interface.
var _ driven.ListStore = (*ListStore)(nil)

// ListStore is a SQLite-backed key/value store for the reading lists.
// Values are opaque strings; the reading list service stores JSON arrays.
type ListStore struct {
	db   *sql.DB
	path string
}

// NewListStore creates a SQLite list store in the specified data
// directory. If dataDir is empty, defaults to ~/.shelfaware/data.
func NewListStore(dataDir string) (*ListStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".shelfaware", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "shelves.db")

	// WAL keeps reads cheap while the TUI writes after each mutation.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &ListStore{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// migrate creates the kv table if it does not exist.
func (s *ListStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS reading_lists (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating reading_lists table: %w", err)
	}
	return nil
}

// Get retrieves the value stored under key.
func (s *ListStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM reading_lists WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *ListStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO reading_lists (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *ListStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *ListStore) Path() string {
	return s.path
}
