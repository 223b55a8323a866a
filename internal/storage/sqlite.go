package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteBlob stores the state as a single row in a SQLite key/value table.
// Useful when several tools on one machine share the same state database.
type SQLiteBlob struct {
	db   *sql.DB
	path string
	key  string
}

// OpenSQLite opens (creating if needed) a SQLite-backed blob at path, keyed
// by the given storage key.
func OpenSQLite(path, key string) (*SQLiteBlob, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply pragma %q: %w", pragma, err)
		}
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS state_blobs (
			key TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state_blobs table: %w", err)
	}

	return &SQLiteBlob{db: db, path: path, key: key}, nil
}

// Path returns the database file path.
func (s *SQLiteBlob) Path() string {
	return s.path
}

// Read returns the stored blob, or ok=false when the key has no row.
func (s *SQLiteBlob) Read() ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM state_blobs WHERE key = ?", s.key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state blob: %w", err)
	}
	return data, true, nil
}

// Write upserts the blob for the fixed key.
func (s *SQLiteBlob) Write(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO state_blobs (key, data, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, s.key, data)
	if err != nil {
		return fmt.Errorf("failed to write state blob: %w", err)
	}
	return nil
}

// Delete removes the row for the fixed key.
func (s *SQLiteBlob) Delete() error {
	if _, err := s.db.Exec("DELETE FROM state_blobs WHERE key = ?", s.key); err != nil {
		return fmt.Errorf("failed to delete state blob: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteBlob) Close() error {
	return s.db.Close()
}
