// Package kvstore is the durable key/value layer behind the storefront.
// It mirrors browser localStorage semantics: string keys, string values,
// absent keys are a normal case rather than an error.
package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is the persistence contract shared by every repository.
type Store interface {
	// Get returns the value for key. ok is false when the key has never
	// been written; that is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set writes value under key, overwriting any previous value.
	// Atomicity is per key only.
	Set(ctx context.Context, key, value string) error
}

// Well-known keys. The whole application state lives in these three slots.
const (
	KeyTheme     = "theme"
	KeyCart      = "cart"
	KeyLastOrder = "lastOrder"
)

type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and ensures
// the kv table exists.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	_, err := s.db.ExecContext(context.Background(), query)
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select kv[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("upsert kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
