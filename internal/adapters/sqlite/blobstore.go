// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/sgmi/internal/ports/secondary"
)

// BlobStore implements secondary.BlobStore over the collections table.
// One row per collection key, value overwritten whole on every put.
type BlobStore struct {
	db *sql.DB
}

// NewBlobStore creates a new SQLite blob store.
func NewBlobStore(db *sql.DB) *BlobStore {
	return &BlobStore{db: db}
}

// Get returns the blob stored under key, reporting absence without error.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM collections WHERE key = ?", key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put overwrites the blob stored under key (last-writer-wins).
func (s *BlobStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}

// Delete removes the blob stored under key. Missing keys are a no-op.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", key, err)
	}
	return nil
}

// Ensure BlobStore implements the interface
var _ secondary.BlobStore = (*BlobStore)(nil)
