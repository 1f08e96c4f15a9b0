package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aduverger/carnet"
)

// Compile-time interface verification.
var _ carnet.BlobStore = (*BlobStore)(nil)

// BlobStore implements carnet.BlobStore using SQLite. An optional quota
// rejects oversized writes with EUNAVAILABLE, which triggers the offline
// cache's eviction path.
type BlobStore struct {
	db       *DB
	maxBytes int
}

// BlobStoreOption configures a BlobStore.
type BlobStoreOption func(*BlobStore)

// WithMaxBytes caps the byte length of a stored value. Zero or negative
// means unlimited.
func WithMaxBytes(n int) BlobStoreOption {
	return func(s *BlobStore) {
		s.maxBytes = n
	}
}

// NewBlobStore creates a BlobStore over the database.
func NewBlobStore(db *DB, opts ...BlobStoreOption) *BlobStore {
	s := &BlobStore{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get retrieves the value under key.
// Returns ENOTFOUND if the key is absent.
func (s *BlobStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM blobs WHERE key = ?
	`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", carnet.Errorf(carnet.ENOTFOUND, "blob %q not found", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set upserts the value under key.
// Returns EUNAVAILABLE when the value exceeds the configured quota.
func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	if s.maxBytes > 0 && len(value) > s.maxBytes {
		return carnet.Errorf(carnet.EUNAVAILABLE, "blob %q exceeds quota (%d > %d bytes)", key, len(value), s.maxBytes)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))

	return err
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *BlobStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM blobs WHERE key = ?", key)
	return err
}
