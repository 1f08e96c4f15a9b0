package carnet

import "context"

// CachedDocument is one persisted offline copy, keyed by the entry slug.
type CachedDocument struct {
	// Entry is a summary of the catalog entry (no subtree).
	Entry *Entry `json:"entry"`

	// Content is the raw document body.
	Content string `json:"content"`

	// ContentHash is the xxHash of Content, hex encoded.
	ContentHash string `json:"contentHash"`

	// CachedAt is the write time in epoch milliseconds.
	CachedAt int64 `json:"cachedAt"`
}

// BlobStore is a generic persistent key-value string store. The offline
// cache keeps its whole serialized map under a single fixed key.
type BlobStore interface {
	// Get retrieves the value under key.
	// Returns ENOTFOUND if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set upserts the value under key.
	// Returns EUNAVAILABLE when the store rejects the write (capacity).
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Prober reports whether the host environment can currently reach the
// document source.
type Prober interface {
	Probe(ctx context.Context) bool
}
