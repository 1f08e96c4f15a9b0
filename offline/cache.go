// Package offline maintains a keyed, time-expiring, size-bounded store of
// document content for reading without connectivity, and a monitor that
// reflects the host environment's connectivity signal.
package offline

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aduverger/carnet"
	"github.com/aduverger/carnet/bloom"
	"github.com/cespare/xxhash/v2"
)

// StoreKey is the fixed blob-store key holding the whole serialized cache.
const StoreKey = "formation_cache"

// TTL is how long a cached document stays fresh.
const TTL = 7 * 24 * time.Hour

// evictDivisor controls bulk eviction: the oldest ceil(1/evictDivisor)
// share of entries is dropped when the store rejects a write.
const evictDivisor = 5

// Cache is a best-effort offline store over a generic blob store. The
// whole cache lives as one serialized map under StoreKey; every operation
// is a read-modify-write cycle. Correctness assumes a single active
// writer context; concurrent writers from separate processes are a
// documented limitation, not a supported mode.
type Cache struct {
	store carnet.BlobStore
	now   func() time.Time

	mu     sync.Mutex
	filter *bloom.Filter // negative fast path for Has; nil until first load
}

// Option configures a Cache.
type Option func(*Cache)

// WithNow overrides the clock, for expiry tests.
func WithNow(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a Cache over the given blob store.
func NewCache(store carnet.BlobStore, opts ...Option) *Cache {
	c := &Cache{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Has reports whether a fresh-or-stale copy of the document exists. A
// Bloom filter over cached slugs answers definite misses without
// deserializing the store.
func (c *Cache) Has(ctx context.Context, slug string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filter != nil && !c.filter.Test(slug) {
		return false
	}
	docs := c.load(ctx)
	_, ok := docs[slug]
	return ok
}

// Get returns the cached content for a slug, or ok=false when the slug is
// absent or its copy is older than TTL. A stale copy is deleted from the
// store before returning.
func (c *Cache) Get(ctx context.Context, slug string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs := c.load(ctx)
	doc, ok := docs[slug]
	if !ok {
		return "", false
	}

	if c.now().UnixMilli()-doc.CachedAt > TTL.Milliseconds() {
		delete(docs, slug)
		_ = c.save(ctx, docs) // best effort
		return "", false
	}
	return doc.Content, true
}

// Put upserts a document copy stamped with the current time. When the
// store rejects the write, the oldest fifth of entries is evicted and the
// write retried once; a second rejection is swallowed. The cache never
// blocks its caller on persistence failures.
func (c *Cache) Put(ctx context.Context, entry *carnet.Entry, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs := c.load(ctx)
	docs[entry.Slug] = &carnet.CachedDocument{
		Entry:       entry.Summary(),
		Content:     content,
		ContentHash: hashContent(content),
		CachedAt:    c.now().UnixMilli(),
	}

	if err := c.save(ctx, docs); err != nil {
		evictOldest(docs)
		_ = c.save(ctx, docs)
	}
}

// PurgeExpired deletes every copy past TTL and reports how many were
// removed. The store is only written when something changed.
func (c *Cache) PurgeExpired(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs := c.load(ctx)
	now := c.now().UnixMilli()

	var purged int
	for slug, doc := range docs {
		if now-doc.CachedAt > TTL.Milliseconds() {
			delete(docs, slug)
			purged++
		}
	}
	if purged > 0 {
		_ = c.save(ctx, docs)
	}
	return purged
}

// Clear drops the entire store.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filter != nil {
		c.filter.Reset()
	}
	return c.store.Remove(ctx, StoreKey)
}

// Entries returns the entry summaries of every cached document, sorted by
// slug for deterministic listings.
func (c *Cache) Entries(ctx context.Context) []*carnet.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs := c.load(ctx)
	entries := make([]*carnet.Entry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, doc.Entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Slug < entries[j].Slug
	})
	return entries
}

// SizeMB sums the serialized byte length of all cached documents in
// megabytes. An approximation, not exact storage accounting.
func (c *Cache) SizeMB(ctx context.Context) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs := c.load(ctx)
	var size int
	for _, doc := range docs {
		if b, err := json.Marshal(doc); err == nil {
			size += len(b)
		}
	}
	return float64(size) / (1024 * 1024)
}

// load deserializes the store's blob. Absence and corruption both yield
// an empty map: the cache is rebuildable state, never a failure source.
// The Bloom filter is resynced to the loaded slugs.
func (c *Cache) load(ctx context.Context) map[string]*carnet.CachedDocument {
	docs := make(map[string]*carnet.CachedDocument)

	blob, err := c.store.Get(ctx, StoreKey)
	if err == nil && blob != "" {
		_ = json.Unmarshal([]byte(blob), &docs)
	}

	if c.filter == nil {
		c.filter = bloom.NewFilter(1024, 0.01)
	} else {
		c.filter.Reset()
	}
	for slug := range docs {
		c.filter.Add(slug)
	}
	return docs
}

// save serializes the map back under StoreKey.
func (c *Cache) save(ctx context.Context, docs map[string]*carnet.CachedDocument) error {
	blob, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	if err := c.store.Set(ctx, StoreKey, string(blob)); err != nil {
		return err
	}
	if c.filter != nil {
		c.filter.Reset()
		for slug := range docs {
			c.filter.Add(slug)
		}
	}
	return nil
}

// evictOldest removes the oldest ceil(20%) of entries by CachedAt.
func evictOldest(docs map[string]*carnet.CachedDocument) {
	if len(docs) == 0 {
		return
	}

	type aged struct {
		slug     string
		cachedAt int64
	}
	entries := make([]aged, 0, len(docs))
	for slug, doc := range docs {
		entries = append(entries, aged{slug: slug, cachedAt: doc.CachedAt})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].cachedAt != entries[j].cachedAt {
			return entries[i].cachedAt < entries[j].cachedAt
		}
		return entries[i].slug < entries[j].slug
	})

	toRemove := (len(entries) + evictDivisor - 1) / evictDivisor
	for _, e := range entries[:toRemove] {
		delete(docs, e.slug)
	}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
