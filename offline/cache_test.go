package offline_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aduverger/carnet"
	"github.com/aduverger/carnet/mock"
	"github.com/aduverger/carnet/offline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory blob store with an optional per-write size
// limit, standing in for the sqlite-backed one.
type memStore struct {
	blobs    map[string]string
	maxBytes int
	sets     int
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string]string)}
}

func (s *memStore) asMock() *mock.BlobStore {
	return &mock.BlobStore{
		GetFn: func(_ context.Context, key string) (string, error) {
			blob, ok := s.blobs[key]
			if !ok {
				return "", carnet.Errorf(carnet.ENOTFOUND, "blob %q not found", key)
			}
			return blob, nil
		},
		SetFn: func(_ context.Context, key, value string) error {
			s.sets++
			if s.maxBytes > 0 && len(value) > s.maxBytes {
				return carnet.Errorf(carnet.EUNAVAILABLE, "blob %q exceeds quota", key)
			}
			s.blobs[key] = value
			return nil
		},
		RemoveFn: func(_ context.Context, key string) error {
			delete(s.blobs, key)
			return nil
		},
	}
}

func TestCache_PutGet(t *testing.T) {
	t.Parallel()

	cache := offline.NewCache(newMemStore().asMock())
	ctx := context.Background()

	cache.Put(ctx, &carnet.Entry{Slug: "1-variables", Title: "Variables"}, "# Variables\n\nContenu.")

	content, ok := cache.Get(ctx, "1-variables")
	require.True(t, ok)
	assert.Equal(t, "# Variables\n\nContenu.", content)
}

func TestCache_Get_Miss(t *testing.T) {
	t.Parallel()

	cache := offline.NewCache(newMemStore().asMock())

	_, ok := cache.Get(context.Background(), "absent")

	assert.False(t, ok)
}

func TestCache_Get_ExpiredCopyIsDropped(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cache := offline.NewCache(newMemStore().asMock(), offline.WithNow(func() time.Time { return now }))
	ctx := context.Background()

	cache.Put(ctx, &carnet.Entry{Slug: "1-variables"}, "contenu")

	// One hour short of the deadline: still fresh.
	now = now.Add(offline.TTL - time.Hour)
	_, ok := cache.Get(ctx, "1-variables")
	assert.True(t, ok)

	// Past the deadline: gone, and stays gone.
	now = now.Add(2 * time.Hour)
	_, ok = cache.Get(ctx, "1-variables")
	assert.False(t, ok)
	assert.False(t, cache.Has(ctx, "1-variables"), "the stale copy is deleted, not just hidden")
}

func TestCache_Has(t *testing.T) {
	t.Parallel()

	cache := offline.NewCache(newMemStore().asMock())
	ctx := context.Background()

	assert.False(t, cache.Has(ctx, "1-variables"))

	cache.Put(ctx, &carnet.Entry{Slug: "1-variables"}, "contenu")

	assert.True(t, cache.Has(ctx, "1-variables"))
	assert.False(t, cache.Has(ctx, "autre"))
}

func TestCache_Put_EvictsOldestFifthOnRejectedWrite(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cache := offline.NewCache(store.asMock(), offline.WithNow(func() time.Time { return now }))
	ctx := context.Background()

	// Ten entries with strictly increasing timestamps.
	for i := 0; i < 10; i++ {
		cache.Put(ctx, &carnet.Entry{Slug: fmt.Sprintf("doc-%02d", i)}, "contenu")
		now = now.Add(time.Minute)
	}

	// The next write exceeds the quota; ceil(11/5) = 3 oldest entries go.
	store.maxBytes = len(store.blobs[offline.StoreKey])
	cache.Put(ctx, &carnet.Entry{Slug: "doc-10"}, "contenu")

	assert.False(t, cache.Has(ctx, "doc-00"))
	assert.False(t, cache.Has(ctx, "doc-01"))
	assert.False(t, cache.Has(ctx, "doc-02"))
	assert.True(t, cache.Has(ctx, "doc-03"))
	assert.True(t, cache.Has(ctx, "doc-10"), "the new entry survives the retried write")
}

func TestCache_Put_SecondRejectionIsSwallowed(t *testing.T) {
	t.Parallel()

	rejecting := &mock.BlobStore{
		GetFn: func(context.Context, string) (string, error) {
			return "", carnet.Errorf(carnet.ENOTFOUND, "empty")
		},
		SetFn: func(context.Context, string, string) error {
			return carnet.Errorf(carnet.EUNAVAILABLE, "quota exceeded")
		},
		RemoveFn: func(context.Context, string) error { return nil },
	}
	cache := offline.NewCache(rejecting)

	// Must not panic or error: persistence is best effort.
	cache.Put(context.Background(), &carnet.Entry{Slug: "1-variables"}, "contenu")
}

func TestCache_PurgeExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cache := offline.NewCache(newMemStore().asMock(), offline.WithNow(func() time.Time { return now }))
	ctx := context.Background()

	cache.Put(ctx, &carnet.Entry{Slug: "vieux"}, "contenu")
	now = now.Add(offline.TTL + time.Hour)
	cache.Put(ctx, &carnet.Entry{Slug: "recent"}, "contenu")

	purged := cache.PurgeExpired(ctx)

	assert.Equal(t, 1, purged)
	assert.False(t, cache.Has(ctx, "vieux"))
	assert.True(t, cache.Has(ctx, "recent"))

	assert.Zero(t, cache.PurgeExpired(ctx), "a second purge finds nothing")
}

func TestCache_Clear(t *testing.T) {
	t.Parallel()

	cache := offline.NewCache(newMemStore().asMock())
	ctx := context.Background()

	cache.Put(ctx, &carnet.Entry{Slug: "1-variables"}, "contenu")

	require.NoError(t, cache.Clear(ctx))

	assert.False(t, cache.Has(ctx, "1-variables"))
	assert.Empty(t, cache.Entries(ctx))
}

func TestCache_Entries_SortedBySlug(t *testing.T) {
	t.Parallel()

	cache := offline.NewCache(newMemStore().asMock())
	ctx := context.Background()

	cache.Put(ctx, &carnet.Entry{Slug: "2-fonctions", Title: "Fonctions"}, "b")
	cache.Put(ctx, &carnet.Entry{Slug: "1-variables", Title: "Variables"}, "a")

	entries := cache.Entries(ctx)

	require.Len(t, entries, 2)
	assert.Equal(t, "1-variables", entries[0].Slug)
	assert.Equal(t, "2-fonctions", entries[1].Slug)
}

func TestCache_Entries_StripSubtrees(t *testing.T) {
	t.Parallel()

	cache := offline.NewCache(newMemStore().asMock())
	ctx := context.Background()

	cache.Put(ctx, &carnet.Entry{
		Slug:     "1-variables",
		Children: []*carnet.Entry{{Slug: "1-01-types"}},
	}, "contenu")

	entries := cache.Entries(ctx)

	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Children)
}

func TestCache_CorruptedBlobYieldsEmptyCache(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.blobs[offline.StoreKey] = "{pas du json"
	cache := offline.NewCache(store.asMock())
	ctx := context.Background()

	assert.False(t, cache.Has(ctx, "1-variables"))

	// The cache remains usable after corruption.
	cache.Put(ctx, &carnet.Entry{Slug: "1-variables"}, "contenu")
	assert.True(t, cache.Has(ctx, "1-variables"))
}

func TestCache_SizeMB(t *testing.T) {
	t.Parallel()

	cache := offline.NewCache(newMemStore().asMock())
	ctx := context.Background()

	assert.Zero(t, cache.SizeMB(ctx))

	cache.Put(ctx, &carnet.Entry{Slug: "1-variables"}, "contenu")

	assert.Greater(t, cache.SizeMB(ctx), 0.0)
}
