package mock

import (
	"context"

	"github.com/aduverger/carnet"
)

var _ carnet.BlobStore = (*BlobStore)(nil)

// BlobStore is a mock implementation of carnet.BlobStore.
type BlobStore struct {
	GetFn    func(ctx context.Context, key string) (string, error)
	SetFn    func(ctx context.Context, key, value string) error
	RemoveFn func(ctx context.Context, key string) error
}

func (s *BlobStore) Get(ctx context.Context, key string) (string, error) {
	return s.GetFn(ctx, key)
}

func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

func (s *BlobStore) Remove(ctx context.Context, key string) error {
	return s.RemoveFn(ctx, key)
}
