package mock

import (
	"context"

	"github.com/aduverger/carnet"
)

var _ carnet.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of carnet.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, path string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	return f.FetchFn(ctx, path)
}
