package mock

import (
	"context"

	"github.com/aduverger/carnet"
)

var _ carnet.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of carnet.CatalogService.
type CatalogService struct {
	BuildFn      func(ctx context.Context, sectionID string) ([]*carnet.Entry, error)
	FlatFn       func(ctx context.Context, sectionID string) ([]*carnet.Entry, error)
	BySlugFn     func(ctx context.Context, sectionID, slug string) (*carnet.Entry, error)
	ByCategoryFn func(ctx context.Context, sectionID string) (map[string][]*carnet.Entry, error)
	ContentFn    func(ctx context.Context, path string) string
	InvalidateFn func()
}

func (s *CatalogService) Build(ctx context.Context, sectionID string) ([]*carnet.Entry, error) {
	return s.BuildFn(ctx, sectionID)
}

func (s *CatalogService) Flat(ctx context.Context, sectionID string) ([]*carnet.Entry, error) {
	return s.FlatFn(ctx, sectionID)
}

func (s *CatalogService) BySlug(ctx context.Context, sectionID, slug string) (*carnet.Entry, error) {
	return s.BySlugFn(ctx, sectionID, slug)
}

func (s *CatalogService) ByCategory(ctx context.Context, sectionID string) (map[string][]*carnet.Entry, error) {
	return s.ByCategoryFn(ctx, sectionID)
}

func (s *CatalogService) Content(ctx context.Context, path string) string {
	return s.ContentFn(ctx, path)
}

func (s *CatalogService) Invalidate() {
	s.InvalidateFn()
}
