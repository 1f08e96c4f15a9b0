package mock

import (
	"context"

	"github.com/aduverger/carnet"
)

var _ carnet.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of carnet.SearchService.
type SearchService struct {
	SearchFn     func(ctx context.Context, sectionID string, filter carnet.SearchFilter) ([]carnet.SearchResult, error)
	TagsFn       func(ctx context.Context, sectionID string) ([]string, error)
	CategoriesFn func(ctx context.Context, sectionID string) ([]string, error)
}

func (s *SearchService) Search(ctx context.Context, sectionID string, filter carnet.SearchFilter) ([]carnet.SearchResult, error) {
	return s.SearchFn(ctx, sectionID, filter)
}

func (s *SearchService) Tags(ctx context.Context, sectionID string) ([]string, error) {
	return s.TagsFn(ctx, sectionID)
}

func (s *SearchService) Categories(ctx context.Context, sectionID string) ([]string, error) {
	return s.CategoriesFn(ctx, sectionID)
}
