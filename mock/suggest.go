package mock

import (
	"context"

	"github.com/aduverger/carnet"
)

var _ carnet.SuggestionService = (*SuggestionService)(nil)

// SuggestionService is a mock implementation of carnet.SuggestionService.
type SuggestionService struct {
	SimilarFn     func(ctx context.Context, sectionID, slug string, limit int) ([]carnet.Suggestion, error)
	PopularFn     func(ctx context.Context, sectionID string, limit int) ([]*carnet.Entry, error)
	TrendingFn    func(ctx context.Context, sectionID string, limit int) ([]*carnet.Entry, error)
	RecommendedFn func(ctx context.Context, sectionID, slug string, limit int) ([]carnet.Suggestion, error)
}

func (s *SuggestionService) Similar(ctx context.Context, sectionID, slug string, limit int) ([]carnet.Suggestion, error) {
	return s.SimilarFn(ctx, sectionID, slug, limit)
}

func (s *SuggestionService) Popular(ctx context.Context, sectionID string, limit int) ([]*carnet.Entry, error) {
	return s.PopularFn(ctx, sectionID, limit)
}

func (s *SuggestionService) Trending(ctx context.Context, sectionID string, limit int) ([]*carnet.Entry, error) {
	return s.TrendingFn(ctx, sectionID, limit)
}

func (s *SuggestionService) Recommended(ctx context.Context, sectionID, slug string, limit int) ([]carnet.Suggestion, error) {
	return s.RecommendedFn(ctx, sectionID, slug, limit)
}
