package mock

import (
	"context"

	"github.com/aduverger/carnet"
)

var _ carnet.SectionService = (*SectionService)(nil)

// SectionService is a mock implementation of carnet.SectionService.
type SectionService struct {
	SectionsFn        func(ctx context.Context) ([]*carnet.Section, error)
	FindSectionByIDFn func(ctx context.Context, id string) (*carnet.Section, error)
}

func (s *SectionService) Sections(ctx context.Context) ([]*carnet.Section, error) {
	return s.SectionsFn(ctx)
}

func (s *SectionService) FindSectionByID(ctx context.Context, id string) (*carnet.Section, error) {
	return s.FindSectionByIDFn(ctx, id)
}
