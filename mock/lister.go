package mock

import (
	"context"

	"github.com/aduverger/carnet"
)

var _ carnet.DocumentLister = (*Lister)(nil)

// Lister is a mock implementation of carnet.DocumentLister.
type Lister struct {
	ListDocumentsFn func(ctx context.Context, section *carnet.Section) ([]string, error)
}

func (l *Lister) ListDocuments(ctx context.Context, section *carnet.Section) ([]string, error) {
	return l.ListDocumentsFn(ctx, section)
}
