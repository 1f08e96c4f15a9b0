package mock

import (
	"context"

	"github.com/aduverger/carnet"
)

var _ carnet.Prober = (*Prober)(nil)

// Prober is a mock implementation of carnet.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context) bool
}

func (p *Prober) Probe(ctx context.Context) bool {
	return p.ProbeFn(ctx)
}
