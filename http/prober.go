package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aduverger/carnet"
)

// DefaultProbeTimeout bounds a single connectivity probe.
const DefaultProbeTimeout = 3 * time.Second

// Ensure Prober implements carnet.Prober at compile time.
var _ carnet.Prober = (*Prober)(nil)

// Prober checks reachability of the content host with a HEAD request.
// Any response, including an error status, counts as online; only
// transport failures count as offline.
type Prober struct {
	client *http.Client
	url    string
}

// NewProber creates a Prober against the given URL.
func NewProber(url string) *Prober {
	return &Prober{
		client: &http.Client{Timeout: DefaultProbeTimeout},
		url:    url,
	}
}

// Probe reports whether the host is currently reachable.
func (p *Prober) Probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
