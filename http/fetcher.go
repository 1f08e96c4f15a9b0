// Package http provides HTTP-based implementations of the carnet document
// collaborators: content fetching, identifier listing and connectivity
// probing against a static content host.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aduverger/carnet"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements carnet.Fetcher at compile time.
var _ carnet.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw markdown documents from a content host. Paths are
// resolved against a base URL (e.g., "https://host/assets/content").
type Fetcher struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit caps requests per second against the content host using a
// token bucket with a burst of 1. Zero or negative disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewFetcher creates a Fetcher rooted at baseURL.
func NewFetcher(baseURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the raw text of the document at path.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	url := f.baseURL + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
