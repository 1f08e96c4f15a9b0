// Package slog provides logging decorators for the carnet document
// collaborators.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/aduverger/carnet"
)

// Ensure LoggingFetcher implements carnet.Fetcher.
var _ carnet.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   carnet.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next carnet.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("document fetch",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, path)
}
