package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/aduverger/carnet"
)

// Ensure LoggingLister implements carnet.DocumentLister.
var _ carnet.DocumentLister = (*LoggingLister)(nil)

// LoggingLister wraps a DocumentLister with debug logging.
type LoggingLister struct {
	next   carnet.DocumentLister
	logger *slog.Logger
}

// NewLoggingLister creates a new LoggingLister.
func NewLoggingLister(next carnet.DocumentLister, logger *slog.Logger) *LoggingLister {
	return &LoggingLister{next: next, logger: logger}
}

// ListDocuments delegates to the wrapped lister and logs the operation.
func (l *LoggingLister) ListDocuments(ctx context.Context, section *carnet.Section) (identifiers []string, err error) {
	sectionID := ""
	if section != nil {
		sectionID = section.ID
	}
	defer func(begin time.Time) {
		l.logger.Info("document listing",
			"section", sectionID,
			"count", len(identifiers),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.ListDocuments(ctx, section)
}
