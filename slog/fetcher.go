// Package slog provides logging decorators for the domain interfaces.
// Each decorator wraps an implementation and logs the operation with
// structured attributes, keeping logging out of the implementations
// themselves. The logger is passed in by the caller; there is no
// package-level logger state.
package slog

import (
	"context"
	"log/slog"
	"time"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// Ensure LoggingFetcher implements vocab.Fetcher.
var _ vocab.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   vocab.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next vocab.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
