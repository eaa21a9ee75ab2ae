package slog

import (
	"context"
	"log/slog"
	"time"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// Ensure LoggingFetcher implements llmsdocs.Fetcher.
var _ llmsdocs.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging of every request.
type LoggingFetcher struct {
	next   llmsdocs.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next llmsdocs.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *llmsdocs.FetchResult, err error) {
	defer func(begin time.Time) {
		status := 0
		size := 0
		if res != nil {
			status = res.Status
			size = len(res.Body)
		}
		f.logger.Debug("fetch",
			"url", url,
			"status", status,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Exists delegates to the wrapped fetcher and logs the probe.
func (f *LoggingFetcher) Exists(ctx context.Context, url string) (ok bool, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("probe",
			"url", url,
			"exists", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Exists(ctx, url)
}
