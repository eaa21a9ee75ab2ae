// Package slog provides logging decorators for llmsdocs services.
// Each decorator wraps an implementation of a service interface and
// logs operations with timing via log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// Ensure LoggingDiscoverer implements llmsdocs.Discoverer.
var _ llmsdocs.Discoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a Discoverer with structured logging.
type LoggingDiscoverer struct {
	next   llmsdocs.Discoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next llmsdocs.Discoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the run outcome.
func (d *LoggingDiscoverer) Discover(ctx context.Context, inputURL string, opts llmsdocs.DiscoverOptions) (result *llmsdocs.DiscoveryResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", inputURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"runId", result.RunID,
				"found", result.Found,
				"method", result.Method,
				"scanned", len(result.ScannedURLs),
			)
		}
		d.logger.Info("discovery", attrs...)
	}(time.Now())
	return d.next.Discover(ctx, inputURL, opts)
}

// QuickCheck delegates to the wrapped discoverer and logs the check.
func (d *LoggingDiscoverer) QuickCheck(ctx context.Context, url string) (result *llmsdocs.DiscoveryResult, err error) {
	defer func(begin time.Time) {
		found := false
		if result != nil {
			found = result.Found
		}
		d.logger.Info("quick check",
			"url", url,
			"found", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.QuickCheck(ctx, url)
}
