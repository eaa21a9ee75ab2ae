package slog

import (
	"context"
	"log/slog"
	"time"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// Ensure LoggingSitemapParser implements llmsdocs.SitemapParser.
var _ llmsdocs.SitemapParser = (*LoggingSitemapParser)(nil)

// LoggingSitemapParser wraps a SitemapParser with debug logging.
type LoggingSitemapParser struct {
	next   llmsdocs.SitemapParser
	logger *slog.Logger
}

// NewLoggingSitemapParser creates a new LoggingSitemapParser.
func NewLoggingSitemapParser(next llmsdocs.SitemapParser, logger *slog.Logger) *LoggingSitemapParser {
	return &LoggingSitemapParser{next: next, logger: logger}
}

// ParseSitemap delegates to the wrapped parser and logs the operation.
func (p *LoggingSitemapParser) ParseSitemap(ctx context.Context, sitemapURL string, maxDepth int) (cands []llmsdocs.Candidate, err error) {
	defer func(begin time.Time) {
		p.logger.Info("sitemap parse",
			"url", sitemapURL,
			"candidates", len(cands),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseSitemap(ctx, sitemapURL, maxDepth)
}
