package mock

import (
	"context"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

var _ llmsdocs.SitemapParser = (*SitemapParser)(nil)

// SitemapParser is a mock implementation of llmsdocs.SitemapParser.
type SitemapParser struct {
	ParseSitemapFn func(ctx context.Context, sitemapURL string, maxDepth int) ([]llmsdocs.Candidate, error)
}

func (p *SitemapParser) ParseSitemap(ctx context.Context, sitemapURL string, maxDepth int) ([]llmsdocs.Candidate, error) {
	return p.ParseSitemapFn(ctx, sitemapURL, maxDepth)
}
