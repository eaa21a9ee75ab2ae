package mock

import (
	"context"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

var _ llmsdocs.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of llmsdocs.Discoverer.
type Discoverer struct {
	DiscoverFn   func(ctx context.Context, inputURL string, opts llmsdocs.DiscoverOptions) (*llmsdocs.DiscoveryResult, error)
	QuickCheckFn func(ctx context.Context, url string) (*llmsdocs.DiscoveryResult, error)
}

func (d *Discoverer) Discover(ctx context.Context, inputURL string, opts llmsdocs.DiscoverOptions) (*llmsdocs.DiscoveryResult, error) {
	return d.DiscoverFn(ctx, inputURL, opts)
}

func (d *Discoverer) QuickCheck(ctx context.Context, url string) (*llmsdocs.DiscoveryResult, error) {
	return d.QuickCheckFn(ctx, url)
}
