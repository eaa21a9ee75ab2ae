package mock

import (
	"context"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

var _ llmsdocs.ResultCache = (*ResultCache)(nil)

// ResultCache is a mock implementation of llmsdocs.ResultCache.
type ResultCache struct {
	GetFn func(ctx context.Context, key string) (*llmsdocs.DiscoveryResult, bool)
	SetFn func(ctx context.Context, key string, result *llmsdocs.DiscoveryResult)
}

func (c *ResultCache) Get(ctx context.Context, key string) (*llmsdocs.DiscoveryResult, bool) {
	return c.GetFn(ctx, key)
}

func (c *ResultCache) Set(ctx context.Context, key string, result *llmsdocs.DiscoveryResult) {
	c.SetFn(ctx, key, result)
}
