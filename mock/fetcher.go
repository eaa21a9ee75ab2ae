// Package mock provides function-field fakes for llmsdocs interfaces.
package mock

import (
	"context"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

var _ llmsdocs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of llmsdocs.Fetcher.
type Fetcher struct {
	FetchFn  func(ctx context.Context, url string) (*llmsdocs.FetchResult, error)
	ExistsFn func(ctx context.Context, url string) (bool, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*llmsdocs.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Exists(ctx context.Context, url string) (bool, error) {
	return f.ExistsFn(ctx, url)
}
