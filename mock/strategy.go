package mock

import (
	"context"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

var _ llmsdocs.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of llmsdocs.Strategy.
type Strategy struct {
	NameFn  func() string
	ProbeFn func(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error)
}

func (s *Strategy) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

func (s *Strategy) Probe(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
	return s.ProbeFn(ctx, target)
}
