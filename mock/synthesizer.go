package mock

import (
	"context"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

var _ llmsdocs.InstallSynthesizer = (*InstallSynthesizer)(nil)

// InstallSynthesizer is a mock implementation of llmsdocs.InstallSynthesizer.
type InstallSynthesizer struct {
	SynthesizeFn func(ctx context.Context, extraction *llmsdocs.Extraction) (string, error)
}

func (s *InstallSynthesizer) Synthesize(ctx context.Context, extraction *llmsdocs.Extraction) (string, error) {
	return s.SynthesizeFn(ctx, extraction)
}
