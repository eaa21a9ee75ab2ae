//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	"github.com/nirholas/extract-llms-docs/gemini"
	"github.com/nirholas/extract-llms-docs/installmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestSynthesizer_Integration_DraftsValidInstallMd(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	ex := &llmsdocs.Extraction{
		SourceURL: "https://example.com/llms.txt",
		Documents: []*llmsdocs.Document{
			{
				Title: "Installation",
				Content: "## Installation\n\nInstall the widget CLI with npm:\n\n" +
					"```bash\nnpm install -g @example/widget\n```\n\n" +
					"Then verify with `widget --version`.",
				SourceURL: "https://example.com/llms.txt",
			},
		},
	}

	s := gemini.NewSynthesizer(client)
	draft, err := s.Synthesize(ctx, ex)
	require.NoError(t, err)
	require.NotEmpty(t, draft)

	parsed := installmd.Parse(draft)
	assert.True(t, parsed.IsValid, "draft failed validation: %v", parsed.ValidationErrors)
}
