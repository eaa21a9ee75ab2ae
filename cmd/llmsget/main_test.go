package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	"github.com/nirholas/extract-llms-docs/installmd"
	"github.com/nirholas/extract-llms-docs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func newTestMain(t *testing.T, discoverer llmsdocs.Discoverer) *Main {
	t.Helper()
	m := NewMain()
	m.ConfigPath = filepath.Join(t.TempDir(), "config.toml")
	m.Discoverer = discoverer
	return m
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := newTestMain(t, nil)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	m := newTestMain(t, nil)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "llmsget")
	assert.Contains(t, stdout.String(), "discover")
}

func TestRun_Discover(t *testing.T) {
	t.Parallel()

	t.Run("prints a found result", func(t *testing.T) {
		t.Parallel()

		discoverer := &mock.Discoverer{
			DiscoverFn: func(ctx context.Context, inputURL string, opts llmsdocs.DiscoverOptions) (*llmsdocs.DiscoveryResult, error) {
				assert.Equal(t, "example.com", inputURL)
				return &llmsdocs.DiscoveryResult{
					RunID:       "run-1",
					Found:       true,
					ContentURL:  "https://example.com/llms.txt",
					ContentType: llmsdocs.ContentTypeStandard,
					Method:      "well-known-path",
					Confidence:  llmsdocs.ConfidenceHigh,
					ScannedURLs: []string{"https://example.com/llms.txt"},
				}, nil
			},
		}

		m := newTestMain(t, discoverer)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"discover", "example.com"}, &stdout, &stderr)
		require.NoError(t, err)

		out := stdout.String()
		assert.Contains(t, out, "Found: https://example.com/llms.txt")
		assert.Contains(t, out, "method: well-known-path")
		assert.Contains(t, out, "confidence: high")
	})

	t.Run("json output round-trips", func(t *testing.T) {
		t.Parallel()

		discoverer := &mock.Discoverer{
			DiscoverFn: func(ctx context.Context, inputURL string, opts llmsdocs.DiscoverOptions) (*llmsdocs.DiscoveryResult, error) {
				return &llmsdocs.DiscoveryResult{
					RunID:      "run-2",
					Found:      false,
					Method:     "exhausted",
					Confidence: llmsdocs.ConfidenceLow,
				}, nil
			},
		}

		m := newTestMain(t, discoverer)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"discover", "example.com", "--json"}, &stdout, &stderr)
		require.NoError(t, err)

		var result llmsdocs.DiscoveryResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		assert.Equal(t, "run-2", result.RunID)
		assert.False(t, result.Found)
	})

	t.Run("strategy flags restrict the run", func(t *testing.T) {
		t.Parallel()

		discoverer := &mock.Discoverer{
			DiscoverFn: func(ctx context.Context, inputURL string, opts llmsdocs.DiscoverOptions) (*llmsdocs.DiscoveryResult, error) {
				assert.Equal(t, []string{"robots", "homepage"}, opts.Strategies)
				return &llmsdocs.DiscoveryResult{Found: false}, nil
			},
		}

		m := newTestMain(t, discoverer)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(),
			[]string{"discover", "example.com", "-s", "robots", "-s", "homepage"},
			&stdout, &stderr)
		require.NoError(t, err)
	})
}

func TestRun_Check(t *testing.T) {
	t.Parallel()

	t.Run("found prints OK", func(t *testing.T) {
		t.Parallel()

		discoverer := &mock.Discoverer{
			QuickCheckFn: func(ctx context.Context, url string) (*llmsdocs.DiscoveryResult, error) {
				return &llmsdocs.DiscoveryResult{
					Found:       true,
					ContentURL:  "https://example.com/llms.txt",
					ContentType: llmsdocs.ContentTypeStandard,
				}, nil
			},
		}

		m := newTestMain(t, discoverer)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"check", "https://example.com/llms.txt"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "OK: https://example.com/llms.txt")
	})

	t.Run("miss exits nonzero", func(t *testing.T) {
		t.Parallel()

		discoverer := &mock.Discoverer{
			QuickCheckFn: func(ctx context.Context, url string) (*llmsdocs.DiscoveryResult, error) {
				return &llmsdocs.DiscoveryResult{Found: false}, nil
			},
		}

		m := newTestMain(t, discoverer)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"check", "https://example.com/llms.txt"}, &stdout, &stderr)
		require.Error(t, err)
		assert.Equal(t, llmsdocs.ENOTFOUND, llmsdocs.ErrorCode(err))
		assert.Contains(t, stdout.String(), "Not found")
	})
}

func TestRun_InstallGen(t *testing.T) {
	t.Parallel()

	m := newTestMain(t, nil)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(),
		[]string{"install", "gen", "Widget CLI", "-d", "A CLI for widgets."},
		&stdout, &stderr)
	require.NoError(t, err)

	// Generated output must satisfy its own parser.
	parsed := installmd.Parse(stdout.String())
	assert.True(t, parsed.IsValid, "generated install.md failed validation: %v", parsed.ValidationErrors)
	assert.Equal(t, "Widget CLI", parsed.ProductName)
	assert.Equal(t, "A CLI for widgets.", parsed.Description)
}

func TestRun_InstallParse(t *testing.T) {
	t.Parallel()

	t.Run("valid file passes", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "install.md")
		content := installmd.Generate(installmd.GenerateInput{ProductName: "Widget CLI"})
		require.NoError(t, writeFile(path, content))

		m := newTestMain(t, nil)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"install", "parse", path}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Validation: OK")
		assert.Contains(t, stdout.String(), "Product: Widget CLI")
	})

	t.Run("invalid file reports every failure", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "install.md")
		require.NoError(t, writeFile(path, "just some text"))

		m := newTestMain(t, nil)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"install", "parse", path}, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Validation: FAILED")
		assert.Contains(t, stdout.String(), "Missing OBJECTIVE: line")
	})

	t.Run("quick check only runs the structural gate", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "install.md")
		// Quick check does not require the EXECUTE NOW: marker.
		content := "# Widget CLI\n\nOBJECTIVE: Install it.\nDONE WHEN: It runs.\n\n## TODO\n\n- [ ] Install\n"
		require.NoError(t, writeFile(path, content))

		m := newTestMain(t, nil)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"install", "parse", path, "--quick"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "valid")
	})
}
