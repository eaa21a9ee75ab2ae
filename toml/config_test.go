package toml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	llmsdocstoml "github.com/nirholas/extract-llms-docs/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := llmsdocstoml.Load(filepath.Join(t.TempDir(), "config.toml"))
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.Timeout())
		assert.Equal(t, time.Hour, cfg.CacheTTL())
		assert.Equal(t, "llms-docs", cfg.Output.Dir)
		assert.InDelta(t, 4.0, cfg.HTTP.RequestsPerSecond, 0.001)
	})

	t.Run("file values layer over defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[discovery]
timeout_seconds = 10
strategies = ["robots", "homepage"]

[output]
dir = "out"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := llmsdocstoml.Load(path)
		require.NoError(t, err)

		assert.Equal(t, 10*time.Second, cfg.Timeout())
		assert.Equal(t, []string{"robots", "homepage"}, cfg.Discovery.Strategies)
		assert.Equal(t, "out", cfg.Output.Dir)
		// Untouched sections keep their defaults.
		assert.InDelta(t, 4.0, cfg.HTTP.RequestsPerSecond, 0.001)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[discovery\nbroken"), 0600))

		_, err := llmsdocstoml.Load(path)
		assert.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := llmsdocstoml.Default()
	cfg.Discovery.TimeoutSeconds = 15
	cfg.Gemini.APIKey = "test-key"

	require.NoError(t, llmsdocstoml.Save(path, cfg))

	loaded, err := llmsdocstoml.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, loaded.Timeout())
	assert.Equal(t, "test-key", loaded.Gemini.APIKey)
}
