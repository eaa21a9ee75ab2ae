package mem_test

import (
	"context"
	"testing"
	"time"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	"github.com/nirholas/extract-llms-docs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round-trips a result", func(t *testing.T) {
		t.Parallel()

		c := mem.NewResultCache(time.Minute)
		c.Set(ctx, "https://example.com", &llmsdocs.DiscoveryResult{
			RunID:      "run-1",
			Found:      true,
			ContentURL: "https://example.com/llms.txt",
		})

		got, ok := c.Get(ctx, "https://example.com")
		require.True(t, ok)
		assert.Equal(t, "run-1", got.RunID)
		assert.True(t, got.Found)
	})

	t.Run("misses on unknown keys", func(t *testing.T) {
		t.Parallel()

		c := mem.NewResultCache(time.Minute)
		_, ok := c.Get(ctx, "https://nowhere.dev")
		assert.False(t, ok)
	})

	t.Run("expires entries after the TTL", func(t *testing.T) {
		t.Parallel()

		c := mem.NewResultCache(10 * time.Millisecond)
		c.Set(ctx, "https://example.com", &llmsdocs.DiscoveryResult{Found: true})

		time.Sleep(30 * time.Millisecond)

		_, ok := c.Get(ctx, "https://example.com")
		assert.False(t, ok)
		assert.Zero(t, c.Len())
	})

	t.Run("callers cannot mutate cached state", func(t *testing.T) {
		t.Parallel()

		c := mem.NewResultCache(time.Minute)
		original := &llmsdocs.DiscoveryResult{
			Found:       true,
			ScannedURLs: []string{"https://example.com/llms.txt"},
		}
		c.Set(ctx, "https://example.com", original)

		// Mutating what we stored and what we read back must not leak
		// into the cache.
		original.ScannedURLs[0] = "clobbered"
		got, ok := c.Get(ctx, "https://example.com")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/llms.txt", got.ScannedURLs[0])

		got.ScannedURLs[0] = "clobbered again"
		again, ok := c.Get(ctx, "https://example.com")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/llms.txt", again.ScannedURLs[0])
	})

	t.Run("ignores nil results", func(t *testing.T) {
		t.Parallel()

		c := mem.NewResultCache(time.Minute)
		c.Set(ctx, "https://example.com", nil)
		assert.Zero(t, c.Len())
	})
}
