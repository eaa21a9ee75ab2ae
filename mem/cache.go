// Package mem provides in-memory implementations of llmsdocs storage
// interfaces.
package mem

import (
	"context"
	"sync"
	"time"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// DefaultTTL is how long cached discovery results stay valid. Sites
// adopt llms.txt rarely enough that an hour of staleness is harmless.
const DefaultTTL = time.Hour

// Ensure ResultCache implements llmsdocs.ResultCache.
var _ llmsdocs.ResultCache = (*ResultCache)(nil)

// ResultCache is a TTL-bounded in-memory cache of discovery results,
// keyed by normalized site URL. Safe for concurrent use. Expired
// entries are dropped lazily on read.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	result  *llmsdocs.DiscoveryResult
	expires time.Time
}

// NewResultCache creates a ResultCache with the given TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached result for key, if present and unexpired.
func (c *ResultCache) Get(ctx context.Context, key string) (*llmsdocs.DiscoveryResult, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return copyResult(e.result), true
}

// Set stores result under key. Nil results are ignored.
func (c *ResultCache) Set(ctx context.Context, key string, result *llmsdocs.DiscoveryResult) {
	if result == nil {
		return
	}

	c.mu.Lock()
	c.entries[key] = entry{
		result:  copyResult(result),
		expires: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Len reports the number of entries currently stored, including any
// not yet lazily expired.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// copyResult deep-copies a result so cached state is immune to caller
// mutation.
func copyResult(r *llmsdocs.DiscoveryResult) *llmsdocs.DiscoveryResult {
	out := *r
	if r.ScannedURLs != nil {
		out.ScannedURLs = make([]string, len(r.ScannedURLs))
		copy(out.ScannedURLs, r.ScannedURLs)
	}
	return &out
}
