package llmsdocs

import "context"

// ResultCache stores discovery results keyed by normalized URL.
// The orchestrator consults it before any network work; a nil cache
// disables caching.
type ResultCache interface {
	// Get returns the cached result for a normalized URL key,
	// or false if absent or expired.
	Get(ctx context.Context, key string) (*DiscoveryResult, bool)

	// Set stores a deep copy of the result under the key.
	Set(ctx context.Context, key string, result *DiscoveryResult)
}
