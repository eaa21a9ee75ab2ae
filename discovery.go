package llmsdocs

import (
	"context"
	"time"
)

// ContentType classifies discovered llms.txt content.
type ContentType string

// Content type values. Classification is heuristic; see ClassifyContent.
const (
	ContentTypeStandard ContentType = "standard"
	ContentTypeFull     ContentType = "full"
)

// Confidence expresses how much trust a discovery result deserves,
// derived from the strategy that produced the confirmed candidate.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Candidate is a possible llms.txt location produced by a strategy
// during one discovery run. Candidates are ephemeral and never persisted.
type Candidate struct {
	URL      string `json:"url"`
	Priority int    `json:"priority"` // lower = tried first
	Source   string `json:"source"`   // strategy tag, e.g. "well-known", "platform-mintlify"
}

// PlatformHints carries auxiliary findings gathered during discovery.
type PlatformHints struct {
	Platform     string `json:"platform,omitempty"`
	SitemapFound bool   `json:"sitemapFound"`
	RobotsFound  bool   `json:"robotsFound"`
	GitRepoURL   string `json:"gitRepoUrl,omitempty"`
}

// DiscoveryResult is the immutable outcome of one discovery call.
// Not-found is a normal terminal state (Found=false), never an error.
type DiscoveryResult struct {
	RunID        string        `json:"runId"`
	Found        bool          `json:"found"`
	CanonicalURL string        `json:"canonicalUrl,omitempty"`
	ContentURL   string        `json:"contentUrl,omitempty"`
	ContentType  ContentType   `json:"contentType,omitempty"`
	ScannedURLs  []string      `json:"scannedUrls"`
	ElapsedMs    int64         `json:"elapsedMs"`
	Method       string        `json:"method"`
	Confidence   Confidence    `json:"confidence"`
	Hints        PlatformHints `json:"platformHints"`
}

// DiscoverOptions configures a discovery run.
type DiscoverOptions struct {
	// Timeout is the wall-clock budget for the whole run.
	// Defaults to 30s when zero.
	Timeout time.Duration

	// Strategies restricts the run to the named strategies.
	// Nil or empty means all registered strategies.
	Strategies []string
}

// Discoverer locates llms.txt content for a site.
type Discoverer interface {
	// Discover runs the multi-strategy discovery pipeline for inputURL.
	// Returns EINVALID if inputURL cannot be parsed; all network and
	// content failures are absorbed into a Found=false result.
	Discover(ctx context.Context, inputURL string, opts DiscoverOptions) (*DiscoveryResult, error)

	// QuickCheck verifies a single URL without strategy fan-out.
	QuickCheck(ctx context.Context, url string) (*DiscoveryResult, error)
}

// ProbeReport is what one strategy contributes to a discovery run.
type ProbeReport struct {
	Candidates []Candidate
	Hints      PlatformHints
}

// Strategy is an independent probe that suggests candidate locations
// for a normalized target. Implementations must tolerate network
// failure, malformed responses, and timeouts: a failed probe returns
// an error, and the orchestrator treats it as zero candidates. One
// strategy failing never aborts the others.
type Strategy interface {
	// Name returns the strategy's identifier, used for the
	// DiscoverOptions.Strategies filter and result provenance.
	Name() string

	// Probe inspects the target and returns candidate URLs.
	Probe(ctx context.Context, target *URLInfo) (*ProbeReport, error)
}

// SitemapParser extracts documentation-root candidates from sitemap XML.
// Sitemap indexes are followed recursively up to maxDepth.
type SitemapParser interface {
	ParseSitemap(ctx context.Context, sitemapURL string, maxDepth int) ([]Candidate, error)
}
