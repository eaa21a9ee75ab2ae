// Package discover orchestrates multi-strategy llms.txt discovery.
// It coordinates the well-known fast path, strategy fan-out, sitemap
// follow-up, and batch candidate verification into a single budgeted
// pipeline.
package discover

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	llmsdocs "github.com/nirholas/extract-llms-docs"
	llmsdocshttp "github.com/nirholas/extract-llms-docs/http"
	"golang.org/x/sync/errgroup"
)

// Pipeline limits.
const (
	// DefaultTimeout is the wall-clock budget for one discovery run.
	DefaultTimeout = 30 * time.Second

	// verifyBatchSize is how many candidates are verified concurrently.
	verifyBatchSize = 8

	// maxScannedURLs caps the total number of candidates verified in
	// one run.
	maxScannedURLs = 100

	// maxSitemapFollowups bounds how many sitemaps the follow-up phase
	// parses.
	maxSitemapFollowups = 3
)

// Method tags reported on results.
const (
	MethodWellKnown  = "well-known-path"
	MethodQuickCheck = "quick-check"
	MethodExhausted  = "exhausted"
)

// Ensure Service implements llmsdocs.Discoverer at compile time.
var _ llmsdocs.Discoverer = (*Service)(nil)

// Service runs the discovery pipeline. Strategies execute concurrently
// and independently; a failing strategy contributes nothing and never
// aborts the run. All network failures during verification collapse
// into a Found=false result rather than an error.
type Service struct {
	Fetcher     llmsdocs.Fetcher
	Strategies  []llmsdocs.Strategy
	Sitemaps    llmsdocs.SitemapParser
	RateLimiter llmsdocs.DomainLimiter
	Cache       llmsdocs.ResultCache
}

// Discover locates llms.txt content for inputURL. The run proceeds in
// phases: well-known fast path, concurrent strategy fan-out, sitemap
// follow-up, then prioritized batch verification. The first verified
// candidate wins; exhausting the budget or the candidate list yields a
// Found=false result.
func (s *Service) Discover(ctx context.Context, inputURL string, opts llmsdocs.DiscoverOptions) (*llmsdocs.DiscoveryResult, error) {
	start := time.Now()

	info, err := llmsdocs.ParseURLInfo(inputURL)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, llmsdocs.NormalizeURLKey(info.BaseURL())); ok {
			return cached, nil
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	run := &runState{
		runID: uuid.New().String(),
		start: start,
		info:  info,
	}

	// Phase 1: direct well-known locations. A hit here skips the
	// strategy machinery entirely.
	if result := s.fastPath(ctx, run); result != nil {
		return s.finish(ctx, run, result), nil
	}

	// Phase 2: strategy fan-out plus the static candidate tables.
	candidates := llmsdocs.GenerateCandidates(info)
	probed, sitemapURLs := s.runStrategies(ctx, run, opts.Strategies)
	candidates = append(candidates, probed...)

	// Phase 3: sitemap follow-up over robots findings and conventional
	// locations.
	candidates = append(candidates, s.followSitemaps(ctx, run, sitemapURLs)...)

	// Phase 4: prioritized verification.
	candidates = llmsdocs.DedupeCandidates(candidates)
	if len(candidates) > maxScannedURLs {
		candidates = candidates[:maxScannedURLs]
	}
	if hit := s.verifyAll(ctx, run, candidates); hit != nil {
		return s.finish(ctx, run, hit.result(run)), nil
	}

	return s.finish(ctx, run, s.notFound(run)), nil
}

// QuickCheck verifies a single URL without strategy fan-out. A URL
// naming a .txt file is checked directly; anything else is treated as a
// site root and probed at the well-known paths.
func (s *Service) QuickCheck(ctx context.Context, url string) (*llmsdocs.DiscoveryResult, error) {
	start := time.Now()

	info, err := llmsdocs.ParseURLInfo(url)
	if err != nil {
		return nil, err
	}

	run := &runState{
		runID: uuid.New().String(),
		start: start,
		info:  info,
	}

	var candidate llmsdocs.Candidate
	if strings.HasSuffix(strings.ToLower(url), ".txt") {
		raw := url
		if !strings.Contains(raw, "://") {
			raw = "https://" + raw
		}
		candidate = llmsdocs.Candidate{URL: raw, Source: llmsdocs.SourceWellKnown}
	} else {
		candidate = llmsdocs.Candidate{URL: info.BaseURL(), Source: llmsdocs.SourceWellKnown}
	}

	hit := s.verify(ctx, run, candidate)
	if hit == nil {
		result := s.notFound(run)
		result.Method = MethodQuickCheck
		result.ElapsedMs = time.Since(start).Milliseconds()
		return result, nil
	}

	result := hit.result(run)
	result.Method = MethodQuickCheck
	result.ElapsedMs = time.Since(start).Milliseconds()
	return result, nil
}

// runState accumulates per-run bookkeeping shared by the phases. The
// mutex guards scanned, which verification goroutines append to
// concurrently.
type runState struct {
	runID string
	start time.Time
	info  *llmsdocs.URLInfo
	hints llmsdocs.PlatformHints

	mu      sync.Mutex
	scanned []string
}

func (r *runState) addScanned(url string) {
	r.mu.Lock()
	r.scanned = append(r.scanned, url)
	r.mu.Unlock()
}

// verification is a confirmed candidate.
type verification struct {
	candidate   llmsdocs.Candidate
	contentURL  string
	finalURL    string
	contentType llmsdocs.ContentType
}

func (v *verification) result(run *runState) *llmsdocs.DiscoveryResult {
	return &llmsdocs.DiscoveryResult{
		RunID:        run.runID,
		Found:        true,
		CanonicalURL: v.finalURL,
		ContentURL:   v.contentURL,
		ContentType:  v.contentType,
		Method:       v.candidate.Source,
		Confidence:   confidenceFor(v.candidate.Source),
	}
}

// fastPath probes the well-known llms.txt locations concurrently. All
// probes settle; the lowest-priority hit wins so the ordering in
// WellKnownCandidates stays authoritative.
func (s *Service) fastPath(ctx context.Context, run *runState) *llmsdocs.DiscoveryResult {
	candidates := llmsdocs.WellKnownCandidates(run.info)
	hits := make([]*verification, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range candidates {
		g.Go(func() error {
			hits[i] = s.verify(gctx, run, c)
			return nil
		})
	}
	_ = g.Wait()

	for _, hit := range hits {
		if hit == nil {
			continue
		}
		result := hit.result(run)
		result.Method = MethodWellKnown
		result.Confidence = llmsdocs.ConfidenceHigh
		return result
	}
	return nil
}

// runStrategies fans out over the configured strategies. Each runs to
// completion or failure on its own; results land in an indexed slice so
// candidate ordering is deterministic regardless of completion order.
// Candidates tagged as sitemap markers are split off for the follow-up
// phase.
func (s *Service) runStrategies(ctx context.Context, run *runState, filter []string) ([]llmsdocs.Candidate, []string) {
	strategies := s.selectStrategies(filter)
	reports := make([]*llmsdocs.ProbeReport, len(strategies))

	g, gctx := errgroup.WithContext(ctx)
	for i, strategy := range strategies {
		g.Go(func() error {
			report, err := strategy.Probe(gctx, run.info)
			if err != nil {
				return nil
			}
			reports[i] = report
			return nil
		})
	}
	_ = g.Wait()

	var candidates []llmsdocs.Candidate
	var sitemapURLs []string
	for _, report := range reports {
		if report == nil {
			continue
		}
		mergeHints(&run.hints, report.Hints)
		for _, c := range report.Candidates {
			if c.Source == llmsdocshttp.SourceRobotsSitemap {
				sitemapURLs = append(sitemapURLs, c.URL)
				continue
			}
			candidates = append(candidates, c)
		}
	}
	return candidates, sitemapURLs
}

func (s *Service) selectStrategies(filter []string) []llmsdocs.Strategy {
	if len(filter) == 0 {
		return s.Strategies
	}
	allowed := make(map[string]bool, len(filter))
	for _, name := range filter {
		allowed[name] = true
	}
	var out []llmsdocs.Strategy
	for _, strategy := range s.Strategies {
		if allowed[strategy.Name()] {
			out = append(out, strategy)
		}
	}
	return out
}

// followSitemaps parses sitemaps found by the robots strategy, falling
// back to the conventional /sitemap.xml locations when robots named
// none.
func (s *Service) followSitemaps(ctx context.Context, run *runState, sitemapURLs []string) []llmsdocs.Candidate {
	if s.Sitemaps == nil {
		return nil
	}

	if len(sitemapURLs) == 0 {
		sitemapURLs = []string{run.info.BaseURL() + "/sitemap.xml"}
		if run.info.Hostname != run.info.FullDomain {
			sitemapURLs = append(sitemapURLs, run.info.FullDomainURL()+"/sitemap.xml")
		}
	}
	if len(sitemapURLs) > maxSitemapFollowups {
		sitemapURLs = sitemapURLs[:maxSitemapFollowups]
	}

	var out []llmsdocs.Candidate
	for _, sm := range sitemapURLs {
		if ctx.Err() != nil {
			break
		}
		cands, err := s.Sitemaps.ParseSitemap(ctx, sm, llmsdocshttp.MaxSitemapDepth)
		if err != nil {
			continue
		}
		out = append(out, cands...)
	}
	return out
}

// verifyAll checks candidates in priority order, verifyBatchSize at a
// time. Within a batch all probes settle and the lowest-index hit wins,
// so a slower high-priority candidate still beats a faster low-priority
// one.
func (s *Service) verifyAll(ctx context.Context, run *runState, candidates []llmsdocs.Candidate) *verification {
	for offset := 0; offset < len(candidates); offset += verifyBatchSize {
		if ctx.Err() != nil {
			return nil
		}

		end := offset + verifyBatchSize
		if end > len(candidates) {
			end = len(candidates)
		}
		batch := candidates[offset:end]
		hits := make([]*verification, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		for i, c := range batch {
			g.Go(func() error {
				hits[i] = s.verify(gctx, run, c)
				return nil
			})
		}
		_ = g.Wait()

		for _, hit := range hits {
			if hit != nil {
				return hit
			}
		}
	}
	return nil
}

func (s *Service) notFound(run *runState) *llmsdocs.DiscoveryResult {
	return &llmsdocs.DiscoveryResult{
		RunID:      run.runID,
		Found:      false,
		Method:     MethodExhausted,
		Confidence: llmsdocs.ConfidenceLow,
	}
}

// finish stamps shared run bookkeeping onto a result and caches it.
func (s *Service) finish(ctx context.Context, run *runState, result *llmsdocs.DiscoveryResult) *llmsdocs.DiscoveryResult {
	result.ScannedURLs = run.scanned
	if result.ScannedURLs == nil {
		result.ScannedURLs = []string{}
	}
	result.ElapsedMs = time.Since(run.start).Milliseconds()
	result.Hints = run.hints

	if s.Cache != nil {
		s.Cache.Set(ctx, llmsdocs.NormalizeURLKey(run.info.BaseURL()), result)
	}
	return result
}

// confidenceFor maps a winning candidate's source to result confidence.
// Explicit user input, direct well-known hits, platform fingerprints,
// and repository links are near-certain; guessed subdomains and paths
// are not.
func confidenceFor(source string) llmsdocs.Confidence {
	switch {
	case source == llmsdocs.SourceUserSubdomain,
		source == llmsdocs.SourceWellKnown,
		strings.HasPrefix(source, "platform-"),
		strings.HasPrefix(source, "github-"),
		strings.HasPrefix(source, "gitlab-"):
		return llmsdocs.ConfidenceHigh
	default:
		return llmsdocs.ConfidenceMedium
	}
}

func mergeHints(dst *llmsdocs.PlatformHints, src llmsdocs.PlatformHints) {
	if dst.Platform == "" {
		dst.Platform = src.Platform
	}
	if dst.GitRepoURL == "" {
		dst.GitRepoURL = src.GitRepoURL
	}
	dst.SitemapFound = dst.SitemapFound || src.SitemapFound
	dst.RobotsFound = dst.RobotsFound || src.RobotsFound
}
