package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	llmsdocs "github.com/nirholas/extract-llms-docs"
	"github.com/nirholas/extract-llms-docs/bloom"
)

// Sitemap traversal limits.
const (
	// MaxSitemapDepth caps recursion into nested sitemap indexes.
	MaxSitemapDepth = 2

	// sitemapExpectedURLs sizes the Bloom filter used to dedupe URLs
	// across nested sitemaps.
	sitemapExpectedURLs = 10000
	sitemapFPRate       = 0.01

	// maxCandidatesPerSitemap bounds how many documentation roots one
	// sitemap tree can contribute.
	maxCandidatesPerSitemap = 25
)

// Ensure SitemapService implements llmsdocs.SitemapParser.
var _ llmsdocs.SitemapParser = (*SitemapService)(nil)

// SitemapService extracts documentation-root candidates from sitemap
// XML. Sitemap indexes are resolved recursively up to MaxSitemapDepth;
// a Bloom filter guards against cycles and duplicates across the tree.
type SitemapService struct {
	fetcher llmsdocs.Fetcher
}

// NewSitemapService creates a SitemapService fetching through fetcher.
func NewSitemapService(fetcher llmsdocs.Fetcher) *SitemapService {
	return &SitemapService{fetcher: fetcher}
}

// ParseSitemap fetches and parses a sitemap, returning candidates for
// documentation roots referenced by its <loc> entries. Malformed XML
// and fetch failures yield an error; the orchestrator treats any error
// as zero candidates.
func (s *SitemapService) ParseSitemap(ctx context.Context, sitemapURL string, maxDepth int) ([]llmsdocs.Candidate, error) {
	if maxDepth <= 0 || maxDepth > MaxSitemapDepth {
		maxDepth = MaxSitemapDepth
	}
	seen := bloom.NewFilter(sitemapExpectedURLs, sitemapFPRate)
	return s.parse(ctx, sitemapURL, maxDepth, seen)
}

func (s *SitemapService) parse(ctx context.Context, sitemapURL string, depth int, seen *bloom.Filter) ([]llmsdocs.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen.TestAndAdd(llmsdocs.NormalizeURLKey(sitemapURL)) {
		return nil, nil
	}

	res, err := s.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, llmsdocs.Errorf(llmsdocs.ENOTFOUND, "sitemap not found at %s", sitemapURL)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(res.Body); err != nil {
		return nil, llmsdocs.Errorf(llmsdocs.EINVALID, "parsing sitemap XML from %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, llmsdocs.Errorf(llmsdocs.EINVALID, "empty sitemap XML at %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		return s.parseIndex(ctx, root, depth, seen)
	}
	return parseURLSet(root, seen), nil
}

// parseIndex recurses into nested sitemaps while depth remains.
func (s *SitemapService) parseIndex(ctx context.Context, root *etree.Element, depth int, seen *bloom.Filter) ([]llmsdocs.Candidate, error) {
	if depth <= 0 {
		return nil, nil
	}

	var all []llmsdocs.Candidate
	for _, sm := range root.SelectElements("sitemap") {
		loc := sm.SelectElement("loc")
		if loc == nil {
			continue
		}
		nested := strings.TrimSpace(loc.Text())
		if nested == "" {
			continue
		}

		// A failing nested sitemap contributes nothing; the rest of
		// the index is still worth walking.
		cands, err := s.parse(ctx, nested, depth-1, seen)
		if err != nil {
			if ctx.Err() != nil {
				return all, ctx.Err()
			}
			continue
		}
		all = append(all, cands...)
		if len(all) >= maxCandidatesPerSitemap {
			return all[:maxCandidatesPerSitemap], nil
		}
	}
	return all, nil
}

// parseURLSet extracts documentation roots from a <urlset> element.
func parseURLSet(root *etree.Element, seen *bloom.Filter) []llmsdocs.Candidate {
	var out []llmsdocs.Candidate
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u == "" || !llmsdocs.DocKeywordPattern.MatchString(u) {
			continue
		}

		docRoot, ok := DocRootForURL(u)
		if !ok {
			continue
		}
		if seen.TestAndAdd(llmsdocs.NormalizeURLKey(docRoot)) {
			continue
		}

		out = append(out, llmsdocs.Candidate{
			URL:      docRoot,
			Priority: 40,
			Source:   "sitemap",
		})
		if len(out) >= maxCandidatesPerSitemap {
			break
		}
	}
	return out
}

// DocRootForURL walks a URL's path segments and truncates at the first
// segment matching the documentation keyword pattern, treating that
// prefix as a documentation root. A host-only match (docs.example.com)
// roots at the host itself.
func DocRootForURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}

	for _, seg := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if seg == "" {
			continue
		}
		if llmsdocs.DocKeywordPattern.MatchString(seg) {
			idx := strings.Index(u.Path, "/"+seg)
			return u.Scheme + "://" + u.Host + u.Path[:idx+len(seg)+1], true
		}
	}

	if llmsdocs.DocKeywordPattern.MatchString(u.Host) {
		return u.Scheme + "://" + u.Host, true
	}

	return "", false
}
