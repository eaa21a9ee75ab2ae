package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// platformIndicator fingerprints a hosted documentation platform from
// response headers and page markup. Platforms that generate llms.txt
// automatically make the probed host a near-certain hit.
type platformIndicator struct {
	name      string
	headers   []string // substrings matched against lowercased header values
	markers   []string // substrings matched against lowercased HTML
	selectors []string // CSS selectors checked against the parsed document
}

// platformIndicators is ordered by specificity; the first match wins.
// Mintlify, GitBook, and ReadMe serve llms.txt for every hosted site,
// so they come first.
var platformIndicators = []platformIndicator{
	{
		name:    "mintlify",
		headers: []string{"mintlify"},
		markers: []string{"__mintlify", "mintlify-"},
	},
	{
		name:      "gitbook",
		headers:   []string{"gitbook"},
		markers:   []string{"gitbook.com", "gitbook.io"},
		selectors: []string{"[data-testid='space.sidebar']"},
	},
	{
		name:    "readme",
		headers: []string{"readme.io", "readmeio"},
		markers: []string{"readme.io", "readmeio"},
	},
	{
		name:      "docusaurus",
		markers:   []string{"docusaurus"},
		selectors: []string{"#__docusaurus", ".theme-doc-sidebar-container"},
	},
	{
		name:      "vitepress",
		markers:   []string{"vitepress"},
		selectors: []string{"#VPContent", ".VPDoc"},
	},
	{
		name:      "mkdocs",
		markers:   []string{"mkdocs"},
		selectors: []string{"[data-md-color-scheme]", ".md-nav--primary"},
	},
	{
		name:      "sphinx",
		markers:   []string{"sphinx"},
		selectors: []string{".sphinxsidebar", ".toctree-wrapper"},
	},
	{
		name:    "readthedocs",
		headers: []string{"readthedocs"},
		markers: []string{"readthedocs.org"},
	},
	{
		name:    "docsify",
		markers: []string{"docsify"},
	},
	{
		name:    "notion",
		markers: []string{"notion.so", "notion-page"},
	},
	{
		name:    "confluence",
		markers: []string{"confluence", "atlassian"},
	},
}

// PlatformSource returns the candidate source tag for a platform name.
func PlatformSource(name string) string { return "platform-" + name }

// isPlatformHost reports whether host belongs to a known hosted
// documentation platform (foo.gitbook.io, project.readme.io).
func isPlatformHost(host string) bool {
	for _, ind := range platformIndicators {
		if strings.Contains(host, ind.name) {
			return true
		}
	}
	return false
}

// Ensure PlatformStrategy implements llmsdocs.Strategy.
var _ llmsdocs.Strategy = (*PlatformStrategy)(nil)

// PlatformStrategy fingerprints the documentation platform serving the
// target host. Hosted platforms that emit llms.txt for every site turn
// the probed host into a high-priority candidate.
type PlatformStrategy struct {
	fetcher llmsdocs.Fetcher
}

// NewPlatformStrategy creates a PlatformStrategy fetching through fetcher.
func NewPlatformStrategy(fetcher llmsdocs.Fetcher) *PlatformStrategy {
	return &PlatformStrategy{fetcher: fetcher}
}

// Name implements llmsdocs.Strategy.
func (s *PlatformStrategy) Name() string { return "platform" }

// Probe fetches the target host's homepage and matches it against the
// indicator table.
func (s *PlatformStrategy) Probe(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
	res, err := s.fetcher.Fetch(ctx, target.Protocol+"://"+target.Hostname+"/")
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, llmsdocs.Errorf(llmsdocs.ENOTFOUND, "host %s not reachable", target.Hostname)
	}

	platform := DetectPlatform(res)
	if platform == "" {
		return nil, llmsdocs.Errorf(llmsdocs.ENOTFOUND, "no known platform markers on %s", target.Hostname)
	}

	return &llmsdocs.ProbeReport{
		Candidates: []llmsdocs.Candidate{
			{
				URL:      target.Protocol + "://" + target.Hostname,
				Priority: 8,
				Source:   PlatformSource(platform),
			},
		},
		Hints: llmsdocs.PlatformHints{Platform: platform},
	}, nil
}

// DetectPlatform identifies the documentation platform behind a fetched
// page, or returns the empty string when nothing matches. The meta
// generator tag is checked first since it names the generator outright.
func DetectPlatform(res *llmsdocs.FetchResult) string {
	html := strings.ToLower(res.Body)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		doc = nil
	}

	if doc != nil {
		if generator, ok := doc.Find("meta[name='generator']").Attr("content"); ok {
			lower := strings.ToLower(generator)
			for _, ind := range platformIndicators {
				if strings.Contains(lower, ind.name) {
					return ind.name
				}
			}
		}
	}

	headerBlob := strings.ToLower(headerString(res))
	for _, ind := range platformIndicators {
		for _, h := range ind.headers {
			if strings.Contains(headerBlob, h) {
				return ind.name
			}
		}
		if doc != nil {
			for _, sel := range ind.selectors {
				if doc.Find(sel).Length() > 0 {
					return ind.name
				}
			}
		}
		for _, m := range ind.markers {
			if strings.Contains(html, m) {
				return ind.name
			}
		}
	}

	return ""
}

func headerString(res *llmsdocs.FetchResult) string {
	if res.Header == nil {
		return ""
	}
	var sb strings.Builder
	for k, vs := range res.Header {
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(vs, ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}
