// Package goquery provides discovery strategies that scrape HTML with
// CSS selectors: homepage link harvesting, documentation platform
// fingerprinting, and git host detection.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// Source tags for homepage findings.
const (
	SourceHomepageCanonical = "homepage-canonical"
	SourceHomepageLink      = "homepage-link"
)

// maxHomepageCandidates bounds how many links one homepage contributes.
const maxHomepageCandidates = 10

// Ensure HomepageStrategy implements llmsdocs.Strategy.
var _ llmsdocs.Strategy = (*HomepageStrategy)(nil)

// HomepageStrategy fetches the site's homepage and harvests links that
// look like documentation entry points: the rel=canonical URL and
// anchors whose href or text carries a documentation keyword.
type HomepageStrategy struct {
	fetcher llmsdocs.Fetcher
}

// NewHomepageStrategy creates a HomepageStrategy fetching through fetcher.
func NewHomepageStrategy(fetcher llmsdocs.Fetcher) *HomepageStrategy {
	return &HomepageStrategy{fetcher: fetcher}
}

// Name implements llmsdocs.Strategy.
func (s *HomepageStrategy) Name() string { return "homepage" }

// Probe fetches the homepage from the provided host, falling back to
// the bare domain when the host variant fails.
func (s *HomepageStrategy) Probe(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
	hosts := []string{target.Hostname}
	if target.FullDomain != target.Hostname {
		hosts = append(hosts, target.FullDomain)
	}

	for _, host := range hosts {
		res, err := s.fetcher.Fetch(ctx, target.Protocol+"://"+host+"/")
		if err != nil || !res.OK() {
			continue
		}
		return s.harvest(res, target)
	}

	return nil, llmsdocs.Errorf(llmsdocs.ENOTFOUND, "no reachable homepage for %s", target.Hostname)
}

func (s *HomepageStrategy) harvest(res *llmsdocs.FetchResult, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		return nil, llmsdocs.Errorf(llmsdocs.EINVALID, "parsing homepage HTML: %v", err)
	}

	base, err := url.Parse(res.FinalURL)
	if err != nil {
		return nil, llmsdocs.Errorf(llmsdocs.EINVALID, "invalid final url %q", res.FinalURL)
	}

	report := &llmsdocs.ProbeReport{}
	seen := map[string]bool{}

	// rel=canonical names the site's preferred address; when it differs
	// from the probed host it is the strongest homepage signal.
	if canonical, ok := doc.Find("link[rel='canonical']").Attr("href"); ok {
		if resolved, ok := resolveLink(base, canonical, target); ok {
			seen[llmsdocs.NormalizeURLKey(resolved)] = true
			report.Candidates = append(report.Candidates, llmsdocs.Candidate{
				URL:      resolved,
				Priority: 20,
				Source:   SourceHomepageCanonical,
			})
		}
	}

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		text := strings.TrimSpace(a.Text())
		class := a.AttrOr("class", "")
		if !llmsdocs.DocKeywordPattern.MatchString(href) &&
			!llmsdocs.DocKeywordPattern.MatchString(text) &&
			!llmsdocs.DocKeywordPattern.MatchString(class) {
			return true
		}

		resolved, ok := resolveLink(base, href, target)
		if !ok {
			return true
		}
		key := llmsdocs.NormalizeURLKey(resolved)
		if seen[key] {
			return true
		}
		seen[key] = true

		report.Candidates = append(report.Candidates, llmsdocs.Candidate{
			URL:      resolved,
			Priority: 35 + len(report.Candidates),
			Source:   SourceHomepageLink,
		})
		return len(report.Candidates) < maxHomepageCandidates
	})

	if len(report.Candidates) == 0 {
		return nil, llmsdocs.Errorf(llmsdocs.ENOTFOUND, "no documentation links on homepage of %s", target.Hostname)
	}
	return report, nil
}

// resolveLink resolves href against base and keeps only http(s) links
// that stay on the target's base domain or point at a documentation
// host elsewhere. Fragments and queries are dropped; links to external
// non-doc hosts are noise.
func resolveLink(base *url.URL, href string, target *llmsdocs.URLInfo) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	u := base.ResolveReference(ref)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	u.Fragment = ""
	u.RawQuery = ""

	host := strings.ToLower(u.Hostname())
	sameDomain := host == target.FullDomain || strings.HasSuffix(host, "."+target.FullDomain)
	if !sameDomain && !llmsdocs.DocKeywordPattern.MatchString(host) && !isPlatformHost(host) {
		return "", false
	}

	return strings.TrimSuffix(u.String(), "/"), true
}
