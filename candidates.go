package llmsdocs

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// DocKeywordPattern matches path or host segments that suggest
// documentation content. Shared by the robots, sitemap, and homepage
// strategies.
var DocKeywordPattern = regexp.MustCompile(`(?i)(docs?|api|developer|reference|guide|help)`)

// docSubdomains is the ordered table of common documentation
// subdomains. Order is significant: each entry's table index offsets
// its candidate priority, so ranking is deterministic across runs.
var docSubdomains = []string{
	"docs",
	"api-docs",
	"developers",
	"developer",
	"dev",
	"api",
	"reference",
	"help",
	"support",
	"wiki",
	"kb",
	"knowledge",
	"guide",
	"guides",
	"learn",
	"manual",
	"handbook",
	"documentation",
	"devdocs",
	"docs-api",
	"readme",
	"info",
	"resources",
	"portal",
	"platform",
	"build",
	"builders",
	"engineering",
	"tech",
	"open",
}

// docPaths is the ordered table of common documentation paths,
// applied to both the bare domain and its www variant.
var docPaths = []string{
	"/docs",
	"/documentation",
	"/api",
	"/api-docs",
	"/apis",
	"/reference",
	"/references",
	"/developer",
	"/developers",
	"/dev",
	"/guide",
	"/guides",
	"/help",
	"/support",
	"/manual",
	"/handbook",
	"/learn",
	"/wiki",
	"/kb",
	"/knowledge-base",
	"/resources",
	"/developer-docs",
	"/api-reference",
	"/getting-started",
}

// wellKnownPaths are checked directly during the discovery fast path.
var wellKnownPaths = []string{
	"/.well-known/llms.txt",
	"/.well-known/llms-full.txt",
	"/llms.txt",
	"/llms-full.txt",
}

// Candidate source tags produced by the generator.
const (
	SourceUserSubdomain = "user-provided-subdomain"
	SourceBareDomain    = "bare-domain"
	SourceWWWDomain     = "www-domain"
	SourceSubdomain     = "subdomain-guess"
	SourcePath          = "path-guess"
	SourceWellKnown     = "well-known"
)

// GenerateCandidates produces the ranked list of plausible
// documentation locations for a normalized domain.
//
// Priority bands: 0 honors an explicit user-provided subdomain, 5-6 are
// the bare and www variants, 10+ the subdomain table, 50+ the path
// table. Within a band, table order decides.
func GenerateCandidates(info *URLInfo) []Candidate {
	var out []Candidate

	if info.HasSubdomain {
		out = append(out, Candidate{
			URL:      info.BaseURL(),
			Priority: 0,
			Source:   SourceUserSubdomain,
		})
	}

	out = append(out,
		Candidate{URL: info.FullDomainURL(), Priority: 5, Source: SourceBareDomain},
		Candidate{URL: info.Protocol + "://www." + info.FullDomain, Priority: 6, Source: SourceWWWDomain},
	)

	for i, sub := range docSubdomains {
		out = append(out, Candidate{
			URL:      fmt.Sprintf("%s://%s.%s", info.Protocol, sub, info.FullDomain),
			Priority: 10 + i,
			Source:   SourceSubdomain,
		})
	}

	for i, p := range docPaths {
		out = append(out,
			Candidate{
				URL:      info.FullDomainURL() + p,
				Priority: 50 + 2*i,
				Source:   SourcePath,
			},
			Candidate{
				URL:      info.Protocol + "://www." + info.FullDomain + p,
				Priority: 50 + 2*i + 1,
				Source:   SourcePath,
			},
		)
	}

	return DedupeCandidates(out)
}

// WellKnownCandidates returns the direct llms.txt locations probed by
// the fast path: well-known and root paths against the provided host,
// the bare domain, and the www variant.
func WellKnownCandidates(info *URLInfo) []Candidate {
	hosts := []string{info.Hostname, info.FullDomain, "www." + info.FullDomain}

	var out []Candidate
	prio := 0
	seen := make(map[string]bool)
	for _, host := range hosts {
		if seen[host] {
			continue
		}
		seen[host] = true
		for _, p := range wellKnownPaths {
			out = append(out, Candidate{
				URL:      info.Protocol + "://" + host + p,
				Priority: prio,
				Source:   SourceWellKnown,
			})
			prio++
		}
	}
	return out
}

// NormalizeURLKey reduces a URL to its deduplication key: scheme and
// authority lowercased, path case preserved, trailing slash stripped,
// query and fragment dropped. Also used as the result-cache key.
func NormalizeURLKey(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(strings.TrimSpace(raw), "/")
	}
	path := strings.TrimSuffix(u.Path, "/")
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + path
}

// DedupeCandidates sorts candidates by ascending priority (stable, so
// table order breaks ties) and removes duplicates by normalized URL.
// The first-seen, lowest-priority instance wins.
func DedupeCandidates(cands []Candidate) []Candidate {
	sorted := make([]Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	seen := make(map[string]bool, len(sorted))
	out := sorted[:0]
	for _, c := range sorted {
		key := NormalizeURLKey(c.URL)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
