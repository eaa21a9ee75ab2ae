package http

import (
	"bufio"
	"context"
	"strings"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// Source tags for robots.txt findings. Candidates tagged
// SourceRobotsSitemap carry sitemap URLs for the orchestrator's sitemap
// follow-up phase rather than locations to verify directly.
const (
	SourceRobotsSitemap = "robots-sitemap"
	SourceRobotsAllow   = "robots-allow"
)

// Ensure RobotsStrategy implements llmsdocs.Strategy.
var _ llmsdocs.Strategy = (*RobotsStrategy)(nil)

// RobotsStrategy probes /robots.txt for Sitemap: directives and Allow:
// rules whose paths look like documentation.
type RobotsStrategy struct {
	fetcher llmsdocs.Fetcher
}

// NewRobotsStrategy creates a RobotsStrategy fetching through fetcher.
func NewRobotsStrategy(fetcher llmsdocs.Fetcher) *RobotsStrategy {
	return &RobotsStrategy{fetcher: fetcher}
}

// Name implements llmsdocs.Strategy.
func (s *RobotsStrategy) Name() string { return "robots" }

// Probe fetches robots.txt from the provided host, falling back to the
// bare domain when the host variant is missing.
func (s *RobotsStrategy) Probe(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
	hosts := []string{target.Hostname}
	if target.FullDomain != target.Hostname {
		hosts = append(hosts, target.FullDomain)
	}

	for _, host := range hosts {
		res, err := s.fetcher.Fetch(ctx, target.Protocol+"://"+host+"/robots.txt")
		if err != nil || !res.OK() {
			continue
		}
		report := parseRobots(res.Body, target.Protocol+"://"+host)
		report.Hints.RobotsFound = true
		return report, nil
	}

	return nil, llmsdocs.Errorf(llmsdocs.ENOTFOUND, "no robots.txt for %s", target.Hostname)
}

// parseRobots extracts the directives discovery cares about. Everything
// else in the file is ignored.
func parseRobots(body, base string) *llmsdocs.ProbeReport {
	report := &llmsdocs.ProbeReport{}
	allowRank := 0

	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lower, "sitemap:"):
			sitemapURL := strings.TrimSpace(line[len("sitemap:"):])
			if sitemapURL == "" {
				continue
			}
			report.Candidates = append(report.Candidates, llmsdocs.Candidate{
				URL:      sitemapURL,
				Priority: 40,
				Source:   SourceRobotsSitemap,
			})
			report.Hints.SitemapFound = true

		case strings.HasPrefix(lower, "allow:"):
			path := strings.TrimSpace(line[len("allow:"):])
			if path == "" || !strings.HasPrefix(path, "/") {
				continue
			}
			// Wildcard rules don't name a concrete location.
			if strings.ContainsAny(path, "*$") {
				continue
			}
			if !llmsdocs.DocKeywordPattern.MatchString(path) {
				continue
			}
			report.Candidates = append(report.Candidates, llmsdocs.Candidate{
				URL:      base + strings.TrimSuffix(path, "/"),
				Priority: 30 + allowRank,
				Source:   SourceRobotsAllow,
			})
			allowRank++
		}
	}

	return report
}
