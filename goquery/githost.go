package goquery

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// Source tags for git host findings.
const (
	SourceGitHubRaw   = "github-raw"
	SourceGitHubPages = "github-pages"
	SourceGitLabRaw   = "gitlab-raw"
)

// repoLinkPattern extracts owner/repo from GitHub and GitLab project
// URLs. Deeper paths (issues, releases) still resolve to the project.
var repoLinkPattern = regexp.MustCompile(`^https?://(github\.com|gitlab\.com)/([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+?)(?:\.git)?(?:[/?#].*)?$`)

// Ensure GitHostStrategy implements llmsdocs.Strategy.
var _ llmsdocs.Strategy = (*GitHostStrategy)(nil)

// GitHostStrategy looks for a GitHub or GitLab project link on the
// target's homepage. Projects often commit llms.txt to the repository
// root or docs/ directory, reachable through the raw file hosts, and
// GitHub projects may publish it via Pages.
type GitHostStrategy struct {
	fetcher llmsdocs.Fetcher
}

// NewGitHostStrategy creates a GitHostStrategy fetching through fetcher.
func NewGitHostStrategy(fetcher llmsdocs.Fetcher) *GitHostStrategy {
	return &GitHostStrategy{fetcher: fetcher}
}

// Name implements llmsdocs.Strategy.
func (s *GitHostStrategy) Name() string { return "githost" }

// Probe fetches the homepage, picks the first repository link, and
// expands it into raw-file and Pages candidates. Both the main and
// master default branches are tried since either may be current.
func (s *GitHostStrategy) Probe(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
	res, err := s.fetcher.Fetch(ctx, target.Protocol+"://"+target.Hostname+"/")
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, llmsdocs.Errorf(llmsdocs.ENOTFOUND, "host %s not reachable", target.Hostname)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		return nil, llmsdocs.Errorf(llmsdocs.EINVALID, "parsing homepage HTML: %v", err)
	}

	host, owner, repo, repoURL := findRepoLink(doc)
	if repoURL == "" {
		return nil, llmsdocs.Errorf(llmsdocs.ENOTFOUND, "no repository link on homepage of %s", target.Hostname)
	}

	report := &llmsdocs.ProbeReport{
		Hints: llmsdocs.PlatformHints{GitRepoURL: repoURL},
	}
	report.Candidates = repoCandidates(host, owner, repo)
	return report, nil
}

// findRepoLink returns the first GitHub or GitLab project link in the
// document, skipping links to the host's own marketing pages.
func findRepoLink(doc *goquery.Document) (host, owner, repo, repoURL string) {
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		m := repoLinkPattern.FindStringSubmatch(strings.TrimSpace(href))
		if m == nil {
			return true
		}
		// Org-level and site-section links are not projects.
		switch strings.ToLower(m[3]) {
		case "features", "pricing", "about", "enterprise", "explore", "sponsors":
			return true
		}
		host, owner, repo = m[1], m[2], m[3]
		repoURL = "https://" + host + "/" + owner + "/" + repo
		return false
	})
	return host, owner, repo, repoURL
}

// repoCandidates expands a project reference into the locations where
// committed documentation tends to surface.
func repoCandidates(host, owner, repo string) []llmsdocs.Candidate {
	var out []llmsdocs.Candidate
	prio := 15

	add := func(url, source string) {
		out = append(out, llmsdocs.Candidate{URL: url, Priority: prio, Source: source})
		prio++
	}

	switch host {
	case "github.com":
		for _, branch := range []string{"main", "master"} {
			raw := "https://raw.githubusercontent.com/" + owner + "/" + repo + "/" + branch
			add(raw, SourceGitHubRaw)
			add(raw+"/docs", SourceGitHubRaw)
		}
		add("https://"+owner+".github.io/"+repo, SourceGitHubPages)
	case "gitlab.com":
		for _, branch := range []string{"main", "master"} {
			raw := "https://gitlab.com/" + owner + "/" + repo + "/-/raw/" + branch
			add(raw, SourceGitLabRaw)
			add(raw+"/docs", SourceGitLabRaw)
		}
	}

	return out
}
