package discover

import (
	"context"
	"net/url"
	"strings"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// verify confirms whether a candidate actually serves llms.txt content.
// A candidate already naming a .txt file is fetched directly; site-root
// candidates are probed at /llms.txt first and /llms-full.txt second.
// Any fetch failure or implausible body disqualifies that location
// without error: verification answers yes or no, nothing else.
func (s *Service) verify(ctx context.Context, run *runState, c llmsdocs.Candidate) *verification {
	for _, probeURL := range probeURLs(c.URL) {
		if ctx.Err() != nil {
			return nil
		}
		if s.RateLimiter != nil {
			if err := s.RateLimiter.Wait(ctx, domainOf(probeURL)); err != nil {
				return nil
			}
		}

		run.addScanned(probeURL)

		res, err := s.Fetcher.Fetch(ctx, probeURL)
		if err != nil || !res.OK() {
			continue
		}
		if !llmsdocs.IsLikelyLLMSContent(res.Body) {
			continue
		}

		return &verification{
			candidate:   c,
			contentURL:  probeURL,
			finalURL:    res.FinalURL,
			contentType: llmsdocs.ClassifyContent(res.Body),
		}
	}
	return nil
}

func probeURLs(base string) []string {
	trimmed := strings.TrimSuffix(base, "/")
	if strings.HasSuffix(strings.ToLower(trimmed), ".txt") {
		return []string{trimmed}
	}
	return []string{trimmed + "/llms.txt", trimmed + "/llms-full.txt"}
}

func domainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Hostname()
}
