package goquery_test

import (
	"context"
	"testing"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	llmsdocsgoquery "github.com/nirholas/extract-llms-docs/goquery"
	"github.com/nirholas/extract-llms-docs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetcherServing(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*llmsdocs.FetchResult, error) {
			body, ok := pages[url]
			if !ok {
				return &llmsdocs.FetchResult{FinalURL: url, Status: 404}, nil
			}
			return &llmsdocs.FetchResult{Body: body, FinalURL: url, Status: 200}, nil
		},
	}
}

func TestHomepageStrategy_Probe(t *testing.T) {
	t.Parallel()

	target, err := llmsdocs.ParseURLInfo("https://example.com")
	require.NoError(t, err)

	t.Run("harvests canonical and documentation links", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html><head>
<link rel="canonical" href="https://www.example.com/">
</head><body>
<nav>
  <a href="/docs">Documentation</a>
  <a href="https://developer.example.com">Developers</a>
  <a href="/pricing">Pricing</a>
  <a href="https://twitter.com/example">Twitter</a>
</nav>
</body></html>`

		fetcher := fetcherServing(map[string]string{
			"https://example.com/": html,
		})

		s := llmsdocsgoquery.NewHomepageStrategy(fetcher)
		report, err := s.Probe(context.Background(), target)
		require.NoError(t, err)

		require.Len(t, report.Candidates, 3)

		canonical := report.Candidates[0]
		assert.Equal(t, "https://www.example.com", canonical.URL)
		assert.Equal(t, 20, canonical.Priority)
		assert.Equal(t, llmsdocsgoquery.SourceHomepageCanonical, canonical.Source)

		assert.Equal(t, "https://example.com/docs", report.Candidates[1].URL)
		assert.Equal(t, llmsdocsgoquery.SourceHomepageLink, report.Candidates[1].Source)
		assert.Equal(t, "https://developer.example.com", report.Candidates[2].URL)
	})

	t.Run("skips external non-documentation hosts", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://docs.otherproduct.io/start">Docs</a>
<a href="https://randomblog.net/docs-review">Review of our docs</a>
</body></html>`

		fetcher := fetcherServing(map[string]string{
			"https://example.com/": html,
		})

		s := llmsdocsgoquery.NewHomepageStrategy(fetcher)
		report, err := s.Probe(context.Background(), target)
		require.NoError(t, err)

		// docs.otherproduct.io is a documentation host and survives;
		// randomblog.net does not.
		require.Len(t, report.Candidates, 1)
		assert.Equal(t, "https://docs.otherproduct.io/start", report.Candidates[0].URL)
	})

	t.Run("keeps links to hosted documentation platforms", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://acme.gitbook.io/product">Product guide</a>
<a href="https://acme-api.readme.io/">API docs</a>
</body></html>`

		fetcher := fetcherServing(map[string]string{
			"https://example.com/": html,
		})

		s := llmsdocsgoquery.NewHomepageStrategy(fetcher)
		report, err := s.Probe(context.Background(), target)
		require.NoError(t, err)

		require.Len(t, report.Candidates, 2)
		assert.Equal(t, "https://acme.gitbook.io/product", report.Candidates[0].URL)
		assert.Equal(t, "https://acme-api.readme.io", report.Candidates[1].URL)
	})

	t.Run("class attribute carries the documentation signal", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/start" class="navbar-item docs-link">Start here</a>
<a href="/pricing" class="navbar-item">Pricing</a>
</body></html>`

		fetcher := fetcherServing(map[string]string{
			"https://example.com/": html,
		})

		s := llmsdocsgoquery.NewHomepageStrategy(fetcher)
		report, err := s.Probe(context.Background(), target)
		require.NoError(t, err)

		require.Len(t, report.Candidates, 1)
		assert.Equal(t, "https://example.com/start", report.Candidates[0].URL)
	})

	t.Run("not found when the homepage has no doc links", func(t *testing.T) {
		t.Parallel()

		fetcher := fetcherServing(map[string]string{
			"https://example.com/": `<html><body><a href="/pricing">Pricing</a></body></html>`,
		})

		s := llmsdocsgoquery.NewHomepageStrategy(fetcher)
		_, err := s.Probe(context.Background(), target)
		require.Error(t, err)
		assert.Equal(t, llmsdocs.ENOTFOUND, llmsdocs.ErrorCode(err))
	})

	t.Run("falls back to the bare domain", func(t *testing.T) {
		t.Parallel()

		sub, err := llmsdocs.ParseURLInfo("https://app.example.com")
		require.NoError(t, err)

		fetcher := fetcherServing(map[string]string{
			"https://example.com/": `<html><body><a href="/docs">Docs</a></body></html>`,
		})

		s := llmsdocsgoquery.NewHomepageStrategy(fetcher)
		report, err := s.Probe(context.Background(), sub)
		require.NoError(t, err)
		require.Len(t, report.Candidates, 1)
		assert.Equal(t, "https://example.com/docs", report.Candidates[0].URL)
	})
}
