package discover_test

import (
	"context"
	"testing"
	"time"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	"github.com/nirholas/extract-llms-docs/discover"
	"github.com/nirholas/extract-llms-docs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleIndex = `# Example Docs

> Documentation index for Example.

- [Getting Started](https://example.com/docs/start)
- [API Reference](https://example.com/docs/api)
`

func fetcherServing(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*llmsdocs.FetchResult, error) {
			body, ok := pages[url]
			if !ok {
				return &llmsdocs.FetchResult{FinalURL: url, Status: 404}, nil
			}
			return &llmsdocs.FetchResult{Body: body, FinalURL: url, Status: 200}, nil
		},
		ExistsFn: func(ctx context.Context, url string) (bool, error) {
			_, ok := pages[url]
			return ok, nil
		},
	}
}

func TestService_Discover(t *testing.T) {
	t.Parallel()

	t.Run("well-known fast path short-circuits", func(t *testing.T) {
		t.Parallel()

		s := &discover.Service{
			Fetcher: fetcherServing(map[string]string{
				"https://example.com/llms.txt": sampleIndex,
			}),
			Strategies: []llmsdocs.Strategy{
				// A strategy that panics if the fast path fails to
				// short-circuit.
				&mock.Strategy{ProbeFn: func(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
					t.Error("strategy probed despite fast-path hit")
					return nil, nil
				}},
			},
		}

		result, err := s.Discover(context.Background(), "example.com", llmsdocs.DiscoverOptions{})
		require.NoError(t, err)

		assert.True(t, result.Found)
		assert.Equal(t, "https://example.com/llms.txt", result.ContentURL)
		assert.Equal(t, llmsdocs.ContentTypeStandard, result.ContentType)
		assert.Equal(t, discover.MethodWellKnown, result.Method)
		assert.Equal(t, llmsdocs.ConfidenceHigh, result.Confidence)
		assert.NotEmpty(t, result.RunID)
		assert.NotEmpty(t, result.ScannedURLs)
	})

	t.Run("invalid input is an error, not a miss", func(t *testing.T) {
		t.Parallel()

		s := &discover.Service{Fetcher: fetcherServing(nil)}
		_, err := s.Discover(context.Background(), "not a url", llmsdocs.DiscoverOptions{})
		require.Error(t, err)
		assert.Equal(t, llmsdocs.EINVALID, llmsdocs.ErrorCode(err))
	})

	t.Run("strategy candidates are verified after the fast path misses", func(t *testing.T) {
		t.Parallel()

		s := &discover.Service{
			Fetcher: fetcherServing(map[string]string{
				"https://docs.example-site.dev/llms-full.txt": sampleIndex,
			}),
			Strategies: []llmsdocs.Strategy{
				&mock.Strategy{
					NameFn: func() string { return "platform" },
					ProbeFn: func(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
						return &llmsdocs.ProbeReport{
							Candidates: []llmsdocs.Candidate{
								{URL: "https://docs.example-site.dev", Priority: 8, Source: "platform-mintlify"},
							},
							Hints: llmsdocs.PlatformHints{Platform: "mintlify"},
						}, nil
					},
				},
			},
		}

		result, err := s.Discover(context.Background(), "example-site.dev", llmsdocs.DiscoverOptions{})
		require.NoError(t, err)

		assert.True(t, result.Found)
		assert.Equal(t, "https://docs.example-site.dev/llms-full.txt", result.ContentURL)
		assert.Equal(t, "platform-mintlify", result.Method)
		assert.Equal(t, llmsdocs.ConfidenceHigh, result.Confidence)
		assert.Equal(t, "mintlify", result.Hints.Platform)
	})

	t.Run("one failing strategy never aborts the others", func(t *testing.T) {
		t.Parallel()

		s := &discover.Service{
			Fetcher: fetcherServing(map[string]string{
				"https://developer.failover.io/llms.txt": sampleIndex,
			}),
			Strategies: []llmsdocs.Strategy{
				&mock.Strategy{
					NameFn: func() string { return "broken" },
					ProbeFn: func(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
						return nil, llmsdocs.Errorf(llmsdocs.EUNAVAILABLE, "probe exploded")
					},
				},
				&mock.Strategy{
					NameFn: func() string { return "working" },
					ProbeFn: func(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
						return &llmsdocs.ProbeReport{
							Candidates: []llmsdocs.Candidate{
								{URL: "https://developer.failover.io", Priority: 1, Source: "homepage-link"},
							},
						}, nil
					},
				},
			},
		}

		result, err := s.Discover(context.Background(), "failover.io", llmsdocs.DiscoverOptions{})
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, "homepage-link", result.Method)
		assert.Equal(t, llmsdocs.ConfidenceMedium, result.Confidence)
	})

	t.Run("exhausted candidates yield a found=false result", func(t *testing.T) {
		t.Parallel()

		s := &discover.Service{Fetcher: fetcherServing(nil)}

		result, err := s.Discover(context.Background(), "nothing-here.org", llmsdocs.DiscoverOptions{})
		require.NoError(t, err)

		assert.False(t, result.Found)
		assert.Equal(t, discover.MethodExhausted, result.Method)
		assert.Equal(t, llmsdocs.ConfidenceLow, result.Confidence)
		assert.NotEmpty(t, result.ScannedURLs)
		assert.NotEmpty(t, result.RunID)
	})

	t.Run("sitemap follow-up contributes verified candidates", func(t *testing.T) {
		t.Parallel()

		s := &discover.Service{
			Fetcher: fetcherServing(map[string]string{
				"https://mapped.io/guide/llms.txt": sampleIndex,
			}),
			Strategies: []llmsdocs.Strategy{
				&mock.Strategy{
					NameFn: func() string { return "robots" },
					ProbeFn: func(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
						return &llmsdocs.ProbeReport{
							Candidates: []llmsdocs.Candidate{
								{URL: "https://mapped.io/sitemap.xml", Priority: 40, Source: "robots-sitemap"},
							},
							Hints: llmsdocs.PlatformHints{RobotsFound: true, SitemapFound: true},
						}, nil
					},
				},
			},
			Sitemaps: &mock.SitemapParser{
				ParseSitemapFn: func(ctx context.Context, sitemapURL string, maxDepth int) ([]llmsdocs.Candidate, error) {
					assert.Equal(t, "https://mapped.io/sitemap.xml", sitemapURL)
					return []llmsdocs.Candidate{
						{URL: "https://mapped.io/guide", Priority: 1, Source: "sitemap"},
					}, nil
				},
			},
		}

		result, err := s.Discover(context.Background(), "mapped.io", llmsdocs.DiscoverOptions{})
		require.NoError(t, err)

		assert.True(t, result.Found)
		assert.Equal(t, "https://mapped.io/guide/llms.txt", result.ContentURL)
		assert.Equal(t, "sitemap", result.Method)
		assert.True(t, result.Hints.SitemapFound)
		assert.True(t, result.Hints.RobotsFound)
	})

	t.Run("strategies option restricts the fan-out", func(t *testing.T) {
		t.Parallel()

		var excludedRan bool
		s := &discover.Service{
			Fetcher: fetcherServing(nil),
			Strategies: []llmsdocs.Strategy{
				&mock.Strategy{
					NameFn: func() string { return "robots" },
					ProbeFn: func(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
						return &llmsdocs.ProbeReport{}, nil
					},
				},
				&mock.Strategy{
					NameFn: func() string { return "homepage" },
					ProbeFn: func(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
						excludedRan = true
						return &llmsdocs.ProbeReport{}, nil
					},
				},
			},
		}

		_, err := s.Discover(context.Background(), "filtered.dev", llmsdocs.DiscoverOptions{
			Strategies: []string{"robots"},
		})
		require.NoError(t, err)
		assert.False(t, excludedRan)
	})

	t.Run("cached results are returned without probing", func(t *testing.T) {
		t.Parallel()

		cached := &llmsdocs.DiscoveryResult{
			RunID:      "cached-run",
			Found:      true,
			ContentURL: "https://cached.dev/llms.txt",
		}
		var fetched bool

		s := &discover.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*llmsdocs.FetchResult, error) {
					fetched = true
					return &llmsdocs.FetchResult{FinalURL: url, Status: 404}, nil
				},
			},
			Cache: &mock.ResultCache{
				GetFn: func(ctx context.Context, key string) (*llmsdocs.DiscoveryResult, bool) {
					return cached, true
				},
			},
		}

		result, err := s.Discover(context.Background(), "cached.dev", llmsdocs.DiscoverOptions{})
		require.NoError(t, err)
		assert.Same(t, cached, result)
		assert.False(t, fetched)
	})

	t.Run("budget expiry produces found=false within the deadline", func(t *testing.T) {
		t.Parallel()

		s := &discover.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*llmsdocs.FetchResult, error) {
					<-ctx.Done()
					return nil, ctx.Err()
				},
			},
		}

		start := time.Now()
		result, err := s.Discover(context.Background(), "slow.dev", llmsdocs.DiscoverOptions{
			Timeout: 50 * time.Millisecond,
		})
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestService_QuickCheck(t *testing.T) {
	t.Parallel()

	t.Run("verifies a direct .txt url", func(t *testing.T) {
		t.Parallel()

		s := &discover.Service{
			Fetcher: fetcherServing(map[string]string{
				"https://example.com/llms-full.txt": sampleIndex + "\n## Section\n\nMore than fifty characters of body text right here.",
			}),
		}

		result, err := s.QuickCheck(context.Background(), "https://example.com/llms-full.txt")
		require.NoError(t, err)

		assert.True(t, result.Found)
		assert.Equal(t, llmsdocs.ContentTypeFull, result.ContentType)
		assert.Equal(t, discover.MethodQuickCheck, result.Method)
	})

	t.Run("probes well-known paths for a site root", func(t *testing.T) {
		t.Parallel()

		s := &discover.Service{
			Fetcher: fetcherServing(map[string]string{
				"https://example.com/llms.txt": sampleIndex,
			}),
		}

		result, err := s.QuickCheck(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, "https://example.com/llms.txt", result.ContentURL)
	})

	t.Run("miss is found=false", func(t *testing.T) {
		t.Parallel()

		s := &discover.Service{Fetcher: fetcherServing(nil)}
		result, err := s.QuickCheck(context.Background(), "https://example.com/llms.txt")
		require.NoError(t, err)
		assert.False(t, result.Found)
	})
}
