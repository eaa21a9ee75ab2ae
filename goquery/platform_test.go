package goquery_test

import (
	"context"
	"net/http"
	"testing"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	llmsdocsgoquery "github.com/nirholas/extract-llms-docs/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		header http.Header
		want   string
	}{
		{
			name: "meta generator names the platform",
			body: `<html><head><meta name="generator" content="Docusaurus v3.1.0"></head><body></body></html>`,
			want: "docusaurus",
		},
		{
			name: "mintlify markup",
			body: `<html><body><div id="__mintlify-assistant"></div></body></html>`,
			want: "mintlify",
		},
		{
			name:   "gitbook response header",
			body:   `<html><body></body></html>`,
			header: http.Header{"X-Powered-By": {"GitBook"}},
			want:   "gitbook",
		},
		{
			name: "vitepress selectors",
			body: `<html><body><div id="VPContent"></div></body></html>`,
			want: "vitepress",
		},
		{
			name: "mkdocs material attributes",
			body: `<html><body data-md-color-scheme="default"></body></html>`,
			want: "mkdocs",
		},
		{
			name: "sphinx sidebar",
			body: `<html><body><div class="sphinxsidebar"></div></body></html>`,
			want: "sphinx",
		},
		{
			name: "plain page matches nothing",
			body: `<html><body><h1>Welcome</h1></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := llmsdocsgoquery.DetectPlatform(&llmsdocs.FetchResult{
				Body:   tt.body,
				Status: 200,
				Header: tt.header,
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatformStrategy_Probe(t *testing.T) {
	t.Parallel()

	t.Run("detected platform becomes a high-priority candidate", func(t *testing.T) {
		t.Parallel()

		target, err := llmsdocs.ParseURLInfo("https://docs.example.com")
		require.NoError(t, err)

		fetcher := fetcherServing(map[string]string{
			"https://docs.example.com/": `<html><head><meta name="generator" content="mintlify"></head></html>`,
		})

		s := llmsdocsgoquery.NewPlatformStrategy(fetcher)
		report, err := s.Probe(context.Background(), target)
		require.NoError(t, err)

		assert.Equal(t, "mintlify", report.Hints.Platform)
		require.Len(t, report.Candidates, 1)
		assert.Equal(t, "https://docs.example.com", report.Candidates[0].URL)
		assert.Equal(t, 8, report.Candidates[0].Priority)
		assert.Equal(t, "platform-mintlify", report.Candidates[0].Source)
	})

	t.Run("not found when no platform matches", func(t *testing.T) {
		t.Parallel()

		target, err := llmsdocs.ParseURLInfo("https://example.com")
		require.NoError(t, err)

		fetcher := fetcherServing(map[string]string{
			"https://example.com/": `<html><body>hand-rolled site</body></html>`,
		})

		s := llmsdocsgoquery.NewPlatformStrategy(fetcher)
		_, err = s.Probe(context.Background(), target)
		require.Error(t, err)
		assert.Equal(t, llmsdocs.ENOTFOUND, llmsdocs.ErrorCode(err))
	})
}
