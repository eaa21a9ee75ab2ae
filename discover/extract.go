package discover

import (
	"context"
	"strings"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	"golang.org/x/sync/errgroup"
)

// siblingConcurrency bounds parallel sibling fetches per extraction.
const siblingConcurrency = 5

// maxSiblings bounds how many referenced sibling files one extraction
// follows. Indexes that link dozens of per-section .txt files would
// otherwise turn one extraction into a crawl.
const maxSiblings = 10

// Extractor fetches a confirmed llms.txt location and turns it into
// structured, per-section documents, following sibling llms*.txt links
// referenced inside the primary content.
type Extractor struct {
	Fetcher     llmsdocs.Fetcher
	RateLimiter llmsdocs.DomainLimiter

	// TokenCounter, when set, replaces the length-based token
	// estimates with exact counts. Counting failures keep the
	// estimate.
	TokenCounter llmsdocs.TokenCounter
}

// Extract fetches url and segments its content. Sibling files are
// fetched concurrently; a failing sibling is skipped, never fatal. The
// primary content failing to fetch or looking like HTML is an error:
// extraction only makes sense for an already-verified location.
func (e *Extractor) Extract(ctx context.Context, url string) (*llmsdocs.Extraction, error) {
	primary, err := e.fetchContent(ctx, url)
	if err != nil {
		return nil, err
	}

	siblings := llmsdocs.ExtractSiblingLinks(primary.Body, primary.FinalURL)
	if len(siblings) > maxSiblings {
		siblings = siblings[:maxSiblings]
	}

	sources := e.fetchSiblings(ctx, siblings)
	sources = append([]*llmsdocs.FetchResult{primary}, sources...)

	var docs []*llmsdocs.Document
	var parts []string
	for _, src := range sources {
		section := llmsdocs.SegmentContent(src.Body)
		for _, d := range section {
			d.SourceURL = src.FinalURL
		}
		docs = append(docs, section...)
		parts = append(parts, "# Source: "+src.FinalURL+"\n\n"+strings.TrimSpace(src.Body))
	}

	// Sibling merges invalidate the per-source numbering.
	llmsdocs.AssignFilenames(docs)

	total := 0
	for _, d := range docs {
		if e.TokenCounter != nil {
			if tokens, err := e.TokenCounter.CountTokens(ctx, d.Content); err == nil {
				d.TokenEstimate = tokens
			}
		}
		total += d.TokenEstimate
	}

	return &llmsdocs.Extraction{
		SourceURL:   primary.FinalURL,
		ContentType: llmsdocs.ClassifyContent(primary.Body),
		Documents:   docs,
		Combined:    strings.Join(parts, "\n\n---\n\n"),
		SiblingURLs: siblings,
		TotalTokens: total,
	}, nil
}

// fetchContent fetches and validates one llms.txt file.
func (e *Extractor) fetchContent(ctx context.Context, url string) (*llmsdocs.FetchResult, error) {
	if e.RateLimiter != nil {
		if err := e.RateLimiter.Wait(ctx, domainOf(url)); err != nil {
			return nil, err
		}
	}

	res, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, llmsdocs.Errorf(llmsdocs.ENOTFOUND, "no content at %s (status %d)", url, res.Status)
	}
	if !llmsdocs.IsLikelyLLMSContent(res.Body) {
		return nil, llmsdocs.Errorf(llmsdocs.EINVALID, "content at %s does not look like llms.txt", url)
	}
	return res, nil
}

// fetchSiblings fetches sibling files concurrently into an indexed
// slice, preserving the order links appeared in the primary content.
func (e *Extractor) fetchSiblings(ctx context.Context, urls []string) []*llmsdocs.FetchResult {
	if len(urls) == 0 {
		return nil
	}

	fetched := make([]*llmsdocs.FetchResult, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(siblingConcurrency)

	for i, u := range urls {
		g.Go(func() error {
			res, err := e.fetchContent(gctx, u)
			if err != nil {
				return nil
			}
			fetched[i] = res
			return nil
		})
	}
	_ = g.Wait()

	var out []*llmsdocs.FetchResult
	for _, res := range fetched {
		if res != nil {
			out = append(out, res)
		}
	}
	return out
}
