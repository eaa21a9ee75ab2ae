// Package http provides HTTP-based implementations of the llmsdocs
// fetching and probing interfaces. All requests follow redirects,
// carry a fixed User-Agent identifying the tool, and apply per-request
// timeouts; transport failures surface as errors while non-2xx
// responses are returned as results for the caller to interpret.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// Default timeouts. Quick existence checks are short; content fetches
// get longer since llms-full.txt files can be large.
const (
	DefaultFetchTimeout = 15 * time.Second
	DefaultProbeTimeout = 5 * time.Second
)

// DefaultUserAgent identifies the tool on every outbound request.
const DefaultUserAgent = "llmsget/1.0 (+https://github.com/nirholas/extract-llms-docs)"

// AcceptContent favors plain text and markdown for content fetches.
// AcceptMarkup is used for homepage scraping and sitemap fetches.
const (
	AcceptContent = "text/plain, text/markdown, */*"
	AcceptMarkup  = "text/html, application/xml;q=0.9, */*;q=0.8"
)

// maxBodyBytes caps response bodies to keep a hostile or misconfigured
// server from exhausting memory.
const maxBodyBytes = 10 << 20

// Ensure Fetcher implements llmsdocs.Fetcher at compile time.
var _ llmsdocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content over plain HTTP GET/HEAD.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	accept       string
	fetchTimeout time.Duration
	probeTimeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for content fetches.
// Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// WithProbeTimeout sets the timeout for HEAD existence checks.
// Defaults to DefaultProbeTimeout.
func WithProbeTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.probeTimeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithAccept overrides the Accept header for GET requests.
func WithAccept(accept string) Option {
	return func(f *Fetcher) {
		f.accept = accept
	}
}

// WithClient substitutes the underlying HTTP client, primarily for tests.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent:    DefaultUserAgent,
		accept:       AcceptContent,
		fetchTimeout: DefaultFetchTimeout,
		probeTimeout: DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{}
	}
	return f
}

// Fetch performs a GET and returns the body, final resolved URL, status
// code, and headers. Redirects are followed; FinalURL reports where the
// response actually came from, since discovery results must name the
// canonical location rather than the request URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*llmsdocs.FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, f.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, llmsdocs.Errorf(llmsdocs.EINVALID, "invalid url %q", url)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", f.accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	return &llmsdocs.FetchResult{
		Body:     string(body),
		FinalURL: resp.Request.URL.String(),
		Status:   resp.StatusCode,
		Header:   resp.Header,
	}, nil
}

// Exists performs a HEAD and reports whether the URL responds with a
// non-error status. Servers that reject HEAD outright count as absent;
// the GET-based verification path covers them later.
func (f *Fetcher) Exists(ctx context.Context, url string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, f.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, llmsdocs.Errorf(llmsdocs.EINVALID, "invalid url %q", url)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400, nil
}
