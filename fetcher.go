package llmsdocs

import (
	"context"
	"net/http"
)

// FetchResult is the outcome of a single HTTP fetch.
type FetchResult struct {
	// Body is the response body. Empty for non-2xx responses is not
	// guaranteed; callers decide based on Status.
	Body string

	// FinalURL is the URL after following redirects. Discovery results
	// report the canonical resolved location, not the request URL.
	FinalURL string

	// Status is the HTTP status code.
	Status int

	// Header holds the response headers (used by fingerprinting).
	Header http.Header
}

// OK reports whether the fetch produced a successful response.
func (r *FetchResult) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Fetcher retrieves remote content over plain HTTP. Implementations
// follow redirects, apply per-request timeouts, and identify the tool
// via a fixed User-Agent. Transport failures are returned as errors;
// non-2xx responses are returned as results.
type Fetcher interface {
	// Fetch performs a GET and returns the body, final URL, status,
	// and headers.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Exists performs a HEAD and reports whether the URL responds
	// with a non-error status.
	Exists(ctx context.Context, url string) (bool, error)
}

// DomainLimiter rate-limits outbound requests per domain so batch
// verification does not hammer a single host.
type DomainLimiter interface {
	// Wait blocks until the limit allows a request to domain, or the
	// context is canceled.
	Wait(ctx context.Context, domain string) error
}
