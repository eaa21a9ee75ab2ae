package http

import (
	"context"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// openAPIPaths are conventional machine-readable API spec locations.
// A site serving one tends to keep human/LLM documentation nearby.
var openAPIPaths = []string{
	"/openapi.json",
	"/openapi.yaml",
	"/swagger.json",
	"/swagger.yaml",
	"/api/openapi.json",
	"/api/swagger.json",
	"/v1/openapi.json",
	"/.well-known/openapi.json",
}

// SourceOpenAPI tags candidates derived from a discovered API spec.
const SourceOpenAPI = "openapi"

// Ensure OpenAPIStrategy implements llmsdocs.Strategy.
var _ llmsdocs.Strategy = (*OpenAPIStrategy)(nil)

// OpenAPIStrategy HEAD-checks conventional OpenAPI/Swagger endpoints
// across the provided host, the bare domain, and an api. subdomain.
// The first hit turns that base and its /docs subpath into candidates.
type OpenAPIStrategy struct {
	fetcher llmsdocs.Fetcher
}

// NewOpenAPIStrategy creates an OpenAPIStrategy checking through fetcher.
func NewOpenAPIStrategy(fetcher llmsdocs.Fetcher) *OpenAPIStrategy {
	return &OpenAPIStrategy{fetcher: fetcher}
}

// Name implements llmsdocs.Strategy.
func (s *OpenAPIStrategy) Name() string { return "openapi" }

// Probe stops at the first responding endpoint; the point is detecting
// that an API spec exists somewhere, not enumerating every copy.
func (s *OpenAPIStrategy) Probe(ctx context.Context, target *llmsdocs.URLInfo) (*llmsdocs.ProbeReport, error) {
	hosts := []string{target.Hostname}
	if target.FullDomain != target.Hostname {
		hosts = append(hosts, target.FullDomain)
	}
	hosts = append(hosts, "api."+target.FullDomain)

	for _, host := range hosts {
		base := target.Protocol + "://" + host
		for _, p := range openAPIPaths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			ok, err := s.fetcher.Exists(ctx, base+p)
			if err != nil || !ok {
				continue
			}
			return &llmsdocs.ProbeReport{
				Candidates: []llmsdocs.Candidate{
					{URL: base, Priority: 45, Source: SourceOpenAPI},
					{URL: base + "/docs", Priority: 46, Source: SourceOpenAPI},
				},
			}, nil
		}
	}

	return nil, llmsdocs.Errorf(llmsdocs.ENOTFOUND, "no openapi endpoint for %s", target.Hostname)
}
