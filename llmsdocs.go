// Package llmsdocs discovers, fetches, and segments machine-readable
// documentation bundles (llms.txt / llms-full.txt) and LLM-executable
// install instructions (install.md) from documentation sites.
//
// The discovery engine runs multiple probe strategies concurrently
// (well-known paths, robots.txt, sitemaps, homepage scraping, platform
// fingerprinting, git-hosting detection, OpenAPI probing), merges their
// candidate URLs, and verifies them in prioritized batches until a
// confirmed llms.txt location is found.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, gemini/), with orchestration in discover/.
package llmsdocs
