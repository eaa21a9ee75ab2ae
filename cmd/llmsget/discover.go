package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	opts := llmsdocs.DiscoverOptions{
		Timeout:    deps.Config.Timeout(),
		Strategies: deps.Config.Discovery.Strategies,
	}
	if c.Timeout > 0 {
		opts.Timeout = time.Duration(c.Timeout) * time.Second
	}
	if len(c.Strategy) > 0 {
		opts.Strategies = c.Strategy
	}

	stop := startSpinner(deps, c.JSON, " discovering "+c.URL)
	result, err := deps.Discoverer.Discover(deps.Ctx, c.URL, opts)
	stop()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdocs.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, result)
	}

	printResult(deps, result)
	return nil
}

// printResult renders a discovery result for humans.
func printResult(deps *Dependencies, result *llmsdocs.DiscoveryResult) {
	if !result.Found {
		fmt.Fprintf(deps.Stdout, "No llms.txt found (%d URLs scanned in %dms)\n",
			len(result.ScannedURLs), result.ElapsedMs)
		return
	}

	fmt.Fprintf(deps.Stdout, "Found: %s\n", result.ContentURL)
	fmt.Fprintf(deps.Stdout, "  type: %s  method: %s  confidence: %s\n",
		result.ContentType, result.Method, result.Confidence)
	if result.Hints.Platform != "" {
		fmt.Fprintf(deps.Stdout, "  platform: %s\n", result.Hints.Platform)
	}
	if result.Hints.GitRepoURL != "" {
		fmt.Fprintf(deps.Stdout, "  repository: %s\n", result.Hints.GitRepoURL)
	}
	fmt.Fprintf(deps.Stdout, "  scanned %d URLs in %dms\n", len(result.ScannedURLs), result.ElapsedMs)
}

// writeJSON renders v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
