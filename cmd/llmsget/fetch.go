package main

import (
	"fmt"
	"strings"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	"github.com/nirholas/extract-llms-docs/fs"
)

// Run executes the fetch command: discover, extract, and persist.
func (c *FetchCmd) Run(deps *Dependencies) error {
	contentURL := c.URL
	if !strings.HasSuffix(strings.ToLower(c.URL), ".txt") {
		stop := startSpinner(deps, c.JSON, " discovering "+c.URL)
		result, err := deps.Discoverer.Discover(deps.Ctx, c.URL, llmsdocs.DiscoverOptions{
			Timeout:    deps.Config.Timeout(),
			Strategies: deps.Config.Discovery.Strategies,
		})
		stop()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdocs.ErrorMessage(err))
			return err
		}
		if !result.Found {
			return llmsdocs.Errorf(llmsdocs.ENOTFOUND, "no llms.txt found for %s (%d URLs scanned)",
				c.URL, len(result.ScannedURLs))
		}
		contentURL = result.ContentURL
	}

	stop := startSpinner(deps, c.JSON, " fetching "+contentURL)
	extraction, err := deps.Extractor.Extract(deps.Ctx, contentURL)
	stop()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdocs.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, extraction)
	}

	outDir := c.Out
	if outDir == "" {
		outDir = deps.Config.Output.Dir
	}

	name := extractionName(extraction.SourceURL)
	if err := fs.NewWriter(outDir).WriteExtraction(name, extraction); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d sections (%d tokens) to %s/%s\n",
		len(extraction.Documents), extraction.TotalTokens, outDir, name)
	if len(extraction.SiblingURLs) > 0 {
		fmt.Fprintf(deps.Stdout, "  merged %d sibling file(s)\n", len(extraction.SiblingURLs))
	}
	return nil
}

// extractionName derives the output directory name from the content
// URL's host.
func extractionName(sourceURL string) string {
	info, err := llmsdocs.ParseURLInfo(sourceURL)
	if err != nil {
		return llmsdocs.Slugify(sourceURL)
	}
	return llmsdocs.Slugify(info.Hostname)
}
