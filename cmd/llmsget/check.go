package main

import (
	"fmt"

	llmsdocs "github.com/nirholas/extract-llms-docs"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	result, err := deps.Discoverer.QuickCheck(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmsdocs.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, result)
	}

	if !result.Found {
		fmt.Fprintf(deps.Stdout, "Not found: %s\n", c.URL)
		// Exit nonzero so scripts can branch on the check.
		return llmsdocs.Errorf(llmsdocs.ENOTFOUND, "no llms.txt at %s", c.URL)
	}

	fmt.Fprintf(deps.Stdout, "OK: %s (%s)\n", result.ContentURL, result.ContentType)
	return nil
}
