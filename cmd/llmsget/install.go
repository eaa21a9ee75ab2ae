package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	"github.com/nirholas/extract-llms-docs/gemini"
	"github.com/nirholas/extract-llms-docs/installmd"
	"google.golang.org/genai"
)

// Run executes the install parse command.
func (c *InstallParseCmd) Run(deps *Dependencies) error {
	content, err := readInput(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if c.Quick {
		if installmd.IsValid(content) {
			fmt.Fprintln(deps.Stdout, "valid")
			return nil
		}
		fmt.Fprintln(deps.Stdout, "invalid")
		return llmsdocs.Errorf(llmsdocs.EINVALID, "install.md failed the quick structural check")
	}

	parsed := installmd.Parse(content)

	if c.JSON {
		return writeJSON(deps.Stdout, parsed)
	}

	fmt.Fprintf(deps.Stdout, "Product: %s\n", parsed.ProductName)
	fmt.Fprintf(deps.Stdout, "Objective: %s\n", parsed.Objective)
	fmt.Fprintf(deps.Stdout, "Done when: %s\n", parsed.DoneWhen)
	fmt.Fprintf(deps.Stdout, "TODO items: %d  Steps: %d\n", len(parsed.TodoItems), len(parsed.Steps))

	if parsed.IsValid {
		fmt.Fprintln(deps.Stdout, "Validation: OK")
		return nil
	}
	fmt.Fprintln(deps.Stdout, "Validation: FAILED")
	for _, msg := range parsed.ValidationErrors {
		fmt.Fprintf(deps.Stdout, "  - %s\n", msg)
	}
	return llmsdocs.Errorf(llmsdocs.EINVALID, "install.md failed validation")
}

// Run executes the install gen command.
func (c *InstallGenCmd) Run(deps *Dependencies) error {
	content := installmd.Generate(installmd.GenerateInput{
		ProductName: c.Product,
		Description: c.Description,
		Objective:   c.Objective,
		DoneWhen:    c.DoneWhen,
		TodoItems:   c.Todo,
	})

	return writeOutput(deps, c.Out, content)
}

// Run executes the install draft command: discover, extract, and
// synthesize an install.md via Gemini.
func (c *InstallDraftCmd) Run(deps *Dependencies) error {
	synthesizer := deps.Synthesizer
	if synthesizer == nil {
		apiKey := deps.Config.Gemini.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return llmsdocs.Errorf(llmsdocs.EINVALID,
				"GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		synthesizer = gemini.NewSynthesizer(client)
	}

	contentURL := c.URL
	if !strings.HasSuffix(strings.ToLower(c.URL), ".txt") {
		stop := startSpinner(deps, false, " discovering "+c.URL)
		result, err := deps.Discoverer.Discover(deps.Ctx, c.URL, llmsdocs.DiscoverOptions{
			Timeout:    deps.Config.Timeout(),
			Strategies: deps.Config.Discovery.Strategies,
		})
		stop()
		if err != nil {
			return err
		}
		if !result.Found {
			return llmsdocs.Errorf(llmsdocs.ENOTFOUND, "no llms.txt found for %s", c.URL)
		}
		contentURL = result.ContentURL
	}

	extraction, err := deps.Extractor.Extract(deps.Ctx, contentURL)
	if err != nil {
		return err
	}

	stop := startSpinner(deps, false, " drafting install.md")
	draft, err := synthesizer.Synthesize(deps.Ctx, extraction)
	stop()
	if err != nil {
		return err
	}

	parsed := installmd.Parse(draft)
	if !parsed.IsValid {
		fmt.Fprintf(deps.Stderr, "warning: draft failed validation: %s\n",
			strings.Join(parsed.ValidationErrors, "; "))
	}

	return writeOutput(deps, c.Out, draft)
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func writeOutput(deps *Dependencies, path, content string) error {
	if path == "" {
		_, err := io.WriteString(deps.Stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}
