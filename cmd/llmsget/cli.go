package main

import (
	"context"
	"io"

	llmsdocs "github.com/nirholas/extract-llms-docs"
	"github.com/nirholas/extract-llms-docs/discover"
	llmsdocstoml "github.com/nirholas/extract-llms-docs/toml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Config      *llmsdocstoml.Config
	Discoverer  llmsdocs.Discoverer
	Extractor   *discover.Extractor
	Synthesizer llmsdocs.InstallSynthesizer

	// Interactive is true when stderr is a terminal; progress spinners
	// are suppressed otherwise.
	Interactive bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Discover DiscoverCmd `cmd:"" help:"Discover llms.txt content for a site"`
	Fetch    FetchCmd    `cmd:"" help:"Discover, fetch, and segment llms.txt content"`
	Check    CheckCmd    `cmd:"" help:"Verify a single llms.txt URL without strategy fan-out"`
	Install  InstallCmd  `cmd:"" help:"Parse, generate, and draft install.md files"`

	Config  string `help:"Config file path" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL      string   `arg:"" help:"Site URL or domain"`
	Timeout  int      `short:"t" help:"Discovery budget in seconds (overrides config)"`
	Strategy []string `short:"s" help:"Restrict to named strategies (repeatable)"`
	JSON     bool     `help:"Emit the result as JSON"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL         string `arg:"" help:"Site URL, domain, or direct llms.txt URL"`
	Out         string `short:"o" help:"Output directory (overrides config)"`
	JSON        bool   `help:"Emit the extraction as JSON instead of writing files"`
	ExactTokens bool   `help:"Count tokens with the Gemini tokenizer instead of estimating"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	URL  string `arg:"" help:"URL to verify"`
	JSON bool   `help:"Emit the result as JSON"`
}

// InstallCmd groups the install.md subcommands.
type InstallCmd struct {
	Parse InstallParseCmd `cmd:"" help:"Parse and validate an install.md file"`
	Gen   InstallGenCmd   `cmd:"" help:"Generate a valid install.md skeleton"`
	Draft InstallDraftCmd `cmd:"" help:"Draft an install.md from a site's llms.txt via Gemini"`
}

// InstallParseCmd is the "install parse" subcommand.
type InstallParseCmd struct {
	File  string `arg:"" help:"install.md file path, or - for stdin"`
	Quick bool   `help:"Run the quick structural check only"`
	JSON  bool   `help:"Emit the parsed structure as JSON"`
}

// InstallGenCmd is the "install gen" subcommand.
type InstallGenCmd struct {
	Product     string   `arg:"" help:"Product name"`
	Description string   `short:"d" help:"One-line product description"`
	Objective   string   `help:"OBJECTIVE line content"`
	DoneWhen    string   `help:"DONE WHEN line content"`
	Todo        []string `help:"TODO checklist items (repeatable)"`
	Out         string   `short:"o" help:"Write to file instead of stdout" type:"path"`
}

// InstallDraftCmd is the "install draft" subcommand.
type InstallDraftCmd struct {
	URL string `arg:"" help:"Site URL, domain, or direct llms.txt URL"`
	Out string `short:"o" help:"Write to file instead of stdout" type:"path"`
}
