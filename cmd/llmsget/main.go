package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	llmsdocs "github.com/nirholas/extract-llms-docs"
	"github.com/nirholas/extract-llms-docs/discover"
	"github.com/nirholas/extract-llms-docs/gemini"
	llmsdocsgoquery "github.com/nirholas/extract-llms-docs/goquery"
	llmsdocshttp "github.com/nirholas/extract-llms-docs/http"
	"github.com/nirholas/extract-llms-docs/mem"
	llmsdocsslog "github.com/nirholas/extract-llms-docs/slog"
	llmsdocstoml "github.com/nirholas/extract-llms-docs/toml"
	"golang.org/x/term"
)

// tokenizerModel names the local tokenizer vocabulary used for exact
// token counts on fetch output.
const tokenizerModel = "gemini-2.5-flash"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath locates the TOML config file. Set before calling Run().
	ConfigPath string

	// Discoverer, when set, replaces the wired discovery service.
	// Used by end-to-end tests.
	Discoverer llmsdocs.Discoverer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Interactive: isTerminal(stderr),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("llmsget"),
		kong.Description("Discover, fetch, and structure llms.txt documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'llmsget --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli.Config)
	if err != nil {
		return err
	}
	deps.Config = cfg

	logger := newLogger(stderr, cli.Verbose)

	fetcher := llmsdocshttp.NewFetcher(withUserAgent(cfg))
	limiter := discover.NewDomainLimiter(cfg.HTTP.RequestsPerSecond, 2)

	deps.Discoverer = m.Discoverer
	if deps.Discoverer == nil {
		service := &discover.Service{
			Fetcher: llmsdocsslog.NewLoggingFetcher(fetcher, logger),
			Strategies: []llmsdocs.Strategy{
				llmsdocshttp.NewRobotsStrategy(fetcher),
				llmsdocshttp.NewOpenAPIStrategy(fetcher),
				llmsdocsgoquery.NewHomepageStrategy(fetcher),
				llmsdocsgoquery.NewPlatformStrategy(fetcher),
				llmsdocsgoquery.NewGitHostStrategy(fetcher),
			},
			Sitemaps:    llmsdocsslog.NewLoggingSitemapParser(llmsdocshttp.NewSitemapService(fetcher), logger),
			RateLimiter: limiter,
			Cache:       mem.NewResultCache(cfg.CacheTTL()),
		}
		deps.Discoverer = llmsdocsslog.NewLoggingDiscoverer(service, logger)
	}

	deps.Extractor = &discover.Extractor{
		Fetcher:     fetcher,
		RateLimiter: limiter,
	}
	if cli.Fetch.ExactTokens {
		counter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.Extractor.TokenCounter = counter
	}

	return kongCtx.Run(deps)
}

func (m *Main) loadConfig(flagPath string) (*llmsdocstoml.Config, error) {
	path := flagPath
	if path == "" {
		path = m.ConfigPath
	}
	if path == "" {
		defaultPath, err := llmsdocstoml.DefaultPath()
		if err != nil {
			return llmsdocstoml.Default(), nil
		}
		path = defaultPath
	}

	cfg, err := llmsdocstoml.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config at %q: %w", path, err)
	}
	return cfg, nil
}

// newLogger builds the slog logger used by the service decorators,
// backed by a charmbracelet handler writing to stderr.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	handler := charmlog.New(stderr)
	if verbose {
		handler.SetLevel(charmlog.DebugLevel)
	} else {
		handler.SetLevel(charmlog.WarnLevel)
	}
	return slog.New(handler)
}

func withUserAgent(cfg *llmsdocstoml.Config) llmsdocshttp.Option {
	if cfg.HTTP.UserAgent != "" {
		return llmsdocshttp.WithUserAgent(cfg.HTTP.UserAgent)
	}
	return llmsdocshttp.WithUserAgent(llmsdocshttp.DefaultUserAgent)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
