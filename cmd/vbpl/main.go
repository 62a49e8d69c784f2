package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ndtrung/vbpl"
	"github.com/ndtrung/vbpl/crawl"
	"github.com/ndtrung/vbpl/gemini"
	"github.com/ndtrung/vbpl/goquery"
	"github.com/ndtrung/vbpl/htmltomarkdown"
	vbplhttp "github.com/ndtrung/vbpl/http"
	vbplregexp "github.com/ndtrung/vbpl/regexp"
	"github.com/ndtrung/vbpl/rod"
	vbplslog "github.com/ndtrung/vbpl/slog"
	"github.com/ndtrung/vbpl/sqlite"
	"github.com/ndtrung/vbpl/trafilatura"
	"google.golang.org/genai"
)

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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService vbpl.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vbpl"),
		kong.Description("Crawl and segment Vietnamese legal documents from vbpl.vn"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vbpl --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Verbose)

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set VBPL_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService

	// Wire the crawl pipeline for the commands that fetch from the portal
	if cmd == "parse" || cmd == "crawl" {
		fetcher, err := m.newFetcher(cmd == "parse" && cli.Parse.Browser, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		segmenter, err := m.newSegmenter(ctx, cmd == "parse" && cli.Parse.LLM, logger, stderr)
		if err != nil {
			return err
		}

		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		deps.Parser = &crawl.Parser{
			Fetcher:      vbplslog.NewLoggingFetcher(fetcher, logger),
			Extractor:    goquery.NewExtractor(),
			Fallback:     trafilatura.NewExtractor(),
			Converter:    htmltomarkdown.NewConverter(),
			Segmenter:    segmenter,
			Info:         goquery.NewInfoExtractor(),
			Documents:    m.DocumentService,
			TokenCounter: tokenCounter,
			RateLimiter:  crawl.NewDomainLimiter(1.0),
			Portal:       vbpl.DefaultPortal,
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher picks the page fetcher: plain HTTP by default, a headless
// browser when requested.
func (m *Main) newFetcher(browser bool, stderr io.Writer) (vbpl.Fetcher, error) {
	if !browser {
		return vbplhttp.NewFetcher(), nil
	}
	fetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

// newSegmenter picks the segmentation strategy: the marker grammars by
// default, Gemini when requested.
func (m *Main) newSegmenter(ctx context.Context, llm bool, logger *slog.Logger, stderr io.Writer) (vbpl.Segmenter, error) {
	if !llm {
		return vbplslog.NewLoggingSegmenter(vbplregexp.NewSegmenter(), "regexp", logger), nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return vbplslog.NewLoggingSegmenter(gemini.NewSegmenter(client), "gemini", logger), nil
}

// newLogger builds the CLI logger. Fetch and segmentation details log at
// Info and only show with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// tokenizerModel is used for token counting. Using gemini-2.5-flash until
// newer models are supported by google.golang.org/genai/tokenizer.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("VBPL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "vbpl.db"
	}
	dir := filepath.Join(home, ".vbpl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "vbpl.db")
}
