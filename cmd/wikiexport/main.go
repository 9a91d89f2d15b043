package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/wikiexport"
	"github.com/fwojciec/wikiexport/charset"
	"github.com/fwojciec/wikiexport/export"
	"github.com/fwojciec/wikiexport/fs"
	wikihttp "github.com/fwojciec/wikiexport/http"
	wikiregexp "github.com/fwojciec/wikiexport/regexp"
	wikislog "github.com/fwojciec/wikiexport/slog"
)

// Version is the release version reported by --version.
const Version = "0.2.0"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status. A configuration
// error means the chunk pattern failed to compile and exits 2;
// everything else exits 1.
func exitCode(err error) int {
	if wikiexport.ErrorCode(err) == wikiexport.ECONFIG {
		return 2
	}
	return 1
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikiexport"),
		kong.Description("Export DeepWiki documentation pages to local markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Handle version flag
	if len(args) == 1 && (args[0] == "--version" || args[0] == "version") {
		fmt.Fprintln(stdout, "wikiexport "+Version)
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Timeout < wikihttp.MinFetchTimeout {
		return wikiexport.Errorf(wikiexport.EINVALID, "timeout must be at least %s", wikihttp.MinFetchTimeout)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Resolve output encodings; the markdown encoding defaults to the
	// page encoding.
	pageCodec, err := charset.Lookup(cli.HTMLEncoding)
	if err != nil {
		return err
	}
	mdCodec := pageCodec
	if cli.MDEncoding != "" {
		mdCodec, err = charset.Lookup(cli.MDEncoding)
		if err != nil {
			return err
		}
	}

	// The extractor is constructed before any network work so a broken
	// chunk pattern fails fast.
	extractor, err := wikiregexp.NewExtractor()
	if err != nil {
		return err
	}

	opts := []wikihttp.Option{wikihttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, wikihttp.WithUserAgent(cli.UserAgent))
	}
	fetcher := wikihttp.NewFetcher(opts...)

	separator := strings.ReplaceAll(cli.Separator, `\n`, "\n")
	namer := wikiexport.ChunkNamerFunc(wikiexport.DeriveChunkName)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Exporter: &export.Exporter{
			Fetcher:   wikislog.NewLoggingFetcher(fetcher, logger),
			Extractor: wikislog.NewLoggingExtractor(extractor, logger),
			Markdown:  wikislog.NewLoggingJoinedWriter(fs.NewMarkdownWriter(separator, mdCodec), logger),
			Chunks:    wikislog.NewLoggingSplitWriter(fs.NewChunkDirWriter(namer, "", mdCodec), logger),
			HTML:      wikislog.NewLoggingDocumentWriter(fs.NewHTMLWriter(pageCodec), logger),
			PageCodec: pageCodec,
		},
	}

	cmd := &ExportCmd{
		TargetURL:  cli.URL,
		Output:     cli.Output,
		KeepHTML:   cli.KeepHTML || cli.HTMLOutput != "",
		HTMLOutput: cli.HTMLOutput,
		SplitDir:   cli.SplitDir,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	KeepHTML     bool          `name:"keep-html" help:"Save the fetched page HTML next to the markdown output"`
	HTMLOutput   string        `name:"html-output" help:"File or existing directory for the saved page HTML (implies --keep-html)"`
	SplitDir     string        `help:"Directory to additionally write one file per chunk"`
	Separator    string        `short:"s" default:"\\n\\n---\\n\\n" help:"Separator between joined chunks (literal \\n expands to newlines)"`
	HTMLEncoding string        `name:"html-encoding" default:"utf-8" help:"Encoding for the fetched page and saved HTML"`
	MDEncoding   string        `name:"md-encoding" help:"Encoding for markdown output (default: the HTML encoding)"`
	UserAgent    string        `help:"User-Agent header for the page request"`
	Timeout      time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
	Verbose      bool          `short:"v" help:"Enable debug logging"`
	URL          string        `arg:"" required:"" help:"GitHub or DeepWiki URL to export"`
	Output       string        `arg:"" optional:"" help:"Output file or existing directory (default: current directory)"`
}
