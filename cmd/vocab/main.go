package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Shalsh23/VocabBuilder/csv"
	"github.com/Shalsh23/VocabBuilder/goquery"
	"github.com/Shalsh23/VocabBuilder/harvest"
	vocabhttp "github.com/Shalsh23/VocabBuilder/http"
	vocabslog "github.com/Shalsh23/VocabBuilder/slog"
	"github.com/alecthomas/kong"
)

// File names inside the data directory. Runs against the same directory
// resume each other; the names must stay stable across versions.
const (
	entriesFile = "wordsmith_words.csv"
	recordsFile = "wordsmith_complete.csv"
	lockFile    = ".vocab.lock"
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
	logFile *os.File
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.logFile != nil {
		return m.logFile.Close()
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
		kong.Name("vocab"),
		kong.Description("Harvest vocabulary from the wordsmith.org A.Word.A.Day archive."),
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
		return fmt.Errorf("no command specified. Run 'vocab --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cli.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %q: %w", cli.DataDir, err)
	}

	logger, err := m.newLogger(cli, stderr)
	if err != nil {
		return err
	}
	defer m.Close()

	// Wire core services into dependencies
	deps.Logger = logger
	deps.Entries = csv.NewEntryStore(filepath.Join(cli.DataDir, entriesFile))
	deps.Records = vocabslog.NewLoggingRecordStore(
		csv.NewRecordStore(filepath.Join(cli.DataDir, recordsFile)), logger)
	deps.Archive = goquery.NewArchiveParser()
	deps.Pages = goquery.NewWordPageParser()
	deps.Lock = harvest.NewRunLock(filepath.Join(cli.DataDir, lockFile))

	// Wire command-specific dependencies based on command
	switch cmd {
	case "discover":
		fetcher := vocabhttp.NewFetcher(vocabhttp.WithTimeout(cli.Discover.Timeout))
		deps.Fetcher = vocabslog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()
	case "extract":
		fetcher := vocabhttp.NewFetcher(vocabhttp.WithTimeout(cli.Extract.Timeout))
		deps.Fetcher = vocabslog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()
		deps.Limiter = harvest.NewCourtesyLimiter(cli.Extract.Delay)
	}

	return kongCtx.Run(deps)
}

// newLogger builds the run logger. Logs go to stderr so stdout stays clean
// for command output; --log-file redirects them to an append-only file.
func (m *Main) newLogger(cli *CLI, stderr io.Writer) (*slog.Logger, error) {
	dst := stderr
	if cli.LogFile != "" {
		f, err := os.OpenFile(cli.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", cli.LogFile, err)
		}
		m.logFile = f
		dst = f
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: level})), nil
}
