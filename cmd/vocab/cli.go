package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	vocab "github.com/Shalsh23/VocabBuilder"
	"github.com/Shalsh23/VocabBuilder/harvest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Entries vocab.EntryStore
	Records vocab.RecordStore
	Fetcher vocab.Fetcher
	Archive vocab.ArchiveParser
	Pages   vocab.WordPageParser
	Limiter harvest.Limiter
	Lock    *harvest.RunLock
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DataDir string `short:"d" default:"." env:"VOCAB_DATA_DIR" help:"Directory holding the word list and results files"`
	LogFile string `help:"Append logs to this file instead of stderr"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Discover DiscoverCmd `cmd:"" help:"Scrape the archive index and update the word list"`
	Extract  ExtractCmd  `cmd:"" help:"Fetch and parse word pages for pending words"`
	Status   StatusCmd   `cmd:"" help:"Show pipeline progress"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL     string        `default:"https://wordsmith.org/awad/archives.html" help:"Archive index URL"`
	Timeout time.Duration `default:"10s" help:"Per-request timeout"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Delay   time.Duration `default:"1s" help:"Courtesy delay between requests"`
	Timeout time.Duration `default:"10s" help:"Per-request timeout"`
	Limit   int           `short:"n" help:"Stop after this many words (0 means no cap)"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}
