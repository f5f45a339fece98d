package harvest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// State is the per-word position in the extraction lifecycle.
type State string

// Per-word states. Every word moves Pending → Fetching → Parsed →
// Persisted, or drops to Failed, which is terminal for the run; the word
// stays in the frontier and is retried by the next run.
const (
	StatePending   State = "pending"
	StateFetching  State = "fetching"
	StateParsed    State = "parsed"
	StatePersisted State = "persisted"
	StateFailed    State = "failed"
)

// ProgressEvent reports a state transition for a single word.
type ProgressEvent struct {
	Word  string
	URL   string
	State State
	Index int // 1-based position within this run's pending set
	Total int // size of this run's pending set
	Err   error
}

// ProgressFunc is called on every state transition.
type ProgressFunc func(ProgressEvent)

// Extractor turns pending entries into records one fetch-parse-append unit
// at a time. Pending work is recomputed from the stores on every run
// (entries minus records), so there is no cursor to persist and no special
// shutdown handling: killing the process between two iterations loses at
// most the in-flight word.
type Extractor struct {
	Fetcher  vocab.Fetcher
	Parser   vocab.WordPageParser
	Entries  vocab.EntryStore
	Records  vocab.RecordStore
	Limiter  Limiter
	Logger   *slog.Logger
	Progress ProgressFunc

	// Limit caps the number of words processed in this run.
	// Zero means no cap.
	Limit int
}

// ExtractResult summarizes an extraction run.
type ExtractResult struct {
	Done      int // records already persisted before the run
	Extracted int // records appended by this run
	Failed    int // words skipped after a fetch or parse failure
	Pending   int // size of this run's pending set
}

// Run processes the pending set in lexicographic word order. Fetch and
// parse failures are logged and skipped; a single bad page never aborts
// the run. Store-level failures are fatal: an unreadable store means the
// resume computation cannot be trusted, and a failed append must not
// silently drop a successfully parsed record.
func (e *Extractor) Run(ctx context.Context) (*ExtractResult, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	done, err := e.Records.Load(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := e.Entries.Load(ctx)
	if err != nil {
		return nil, err
	}

	todo := make([]string, 0, len(entries))
	for word := range entries {
		if _, ok := done[word]; ok {
			continue
		}
		todo = append(todo, word)
	}
	sort.Strings(todo)
	if e.Limit > 0 && len(todo) > e.Limit {
		todo = todo[:e.Limit]
	}

	result := &ExtractResult{Done: len(done), Pending: len(todo)}
	logger.Info("extraction run", "pending", len(todo), "done", len(done))

	for i, word := range todo {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		entry := entries[word]
		e.emit(ProgressEvent{Word: word, URL: entry.URL, State: StatePending, Index: i + 1, Total: len(todo)})

		if e.Limiter != nil {
			if err := e.Limiter.Wait(ctx); err != nil {
				return result, err
			}
		}

		e.emit(ProgressEvent{Word: word, URL: entry.URL, State: StateFetching, Index: i + 1, Total: len(todo)})
		html, err := e.Fetcher.Fetch(ctx, entry.URL)
		if err != nil {
			logger.Error("fetch failed", "word", word, "url", entry.URL, "err", err)
			e.emit(ProgressEvent{Word: word, URL: entry.URL, State: StateFailed, Index: i + 1, Total: len(todo), Err: err})
			result.Failed++
			continue
		}

		page, err := e.Parser.ParseWordPage(html)
		if err != nil {
			logger.Error("parse failed", "word", word, "url", entry.URL, "err", err)
			e.emit(ProgressEvent{Word: word, URL: entry.URL, State: StateFailed, Index: i + 1, Total: len(todo), Err: err})
			result.Failed++
			continue
		}
		e.emit(ProgressEvent{Word: word, URL: entry.URL, State: StateParsed, Index: i + 1, Total: len(todo)})

		// The entry key stays the record's identity even when the page
		// prints the word with different casing.
		rec := vocab.Record{Word: word, Meaning: page.Meaning, Usage: page.Usage}
		if err := e.Records.Append(ctx, rec); err != nil {
			return result, err
		}
		result.Extracted++

		logger.Info("extracted", "word", word, "progress", fmt.Sprintf("%d/%d", i+1, len(todo)))
		e.emit(ProgressEvent{Word: word, URL: entry.URL, State: StatePersisted, Index: i + 1, Total: len(todo)})
	}

	logger.Info("extraction complete",
		"extracted", result.Extracted,
		"failed", result.Failed,
		"done", result.Done+result.Extracted,
	)
	return result, nil
}

func (e *Extractor) emit(ev ProgressEvent) {
	if e.Progress != nil {
		e.Progress(ev)
	}
}
