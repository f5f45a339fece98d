package harvest

import (
	"context"
	"io"
	"log/slog"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// Discoverer produces an up-to-date, deduplicated entry set from the
// archive index page. The merge keeps every previously persisted entry
// (the frontier only grows) and keeps the existing URL when a word
// reappears with a different link.
type Discoverer struct {
	ArchiveURL string
	Fetcher    vocab.Fetcher
	Parser     vocab.ArchiveParser
	Entries    vocab.EntryStore
	Logger     *slog.Logger
}

// DiscoverResult summarizes a discovery run.
type DiscoverResult struct {
	New   int // words not previously persisted
	Known int // words already in the store
	Total int // size of the merged frontier
}

// Run fetches the index, merges the scraped candidates into the persisted
// entry set, and overwrites the store with the union. A fetch failure is
// fatal for the run: a partial index cannot be distinguished from a
// shrunken one, and the merged set must round-trip whole.
func (d *Discoverer) Run(ctx context.Context) (*DiscoverResult, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	html, err := d.Fetcher.Fetch(ctx, d.ArchiveURL)
	if err != nil {
		return nil, err
	}

	scraped, err := d.Parser.ParseArchive(html, d.ArchiveURL)
	if err != nil {
		return nil, err
	}
	if len(scraped) == 0 {
		// Distinguishable from "no new words": the index yielded no
		// candidate links at all, which usually means the page format
		// changed.
		logger.Warn("no word links found on index page", "url", d.ArchiveURL)
	}

	existing, err := d.Entries.Load(ctx)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]vocab.Entry, len(existing)+len(scraped))
	for word, entry := range existing {
		merged[word] = entry
	}

	newCount := 0
	for _, entry := range scraped {
		if _, ok := merged[entry.Word]; ok {
			continue
		}
		merged[entry.Word] = entry
		newCount++
		logger.Debug("new word discovered", "word", entry.Word, "url", entry.URL)
	}

	if err := d.Entries.Save(ctx, merged); err != nil {
		return nil, err
	}

	result := &DiscoverResult{
		New:   newCount,
		Known: len(existing),
		Total: len(merged),
	}
	logger.Info("discovery complete",
		"new", result.New,
		"known", result.Known,
		"total", result.Total,
	)
	return result, nil
}
