package harvest

import (
	"context"
	"sort"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// maxPendingPreview caps the number of pending words listed in a status.
const maxPendingPreview = 10

// Status describes how far the pipeline has progressed. It is computed
// from the two stores alone; the reporter never writes.
type Status struct {
	Discovered int     // entries in the frontier
	Extracted  int     // records persisted
	Remaining  int     // entries without a record
	Progress   float64 // extracted / discovered, 0 when nothing discovered
	Pending    []string
}

// Reporter computes pipeline status from the persisted stores.
type Reporter struct {
	Entries vocab.EntryStore
	Records vocab.RecordStore
}

// Run loads both stores and computes the remaining-work statistics.
// Pending lists up to ten remaining words in lexicographic order.
func (r *Reporter) Run(ctx context.Context) (*Status, error) {
	entries, err := r.Entries.Load(ctx)
	if err != nil {
		return nil, err
	}
	records, err := r.Records.Load(ctx)
	if err != nil {
		return nil, err
	}

	var pending []string
	for word := range entries {
		if _, ok := records[word]; !ok {
			pending = append(pending, word)
		}
	}
	sort.Strings(pending)

	status := &Status{
		Discovered: len(entries),
		Extracted:  len(records),
		Remaining:  len(pending),
		Pending:    pending,
	}
	if status.Discovered > 0 {
		status.Progress = float64(status.Extracted) / float64(status.Discovered)
	}
	if len(status.Pending) > maxPendingPreview {
		status.Pending = status.Pending[:maxPendingPreview]
	}
	return status, nil
}
