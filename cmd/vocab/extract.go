package main

import (
	"fmt"

	vocab "github.com/Shalsh23/VocabBuilder"
	"github.com/Shalsh23/VocabBuilder/harvest"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if err := deps.Lock.Acquire(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vocab.ErrorMessage(err))
		return err
	}
	defer deps.Lock.Release()

	e := &harvest.Extractor{
		Fetcher: deps.Fetcher,
		Parser:  deps.Pages,
		Entries: deps.Entries,
		Records: deps.Records,
		Limiter: deps.Limiter,
		Logger:  deps.Logger,
		Limit:   c.Limit,
		Progress: func(ev harvest.ProgressEvent) {
			switch ev.State {
			case harvest.StateFetching:
				fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", ev.Index, ev.Total, ev.Word)
			case harvest.StateFailed:
				fmt.Fprintf(deps.Stderr, "[%d/%d] %s failed: %s\n", ev.Index, ev.Total, ev.Word, vocab.ErrorMessage(ev.Err))
			}
		},
	}

	res, err := e.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vocab.ErrorMessage(err))
		return err
	}

	if res.Pending == 0 {
		fmt.Fprintln(deps.Stdout, "Nothing to do. All discovered words are extracted.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d words (%d failed, %d done overall)\n", res.Extracted, res.Failed, res.Done+res.Extracted)
	return nil
}
