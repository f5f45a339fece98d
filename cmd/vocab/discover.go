package main

import (
	"fmt"

	vocab "github.com/Shalsh23/VocabBuilder"
	"github.com/Shalsh23/VocabBuilder/harvest"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	if err := deps.Lock.Acquire(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vocab.ErrorMessage(err))
		return err
	}
	defer deps.Lock.Release()

	d := &harvest.Discoverer{
		ArchiveURL: c.URL,
		Fetcher:    deps.Fetcher,
		Parser:     deps.Archive,
		Entries:    deps.Entries,
		Logger:     deps.Logger,
	}

	res, err := d.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vocab.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Discovered %d new words (%d known, %d total)\n", res.New, res.Known, res.Total)
	return nil
}
