package main

import (
	"fmt"

	vocab "github.com/Shalsh23/VocabBuilder"
	"github.com/Shalsh23/VocabBuilder/harvest"
)

// Run executes the status command. Status is read-only and does not take
// the run lock, so it can be used while an extraction is in progress.
func (c *StatusCmd) Run(deps *Dependencies) error {
	r := &harvest.Reporter{
		Entries: deps.Entries,
		Records: deps.Records,
	}

	st, err := r.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vocab.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Discovered: %d\n", st.Discovered)
	fmt.Fprintf(deps.Stdout, "Extracted:  %d (%.1f%%)\n", st.Extracted, st.Progress*100)
	fmt.Fprintf(deps.Stdout, "Remaining:  %d\n", st.Remaining)

	if len(st.Pending) > 0 {
		fmt.Fprintln(deps.Stdout, "Next up:")
		for _, word := range st.Pending {
			fmt.Fprintf(deps.Stdout, "  %s\n", word)
		}
		if st.Remaining > len(st.Pending) {
			fmt.Fprintf(deps.Stdout, "  ... and %d more\n", st.Remaining-len(st.Pending))
		}
	}

	return nil
}
