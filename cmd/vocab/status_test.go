package main_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	vocab "github.com/Shalsh23/VocabBuilder"
	main "github.com/Shalsh23/VocabBuilder/cmd/vocab"
	"github.com/Shalsh23/VocabBuilder/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows counts, percentage, and pending preview", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryStore{
			LoadFn: func(_ context.Context) (map[string]vocab.Entry, error) {
				m := make(map[string]vocab.Entry)
				for _, w := range []string{"apple", "banana", "cherry", "damson"} {
					m[w] = vocab.Entry{Word: w, URL: "https://wordsmith.org/words/" + w + ".html"}
				}
				return m, nil
			},
		}
		records := &mock.RecordStore{
			LoadFn: func(_ context.Context) (map[string]vocab.Record, error) {
				return map[string]vocab.Record{
					"apple": {Word: "apple", Meaning: "m"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Entries: entries,
			Records: records,
		}

		cmd := &main.StatusCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Discovered: 4")
		assert.Contains(t, output, "Extracted:  1 (25.0%)")
		assert.Contains(t, output, "Remaining:  3")
		assert.Contains(t, output, "banana")
		assert.Contains(t, output, "cherry")
		assert.Contains(t, output, "damson")
		assert.NotContains(t, output, "more")
		assert.Empty(t, stderr.String())
	})

	t.Run("caps the pending preview and counts the rest", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryStore{
			LoadFn: func(_ context.Context) (map[string]vocab.Entry, error) {
				m := make(map[string]vocab.Entry)
				for i := 0; i < 25; i++ {
					w := fmt.Sprintf("word%02d", i)
					m[w] = vocab.Entry{Word: w, URL: "https://wordsmith.org/words/" + w + ".html"}
				}
				return m, nil
			},
		}
		records := &mock.RecordStore{
			LoadFn: func(_ context.Context) (map[string]vocab.Record, error) {
				return map[string]vocab.Record{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Entries: entries,
			Records: records,
		}

		cmd := &main.StatusCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "word09")
		assert.NotContains(t, output, "word10")
		assert.Contains(t, output, "... and 15 more")
	})

	t.Run("handles an empty data directory", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryStore{
			LoadFn: func(_ context.Context) (map[string]vocab.Entry, error) {
				return map[string]vocab.Entry{}, nil
			},
		}
		records := &mock.RecordStore{
			LoadFn: func(_ context.Context) (map[string]vocab.Record, error) {
				return map[string]vocab.Record{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Entries: entries,
			Records: records,
		}

		cmd := &main.StatusCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Discovered: 0")
		assert.Contains(t, stdout.String(), "Extracted:  0 (0.0%)")
		assert.NotContains(t, stdout.String(), "Next up:")
	})

	t.Run("returns error when a store cannot be read", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryStore{
			LoadFn: func(_ context.Context) (map[string]vocab.Entry, error) {
				return nil, vocab.Errorf(vocab.ECORRUPT, "word list is corrupt")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Entries: entries,
		}

		cmd := &main.StatusCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Contains(t, stderr.String(), "word list is corrupt")
		assert.Empty(t, stdout.String())
	})
}
