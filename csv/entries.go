package csv

import (
	"context"
	"sort"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// entryHeader matches the on-disk column layout of the word list file.
var entryHeader = []string{"Word", "URL"}

// Ensure EntryStore implements vocab.EntryStore at compile time.
var _ vocab.EntryStore = (*EntryStore)(nil)

// EntryStore persists the discovered word frontier as a two-column CSV
// file. Each call re-reads or re-writes the file; the returned mapping is
// a point-in-time snapshot owned by the caller.
type EntryStore struct {
	path string
}

// NewEntryStore creates an EntryStore backed by the file at path.
func NewEntryStore(path string) *EntryStore {
	return &EntryStore{path: path}
}

// Path returns the location of the backing file.
func (s *EntryStore) Path() string {
	return s.path
}

// Load reads the full entry set keyed by word.
func (s *EntryStore) Load(ctx context.Context) (map[string]vocab.Entry, error) {
	rows, err := readTable(s.path, entryHeader)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]vocab.Entry, len(rows))
	for _, row := range rows {
		entries[row[0]] = vocab.Entry{Word: row[0], URL: row[1]}
	}
	return entries, nil
}

// Save overwrites the store with the given entry set, sorted by word so
// repeated saves of the same set are byte-identical.
func (s *EntryStore) Save(ctx context.Context, entries map[string]vocab.Entry) error {
	words := make([]string, 0, len(entries))
	for word := range entries {
		words = append(words, word)
	}
	sort.Strings(words)

	rows := make([][]string, 0, len(words))
	for _, word := range words {
		e := entries[word]
		if err := e.Validate(); err != nil {
			return err
		}
		rows = append(rows, []string{e.Word, e.URL})
	}
	return overwriteTable(s.path, entryHeader, rows)
}
