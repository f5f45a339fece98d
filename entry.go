package vocab

import "context"

// Entry represents a word page discovered on the archive index. The word is
// the entry's identity; an entry is never mutated or deleted once
// persisted, so the entry store only grows across discovery runs.
type Entry struct {
	Word string `json:"word"`
	URL  string `json:"url"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Word == "" {
		return Errorf(EINVALID, "entry word required")
	}
	if e.URL == "" {
		return Errorf(EINVALID, "entry URL required")
	}
	return nil
}

// EntryStore persists the discovered word frontier.
type EntryStore interface {
	// Load reads the full entry set keyed by word. A missing file is not
	// an error and yields an empty map. Returns ECORRUPT if the file
	// exists but its header or rows cannot be parsed.
	Load(ctx context.Context) (map[string]Entry, error)

	// Save overwrites the store with the given entry set, sorted by word.
	// The caller is responsible for merging previously persisted entries
	// into the set first; Save never reads the old contents.
	Save(ctx context.Context, entries map[string]Entry) error
}
