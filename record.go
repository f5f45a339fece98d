package vocab

import "context"

// Record represents the extracted result for a single word. Meaning and
// usage are long-form text and may contain embedded newlines and quotes.
// A word present in the record store is done; re-processing is prevented
// by the extractor's resume check, not by update semantics.
type Record struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Usage   string `json:"usage"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Word == "" {
		return Errorf(EINVALID, "record word required")
	}
	return nil
}

// RecordStore persists extraction results.
type RecordStore interface {
	// Load reads all records keyed by word. A missing file is not an
	// error and yields an empty map. Returns ECORRUPT if the file exists
	// but its header or rows cannot be parsed.
	Load(ctx context.Context) (map[string]Record, error)

	// Append durably adds a single record. The write is flushed and
	// synced before Append returns so that a process kill between two
	// appends never loses a completed record. Creates the file with a
	// header row when it does not yet exist.
	Append(ctx context.Context, rec Record) error
}
