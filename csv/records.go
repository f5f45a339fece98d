package csv

import (
	"context"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// recordHeader matches the on-disk column layout of the extraction output.
var recordHeader = []string{"Word", "Meaning", "Usage"}

// Ensure RecordStore implements vocab.RecordStore at compile time.
var _ vocab.RecordStore = (*RecordStore)(nil)

// RecordStore persists extraction results as a three-column CSV file.
// Rows are only ever appended; a record is durable the moment Append
// returns, which is what makes interrupting the extractor safe.
type RecordStore struct {
	path string
}

// NewRecordStore creates a RecordStore backed by the file at path.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// Path returns the location of the backing file.
func (s *RecordStore) Path() string {
	return s.path
}

// Load reads all records keyed by word.
func (s *RecordStore) Load(ctx context.Context) (map[string]vocab.Record, error) {
	rows, err := readTable(s.path, recordHeader)
	if err != nil {
		return nil, err
	}

	records := make(map[string]vocab.Record, len(rows))
	for _, row := range rows {
		records[row[0]] = vocab.Record{Word: row[0], Meaning: row[1], Usage: row[2]}
	}
	return records, nil
}

// Append durably adds a single record, creating the file with a header
// row when it does not yet exist.
func (s *RecordStore) Append(ctx context.Context, rec vocab.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return appendRow(s.path, recordHeader, []string{rec.Word, rec.Meaning, rec.Usage})
}
