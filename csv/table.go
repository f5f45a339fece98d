// Package csv provides CSV-backed implementations of vocab.EntryStore and
// vocab.RecordStore. Files are UTF-8 with a header row; fields are quoted
// per RFC 4180 so free-text values may contain delimiters, quotes, and
// newlines and still round-trip on reload.
package csv

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// readTable reads all data rows from path, validating the header against
// the expected column names. A missing file is not an error and yields a
// nil slice. A file whose header or rows cannot be parsed returns ECORRUPT:
// the caller's "already done" computation cannot be trusted in that case.
func readTable(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	got, err := r.Read()
	if err == io.EOF {
		return nil, vocab.Errorf(vocab.ECORRUPT, "%s: missing header row", path)
	} else if err != nil {
		return nil, vocab.Errorf(vocab.ECORRUPT, "%s: cannot parse header: %v", path, err)
	}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(got[i]), name) {
			return nil, vocab.Errorf(vocab.ECORRUPT, "%s: header column %d is %q, want %q", path, i, got[i], name)
		}
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, vocab.Errorf(vocab.ECORRUPT, "%s: cannot parse row: %v", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// overwriteTable replaces the file at path with the header and rows. The
// write is flushed and synced before returning.
func overwriteTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// appendRow durably appends a single data row. When the file does not yet
// exist (or is empty) the header is written first, so append-into-nothing
// behaves as overwrite-with-header. The row is flushed and synced before
// returning; this is the property the extractor's resume guarantee
// depends on.
func appendRow(path string, header []string, row []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Write(row); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
