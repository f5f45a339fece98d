package harvest

import (
	"github.com/gofrs/flock"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// RunLock is an advisory file lock serializing pipeline runs against a
// shared data directory. Two concurrent extractor runs could both fetch
// the same pending word before either appends its record, so writers must
// hold the lock for the whole run. The status reporter is read-only and
// does not take it.
type RunLock struct {
	fl *flock.Flock
}

// NewRunLock creates a lock backed by the file at path.
// The file is created on first acquisition and left in place afterwards.
func NewRunLock(path string) *RunLock {
	return &RunLock{fl: flock.New(path)}
}

// Acquire takes the lock without blocking. Returns ECONFLICT when another
// process already holds it; a concurrent run should fail fast rather than
// interleave writes.
func (l *RunLock) Acquire() error {
	ok, err := l.fl.TryLock()
	if err != nil {
		return err
	}
	if !ok {
		return vocab.Errorf(vocab.ECONFLICT, "another run holds the lock at %s", l.fl.Path())
	}
	return nil
}

// Release drops the lock.
func (l *RunLock) Release() error {
	return l.fl.Unlock()
}
