package slog

import (
	"context"
	"log/slog"
	"time"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// Ensure LoggingRecordStore implements vocab.RecordStore.
var _ vocab.RecordStore = (*LoggingRecordStore)(nil)

// LoggingRecordStore wraps a RecordStore with logging on the write path.
type LoggingRecordStore struct {
	next   vocab.RecordStore
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore.
func NewLoggingRecordStore(next vocab.RecordStore, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, logger: logger}
}

// Load delegates to the wrapped store.
func (s *LoggingRecordStore) Load(ctx context.Context) (map[string]vocab.Record, error) {
	return s.next.Load(ctx)
}

// Append delegates to the wrapped store and logs the durable write.
func (s *LoggingRecordStore) Append(ctx context.Context, rec vocab.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("record appended",
			"word", rec.Word,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Append(ctx, rec)
}
