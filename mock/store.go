package mock

import (
	"context"

	vocab "github.com/Shalsh23/VocabBuilder"
)

var _ vocab.EntryStore = (*EntryStore)(nil)

// EntryStore is a mock implementation of vocab.EntryStore.
type EntryStore struct {
	LoadFn func(ctx context.Context) (map[string]vocab.Entry, error)
	SaveFn func(ctx context.Context, entries map[string]vocab.Entry) error
}

func (s *EntryStore) Load(ctx context.Context) (map[string]vocab.Entry, error) {
	return s.LoadFn(ctx)
}

func (s *EntryStore) Save(ctx context.Context, entries map[string]vocab.Entry) error {
	return s.SaveFn(ctx, entries)
}

var _ vocab.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of vocab.RecordStore.
type RecordStore struct {
	LoadFn   func(ctx context.Context) (map[string]vocab.Record, error)
	AppendFn func(ctx context.Context, rec vocab.Record) error
}

func (s *RecordStore) Load(ctx context.Context) (map[string]vocab.Record, error) {
	return s.LoadFn(ctx)
}

func (s *RecordStore) Append(ctx context.Context, rec vocab.Record) error {
	return s.AppendFn(ctx, rec)
}
