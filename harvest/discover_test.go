package harvest_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	vocab "github.com/Shalsh23/VocabBuilder"
	vocabcsv "github.com/Shalsh23/VocabBuilder/csv"
	"github.com/Shalsh23/VocabBuilder/harvest"
	"github.com/Shalsh23/VocabBuilder/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverer_Run(t *testing.T) {
	t.Parallel()

	t.Run("merges scraped candidates into the existing frontier", func(t *testing.T) {
		t.Parallel()

		var saved map[string]vocab.Entry
		d := &harvest.Discoverer{
			ArchiveURL: "https://wordsmith.org/awad/archives.html",
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "<html>index</html>", nil
				},
			},
			Parser: &mock.ArchiveParser{
				ParseArchiveFn: func(_, _ string) ([]vocab.Entry, error) {
					return []vocab.Entry{
						{Word: "b", URL: "u2"},
						{Word: "c", URL: "u3"},
					}, nil
				},
			},
			Entries: &mock.EntryStore{
				LoadFn: func(context.Context) (map[string]vocab.Entry, error) {
					return map[string]vocab.Entry{
						"a": {Word: "a", URL: "u1"},
						"b": {Word: "b", URL: "u2"},
					}, nil
				},
				SaveFn: func(_ context.Context, entries map[string]vocab.Entry) error {
					saved = entries
					return nil
				},
			},
		}

		result, err := d.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, result.New)
		assert.Equal(t, 2, result.Known)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, map[string]vocab.Entry{
			"a": {Word: "a", URL: "u1"},
			"b": {Word: "b", URL: "u2"},
			"c": {Word: "c", URL: "u3"},
		}, saved)
	})

	t.Run("keeps the existing URL when a word reappears with a new link", func(t *testing.T) {
		t.Parallel()

		var saved map[string]vocab.Entry
		d := &harvest.Discoverer{
			ArchiveURL: "https://wordsmith.org/awad/archives.html",
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "", nil },
			},
			Parser: &mock.ArchiveParser{
				ParseArchiveFn: func(_, _ string) ([]vocab.Entry, error) {
					return []vocab.Entry{{Word: "a", URL: "changed"}}, nil
				},
			},
			Entries: &mock.EntryStore{
				LoadFn: func(context.Context) (map[string]vocab.Entry, error) {
					return map[string]vocab.Entry{"a": {Word: "a", URL: "original"}}, nil
				},
				SaveFn: func(_ context.Context, entries map[string]vocab.Entry) error {
					saved = entries
					return nil
				},
			},
		}

		result, err := d.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, result.New)
		assert.Equal(t, "original", saved["a"].URL)
	})

	t.Run("index fetch failure is fatal", func(t *testing.T) {
		t.Parallel()

		d := &harvest.Discoverer{
			ArchiveURL: "https://wordsmith.org/awad/archives.html",
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", vocab.Errorf(vocab.EUNAVAILABLE, "HTTP 503")
				},
			},
			Parser: &mock.ArchiveParser{
				ParseArchiveFn: func(_, _ string) ([]vocab.Entry, error) {
					t.Fatal("parser must not be called after a fetch failure")
					return nil, nil
				},
			},
			Entries: &mock.EntryStore{},
		}

		_, err := d.Run(context.Background())
		assert.Equal(t, vocab.EUNAVAILABLE, vocab.ErrorCode(err))
	})

	t.Run("warns when the index yields no candidate links", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		d := &harvest.Discoverer{
			ArchiveURL: "https://wordsmith.org/awad/archives.html",
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Parser: &mock.ArchiveParser{
				ParseArchiveFn: func(_, _ string) ([]vocab.Entry, error) { return nil, nil },
			},
			Entries: &mock.EntryStore{
				LoadFn: func(context.Context) (map[string]vocab.Entry, error) {
					return map[string]vocab.Entry{"a": {Word: "a", URL: "u1"}}, nil
				},
				SaveFn: func(_ context.Context, entries map[string]vocab.Entry) error {
					assert.Len(t, entries, 1)
					return nil
				},
			},
			Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		}

		result, err := d.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, result.New)
		assert.Equal(t, 1, result.Total)
		assert.Contains(t, buf.String(), "no word links found")
	})

	t.Run("corrupt entry store aborts before any write", func(t *testing.T) {
		t.Parallel()

		d := &harvest.Discoverer{
			ArchiveURL: "https://wordsmith.org/awad/archives.html",
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "", nil },
			},
			Parser: &mock.ArchiveParser{
				ParseArchiveFn: func(_, _ string) ([]vocab.Entry, error) {
					return []vocab.Entry{{Word: "a", URL: "u1"}}, nil
				},
			},
			Entries: &mock.EntryStore{
				LoadFn: func(context.Context) (map[string]vocab.Entry, error) {
					return nil, vocab.Errorf(vocab.ECORRUPT, "bad header")
				},
				SaveFn: func(context.Context, map[string]vocab.Entry) error {
					t.Fatal("save must not be called when load fails")
					return nil
				},
			},
		}

		_, err := d.Run(context.Background())
		assert.Equal(t, vocab.ECORRUPT, vocab.ErrorCode(err))
	})
}

func TestDiscoverer_Idempotence(t *testing.T) {
	t.Parallel()

	// Running discovery twice against an unchanged index leaves the store
	// byte-identical: no duplicate rows, same count.
	path := filepath.Join(t.TempDir(), "words.csv")
	store := vocabcsv.NewEntryStore(path)

	newDiscoverer := func() *harvest.Discoverer {
		return &harvest.Discoverer{
			ArchiveURL: "https://wordsmith.org/awad/archives.html",
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "index", nil },
			},
			Parser: &mock.ArchiveParser{
				ParseArchiveFn: func(_, _ string) ([]vocab.Entry, error) {
					return []vocab.Entry{
						{Word: "abulia", URL: "https://wordsmith.org/words/abulia.html"},
						{Word: "zugzwang", URL: "https://wordsmith.org/words/zugzwang.html"},
					}, nil
				},
			},
			Entries: store,
		}
	}

	first, err := newDiscoverer().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.New)
	firstData, err := os.ReadFile(path)
	require.NoError(t, err)

	second, err := newDiscoverer().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.New)
	assert.Equal(t, 2, second.Known)
	assert.Equal(t, 2, second.Total)

	secondData, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, firstData, secondData)
}
