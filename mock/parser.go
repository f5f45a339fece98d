package mock

import (
	vocab "github.com/Shalsh23/VocabBuilder"
)

var _ vocab.ArchiveParser = (*ArchiveParser)(nil)

// ArchiveParser is a mock implementation of vocab.ArchiveParser.
type ArchiveParser struct {
	ParseArchiveFn func(html string, baseURL string) ([]vocab.Entry, error)
}

func (p *ArchiveParser) ParseArchive(html string, baseURL string) ([]vocab.Entry, error) {
	return p.ParseArchiveFn(html, baseURL)
}

var _ vocab.WordPageParser = (*WordPageParser)(nil)

// WordPageParser is a mock implementation of vocab.WordPageParser.
type WordPageParser struct {
	ParseWordPageFn func(html string) (*vocab.WordPage, error)
}

func (p *WordPageParser) ParseWordPage(html string) (*vocab.WordPage, error) {
	return p.ParseWordPageFn(html)
}
