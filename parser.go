package vocab

// WordPage holds the fields extracted from a single word page.
type WordPage struct {
	// Word as printed on the page itself. May differ in casing from the
	// entry key derived from the URL slug.
	Word string

	// Meaning is the definition block. Multi-sense definitions are
	// newline-structured; table layouts flatten to "pos<TAB>text" lines.
	Meaning string

	// Usage holds zero or more citation-bearing example sentences,
	// separated by blank lines. Empty when the page has no usage block.
	Usage string
}

// ArchiveParser extracts word entries from the archive index page.
type ArchiveParser interface {
	// ParseArchive returns all word entries linked from the index HTML.
	// Relative hrefs are resolved against baseURL. When the same word is
	// linked twice the first occurrence wins. An index without matching
	// links yields an empty slice, not an error.
	ParseArchive(html string, baseURL string) ([]Entry, error)
}

// WordPageParser extracts structured fields from a word page.
type WordPageParser interface {
	// ParseWordPage returns the word, meaning, and usage extracted from
	// the page HTML. A missing definition block is EPARSE; a missing
	// usage block yields an empty usage field, not an error.
	ParseWordPage(html string) (*WordPage, error)
}
