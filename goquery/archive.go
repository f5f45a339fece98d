// Package goquery provides goquery-based implementations of the site
// parsers: the archive index parser and the word page parser.
package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// Ensure ArchiveParser implements vocab.ArchiveParser at compile time.
var _ vocab.ArchiveParser = (*ArchiveParser)(nil)

// ArchiveParser extracts word entries from the archive index page.
// Word page links look like /words/<slug>.html; the normalized slug is the
// entry key. Display text is not used for identity: it varies in casing
// and decoration across archive sections, while the slug is stable.
type ArchiveParser struct{}

// NewArchiveParser creates a new ArchiveParser.
func NewArchiveParser() *ArchiveParser {
	return &ArchiveParser{}
}

// ParseArchive returns all word entries linked from the index HTML.
// The first occurrence wins when the same word is linked more than once.
// An index without matching links yields an empty slice, not an error.
func (p *ArchiveParser) ParseArchive(html string, baseURL string) ([]vocab.Entry, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, vocab.Errorf(vocab.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vocab.Errorf(vocab.EPARSE, "cannot parse archive page: %v", err)
	}

	seen := make(map[string]bool)
	var entries []vocab.Entry
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		word, ok := wordFromPath(ref.Path)
		if !ok || seen[word] {
			return
		}
		seen[word] = true

		entries = append(entries, vocab.Entry{
			Word: word,
			URL:  base.ResolveReference(ref).String(),
		})
	})

	return entries, nil
}

// wordFromPath derives the normalized entry key from a link path.
// Only /words/<slug>.html paths qualify. Normalization is lowercase plus
// trim; slugs are single tokens so no further phrase handling is needed.
func wordFromPath(p string) (string, bool) {
	if !strings.HasPrefix(p, "/words/") || !strings.HasSuffix(p, ".html") {
		return "", false
	}
	slug := strings.TrimSuffix(path.Base(p), ".html")
	word := strings.ToLower(strings.TrimSpace(slug))
	if word == "" {
		return "", false
	}
	return word, true
}
