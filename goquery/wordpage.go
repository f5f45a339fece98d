package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	vocab "github.com/Shalsh23/VocabBuilder"
)

// Ensure WordPageParser implements vocab.WordPageParser at compile time.
var _ vocab.WordPageParser = (*WordPageParser)(nil)

// WordPageParser extracts the word, meaning, and usage citations from a
// word page. The page labels its sections with bare "MEANING:" and
// "USAGE:" divs followed by a content div; the word itself is the first
// h3 heading.
type WordPageParser struct{}

// NewWordPageParser creates a new WordPageParser.
func NewWordPageParser() *WordPageParser {
	return &WordPageParser{}
}

var (
	doubleBreakRE = regexp.MustCompile(`(?i)<br\s*/?>\s*<br\s*/?>`)
	singleBreakRE = regexp.MustCompile(`(?i)<br\s*/?>`)
	spaceRunRE    = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRunRE  = regexp.MustCompile(`\n{3,}`)
)

// ParseWordPage returns the structured fields extracted from the page.
// A missing or empty definition block is EPARSE; a missing usage block
// yields an empty usage field.
func (p *WordPageParser) ParseWordPage(html string) (*vocab.WordPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vocab.Errorf(vocab.EPARSE, "cannot parse word page: %v", err)
	}

	word := strings.TrimSpace(doc.Find("h3").First().Text())

	meaningSel := contentAfterLabel(doc, "MEANING:")
	if meaningSel == nil {
		return nil, vocab.Errorf(vocab.EPARSE, "definition block not found")
	}
	meaning := extractMeaning(meaningSel)
	if meaning == "" {
		return nil, vocab.Errorf(vocab.EPARSE, "definition block is empty")
	}

	usage := ""
	if usageSel := contentAfterLabel(doc, "USAGE:"); usageSel != nil {
		usage = extractUsage(usageSel)
	}

	return &vocab.WordPage{
		Word:    word,
		Meaning: meaning,
		Usage:   usage,
	}, nil
}

// contentAfterLabel finds the div whose entire text is the given label and
// returns the following content div. Returns nil when the label or its
// content block is absent.
func contentAfterLabel(doc *goquery.Document, label string) *goquery.Selection {
	labelSel := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == label
	}).First()
	if labelSel.Length() == 0 {
		return nil
	}

	content := labelSel.NextFiltered("div").First()
	if content.Length() == 0 {
		// Some archive years nest the label; fall back to the next div
		// anywhere after the label's parent.
		content = labelSel.Parent().NextFiltered("div").First()
	}
	if content.Length() == 0 {
		return nil
	}
	return content
}

// extractMeaning flattens the definition block to text. Tabular layouts
// (part of speech in one cell, sense in the next) become "pos<TAB>text"
// lines; plain blocks keep their line structure with runs collapsed.
func extractMeaning(sel *goquery.Selection) string {
	if table := sel.Find("table"); table.Length() > 0 {
		var b strings.Builder
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() < 2 {
				return
			}
			pos := cleanLine(cells.Eq(0).Text())
			sense := cleanLine(cells.Eq(1).Text())
			b.WriteString(pos)
			b.WriteString("\t")
			b.WriteString(sense)
			b.WriteString("\n")
		})
		return normalizeQuotes(strings.TrimSpace(b.String()))
	}

	text := sel.Text()
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = cleanLine(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return normalizeQuotes(strings.Join(kept, "\n"))
}

// extractUsage flattens the usage block to text. Double <br> separates
// citations, so it becomes a blank line; a single <br> becomes a newline.
// The trailing "See more usage examples" boilerplate link is dropped.
func extractUsage(sel *goquery.Selection) string {
	raw, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}

	raw = doubleBreakRE.ReplaceAllString(raw, "\n\n")
	raw = singleBreakRE.ReplaceAllString(raw, "\n")

	frag, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	text := frag.Text()

	if i := strings.Index(text, "See more usage examples"); i >= 0 {
		text = text[:i]
	}

	text = spaceRunRE.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = newlineRunRE.ReplaceAllString(text, "\n\n")
	return normalizeQuotes(strings.TrimSpace(text))
}

// cleanLine collapses whitespace runs within a single line.
func cleanLine(s string) string {
	return strings.TrimSpace(spaceRunRE.ReplaceAllString(s, " "))
}

var quoteReplacer = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
)

// normalizeQuotes maps typographic quotes to their ASCII equivalents so
// downstream consumers don't need to handle both forms.
func normalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}
