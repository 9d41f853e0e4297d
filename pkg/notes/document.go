// Package notes models the day-sectioned journal document.
//
// The document is a single flat text file: a free-form header followed by
// sections, one per day, each introduced by a "## <key>" line. Parsing is
// a full reconstruction from text and building is a full serialization;
// there is no incremental mutation of the backing file.
package notes

import (
	"sort"
	"strings"
	"time"
)

// DefaultHeader is used when a document has no header lines of its own.
const DefaultHeader = "# Notes"

// dayKeyLayout is the conventional day-key format. Keys that do not parse
// with it are still legal; they just sort lexicographically.
const dayKeyLayout = "2006-01-02"

// Document is a parsed journal: a header plus day-keyed bullet content.
// Keys are unique and content is always trimmed and non-empty; setting a
// day to blank content removes the entry.
type Document struct {
	Header string

	days  map[string]string
	order []string // keys in first-seen document order
}

// NewDocument returns an empty document with the default header.
func NewDocument() *Document {
	return &Document{
		Header: DefaultHeader,
		days:   make(map[string]string),
	}
}

// Parse reconstructs a Document from raw text.
//
// All lines before the first "## " line form the header (trimmed; blank
// falls back to DefaultHeader). Each "## " line starts a section whose
// trimmed remainder is the day key; body lines up to the next section (or
// end of input) are joined and trimmed into that day's content. If a key
// repeats, the last occurrence wins. Blank content is never stored.
func Parse(text string) *Document {
	doc := NewDocument()

	type parseState int
	const (
		inHeader parseState = iota
		inSection
	)

	state := inHeader
	var headerLines []string
	var currentKey string
	var currentBody []string

	flush := func() {
		if state != inSection {
			return
		}
		doc.SetDay(currentKey, strings.Join(currentBody, "\n"))
	}

	for _, tok := range tokenize(text) {
		switch tok.kind {
		case tokenSectionStart:
			flush()
			state = inSection
			currentKey = tok.key
			currentBody = currentBody[:0]
		case tokenBody:
			if state == inHeader {
				headerLines = append(headerLines, tok.text)
			} else {
				currentBody = append(currentBody, tok.text)
			}
		}
	}
	flush()

	header := strings.TrimSpace(strings.Join(headerLines, "\n"))
	if header != "" {
		doc.Header = header
	}

	return doc
}

// Day returns a day's content and whether the day exists.
func (d *Document) Day(key string) (string, bool) {
	content, ok := d.days[key]
	return content, ok
}

// Keys returns the day keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	return keys
}

// Len returns the number of stored days.
func (d *Document) Len() int {
	return len(d.days)
}

// SetDay stores a day's content, trimmed. Blank content removes the day,
// keeping the "no empty entries" invariant without a separate delete path
// for callers that cleared a day.
func (d *Document) SetDay(key, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		d.DeleteDay(key)
		return
	}
	if _, exists := d.days[key]; !exists {
		d.order = append(d.order, key)
	}
	d.days[key] = content
}

// DeleteDay removes a day if present.
func (d *Document) DeleteDay(key string) {
	if _, exists := d.days[key]; !exists {
		return
	}
	delete(d.days, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// compareKeys orders two day keys. When both parse as dates they compare
// chronologically, otherwise lexicographically. This per-pair rule is not
// transitive across a mix of date and non-date keys; that ambiguity is
// inherited from the original format and kept as-is.
func compareKeys(a, b string) int {
	ta, errA := time.Parse(dayKeyLayout, a)
	tb, errB := time.Parse(dayKeyLayout, b)
	if errA == nil && errB == nil {
		return ta.Compare(tb)
	}
	return strings.Compare(a, b)
}

// Build serializes the document back to text.
//
// Days with blank content are dropped, the rest are sorted with
// compareKeys and rendered as "## <key>" sections separated by blank
// lines, with a trailing newline. A document with no sections renders as
// just the header.
func (d *Document) Build() string {
	header := strings.TrimSpace(d.Header)
	if header == "" {
		header = DefaultHeader
	}

	keys := make([]string, 0, len(d.days))
	for key, content := range d.days {
		if strings.TrimSpace(content) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return compareKeys(keys[i], keys[j]) < 0
	})

	if len(keys) == 0 {
		return header + "\n"
	}

	var b strings.Builder
	b.WriteString(header)
	for _, key := range keys {
		b.WriteString("\n\n")
		b.WriteString(sectionPrefix)
		b.WriteString(key)
		b.WriteString("\n\n")
		b.WriteString(strings.TrimSpace(d.days[key]))
	}
	b.WriteString("\n")
	return b.String()
}
