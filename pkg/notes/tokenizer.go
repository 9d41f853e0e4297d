package notes

import "strings"

// sectionPrefix marks a day-section delimiter line.
const sectionPrefix = "## "

type tokenKind int

const (
	tokenBody tokenKind = iota
	tokenSectionStart
)

// token is one classified input line. For tokenSectionStart, key holds the
// trimmed remainder after the "## " prefix; text holds the raw line otherwise.
type token struct {
	kind tokenKind
	text string
	key  string
}

// tokenize classifies each line of the document.
// It never drops lines; the parser decides what belongs to the header,
// what belongs to a section, and what is discarded.
func tokenize(text string) []token {
	lines := strings.Split(text, "\n")
	tokens := make([]token, 0, len(lines))

	for _, line := range lines {
		if strings.HasPrefix(line, sectionPrefix) {
			tokens = append(tokens, token{
				kind: tokenSectionStart,
				key:  strings.TrimSpace(line[len(sectionPrefix):]),
			})
			continue
		}
		tokens = append(tokens, token{kind: tokenBody, text: line})
	}

	return tokens
}
