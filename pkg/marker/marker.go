// Package marker attaches, strips, and merges per-bullet category markers.
//
// A marker is a trailing "{code}" on a bullet line, with code matching
// [a-z0-9_-]{1,8} case-insensitive. A bullet's marker is identified by its
// line position within a day's content, never by matching the bullet text.
package marker

import (
	"fmt"
	"regexp"
	"strings"
)

// markerPattern matches a line ending in optional whitespace plus a
// well-formed marker. Group 1 is the base line, group 2 the code.
var markerPattern = regexp.MustCompile(`^(.*?)[ \t]*\{([A-Za-z0-9_-]{1,8})\}$`)

const bulletPrefix = "- "

// Strip removes category markers line by line.
//
// The returned text has the same line count and order as the input. codes
// is positionally aligned with the lines: the lowercased code for lines
// that carried a marker, "" for lines that did not.
func Strip(text string) (string, []string) {
	lines := strings.Split(text, "\n")
	codes := make([]string, len(lines))

	for i, line := range lines {
		m := markerPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lines[i] = strings.TrimRight(m[1], " \t")
		codes[i] = strings.ToLower(m[2])
	}

	return strings.Join(lines, "\n"), codes
}

// ExtractBullets normalizes a day's content into canonical bullet lines.
//
// Markers are stripped first, then each line is trimmed, blank lines are
// dropped, and every remaining line is rewritten as "- <content>" (any
// pre-existing "- " prefix is removed before canonicalizing). bullets
// holds the bare contents, one per non-blank line of the normalized text.
func ExtractBullets(text string) (string, []string) {
	stripped, _ := Strip(text)

	var lines []string
	var bullets []string
	for _, line := range strings.Split(stripped, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		content := strings.TrimSpace(strings.TrimPrefix(line, bulletPrefix))
		lines = append(lines, bulletPrefix+content)
		bullets = append(bullets, content)
	}

	return strings.Join(lines, "\n"), bullets
}

// Apply appends " {code}" to each line of text whose positional code is
// non-empty. codes must align one-to-one with the lines of text; a length
// mismatch is a caller contract violation.
func Apply(text string, codes []string) (string, error) {
	lines := strings.Split(text, "\n")
	if len(codes) != len(lines) {
		return "", fmt.Errorf("marker: %d codes for %d lines", len(codes), len(lines))
	}

	for i, code := range codes {
		if code == "" {
			continue
		}
		lines[i] = lines[i] + " {" + code + "}"
	}

	return strings.Join(lines, "\n"), nil
}

// Merge carries markers from a day's previous raw content onto its
// replacement text, by line index.
//
// Any marker the user typed into next by hand is stripped; the marker at
// the same index in previous (if any) is reattached instead. This keeps
// classifications across plain text edits as long as bullet count and
// order are unchanged. When bullets are added, removed, or reordered the
// reattachment can land a stale marker on the wrong bullet; that is an
// accepted positional heuristic, not content-aware diffing.
func Merge(previous, next string) string {
	_, prevCodes := Strip(previous)

	lines := strings.Split(next, "\n")
	for i, line := range lines {
		base := line
		if m := markerPattern.FindStringSubmatch(line); m != nil {
			base = strings.TrimRight(m[1], " \t")
		}
		if i < len(prevCodes) && prevCodes[i] != "" {
			base = base + " {" + prevCodes[i] + "}"
		}
		lines[i] = base
	}

	return strings.Join(lines, "\n")
}

// AllMarked reports whether text has at least one non-blank line and every
// non-blank line carries a well-formed marker. Used as the idempotency
// gate before classification.
func AllMarked(text string) bool {
	stripped, codes := Strip(text)

	seen := false
	for i, line := range strings.Split(stripped, "\n") {
		if strings.TrimSpace(line) == "" && codes[i] == "" {
			continue
		}
		if codes[i] == "" {
			return false
		}
		seen = true
	}
	return seen
}
