// Package content converts raw file node payloads into the canonical form
// that is fingerprinted and written to the backing store.
package content

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/wslaunch/pkg/types"
)

// Normalize returns the stored form of raw for the given encoding.
// Encoded binary payloads are only trimmed; everything else is dedented.
func Normalize(raw string, encoding types.Encoding) string {
	if encoding.IsBinary() {
		return strings.TrimFunc(raw, isSpace)
	}
	return Dedent(raw)
}

// Dedent normalizes line endings to "\n", drops leading and trailing blank
// lines, then removes the indentation shared by every non-blank line.
//
// Indentation is counted in whitespace runes; a tab and a space weigh the
// same, and a byte order mark counts as whitespace. Blank lines lose at
// most their own length.
func Dedent(raw string) string {
	lines := strings.Split(normalizeNewlines(raw), "\n")

	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	lines = lines[start:end]

	minIndent := -1
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		if n := leadingWhitespace(line); minIndent < 0 || n < minIndent {
			minIndent = n
		}
	}
	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}

	for i, line := range lines {
		lines[i] = trimIndent(line, minIndent)
	}
	return strings.Join(lines, "\n")
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func isSpace(r rune) bool {
	return r == '\uFEFF' || unicode.IsSpace(r)
}

func isBlank(line string) bool {
	return strings.TrimFunc(line, isSpace) == ""
}

// leadingWhitespace counts the whitespace runes that prefix line.
func leadingWhitespace(line string) int {
	n := 0
	for _, r := range line {
		if !isSpace(r) {
			break
		}
		n++
	}
	return n
}

// trimIndent removes up to n leading whitespace runes from line.
func trimIndent(line string, n int) string {
	for i, r := range line {
		if n == 0 || !isSpace(r) {
			return line[i:]
		}
		n--
	}
	return ""
}
