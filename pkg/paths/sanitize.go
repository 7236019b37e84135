package paths

import "strings"

// DefaultIdentifier replaces identifiers that sanitize to nothing usable.
const DefaultIdentifier = "default"

func isIdentifierRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '_', r == '-':
		return true
	}
	return false
}

// SanitizeIdentifier makes id safe to use as a single storage path segment.
// Surrounding whitespace is trimmed and every rune outside [A-Za-z0-9._-]
// becomes "_". Identifiers that are empty, contain no allowed rune, or
// collapse to "." or ".." yield DefaultIdentifier.
func SanitizeIdentifier(id string) string {
	id = strings.TrimSpace(id)

	valid := false
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		if isIdentifierRune(r) {
			valid = true
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}

	safe := b.String()
	if !valid || safe == "." || safe == ".." {
		return DefaultIdentifier
	}
	return safe
}
