// Package slug turns display text into URL- and DOM-id-safe slugs.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make returns a lower-case slug of s. Unicode letters and digits are kept
// (after NFKC normalization); runs of spaces and hyphens collapse into a
// single hyphen; anything else is dropped. Leading and trailing hyphens and
// underscores are trimmed.
func Make(s string) string {
	s = strings.ToLower(norm.NFKC.String(s))

	var b strings.Builder
	b.Grow(len(s))

	pendingDash := false

	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.Is(unicode.Mn, r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}

			pendingDash = false

			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingDash = true
		}
	}

	return strings.Trim(b.String(), "-_")
}
