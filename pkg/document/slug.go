package document

import (
	"strings"
	"unicode"
)

// Slugify derives a normalized identifier from free text: ASCII lowercase,
// whitespace runs collapsed to a single hyphen, everything else dropped.
// The transform is lossy but deterministic; branch-option comparisons must
// all go through this single implementation.
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '_':
			pendingHyphen = true
		default:
			// Lossy: punctuation and non-ASCII runes are dropped.
		}
	}

	return b.String()
}
