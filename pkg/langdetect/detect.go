// Package langdetect detects the language of fenced code snippets so the
// linter can suggest a language tag for unlabelled blocks.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates are the languages that actually occur in training-material
// code blocks; constraining the classifier keeps detection stable.
//
//nolint:gochecknoglobals // Closed candidate list, read-only
var candidates = []string{
	"Shell", "Python", "R", "SQL", "JSON", "YAML", "XML", "Perl", "Dockerfile",
}

// Detect returns a lower-case language identifier for snippet content, or
// "" when detection is not confident enough to suggest anything.
func Detect(content []byte) string {
	if len(strings.TrimSpace(string(content))) == 0 {
		return ""
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

// normalize maps enry language names onto fence info strings.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	default:
		return strings.ToLower(lang)
	}
}
