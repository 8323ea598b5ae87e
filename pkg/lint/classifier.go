package lint

import (
	"path/filepath"
	"strings"
)

// Classify determines a file's kind purely from its filename suffix.
// Unknown extensions are skipped silently by the caller.
func Classify(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md":
		return KindMarkdown
	case ".bib":
		return KindBib
	case ".ga":
		return KindWorkflow
	default:
		return KindOther
	}
}
