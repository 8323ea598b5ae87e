package lint

import (
	"unicode/utf8"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/fix"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnosticAt starts building a diagnostic at a specific position.
func NewDiagnosticAt(code, path string, pos Position, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			Code:     code,
			Message:  message,
			Path:     path,
			Position: pos,
		},
	}
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithReplacement attaches a suggested replacement covering the
// diagnostic's own range.
func (b *DiagnosticBuilder) WithReplacement(text string) *DiagnosticBuilder {
	b.diag.Replacement = &fix.Replacement{
		Text:        text,
		StartLine:   b.diag.Position.StartLine,
		StartColumn: b.diag.Position.StartColumn,
		EndLine:     b.diag.Position.EndLine,
		EndColumn:   b.diag.Position.EndColumn,
	}
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}

// MatchPosition converts a regex match on one line into a Position.
// line is 1-based; start and end are 0-based byte offsets into lineText with
// end exclusive. Reported columns are 1-indexed character offsets, so they
// stay stable for lines containing multi-byte text. A match reaching the end
// of the line rolls the end location onto the next line at column 1.
func MatchPosition(line int, lineText string, start, end int) Position {
	pos := Position{
		StartLine:   line,
		StartColumn: utf8.RuneCountInString(lineText[:start]) + 1,
		EndLine:     line,
		EndColumn:   utf8.RuneCountInString(lineText[:end]) + 1,
	}
	if end >= len(lineText) {
		pos.EndLine = line + 1
		pos.EndColumn = 1
	}
	return pos
}

// LinePosition returns the Position covering an entire 1-based line.
func LinePosition(line int, lineText string) Position {
	return MatchPosition(line, lineText, 0, len(lineText))
}
