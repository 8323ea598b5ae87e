// Package lint provides the rule engine, diagnostics, registry, and
// per-file processing pipeline for gtn-lint.
package lint

import (
	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/fix"
)

// Position is a 1-indexed source range. Columns count characters, not bytes,
// so positions on lines with multi-byte text stay stable for consumers.
// EndColumn is exclusive; a range that reaches the end of a line rolls onto
// the next line at column 1, which represents the end-of-line insertion
// point.
type Position struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Diagnostic represents a single finding in a file. Diagnostics are value
// records: created by a rule, consumed once by the pipeline, never mutated.
type Diagnostic struct {
	// Code is the stable machine-readable identifier (e.g. "GTN:007").
	Code string

	// Message is the human-readable description of the finding.
	Message string

	// Severity is WARNING or ERROR.
	Severity config.Severity

	// Path is the file the finding was reported in.
	Path string

	// Position is the 1-indexed source range of the finding.
	Position Position

	// Replacement is an optional suggested substitution.
	Replacement *fix.Replacement
}

// HasFix returns true if this diagnostic carries a suggested replacement.
func (d *Diagnostic) HasFix() bool {
	return d.Replacement != nil
}

// FileKind classifies a file for rule dispatch.
type FileKind int

const (
	// KindOther marks files no content rule applies to.
	KindOther FileKind = iota

	// KindMarkdown marks .md tutorial and slide sources.
	KindMarkdown

	// KindBib marks BibTeX bibliography files.
	KindBib

	// KindWorkflow marks Galaxy .ga workflow files.
	KindWorkflow

	// KindFilename marks the filename-only checks of the global pass,
	// which run for every file regardless of content.
	KindFilename
)

// Rule defines the interface that all lint rules implement. Rules are pure:
// registered once at process start, they never change state, and some consult
// the reference indexes read-only.
type Rule interface {
	// Code returns the stable diagnostic code (e.g. "GTN:007").
	Code() string

	// Name returns the human-readable rule name.
	Name() string

	// Description returns what the rule checks.
	Description() string

	// DefaultSeverity returns the severity applied when a rule does not
	// set one per diagnostic.
	DefaultSeverity() config.Severity

	// Kinds returns the file kinds this rule applies to.
	Kinds() []FileKind

	// CanFix returns whether the rule proposes replacements.
	CanFix() bool

	// Apply executes the rule against the given context.
	// It returns an error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
