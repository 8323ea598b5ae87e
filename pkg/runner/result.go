package runner

import (
	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// FileOutcome wraps a PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// Nil when the file errored before pipeline processing.
	Result *lint.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesChecked is the number of files that reached rule evaluation.
	FilesChecked int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// FilesFixed is the number of files rewritten by auto-fix.
	FilesFixed int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsSuppressed counts diagnostics dropped by ignore directives.
	DiagnosticsSuppressed int

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[config.Severity]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, in walk order.
	// Walk order is deterministic: lexical per directory.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any ERROR-severity diagnostic occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity[config.SeverityError] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

func newResult() *Result {
	return &Result{
		Stats: Stats{DiagnosticsBySeverity: make(map[config.Severity]int)},
	}
}

// accumulate updates the result with a file outcome. Outcomes without any
// diagnostics or errors are counted but not retained, keeping the result
// proportional to the findings rather than the corpus.
func (r *Result) accumulate(outcome FileOutcome) {
	if outcome.Error != nil {
		r.Stats.FilesErrored++
		r.Files = append(r.Files, outcome)
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesChecked++
	r.Stats.DiagnosticsSuppressed += outcome.Result.Suppressed

	if outcome.Result.Written {
		r.Stats.FilesFixed++
	}

	if len(outcome.Result.Diagnostics) == 0 {
		return
	}

	r.Stats.FilesWithIssues++
	r.Stats.DiagnosticsTotal += len(outcome.Result.Diagnostics)
	for _, diag := range outcome.Result.Diagnostics {
		r.Stats.DiagnosticsBySeverity[diag.Severity]++
	}
	r.Files = append(r.Files, outcome)
}
