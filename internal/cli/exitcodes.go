package cli

import "github.com/beatrizserrano/training-material/pkg/runner"

// Exit codes for gtn-lint.
const (
	// ExitSuccess indicates successful execution with no errors.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors.
	ExitLintErrors = 1
)

// ExitCodeFromResult determines the exit code from a run result. Warnings
// never fail the run; only ERROR diagnostics do.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitLintErrors
	}
	return ExitSuccess
}
