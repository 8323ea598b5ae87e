package pretty

import (
	"fmt"
	"strings"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/runner"
)

// FormatSummary renders a one-line run summary suitable for the end of a
// terminal session.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var b strings.Builder

	errors := stats.DiagnosticsBySeverity[config.SeverityError]
	warnings := stats.DiagnosticsBySeverity[config.SeverityWarning]

	if stats.DiagnosticsTotal == 0 {
		b.WriteString(s.Success.Render("✓"))
		b.WriteString(fmt.Sprintf(" %d files checked, no issues found\n", stats.FilesChecked))
		return b.String()
	}

	if errors > 0 {
		b.WriteString(s.Failure.Render("✗"))
	} else {
		b.WriteString(s.Warning.Render("!"))
	}
	b.WriteString(fmt.Sprintf(" %d issues (%d errors, %d warnings) in %d of %d files",
		stats.DiagnosticsTotal, errors, warnings, stats.FilesWithIssues, stats.FilesChecked))
	if stats.DiagnosticsSuppressed > 0 {
		b.WriteString(s.Dim.Render(fmt.Sprintf(", %d suppressed", stats.DiagnosticsSuppressed)))
	}
	if stats.FilesFixed > 0 {
		b.WriteString(s.Success.Render(fmt.Sprintf(", %d files fixed", stats.FilesFixed)))
	}
	b.WriteString("\n")

	return b.String()
}
