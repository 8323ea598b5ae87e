package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldRoot  = "root"
	FieldFiles = "files"
	FieldCode  = "code"

	// Configuration fields.
	FieldFormat  = "format"
	FieldAutoFix = "auto_fix"
	FieldLimit   = "limit"

	// Statistics fields.
	FieldFilesChecked     = "files_checked"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldFilesFixed       = "files_fixed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldName     = "name"
	FieldSeverity = "severity"
)
