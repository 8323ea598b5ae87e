// Package config defines core configuration types for gtn-lint.
// These types are pure data structures with no dependency on the CLI layer.
package config

// Severity represents the severity level of a lint diagnostic.
//
// The GTN diagnostic stream uses upper-case severities because the
// downstream review tooling matches on them verbatim.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	// FormatPlain emits one human-readable line per diagnostic.
	FormatPlain OutputFormat = "plain"
	// FormatRDJSON emits one rdjson object per line for review tooling.
	FormatRDJSON OutputFormat = "rdjson"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatPlain, FormatRDJSON:
		return true
	default:
		return false
	}
}

// Config is the resolved run configuration for a lint invocation.
type Config struct {
	// Root is the corpus root directory (the training-material checkout).
	Root string

	// Path restricts the run to a single file when non-empty.
	Path string

	// Format selects the diagnostic output format.
	Format OutputFormat

	// Limit restricts emitted diagnostics to the listed codes when non-empty.
	Limit []string

	// AutoFix applies single-line suggested replacements in place.
	AutoFix bool

	// ShortPath strips the root prefix from reported paths.
	ShortPath bool
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Format: FormatPlain,
	}
}

// LimitSet returns the limit codes as a set, or nil when no limit is set.
func (c *Config) LimitSet() map[string]struct{} {
	if len(c.Limit) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.Limit))
	for _, code := range c.Limit {
		set[code] = struct{}{}
	}
	return set
}
