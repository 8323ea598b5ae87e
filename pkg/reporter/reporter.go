package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/runner"
)

// Compile-time interface checks.
var (
	_ Reporter = (*PlainReporter)(nil)
	_ Reporter = (*RDJSONReporter)(nil)
)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatPlain
	}

	switch format {
	case config.FormatPlain:
		return NewPlainReporter(opts), nil
	case config.FormatRDJSON:
		return NewRDJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (config.OutputFormat, error) {
	switch formatStr {
	case "plain", "":
		return config.FormatPlain, nil
	case "rdjson":
		return config.FormatRDJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: plain, rdjson", formatStr)
	}
}

// displayPath applies the short-path option to a reported path.
func displayPath(path string, opts Options) string {
	if !opts.ShortPath || opts.Root == "" {
		return path
	}
	rel, err := filepath.Rel(opts.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
