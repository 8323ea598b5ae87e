// Package reporter formats and writes lint results.
package reporter

import (
	"io"
	"os"

	"github.com/beatrizserrano/training-material/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary displays aggregate statistics after results.
	// Only the plain format honors it; rdjson output stays pure.
	ShowSummary bool

	// Root is stripped from reported paths when ShortPath is set.
	Root string

	// ShortPath reports paths relative to Root.
	ShortPath bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      config.FormatPlain,
		Color:       "auto",
		ShowSummary: true,
	}
}
