package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/beatrizserrano/training-material/internal/ui/pretty"
	"github.com/beatrizserrano/training-material/pkg/lint"
	"github.com/beatrizserrano/training-material/pkg/runner"
)

// PlainReporter emits one line per diagnostic:
//
//	path:startLine:startCol:endLine:endCol:CODE message
//
// The line format is stable; downstream tooling greps it. Styling is applied
// per segment and collapses to plain text when color is off.
type PlainReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewPlainReporter creates a new plain reporter.
func NewPlainReporter(opts Options) *PlainReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &PlainReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *PlainReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var total int
	for _, file := range result.Files {
		select {
		case <-ctx.Done():
			return total, fmt.Errorf("reporting cancelled: %w", ctx.Err())
		default:
		}

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(displayPath(file.Path, r.opts)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
			continue
		}
		if file.Result == nil {
			continue
		}

		for _, diag := range file.Result.Diagnostics {
			fmt.Fprintln(r.bw, r.formatLine(&diag))
			total++
		}
	}

	if r.opts.ShowSummary {
		width := pretty.TerminalWidth(r.opts.Writer)
		fmt.Fprintln(r.bw, r.styles.Dim.Render(strings.Repeat("-", width)))
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	}

	return total, nil
}

// formatLine renders a single diagnostic line. Only the first line of a
// multi-line message is emitted so the stream stays one finding per line.
func (r *PlainReporter) formatLine(diag *lint.Diagnostic) string {
	message := diag.Message
	if nl := strings.IndexByte(message, '\n'); nl >= 0 {
		message = message[:nl]
	}

	pos := diag.Position
	return fmt.Sprintf("%s:%s:%s %s",
		r.styles.FilePath.Render(displayPath(diag.Path, r.opts)),
		r.styles.Location.Render(fmt.Sprintf("%d:%d:%d:%d", pos.StartLine, pos.StartColumn, pos.EndLine, pos.EndColumn)),
		r.styles.Code.Render(diag.Code),
		r.styles.Message.Render(message))
}
