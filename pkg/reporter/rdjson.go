package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/beatrizserrano/training-material/pkg/lint"
	"github.com/beatrizserrano/training-material/pkg/runner"
)

// codeURLBase is the documentation anchor prefix for diagnostic codes.
const codeURLBase = "https://training.galaxyproject.org/training-material/topics/contributing/tutorials/gtn-linting/tutorial.html"

// rdjson wire types, one object per line (the rdjsonl variant).
type rdPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type rdRange struct {
	Start rdPosition `json:"start"`
	End   rdPosition `json:"end"`
}

type rdLocation struct {
	Path  string   `json:"path"`
	Range *rdRange `json:"range,omitempty"`
}

type rdCode struct {
	Value string `json:"value"`
	URL   string `json:"url,omitempty"`
}

type rdSuggestion struct {
	Text  string   `json:"text"`
	Range *rdRange `json:"range,omitempty"`
}

type rdDiagnostic struct {
	Message     string         `json:"message"`
	Location    rdLocation     `json:"location"`
	Severity    string         `json:"severity"`
	Code        rdCode         `json:"code"`
	Suggestions []rdSuggestion `json:"suggestions,omitempty"`
}

// RDJSONReporter emits one rdjson object per line for review tooling.
type RDJSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewRDJSONReporter creates a new rdjson reporter.
func NewRDJSONReporter(opts Options) *RDJSONReporter {
	return &RDJSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *RDJSONReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)

	var total int
	for _, file := range result.Files {
		select {
		case <-ctx.Done():
			return total, fmt.Errorf("reporting cancelled: %w", ctx.Err())
		default:
		}
		if file.Error != nil || file.Result == nil {
			continue
		}

		for _, diag := range file.Result.Diagnostics {
			if encodeErr := encoder.Encode(toRDJSON(&diag, r.opts)); encodeErr != nil {
				return total, fmt.Errorf("encode diagnostic: %w", encodeErr)
			}
			total++
		}
	}

	return total, nil
}

// toRDJSON converts a diagnostic to its wire form.
func toRDJSON(diag *lint.Diagnostic, opts Options) rdDiagnostic {
	pos := diag.Position
	rng := &rdRange{
		Start: rdPosition{Line: pos.StartLine, Column: pos.StartColumn},
		End:   rdPosition{Line: pos.EndLine, Column: pos.EndColumn},
	}

	out := rdDiagnostic{
		Message: diag.Message,
		Location: rdLocation{
			Path:  displayPath(diag.Path, opts),
			Range: rng,
		},
		Severity: string(diag.Severity),
		Code: rdCode{
			Value: diag.Code,
			URL:   codeURL(diag.Code),
		},
	}

	if diag.Replacement != nil {
		out.Suggestions = []rdSuggestion{{
			Text: diag.Replacement.Text,
			Range: &rdRange{
				Start: rdPosition{Line: diag.Replacement.StartLine, Column: diag.Replacement.StartColumn},
				End:   rdPosition{Line: diag.Replacement.EndLine, Column: diag.Replacement.EndColumn},
			},
		}}
	}

	return out
}

// codeURL returns the documentation anchor for a code, e.g.
// GTN:007 -> ...#gtn-007.
func codeURL(code string) string {
	anchor := strings.ToLower(strings.ReplaceAll(code, ":", "-"))
	return codeURLBase + "#" + anchor
}
