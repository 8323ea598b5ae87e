package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/fix"
	"github.com/beatrizserrano/training-material/pkg/lint"
	"github.com/beatrizserrano/training-material/pkg/runner"
)

// sampleResult builds a Result with one file carrying two diagnostics.
func sampleResult() *runner.Result {
	diags := []lint.Diagnostic{
		{
			Code:     "GTN:007",
			Message:  "Link text \"here\" is not descriptive",
			Severity: config.SeverityWarning,
			Path:     "topics/proteomics/tutorial.md",
			Position: lint.Position{StartLine: 4, StartColumn: 3, EndLine: 4, EndColumn: 18},
		},
		{
			Code:     "GTN:018",
			Message:  "Bibliography entry has no title\nsecond detail line",
			Severity: config.SeverityError,
			Path:     "topics/proteomics/tutorial.md",
			Position: lint.Position{StartLine: 12, StartColumn: 1, EndLine: 12, EndColumn: 1},
		},
	}

	return &runner.Result{
		Files: []runner.FileOutcome{{
			Path: "topics/proteomics/tutorial.md",
			Result: &lint.PipelineResult{
				Path:        "topics/proteomics/tutorial.md",
				Diagnostics: diags,
			},
		}},
		Stats: runner.Stats{
			FilesChecked:     3,
			FilesWithIssues:  1,
			DiagnosticsTotal: 2,
			DiagnosticsBySeverity: map[config.Severity]int{
				config.SeverityError:   1,
				config.SeverityWarning: 1,
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    config.OutputFormat
		wantErr bool
	}{
		{input: "plain", want: config.FormatPlain},
		{input: "", want: config.FormatPlain},
		{input: "rdjson", want: config.FormatRDJSON},
		{input: "json", wantErr: true},
		{input: "PLAIN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	_, err := New(Options{Writer: &bytes.Buffer{}, Format: config.OutputFormat("xml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestPlainReporter(t *testing.T) {
	t.Run("line format is stable", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewPlainReporter(Options{Writer: &buf, Color: "never"})

		total, err := r.Report(context.Background(), sampleResult())
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
		require.Len(t, lines, 2)
		assert.Equal(t,
			`topics/proteomics/tutorial.md:4:3:4:18:GTN:007 Link text "here" is not descriptive`,
			string(lines[0]))
		// Only the first line of a multi-line message is emitted.
		assert.Equal(t,
			"topics/proteomics/tutorial.md:12:1:12:1:GTN:018 Bibliography entry has no title",
			string(lines[1]))
	})

	t.Run("summary appended when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewPlainReporter(Options{Writer: &buf, Color: "never", ShowSummary: true})

		_, err := r.Report(context.Background(), sampleResult())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "2 issues")
		assert.Contains(t, buf.String(), "1 errors, 1 warnings")
	})

	t.Run("file errors reported inline", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewPlainReporter(Options{Writer: &buf, Color: "never"})

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path:  "topics/broken.md",
			Error: errors.New("permission denied"),
		}}}
		total, err := r.Report(context.Background(), result)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Equal(t, "topics/broken.md: error: permission denied\n", buf.String())
	})

	t.Run("short paths relative to root", func(t *testing.T) {
		root := t.TempDir()
		abs := filepath.Join(root, "topics", "proteomics", "tutorial.md")

		result := sampleResult()
		result.Files[0].Result.Diagnostics[0].Path = abs
		result.Files[0].Result.Diagnostics = result.Files[0].Result.Diagnostics[:1]

		var buf bytes.Buffer
		r := NewPlainReporter(Options{Writer: &buf, Color: "never", Root: root, ShortPath: true})
		_, err := r.Report(context.Background(), result)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(filepath.Join("topics", "proteomics", "tutorial.md"))))
	})
}

func TestRDJSONReporter(t *testing.T) {
	t.Run("one object per line", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRDJSONReporter(Options{Writer: &buf})

		total, err := r.Report(context.Background(), sampleResult())
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
		require.Len(t, lines, 2)

		var first rdDiagnostic
		require.NoError(t, json.Unmarshal(lines[0], &first))
		assert.Equal(t, `Link text "here" is not descriptive`, first.Message)
		assert.Equal(t, "topics/proteomics/tutorial.md", first.Location.Path)
		require.NotNil(t, first.Location.Range)
		assert.Equal(t, rdPosition{Line: 4, Column: 3}, first.Location.Range.Start)
		assert.Equal(t, rdPosition{Line: 4, Column: 18}, first.Location.Range.End)
		assert.Equal(t, "WARNING", first.Severity)
		assert.Equal(t, "GTN:007", first.Code.Value)
		assert.Equal(t, codeURLBase+"#gtn-007", first.Code.URL)
		assert.Empty(t, first.Suggestions)
	})

	t.Run("replacement becomes suggestion", func(t *testing.T) {
		result := sampleResult()
		result.Files[0].Result.Diagnostics = result.Files[0].Result.Diagnostics[:1]
		result.Files[0].Result.Diagnostics[0].Replacement = &fix.Replacement{
			Text:        "## Quality control",
			StartLine:   4,
			StartColumn: 1,
			EndLine:     5,
			EndColumn:   1,
		}

		var buf bytes.Buffer
		r := NewRDJSONReporter(Options{Writer: &buf})
		_, err := r.Report(context.Background(), result)
		require.NoError(t, err)

		var diag rdDiagnostic
		require.NoError(t, json.Unmarshal(bytes.TrimRight(buf.Bytes(), "\n"), &diag))
		require.Len(t, diag.Suggestions, 1)
		assert.Equal(t, "## Quality control", diag.Suggestions[0].Text)
		assert.Equal(t, rdPosition{Line: 5, Column: 1}, diag.Suggestions[0].Range.End)
	})

	t.Run("file errors skipped", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRDJSONReporter(Options{Writer: &buf})

		result := &runner.Result{Files: []runner.FileOutcome{{
			Path:  "topics/broken.md",
			Error: errors.New("unreadable"),
		}}}
		total, err := r.Report(context.Background(), result)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, buf.Bytes())
	})
}

func TestCodeURL(t *testing.T) {
	assert.Equal(t, codeURLBase+"#gtn-001", codeURL("GTN:001"))
	assert.Equal(t, codeURLBase+"#gtn-026", codeURL("GTN:026"))
}
