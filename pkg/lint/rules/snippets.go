package rules

import (
	"fmt"
	"regexp"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// snippetDirective matches {% snippet path/to/file.md key=value %}.
var snippetDirective = regexp.MustCompile(`\{%\s*snippet\s+(\S+)[^%]*%\}`)

// SnippetExistsRule verifies that every snippet include points at a file
// that exists under the corpus root.
type SnippetExistsRule struct {
	lint.BaseRule
}

// NewSnippetExistsRule creates the missing-snippet rule.
func NewSnippetExistsRule() *SnippetExistsRule {
	return &SnippetExistsRule{
		BaseRule: lint.NewBaseRule(
			"GTN:003",
			"snippet-exists",
			"Snippet includes must reference existing files",
			config.SeverityError,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply validates each snippet directive's path against the filesystem.
func (r *SnippetExistsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		for _, m := range snippetDirective.FindAllStringSubmatchIndex(line, -1) {
			path := line[m[2]:m[3]]
			if ctx.Refs.Exists(path) {
				continue
			}
			diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
				lint.MatchPosition(idx+1, line, m[2], m[3]),
				fmt.Sprintf("Snippet file not found: %s", path)).
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}

// AdjacentSnippetsRule flags two snippet directives on consecutive lines.
// The renderer merges adjacent includes into a single box, which is never
// what the author intended.
type AdjacentSnippetsRule struct {
	lint.BaseRule
}

// NewAdjacentSnippetsRule creates the adjacent-snippets rule.
func NewAdjacentSnippetsRule() *AdjacentSnippetsRule {
	return &AdjacentSnippetsRule{
		BaseRule: lint.NewBaseRule(
			"GTN:014",
			"no-adjacent-snippets",
			"Snippet includes must be separated by a blank line",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply tracks the previous snippet line to detect adjacency.
func (r *AdjacentSnippetsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	prev := -2
	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		if !snippetDirective.MatchString(line) {
			continue
		}
		if idx == prev+1 {
			diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
				lint.LinePosition(idx+1, line),
				"Snippet directly follows another snippet; separate them with a blank line").
				Build()
			diags = append(diags, diag)
		}
		prev = idx
	}

	return diags, nil
}
