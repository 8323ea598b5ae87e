// Package rules implements the GTN rule set. Each rule is a pure function
// from a document snapshot to diagnostics, registered once at process start.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// legacyBoxTitle matches the deprecated box-title syntax:
//
//	> ### {% icon tip %} Tip: Getting help
//
// The supported form is the semantic title tag:
//
//	> <tip-title>Getting help</tip-title>
var legacyBoxTitle = regexp.MustCompile(`^(>\s*)#{1,6}\s*\{%\s*icon\s+([\w-]+)\s*%\}\s*(?:[A-Za-z -]+:)?\s*(.*?)\s*$`)

// BoxTitleRule flags the deprecated box-title syntax and proposes the
// semantic tag replacement.
type BoxTitleRule struct {
	lint.BaseRule
}

// NewBoxTitleRule creates the legacy box-title rule.
func NewBoxTitleRule() *BoxTitleRule {
	return &BoxTitleRule{
		BaseRule: lint.NewBaseRule(
			"GTN:001",
			"legacy-box-title",
			"Box titles should use semantic title tags, not icon headings",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindMarkdown},
			true,
		),
	}
}

// Apply flags every legacy box-title line with a whole-line replacement.
func (r *BoxTitleRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		m := legacyBoxTitle.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		box := strings.ToLower(m[2])
		title := strings.TrimSpace(m[3])
		replacement := fmt.Sprintf("%s<%s-title>%s</%s-title>", m[1], box, title, box)

		diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
			lint.LinePosition(idx+1, line),
			fmt.Sprintf("Legacy box title syntax; use <%s-title>...</%s-title>", box, box)).
			WithReplacement(replacement).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}
