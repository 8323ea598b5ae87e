package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// boldedHeading matches an ATX heading whose entire text is bold.
var boldedHeading = regexp.MustCompile(`^(#{1,6}\s+)\*\*(.+?)\*\*\s*$`)

// BoldedHeadingRule flags headings that wrap their whole text in bold markers.
// Heading styling belongs to the theme, not the document.
type BoldedHeadingRule struct {
	lint.BaseRule
}

// NewBoldedHeadingRule creates the bolded-heading rule.
func NewBoldedHeadingRule() *BoldedHeadingRule {
	return &BoldedHeadingRule{
		BaseRule: lint.NewBaseRule(
			"GTN:006",
			"no-bolded-heading",
			"Headings must not be wrapped in bold markers",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindMarkdown},
			true,
		),
	}
}

// Apply emits a fixable diagnostic for each fully bolded heading line.
func (r *BoldedHeadingRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		m := boldedHeading.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
			lint.LinePosition(idx+1, line),
			"Heading text should not be bolded").
			WithReplacement(m[1] + strings.TrimSpace(m[2])).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// HeadingLevelRule flags heading levels that skip one or more intermediate
// levels relative to the previous heading.
type HeadingLevelRule struct {
	lint.BaseRule
}

// NewHeadingLevelRule creates the heading-level-skip rule.
func NewHeadingLevelRule() *HeadingLevelRule {
	return &HeadingLevelRule{
		BaseRule: lint.NewBaseRule(
			"GTN:013",
			"heading-level-skip",
			"Heading levels must increase by at most one",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply walks the parsed heading outline and reports each jump deeper than
// one level. The previous level is always updated, so a single skip is
// reported once rather than cascading onto every following heading.
func (r *HeadingLevelRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	prev := 0
	for _, h := range ctx.File.Headings() {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		if prev > 0 && h.Level > prev+1 {
			diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
				lint.LinePosition(h.Line, ctx.File.Line(h.Line)),
				fmt.Sprintf("Heading level jumps from %d to %d: %s", prev, h.Level, h.Text)).
				Build()
			diags = append(diags, diag)
		}
		prev = h.Level
	}

	return diags, nil
}
