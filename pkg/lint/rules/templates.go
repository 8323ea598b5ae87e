package rules

import (
	"regexp"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// Mismatched Liquid delimiters: a tag opener closed as an output, and the
// reverse.
var (
	tagClosedAsOutput = regexp.MustCompile(`\{%[^%}]*\}\}`)
	outputClosedAsTag = regexp.MustCompile(`\{\{[^%}]*%\}`)
)

// TemplateDelimiterRule flags Liquid tags and outputs whose opening and
// closing delimiters do not match.
type TemplateDelimiterRule struct {
	lint.BaseRule
}

// NewTemplateDelimiterRule creates the template-delimiter rule.
func NewTemplateDelimiterRule() *TemplateDelimiterRule {
	return &TemplateDelimiterRule{
		BaseRule: lint.NewBaseRule(
			"GTN:011",
			"matched-template-delimiters",
			"Liquid delimiters must open and close with the same form",
			config.SeverityError,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply reports each delimiter mismatch on each line.
func (r *TemplateDelimiterRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		for _, pattern := range []*regexp.Regexp{tagClosedAsOutput, outputClosedAsTag} {
			for _, m := range pattern.FindAllStringIndex(line, -1) {
				diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
					lint.MatchPosition(idx+1, line, m[0], m[1]),
					"Mismatched Liquid delimiters: "+line[m[0]:m[1]]).
					Build()
				diags = append(diags, diag)
			}
		}
	}

	return diags, nil
}
