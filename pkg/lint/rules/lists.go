package rules

import (
	"regexp"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// boldStepItem matches a bullet item faking an ordered step with bold text.
var boldStepItem = regexp.MustCompile(`^\s*[*-]\s+\*\*\s*Step\s+\d+[:.]?\s*.*\*\*`)

// StepListRule flags bullet lists that emulate numbered steps with bold
// "Step N" prefixes instead of using an ordered list.
type StepListRule struct {
	lint.BaseRule
}

// NewStepListRule creates the semantic-step-list rule.
func NewStepListRule() *StepListRule {
	return &StepListRule{
		BaseRule: lint.NewBaseRule(
			"GTN:008",
			"semantic-step-list",
			"Numbered steps must use ordered lists, not bolded bullets",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply emits a diagnostic per "**Step N**" bullet item.
func (r *StepListRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		if !boldStepItem.MatchString(line) {
			continue
		}
		diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
			lint.LinePosition(idx+1, line),
			"Use an ordered list for steps instead of bolded bullet items").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}
