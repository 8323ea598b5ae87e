package rules

import (
	"fmt"
	"regexp"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// iconDirective matches {% icon key %}.
var iconDirective = regexp.MustCompile(`\{%\s*icon\s+([^\s%]+)\s*%\}`)

// IconExistsRule validates icon keys against the site configuration index.
type IconExistsRule struct {
	lint.BaseRule
}

// NewIconExistsRule creates the missing-icon rule.
func NewIconExistsRule() *IconExistsRule {
	return &IconExistsRule{
		BaseRule: lint.NewBaseRule(
			"GTN:005",
			"icon-exists",
			"Icon keys must be defined in the site configuration",
			config.SeverityError,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply emits one diagnostic per icon directive with an unknown key.
func (r *IconExistsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		for _, m := range iconDirective.FindAllStringSubmatchIndex(line, -1) {
			key := line[m[2]:m[3]]
			if _, ok := ctx.Refs.Icon(key); ok {
				continue
			}
			diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
				lint.MatchPosition(idx+1, line, m[2], m[3]),
				fmt.Sprintf("Unknown icon: %s", key)).
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}
