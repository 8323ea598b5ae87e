package rules

import (
	"fmt"
	"regexp"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
	"github.com/beatrizserrano/training-material/pkg/refs"
)

// toolDirective matches {% tool [Label](id) %}.
var toolDirective = regexp.MustCompile(`\{%\s*tool\s+\[([^\]]*)\]\(([^)]+)\)\s*%\}`)

// ToolIDRule validates tool identifiers in tool directives. A toolshed path
// with fewer than five segments is malformed; a short id outside the known
// builtin set is suspect but may be a deployment-local tool.
type ToolIDRule struct {
	lint.BaseRule
}

// NewToolIDRule creates the tool-id rule.
func NewToolIDRule() *ToolIDRule {
	return &ToolIDRule{
		BaseRule: lint.NewBaseRule(
			"GTN:009",
			"valid-tool-id",
			"Tool directives must reference well-formed tool identifiers",
			config.SeverityError,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply checks each tool directive's identifier. Malformed toolshed paths are
// errors; unknown builtin ids are downgraded to warnings.
func (r *ToolIDRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		for _, m := range toolDirective.FindAllStringSubmatchIndex(line, -1) {
			id := line[m[4]:m[5]]
			pos := lint.MatchPosition(idx+1, line, m[4], m[5])

			switch refs.CheckToolID(id) {
			case refs.ToolIDMalformed:
				diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path, pos,
					fmt.Sprintf("Malformed toolshed tool id: %s", id)).
					WithSeverity(config.SeverityError).
					Build()
				diags = append(diags, diag)
			case refs.ToolIDUnknownBuiltin:
				diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path, pos,
					fmt.Sprintf("Tool id %q is not a known builtin tool", id)).
					WithSeverity(config.SeverityWarning).
					Build()
				diags = append(diags, diag)
			case refs.ToolIDOK:
			}
		}
	}

	return diags, nil
}
