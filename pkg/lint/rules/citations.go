package rules

import (
	"fmt"
	"regexp"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// citeDirective matches {% cite Key %} and {% cite Key %}-style invocations.
var citeDirective = regexp.MustCompile(`\{%\s*cite\s+([^\s%]+)\s*%\}`)

// CitationExistsRule validates citation keys against the bibliography index.
type CitationExistsRule struct {
	lint.BaseRule
}

// NewCitationExistsRule creates the missing-citation rule.
func NewCitationExistsRule() *CitationExistsRule {
	return &CitationExistsRule{
		BaseRule: lint.NewBaseRule(
			"GTN:004",
			"citation-exists",
			"Cited keys must exist in a loaded bibliography",
			config.SeverityError,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply emits one diagnostic per cite directive whose key is absent from
// every loaded .bib file.
func (r *CitationExistsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		for _, m := range citeDirective.FindAllStringSubmatchIndex(line, -1) {
			key := line[m[2]:m[3]]
			if _, ok := ctx.Refs.Citation(key); ok {
				continue
			}
			diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
				lint.MatchPosition(idx+1, line, m[2], m[3]),
				fmt.Sprintf("Unknown citation key: %s", key)).
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}
