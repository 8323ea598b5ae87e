package rules

import (
	"fmt"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// BibResolvableRule flags bibliography entries with no resolvable locator
// (doi, url, or isbn). Readers cannot follow such a citation anywhere.
type BibResolvableRule struct {
	lint.BaseRule
}

// NewBibResolvableRule creates the bib-resolvable rule.
func NewBibResolvableRule() *BibResolvableRule {
	return &BibResolvableRule{
		BaseRule: lint.NewBaseRule(
			"GTN:017",
			"bib-resolvable",
			"Bibliography entries must carry a doi, url, or isbn",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindBib},
			false,
		),
	}
}

// Apply checks each parsed entry for a locator field.
func (r *BibResolvableRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Bib == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for _, entry := range ctx.Bib.Entries {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		if entry.HasAny("doi", "url", "isbn") {
			continue
		}
		diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
			lint.LinePosition(entry.Line, ctx.File.Line(entry.Line)),
			fmt.Sprintf("Entry %q has none of doi, url, or isbn", entry.Key)).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// BibTitleRule flags bibliography entries without a title.
type BibTitleRule struct {
	lint.BaseRule
}

// NewBibTitleRule creates the bib-title rule.
func NewBibTitleRule() *BibTitleRule {
	return &BibTitleRule{
		BaseRule: lint.NewBaseRule(
			"GTN:018",
			"bib-title",
			"Bibliography entries must have a non-empty title",
			config.SeverityError,
			[]lint.FileKind{lint.KindBib},
			false,
		),
	}
}

// Apply checks each parsed entry for a non-empty title field.
func (r *BibTitleRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Bib == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for _, entry := range ctx.Bib.Entries {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		if entry.Field("title") != "" {
			continue
		}
		diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
			lint.LinePosition(entry.Line, ctx.File.Line(entry.Line)),
			fmt.Sprintf("Entry %q has no title", entry.Key)).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}
