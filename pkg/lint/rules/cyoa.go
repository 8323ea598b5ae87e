package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/document"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// cyoaInclude matches the choose-your-own-adventure branch directive.
var cyoaInclude = regexp.MustCompile(`\{%\s*include\s+\S*cyoa-choices\.html\b[^%]*%\}`)

// includeAttr extracts key="value" pairs from a directive invocation.
var includeAttr = regexp.MustCompile(`(\w+)="([^"]*)"`)

// BranchChoicesRule validates choose-your-own-adventure branch directives:
// option labels must slugify uniquely, every branch needs a default, the
// default must name a declared option, and each declared option must be
// reachable as a branch target somewhere else in the document.
type BranchChoicesRule struct {
	lint.BaseRule
}

// NewBranchChoicesRule creates the branch-choices rule.
func NewBranchChoicesRule() *BranchChoicesRule {
	return &BranchChoicesRule{
		BaseRule: lint.NewBaseRule(
			"GTN:016",
			"branch-choices",
			"Choose-your-own-adventure branches must be consistent and reachable",
			config.SeverityError,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply validates each branch directive in the file independently.
func (r *BranchChoicesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		m := cyoaInclude.FindStringIndex(line)
		if m == nil {
			continue
		}
		pos := lint.MatchPosition(idx+1, line, m[0], m[1])
		diags = append(diags, r.checkBranch(ctx, line[m[0]:m[1]], idx+1, pos)...)
	}

	return diags, nil
}

// checkBranch runs all consistency checks for a single directive invocation.
func (r *BranchChoicesRule) checkBranch(ctx *lint.RuleContext, directive string, lineNum int, pos lint.Position) []lint.Diagnostic {
	var diags []lint.Diagnostic

	var options []string
	defaultText := ""
	hasDefault := false
	for _, attr := range includeAttr.FindAllStringSubmatch(directive, -1) {
		key, value := attr[1], attr[2]
		switch {
		case strings.HasPrefix(key, "option"):
			options = append(options, value)
		case key == "default":
			defaultText = value
			hasDefault = true
		}
	}

	report := func(severity config.Severity, message string) {
		diags = append(diags, lint.NewDiagnosticAt(r.Code(), ctx.File.Path, pos, message).
			WithSeverity(severity).
			Build())
	}

	seen := make(map[string]string, len(options))
	for _, opt := range options {
		slug := document.Slugify(opt)
		if first, dup := seen[slug]; dup {
			report(config.SeverityError,
				fmt.Sprintf("Branch options %q and %q both slugify to %q", first, opt, slug))
			continue
		}
		seen[slug] = opt
	}

	if !hasDefault {
		report(config.SeverityError, "Branch directive declares no default option")
	} else {
		exact := false
		for _, opt := range options {
			if opt == defaultText {
				exact = true
				break
			}
		}
		_, slugMatch := seen[document.Slugify(defaultText)]
		switch {
		case exact:
		case slugMatch:
			report(config.SeverityWarning,
				fmt.Sprintf("Branch default %q matches an option only after slugification", defaultText))
		default:
			report(config.SeverityError,
				fmt.Sprintf("Branch default %q matches no declared option", defaultText))
		}
	}

	for _, opt := range options {
		slug := document.Slugify(opt)
		if seen[slug] != opt {
			continue // duplicate, already reported
		}
		if !slugUsedElsewhere(ctx.File, slug, lineNum) {
			report(config.SeverityWarning,
				fmt.Sprintf("Branch option %q (%s) is never used as a branch target", opt, slug))
		}
	}

	return diags
}

// slugUsedElsewhere reports whether the slug appears on any line other than
// the declaring directive's line.
func slugUsedElsewhere(file *document.Snapshot, slug string, declLine int) bool {
	for idx, line := range file.Lines {
		if idx+1 == declLine {
			continue
		}
		if strings.Contains(line, slug) {
			return true
		}
	}
	return false
}
