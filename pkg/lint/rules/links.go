package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// markdownLink matches inline links, capturing text and target.
var markdownLink = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)[^)]*\)`)

// genericLinkTexts are link texts that carry no information about the target.
var genericLinkTexts = map[string]struct{}{
	"here":       {},
	"click here": {},
	"this link":  {},
	"link":       {},
	"this":       {},
	"page":       {},
}

// urlLike reports whether a link text is itself a bare URL.
var urlLike = regexp.MustCompile(`^https?://`)

// LinkTextRule flags links whose text is generic or a raw URL.
type LinkTextRule struct {
	lint.BaseRule
}

// NewLinkTextRule creates the descriptive-link-text rule.
func NewLinkTextRule() *LinkTextRule {
	return &LinkTextRule{
		BaseRule: lint.NewBaseRule(
			"GTN:007",
			"descriptive-link-text",
			"Link text must describe the link target",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply emits a diagnostic per link whose text is non-descriptive.
func (r *LinkTextRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		for _, m := range markdownLink.FindAllStringSubmatchIndex(line, -1) {
			text := line[m[2]:m[3]]
			if !badLinkText(text) {
				continue
			}
			diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
				lint.MatchPosition(idx+1, line, m[0], m[1]),
				fmt.Sprintf("Link text %q does not describe its target", text)).
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}

func badLinkText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if urlLike.MatchString(trimmed) {
		return true
	}
	_, generic := genericLinkTexts[strings.ToLower(trimmed)]
	return generic
}

// LinkedFileRule flags relative link targets that do not exist on disk.
type LinkedFileRule struct {
	lint.BaseRule
}

// NewLinkedFileRule creates the linked-file-exists rule.
func NewLinkedFileRule() *LinkedFileRule {
	return &LinkedFileRule{
		BaseRule: lint.NewBaseRule(
			"GTN:012",
			"linked-file-exists",
			"Relative link targets must exist in the repository",
			config.SeverityError,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply checks each repository-relative link target against the filesystem.
// Absolute URLs, anchors, mailto links, and Liquid-templated targets are
// outside its remit.
func (r *LinkedFileRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		for _, m := range markdownLink.FindAllStringSubmatchIndex(line, -1) {
			target := line[m[4]:m[5]]
			if !checkableTarget(target) {
				continue
			}
			path := strings.TrimPrefix(target, "/")
			if frag := strings.IndexByte(path, '#'); frag >= 0 {
				path = path[:frag]
			}
			if path == "" || ctx.Refs.Exists(path) {
				continue
			}
			diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
				lint.MatchPosition(idx+1, line, m[4], m[5]),
				fmt.Sprintf("Linked file does not exist: %s", target)).
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}

func checkableTarget(target string) bool {
	switch {
	case target == "":
		return false
	case strings.HasPrefix(target, "#"):
		return false
	case strings.Contains(target, "://"):
		return false
	case strings.HasPrefix(target, "mailto:"):
		return false
	case strings.Contains(target, "{{") || strings.Contains(target, "{%"):
		return false
	}
	return strings.HasPrefix(target, "/")
}
