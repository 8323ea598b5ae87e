package rules

import (
	"regexp"
	"strings"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/langdetect"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// fenceLine matches a code fence opener or closer.
var fenceLine = regexp.MustCompile("^(\\s*)(```+|~~~+)\\s*(\\S*)\\s*$")

// CodeFenceLanguageRule flags fenced code blocks without a language tag and,
// when content-based detection is confident, suggests one.
type CodeFenceLanguageRule struct {
	lint.BaseRule
}

// NewCodeFenceLanguageRule creates the code-fence-language rule.
func NewCodeFenceLanguageRule() *CodeFenceLanguageRule {
	return &CodeFenceLanguageRule{
		BaseRule: lint.NewBaseRule(
			"GTN:026",
			"code-fence-language",
			"Fenced code blocks should declare a language for highlighting",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindMarkdown},
			true,
		),
	}
}

// Apply scans the file with a small open/closed fence state machine. Only a
// fence of the same family closes a block, so a tilde line inside a backtick
// block is content, not a closer. Only opening fences are checked; closers
// never carry a tag.
func (r *CodeFenceLanguageRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	inFence := false
	var marker byte
	openLine := 0
	var body []string

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		m := fenceLine.FindStringSubmatch(line)
		if m == nil {
			if inFence {
				body = append(body, line)
			}
			continue
		}
		if !inFence {
			inFence = true
			marker = m[2][0]
			body = body[:0]
			if m[3] == "" {
				openLine = idx + 1
			} else {
				openLine = 0
			}
			continue
		}
		if m[2][0] != marker {
			body = append(body, line)
			continue
		}
		inFence = false
		if openLine == 0 {
			continue
		}
		diags = append(diags, r.report(ctx, openLine, strings.Join(body, "\n")))
	}

	// A fence left open at EOF still delimits a block.
	if inFence && openLine != 0 {
		diags = append(diags, r.report(ctx, openLine, strings.Join(body, "\n")))
	}

	return diags, nil
}

// report builds a diagnostic for the untagged opening fence, attaching a
// replacement when language detection is confident about the block body.
func (r *CodeFenceLanguageRule) report(ctx *lint.RuleContext, openLine int, body string) lint.Diagnostic {
	line := ctx.File.Line(openLine)
	builder := lint.NewDiagnosticAt(r.Code(), ctx.File.Path,
		lint.LinePosition(openLine, line),
		"Fenced code block has no language tag")

	if lang := langdetect.Detect([]byte(body)); lang != "" {
		builder = builder.WithReplacement(strings.TrimRight(line, " \t") + lang)
	}

	return builder.Build()
}
