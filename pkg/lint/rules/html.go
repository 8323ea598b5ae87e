package rules

import (
	"regexp"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

var (
	targetBlank   = regexp.MustCompile(`target=["']_blank["']`)
	youtubeIframe = regexp.MustCompile(`<iframe[^>]*(?:youtube\.com|youtu\.be)[^>]*>`)
)

// TargetBlankRule flags target="_blank" attributes. They break screen-reader
// navigation and are stripped by the renderer anyway.
type TargetBlankRule struct {
	lint.BaseRule
}

// NewTargetBlankRule creates the target-blank rule.
func NewTargetBlankRule() *TargetBlankRule {
	return &TargetBlankRule{
		BaseRule: lint.NewBaseRule(
			"GTN:002",
			"no-target-blank",
			`Links must not use target="_blank"`,
			config.SeverityWarning,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply flags every target="_blank" occurrence.
func (r *TargetBlankRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	return eachMatch(ctx, r.Code(), targetBlank,
		`Do not use target="_blank"; it hijacks the reader's navigation`), nil
}

// YoutubeIframeRule flags raw YouTube iframe embeds; the youtube include
// produces accessible markup with a transcript link.
type YoutubeIframeRule struct {
	lint.BaseRule
}

// NewYoutubeIframeRule creates the YouTube iframe rule.
func NewYoutubeIframeRule() *YoutubeIframeRule {
	return &YoutubeIframeRule{
		BaseRule: lint.NewBaseRule(
			"GTN:010",
			"no-youtube-iframe",
			"YouTube videos must use the youtube include, not raw iframes",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindMarkdown},
			false,
		),
	}
}

// Apply flags every YouTube iframe embed.
func (r *YoutubeIframeRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	return eachMatch(ctx, r.Code(), youtubeIframe,
		"Use the youtube include instead of embedding an iframe"), nil
}

// eachMatch maps every non-overlapping pattern match across all lines to a
// diagnostic with the rule's default severity.
func eachMatch(ctx *lint.RuleContext, code string, pattern *regexp.Regexp, message string) []lint.Diagnostic {
	var diags []lint.Diagnostic

	for idx, line := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags
		}
		for _, loc := range pattern.FindAllStringIndex(line, -1) {
			diag := lint.NewDiagnosticAt(code, ctx.File.Path,
				lint.MatchPosition(idx+1, line, loc[0], loc[1]), message).
				Build()
			diags = append(diags, diag)
		}
	}

	return diags
}
