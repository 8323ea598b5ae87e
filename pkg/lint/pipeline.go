package lint

import (
	"context"
	"fmt"
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/beatrizserrano/training-material/internal/logging"
	"github.com/beatrizserrano/training-material/pkg/document"
	"github.com/beatrizserrano/training-material/pkg/fix"
	"github.com/beatrizserrano/training-material/pkg/fsutil"
)

// ignoreDirective matches the in-band suppression marker. A literal
// GTN:IGNORE:NNN anywhere in a file suppresses diagnostics of code GTN:NNN
// for that entire file.
var ignoreDirective = regexp.MustCompile(`GTN:IGNORE:(\d{3})`)

// SuppressedCodes scans content for ignore directives and returns the set of
// suppressed diagnostic codes, e.g. {"GTN:007"}.
func SuppressedCodes(content []byte) map[string]struct{} {
	matches := ignoreDirective.FindAllSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	codes := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		codes["GTN:"+string(m[1])] = struct{}{}
	}
	return codes
}

// PipelineResult contains the outcome of processing a single file.
type PipelineResult struct {
	// Path is the file path that was processed.
	Path string

	// Kind is the classified file kind.
	Kind FileKind

	// Diagnostics are the findings that survived filtering.
	Diagnostics []Diagnostic

	// Suppressed counts diagnostics dropped by ignore directives.
	Suppressed int

	// FixesApplied counts replacements rewritten into the file.
	FixesApplied int

	// Written is true if the file was rewritten by auto-fix.
	Written bool
}

// Pipeline runs a file through the full diagnostic pipeline: suppression
// scan, rule evaluation, suppression and limit filtering, and optional
// auto-fix. Stages are strictly ordered; patch application happens only
// after all of a file's diagnostics are known.
type Pipeline struct {
	// Engine is the lint engine used for parsing and rule execution.
	Engine *Engine

	// Limit restricts emitted diagnostics to these codes when non-nil.
	Limit map[string]struct{}

	// AutoFix applies single-line replacements back to the source file.
	AutoFix bool

	logger *log.Logger
}

// NewPipeline creates a Pipeline around an engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{
		Engine: engine,
		logger: logging.Default(),
	}
}

// ProcessFile reads, lints, filters, and optionally fixes a single file.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*PipelineResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	// Stage 1: in-band suppression scan.
	suppressed := SuppressedCodes(content)

	// Stage 2: raw diagnostic collection.
	fileResult, err := p.Engine.LintFile(ctx, path, content)
	if err != nil {
		return nil, err
	}
	for code, ruleErr := range fileResult.RuleErrors {
		p.logger.Error("rule failed", logging.FieldCode, code, logging.FieldPath, path, logging.FieldError, ruleErr)
	}

	result := &PipelineResult{Path: path, Kind: fileResult.Kind}

	// Stages 3 and 4: suppression filtering, then limit filtering.
	for _, diag := range fileResult.Diagnostics {
		if _, ok := suppressed[diag.Code]; ok {
			result.Suppressed++
			continue
		}
		if p.Limit != nil {
			if _, ok := p.Limit[diag.Code]; !ok {
				continue
			}
		}
		result.Diagnostics = append(result.Diagnostics, diag)
	}

	// Stage 6: optional auto-fix, strictly after diagnostic collection.
	if p.AutoFix {
		if err := p.applyFixes(ctx, result, info); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ProcessFilename runs only the filename-level checks for a path.
func (p *Pipeline) ProcessFilename(ctx context.Context, path string) (*PipelineResult, error) {
	fileResult, err := p.Engine.LintFilename(ctx, path)
	if err != nil {
		return nil, err
	}

	result := &PipelineResult{Path: path, Kind: KindFilename}
	for _, diag := range fileResult.Diagnostics {
		if p.Limit != nil {
			if _, ok := p.Limit[diag.Code]; !ok {
				continue
			}
		}
		result.Diagnostics = append(result.Diagnostics, diag)
	}
	return result, nil
}

// applyFixes rewrites the single physical line addressed by each
// replacement-carrying diagnostic. Multi-line spans are reported to the
// operator and skipped; the file is never partially written.
func (p *Pipeline) applyFixes(ctx context.Context, result *PipelineResult, info *fsutil.FileInfo) error {
	content, _, err := fsutil.ReadFile(ctx, result.Path)
	if err != nil {
		return err
	}
	// Terminators are carried separately so untouched lines keep their
	// exact bytes, CRLF included.
	lines, ends := document.SplitLinesKeepEnds(content)

	applied := 0
	for _, diag := range result.Diagnostics {
		if diag.Replacement == nil {
			continue
		}
		fixed, applyErr := fix.Apply(lines, *diag.Replacement)
		if applyErr != nil {
			p.logger.Warn("cannot auto-fix",
				logging.FieldPath, result.Path,
				logging.FieldCode, diag.Code,
				logging.FieldError, applyErr)
			continue
		}
		lines = fixed
		applied++
	}
	if applied == 0 {
		return nil
	}

	if err := fsutil.WriteAtomic(ctx, result.Path, fix.Render(lines, ends), info.Mode); err != nil {
		return fmt.Errorf("apply fixes: %w", err)
	}
	result.FixesApplied = applied
	result.Written = true
	return nil
}
