package lint

import (
	"context"
	"fmt"

	"github.com/beatrizserrano/training-material/pkg/bib"
	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/document"
	"github.com/beatrizserrano/training-material/pkg/refs"
	"github.com/beatrizserrano/training-material/pkg/workflow"
)

// CodeWorkflowParse is the file-level code emitted when a .ga file cannot
// be decoded. The parse failure short-circuits the file's remaining checks
// but never aborts the run.
const CodeWorkflowParse = "GTN:015"

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the line-array view of the file.
	Snapshot *document.Snapshot

	// Kind is the classified file kind.
	Kind FileKind

	// Diagnostics contains all raw findings before pipeline filtering.
	Diagnostics []Diagnostic

	// RuleErrors contains internal errors from rule execution, by code.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// Engine coordinates classification, parsing, and rule execution.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry

	// Refs are the shared read-only reference indexes.
	Refs *refs.Indexes
}

// NewEngine creates an Engine with the given registry and indexes.
func NewEngine(registry *Registry, indexes *refs.Indexes) *Engine {
	return &Engine{Registry: registry, Refs: indexes}
}

// LintFile classifies, parses, and evaluates a single file's content.
// Files of unknown kind yield an empty result.
func (e *Engine) LintFile(ctx context.Context, path string, content []byte) (*FileResult, error) {
	kind := Classify(path)
	result := &FileResult{
		Snapshot:   document.NewSnapshot(path, content),
		Kind:       kind,
		RuleErrors: make(map[string]error),
	}
	if kind == KindOther {
		return result, nil
	}

	ruleCtx := NewRuleContext(ctx, result.Snapshot, e.Refs)

	switch kind {
	case KindBib:
		ruleCtx.Bib = bib.Parse(path, content)
	case KindWorkflow:
		wf, err := workflow.Parse(path, content)
		if err != nil {
			// Fatal parse failure: one file-level diagnostic, no further checks.
			result.Diagnostics = append(result.Diagnostics,
				NewDiagnosticAt(CodeWorkflowParse, path,
					Position{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 1},
					fmt.Sprintf("Workflow is not valid JSON: %v", err)).
					WithSeverity(severityFor(e.Registry, CodeWorkflowParse)).
					Build())
			return result, nil
		}
		ruleCtx.Workflow = wf
	case KindMarkdown, KindFilename, KindOther:
	}

	return result, e.apply(ctx, kind, ruleCtx, result)
}

// LintFilename runs the filename-level checks of the global pass. The file's
// content is never read.
func (e *Engine) LintFilename(ctx context.Context, path string) (*FileResult, error) {
	result := &FileResult{
		Snapshot:   document.NewSnapshot(path, nil),
		Kind:       KindFilename,
		RuleErrors: make(map[string]error),
	}
	ruleCtx := NewRuleContext(ctx, result.Snapshot, e.Refs)
	return result, e.apply(ctx, KindFilename, ruleCtx, result)
}

// apply runs every rule registered for kind and collects diagnostics.
func (e *Engine) apply(ctx context.Context, kind FileKind, ruleCtx *RuleContext, result *FileResult) error {
	for _, rule := range e.Registry.RulesFor(kind) {
		select {
		case <-ctx.Done():
			return fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		diags, err := rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rule.Code()] = err
			continue
		}

		for idx := range diags {
			if diags[idx].Severity == "" {
				diags[idx].Severity = rule.DefaultSeverity()
			}
			if diags[idx].Path == "" {
				diags[idx].Path = ruleCtx.File.Path
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}
	return nil
}

// severityFor resolves a code's default severity from the registry,
// defaulting to ERROR for codes without a registered rule.
func severityFor(registry *Registry, code string) config.Severity {
	if rule, ok := registry.Get(code); ok {
		return rule.DefaultSeverity()
	}
	return config.SeverityError
}
