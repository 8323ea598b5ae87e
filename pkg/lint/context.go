package lint

import (
	"context"

	"github.com/beatrizserrano/training-material/pkg/bib"
	"github.com/beatrizserrano/training-material/pkg/document"
	"github.com/beatrizserrano/training-material/pkg/refs"
	"github.com/beatrizserrano/training-material/pkg/workflow"
)

// RuleContext provides all context needed by a rule to perform linting.
// It threads the reference indexes explicitly so rules carry no ambient
// global state.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather
// than passing it as a method parameter. RuleContext is a short-lived
// parameter object created per rule invocation; the single-field design
// keeps the Rule interface to one Apply method while still allowing
// cancellation checks via Cancelled().
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// File is the line-array snapshot every rule operates on.
	File *document.Snapshot

	// Bib is the parsed bibliography, set for KindBib files only.
	Bib *bib.File

	// Workflow is the decoded workflow, set for KindWorkflow files only.
	Workflow *workflow.Workflow

	// Refs are the read-only reference indexes.
	Refs *refs.Indexes
}

// NewRuleContext creates a RuleContext for the given snapshot and indexes.
func NewRuleContext(ctx context.Context, file *document.Snapshot, indexes *refs.Indexes) *RuleContext {
	return &RuleContext{
		Ctx:  ctx,
		File: file,
		Refs: indexes,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}
