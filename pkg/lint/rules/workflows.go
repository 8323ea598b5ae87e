package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
	"github.com/beatrizserrano/training-material/pkg/workflow"
)

// filePosition anchors a file-level diagnostic at the start of the file.
func filePosition(ctx *lint.RuleContext) lint.Position {
	if ctx.File.LineCount() == 0 {
		return lint.Position{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 1}
	}
	return lint.LinePosition(1, ctx.File.Line(1))
}

// WorkflowKeysRule flags workflow files missing required top-level keys.
type WorkflowKeysRule struct {
	lint.BaseRule
}

// NewWorkflowKeysRule creates the workflow-required-keys rule.
func NewWorkflowKeysRule() *WorkflowKeysRule {
	return &WorkflowKeysRule{
		BaseRule: lint.NewBaseRule(
			"GTN:019",
			"workflow-required-keys",
			"Workflow files must declare all required top-level keys",
			config.SeverityError,
			[]lint.FileKind{lint.KindWorkflow},
			false,
		),
	}
}

// Apply emits one diagnostic per missing required key.
func (r *WorkflowKeysRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Workflow == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for _, key := range ctx.Workflow.MissingKeys() {
		diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path, filePosition(ctx),
			fmt.Sprintf("Workflow is missing required key %q", key)).
			Build()
		diags = append(diags, diag)
	}
	return diags, nil
}

// WorkflowTestsRule flags workflows without a co-located test definition.
// Workflows running an interactive tool are exempt.
type WorkflowTestsRule struct {
	lint.BaseRule
}

// NewWorkflowTestsRule creates the workflow-has-tests rule.
func NewWorkflowTestsRule() *WorkflowTestsRule {
	return &WorkflowTestsRule{
		BaseRule: lint.NewBaseRule(
			"GTN:020",
			"workflow-has-tests",
			"Workflow files must ship a co-located test definition",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindWorkflow},
			false,
		),
	}
}

// Apply checks for the test file next to the workflow.
func (r *WorkflowTestsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Workflow == nil {
		return nil, nil
	}
	if ctx.Workflow.UsesInteractiveTool() {
		return nil, nil
	}

	want, ok := workflow.TestPath(ctx.File.Path)
	if ok {
		return nil, nil
	}

	diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path, filePosition(ctx),
		fmt.Sprintf("Workflow has no test definition (expected %s)", filepath.Base(want))).
		Build()
	return []lint.Diagnostic{diag}, nil
}

// WorkflowTestOutputsRule flags test cases whose expected outputs are empty
// and that are not explicitly skipped. Such a case asserts nothing.
type WorkflowTestOutputsRule struct {
	lint.BaseRule
}

// NewWorkflowTestOutputsRule creates the workflow-test-outputs rule.
func NewWorkflowTestOutputsRule() *WorkflowTestOutputsRule {
	return &WorkflowTestOutputsRule{
		BaseRule: lint.NewBaseRule(
			"GTN:021",
			"workflow-test-outputs",
			"Workflow test cases must assert expected outputs or be skipped",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindWorkflow},
			false,
		),
	}
}

// Apply parses the co-located test file and checks each case.
func (r *WorkflowTestOutputsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Workflow == nil {
		return nil, nil
	}

	testPath, ok := workflow.TestPath(ctx.File.Path)
	if !ok {
		return nil, nil
	}
	content, err := os.ReadFile(testPath) //nolint:gosec // Derived from the linted path
	if err != nil {
		return nil, fmt.Errorf("read workflow tests: %w", err)
	}
	cases, err := workflow.ParseTests(content)
	if err != nil {
		return nil, err
	}

	var diags []lint.Diagnostic
	for idx, tc := range cases {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		if tc.Skip || len(tc.Outputs) > 0 {
			continue
		}
		diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path, filePosition(ctx),
			fmt.Sprintf("Test case %d in %s has no expected outputs and is not skipped",
				idx+1, filepath.Base(testPath))).
			Build()
		diags = append(diags, diag)
	}
	return diags, nil
}

// WorkflowTagsRule flags workflows whose tag list does not name the topic
// directory that contains them.
type WorkflowTagsRule struct {
	lint.BaseRule
}

// NewWorkflowTagsRule creates the workflow-topic-tag rule.
func NewWorkflowTagsRule() *WorkflowTagsRule {
	return &WorkflowTagsRule{
		BaseRule: lint.NewBaseRule(
			"GTN:022",
			"workflow-topic-tag",
			"Workflow tags must include the containing topic",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindWorkflow},
			false,
		),
	}
}

// Apply derives the topic from the workflow's path and checks the tag list.
func (r *WorkflowTagsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Workflow == nil {
		return nil, nil
	}

	topic := containingTopic(ctx.File.Path)
	if topic == "" {
		return nil, nil
	}
	if _, known := ctx.Refs.Topics()[topic]; !known {
		// Not a real topic directory, nothing to demand a tag for.
		return nil, nil
	}

	for _, tag := range ctx.Workflow.Tags() {
		if tag == topic {
			return nil, nil
		}
	}

	diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path, filePosition(ctx),
		fmt.Sprintf("Workflow tags do not include its topic %q", topic)).
		Build()
	return []lint.Diagnostic{diag}, nil
}

// containingTopic returns the path segment following "topics", if any.
func containingTopic(path string) string {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for i, seg := range segments {
		if seg == "topics" && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	return ""
}
