package rules

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beatrizserrano/training-material/pkg/document"
	"github.com/beatrizserrano/training-material/pkg/lint"
	"github.com/beatrizserrano/training-material/pkg/refs"
	"github.com/beatrizserrano/training-material/pkg/workflow"
)

// newWorkflowContext writes the workflow under root and builds a RuleContext
// with the decoded workflow attached.
func newWorkflowContext(t *testing.T, root, rel, content string) *lint.RuleContext {
	t.Helper()
	path := writeCorpusFile(t, root, rel, content)

	wf, err := workflow.Parse(path, []byte(content))
	require.NoError(t, err)

	snapshot := document.NewSnapshot(path, []byte(content))
	ctx := lint.NewRuleContext(context.Background(), snapshot, refs.New(root))
	ctx.Workflow = wf
	return ctx
}

const completeWorkflow = `{
  "a_galaxy_workflow": "true",
  "annotation": "Maps reads",
  "tags": ["sequence-analysis"],
  "steps": {
    "0": {"tool_id": "toolshed.g2.bx.psu.edu/repos/devteam/bwa/bwa_mem/0.7.17"}
  }
}`

func TestWorkflowKeysRule(t *testing.T) {
	root := t.TempDir()

	t.Run("complete workflow passes", func(t *testing.T) {
		ctx := newWorkflowContext(t, root, "topics/sequence-analysis/workflows/ok.ga", completeWorkflow)
		diags, err := NewWorkflowKeysRule().Apply(ctx)
		require.NoError(t, err)
		assert.Empty(t, diags)
	})

	t.Run("missing keys flagged individually", func(t *testing.T) {
		ctx := newWorkflowContext(t, root, "topics/sequence-analysis/workflows/bare.ga", `{"steps": {}}`)
		diags, err := NewWorkflowKeysRule().Apply(ctx)
		require.NoError(t, err)
		require.Len(t, diags, 2)
		assert.Contains(t, diags[0].Message, "a_galaxy_workflow")
		assert.Contains(t, diags[1].Message, "annotation")
	})
}

func TestWorkflowTestsRule(t *testing.T) {
	root := t.TempDir()

	t.Run("missing test file flagged", func(t *testing.T) {
		ctx := newWorkflowContext(t, root, "topics/sequence-analysis/workflows/untested.ga", completeWorkflow)
		diags, err := NewWorkflowTestsRule().Apply(ctx)
		require.NoError(t, err)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "untested-test.yml")
	})

	t.Run("test file present passes", func(t *testing.T) {
		writeCorpusFile(t, root, "topics/sequence-analysis/workflows/tested-test.yml", "[]")
		ctx := newWorkflowContext(t, root, "topics/sequence-analysis/workflows/tested.ga", completeWorkflow)
		diags, err := NewWorkflowTestsRule().Apply(ctx)
		require.NoError(t, err)
		assert.Empty(t, diags)
	})

	t.Run("interactive tool exempt", func(t *testing.T) {
		interactive := `{
  "a_galaxy_workflow": "true",
  "annotation": "Notebook",
  "steps": {"0": {"tool_id": "interactive_tool_jupyter_notebook"}}
}`
		ctx := newWorkflowContext(t, root, "topics/sequence-analysis/workflows/notebook.ga", interactive)
		diags, err := NewWorkflowTestsRule().Apply(ctx)
		require.NoError(t, err)
		assert.Empty(t, diags)
	})
}

func TestWorkflowTestOutputsRule(t *testing.T) {
	root := t.TempDir()

	t.Run("cases with outputs pass", func(t *testing.T) {
		writeCorpusFile(t, root, "topics/s/workflows/good-test.yml",
			"- doc: run\n  outputs:\n    counts:\n      asserts: {}\n")
		ctx := newWorkflowContext(t, root, "topics/s/workflows/good.ga", completeWorkflow)
		diags, err := NewWorkflowTestOutputsRule().Apply(ctx)
		require.NoError(t, err)
		assert.Empty(t, diags)
	})

	t.Run("empty outputs flagged", func(t *testing.T) {
		writeCorpusFile(t, root, "topics/s/workflows/empty-test.yml", "- doc: run\n  job: {}\n")
		ctx := newWorkflowContext(t, root, "topics/s/workflows/empty.ga", completeWorkflow)
		diags, err := NewWorkflowTestOutputsRule().Apply(ctx)
		require.NoError(t, err)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "no expected outputs")
	})

	t.Run("skipped case exempt", func(t *testing.T) {
		writeCorpusFile(t, root, "topics/s/workflows/skipped-test.yml", "- doc: flaky\n  skip: true\n")
		ctx := newWorkflowContext(t, root, "topics/s/workflows/skipped.ga", completeWorkflow)
		diags, err := NewWorkflowTestOutputsRule().Apply(ctx)
		require.NoError(t, err)
		assert.Empty(t, diags)
	})

	t.Run("no test file is not this rule's concern", func(t *testing.T) {
		ctx := newWorkflowContext(t, root, "topics/s/workflows/lonely.ga", completeWorkflow)
		diags, err := NewWorkflowTestOutputsRule().Apply(ctx)
		require.NoError(t, err)
		assert.Empty(t, diags)
	})
}

func TestWorkflowTagsRule(t *testing.T) {
	root := t.TempDir()

	t.Run("topic tag present passes", func(t *testing.T) {
		ctx := newWorkflowContext(t, root, "topics/sequence-analysis/workflows/tagged.ga", completeWorkflow)
		diags, err := NewWorkflowTagsRule().Apply(ctx)
		require.NoError(t, err)
		assert.Empty(t, diags)
	})

	t.Run("topic tag missing flagged", func(t *testing.T) {
		ctx := newWorkflowContext(t, root, "topics/transcriptomics/workflows/untagged.ga", completeWorkflow)
		diags, err := NewWorkflowTagsRule().Apply(ctx)
		require.NoError(t, err)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "transcriptomics")
	})

	t.Run("outside topics passes", func(t *testing.T) {
		ctx := newWorkflowContext(t, root, "misc/workflows/free.ga", completeWorkflow)
		diags, err := NewWorkflowTagsRule().Apply(ctx)
		require.NoError(t, err)
		assert.Empty(t, diags)
	})
}

func TestContainingTopic(t *testing.T) {
	assert.Equal(t, "proteomics", containingTopic(filepath.Join("topics", "proteomics", "workflows", "x.ga")))
	assert.Equal(t, "", containingTopic(filepath.Join("misc", "x.ga")))
	assert.Equal(t, "", containingTopic("topics"))
}
