package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalWorkflow = `{
  "a_galaxy_workflow": "true",
  "annotation": "Counts reads per gene",
  "tags": ["transcriptomics"],
  "steps": {
    "0": {"tool_id": "toolshed.g2.bx.psu.edu/repos/iuc/featurecounts/featurecounts/2.0.1"}
  }
}`

func TestParse(t *testing.T) {
	wf, err := Parse("wf.ga", []byte(minimalWorkflow))
	require.NoError(t, err)

	assert.True(t, wf.HasKey("annotation"))
	assert.False(t, wf.HasKey("license"))
	assert.Empty(t, wf.MissingKeys())
	assert.Equal(t, []string{"transcriptomics"}, wf.Tags())
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse("wf.ga", []byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode workflow JSON")
}

func TestMissingKeys(t *testing.T) {
	wf, err := Parse("wf.ga", []byte(`{"steps": {}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a_galaxy_workflow", "annotation"}, wf.MissingKeys())
}

func TestUsesInteractiveTool(t *testing.T) {
	content := `{
  "steps": {
    "0": {"tool_id": "interactive_tool_jupyter_notebook"}
  }
}`
	wf, err := Parse("wf.ga", []byte(content))
	require.NoError(t, err)
	assert.True(t, wf.UsesInteractiveTool())

	plain, err := Parse("wf.ga", []byte(minimalWorkflow))
	require.NoError(t, err)
	assert.False(t, plain.UsesInteractiveTool())
}

func TestTestPath(t *testing.T) {
	dir := t.TempDir()
	gaPath := filepath.Join(dir, "mapping.ga")

	_, found := TestPath(gaPath)
	assert.False(t, found)

	testFile := filepath.Join(dir, "mapping-test.yml")
	require.NoError(t, os.WriteFile(testFile, []byte("[]"), 0o644))

	got, found := TestPath(gaPath)
	assert.True(t, found)
	assert.Equal(t, testFile, got)
}

func TestTestPathAlternativeSuffix(t *testing.T) {
	dir := t.TempDir()
	gaPath := filepath.Join(dir, "mapping.ga")
	testFile := filepath.Join(dir, "mapping-tests.yml")
	require.NoError(t, os.WriteFile(testFile, []byte("[]"), 0o644))

	got, found := TestPath(gaPath)
	assert.True(t, found)
	assert.Equal(t, testFile, got)
}

func TestParseTests(t *testing.T) {
	content := `- doc: Basic mapping run
  job:
    input: reads.fastq
  outputs:
    counts:
      asserts:
        has_n_lines:
          n: 100
- doc: Known flaky on this Galaxy release
  skip: true
`
	cases, err := ParseTests([]byte(content))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, "Basic mapping run", cases[0].Doc)
	assert.NotEmpty(t, cases[0].Outputs)
	assert.False(t, cases[0].Skip)

	assert.True(t, cases[1].Skip)
	assert.Empty(t, cases[1].Outputs)
}

func TestParseTestsInvalid(t *testing.T) {
	_, err := ParseTests([]byte("not: a: list"))
	assert.Error(t, err)
}
