package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beatrizserrano/training-material/pkg/bib"
	"github.com/beatrizserrano/training-material/pkg/document"
	"github.com/beatrizserrano/training-material/pkg/lint"
	"github.com/beatrizserrano/training-material/pkg/refs"
)

// newBibContext parses content as BibTeX and builds a matching RuleContext.
func newBibContext(t *testing.T, content string) *lint.RuleContext {
	t.Helper()
	snapshot := document.NewSnapshot("test.bib", []byte(content))
	ctx := lint.NewRuleContext(context.Background(), snapshot, refs.New(t.TempDir()))
	ctx.Bib = bib.Parse("test.bib", []byte(content))
	return ctx
}

func TestBibResolvableRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
	}{
		{
			name:      "doi present passes",
			input:     "@article{A,\n  title = {T},\n  doi = {10.1/x},\n}\n",
			wantDiags: 0,
		},
		{
			name:      "url present passes",
			input:     "@misc{B,\n  title = {T},\n  url = {https://example.org},\n}\n",
			wantDiags: 0,
		},
		{
			name:      "isbn present passes",
			input:     "@book{C,\n  title = {T},\n  isbn = {0-201-13447-0},\n}\n",
			wantDiags: 0,
		},
		{
			name:      "no locator flagged",
			input:     "@article{D,\n  title = {T},\n  year = {2020},\n}\n",
			wantDiags: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewBibResolvableRule()
			diags, err := rule.Apply(newBibContext(t, tt.input))
			require.NoError(t, err)
			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestBibTitleRule(t *testing.T) {
	input := `@article{HasTitle,
  title = {Real title},
  doi = {10.1/x},
}

@article{NoTitle,
  doi = {10.1/y},
}
`
	rule := NewBibTitleRule()
	diags, err := rule.Apply(newBibContext(t, input))
	require.NoError(t, err)

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "NoTitle")
	assert.Equal(t, 6, diags[0].Position.StartLine)
}

func TestBibRulesNilBib(t *testing.T) {
	ctx := newMarkdownContext(t, "# not bib\n")

	diags, err := NewBibResolvableRule().Apply(ctx)
	require.NoError(t, err)
	assert.Empty(t, diags)

	diags, err = NewBibTitleRule().Apply(ctx)
	require.NoError(t, err)
	assert.Empty(t, diags)
}
