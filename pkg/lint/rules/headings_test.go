package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoldedHeadingRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantFix   string
	}{
		{
			name:      "fully bolded heading",
			input:     "## **Quality control**\n",
			wantDiags: 1,
			wantFix:   "## Quality control",
		},
		{
			name:      "plain heading passes",
			input:     "## Quality control\n",
			wantDiags: 0,
		},
		{
			name:      "partial bold passes",
			input:     "## Quality **control** steps\n",
			wantDiags: 0,
		},
		{
			name:      "bold text outside heading passes",
			input:     "This is **important** text.\n",
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewBoldedHeadingRule()
			diags, err := rule.Apply(newMarkdownContext(t, tt.input))
			require.NoError(t, err)
			require.Len(t, diags, tt.wantDiags)

			if tt.wantFix != "" {
				require.True(t, diags[0].HasFix())
				assert.Equal(t, tt.wantFix, diags[0].Replacement.Text)
			}
		})
	}
}

func TestHeadingLevelRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantLine  int
	}{
		{
			name:      "depth jump of two",
			input:     "# Intro\n\n### Details\n",
			wantDiags: 1,
			wantLine:  3,
		},
		{
			name:      "stepwise increase passes",
			input:     "# Intro\n\n## Middle\n\n### Details\n",
			wantDiags: 0,
		},
		{
			name:      "decreasing levels pass",
			input:     "### Deep\n\n# Shallow\n",
			wantDiags: 0,
		},
		{
			name:      "first heading at any level passes",
			input:     "#### Starts deep\n",
			wantDiags: 0,
		},
		{
			name:      "skip reported once not cascaded",
			input:     "# A\n\n### B\n\n### C\n",
			wantDiags: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewHeadingLevelRule()
			diags, err := rule.Apply(newMarkdownContext(t, tt.input))
			require.NoError(t, err)
			require.Len(t, diags, tt.wantDiags)

			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, diags[0].Position.StartLine)
			}
		})
	}
}
