package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxTitleRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantFix   string
	}{
		{
			name:      "legacy tip title",
			input:     "> ### {% icon tip %} Tip: Getting help\n",
			wantDiags: 1,
			wantFix:   "> <tip-title>Getting help</tip-title>",
		},
		{
			name:      "legacy hands-on title without prefix",
			input:     "> ## {% icon hands_on %} Run the tool\n",
			wantDiags: 1,
			wantFix:   "> <hands_on-title>Run the tool</hands_on-title>",
		},
		{
			name:      "semantic title passes",
			input:     "> <tip-title>Getting help</tip-title>\n",
			wantDiags: 0,
		},
		{
			name:      "icon outside blockquote heading passes",
			input:     "Use the {% icon tip %} icon here.\n",
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewBoxTitleRule()
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
