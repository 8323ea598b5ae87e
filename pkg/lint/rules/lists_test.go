package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepListRule(t *testing.T) {
	rule := NewStepListRule()

	tests := []struct {
		name      string
		content   string
		wantLines []int
	}{
		{
			name:    "ordered list passes",
			content: "1. Open the tool\n2. Set the input\n3. Run it\n",
		},
		{
			name:      "bolded step bullets flagged",
			content:   "* **Step 1: Open the tool**\n* **Step 2: Set the input**\n",
			wantLines: []int{1, 2},
		},
		{
			name:      "dash bullet with period separator",
			content:   "- **Step 3. Run the workflow**\n",
			wantLines: []int{1},
		},
		{
			name:      "indented bullet flagged",
			content:   "Some text\n  * **Step 1: nested**\n",
			wantLines: []int{2},
		},
		{
			name:    "bold without step prefix passes",
			content: "* **Important:** read this first\n",
		},
		{
			name:    "step outside bold passes",
			content: "* Step 1: plain item\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, err := rule.Apply(newMarkdownContext(t, tt.content))
			require.NoError(t, err)
			require.Len(t, diags, len(tt.wantLines))
			for i, want := range tt.wantLines {
				assert.Equal(t, want, diags[i].Position.StartLine)
				assert.Equal(t, "GTN:008", diags[i].Code)
			}
		})
	}
}
