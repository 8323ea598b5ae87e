package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippetExistsRule(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "snippets/create_new_history.md", "content")

	tests := []struct {
		name      string
		input     string
		wantDiags int
	}{
		{
			name:      "existing snippet passes",
			input:     "{% snippet snippets/create_new_history.md box_type=tip %}\n",
			wantDiags: 0,
		},
		{
			name:      "missing snippet flagged",
			input:     "{% snippet snippets/does_not_exist.md %}\n",
			wantDiags: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewSnippetExistsRule()
			diags, err := rule.Apply(newCorpusContext(t, root, tt.input))
			require.NoError(t, err)
			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestAdjacentSnippetsRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
	}{
		{
			name: "adjacent snippets flagged",
			input: `{% snippet snippets/a.md %}
{% snippet snippets/b.md %}
`,
			wantDiags: 1,
		},
		{
			name: "blank line between snippets passes",
			input: `{% snippet snippets/a.md %}

{% snippet snippets/b.md %}
`,
			wantDiags: 0,
		},
		{
			name: "three consecutive snippets flag twice",
			input: `{% snippet snippets/a.md %}
{% snippet snippets/b.md %}
{% snippet snippets/c.md %}
`,
			wantDiags: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewAdjacentSnippetsRule()
			diags, err := rule.Apply(newMarkdownContext(t, tt.input))
			require.NoError(t, err)
			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestCitationExistsRule(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "topics/intro/tutorial.bib",
		"@article{Love2014,\n  title = {Moderated estimation},\n}\n")

	tests := []struct {
		name      string
		input     string
		wantDiags int
	}{
		{
			name:      "known key passes",
			input:     "As shown by {% cite Love2014 %}.\n",
			wantDiags: 0,
		},
		{
			name:      "unknown key flagged",
			input:     "As shown by {% cite Unknown2099 %}.\n",
			wantDiags: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewCitationExistsRule()
			diags, err := rule.Apply(newCorpusContext(t, root, tt.input))
			require.NoError(t, err)
			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestIconExistsRule(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "_config.yml", "icon-tag:\n  tip: far fa-lightbulb\n")

	tests := []struct {
		name      string
		input     string
		wantDiags int
	}{
		{
			name:      "known icon passes",
			input:     "{% icon tip %} helpful hint\n",
			wantDiags: 0,
		},
		{
			name:      "unknown icon flagged",
			input:     "{% icon nonexistent %} mystery\n",
			wantDiags: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewIconExistsRule()
			diags, err := rule.Apply(newCorpusContext(t, root, tt.input))
			require.NoError(t, err)
			assert.Len(t, diags, tt.wantDiags)
		})
	}
}
