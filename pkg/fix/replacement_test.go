package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySingleLine(t *testing.T) {
	lines := []string{"first", "seXond", "third"}

	fixed, err := Apply(lines, Replacement{
		Text:        "c",
		StartLine:   2,
		StartColumn: 3,
		EndLine:     2,
		EndColumn:   4,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "third"}, fixed)
	// Input slice untouched.
	assert.Equal(t, "seXond", lines[1])
}

func TestApplyWholeLineRollover(t *testing.T) {
	lines := []string{"> ### {% icon tip %} Tip: Help", "body"}

	fixed, err := Apply(lines, Replacement{
		Text:        "> <tip-title>Help</tip-title>",
		StartLine:   1,
		StartColumn: 1,
		EndLine:     2,
		EndColumn:   1,
	})
	require.NoError(t, err)

	assert.Equal(t, "> <tip-title>Help</tip-title>", fixed[0])
	assert.Equal(t, "body", fixed[1])
}

func TestApplyMultiLineRejected(t *testing.T) {
	lines := []string{"a", "b", "c"}

	_, err := Apply(lines, Replacement{
		Text:        "x",
		StartLine:   1,
		StartColumn: 1,
		EndLine:     3,
		EndColumn:   1,
	})
	assert.ErrorIs(t, err, ErrMultiLine)
}

func TestApplyOutOfBounds(t *testing.T) {
	lines := []string{"short"}

	_, err := Apply(lines, Replacement{
		Text:        "x",
		StartLine:   5,
		StartColumn: 1,
		EndLine:     5,
		EndColumn:   2,
	})
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)

	_, err = Apply(lines, Replacement{
		Text:        "x",
		StartLine:   1,
		StartColumn: 1,
		EndLine:     1,
		EndColumn:   99,
	})
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
}

func TestSingleLine(t *testing.T) {
	assert.True(t, Replacement{StartLine: 3, EndLine: 3}.SingleLine())
	assert.True(t, Replacement{StartLine: 3, EndLine: 4, EndColumn: 1}.SingleLine())
	assert.False(t, Replacement{StartLine: 3, EndLine: 4, EndColumn: 2}.SingleLine())
	assert.False(t, Replacement{StartLine: 3, EndLine: 5, EndColumn: 1}.SingleLine())
}

func TestApplyMultiByteLine(t *testing.T) {
	lines := []string{"aé**b**c"}

	// Columns are character offsets, so the range lands after the
	// two-byte é without drifting.
	fixed, err := Apply(lines, Replacement{
		Text:        "b",
		StartLine:   1,
		StartColumn: 3,
		EndLine:     1,
		EndColumn:   8,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"aébc"}, fixed)
}

func TestRender(t *testing.T) {
	assert.Equal(t, []byte("a\nb\n"), Render([]string{"a", "b"}, []string{"\n", "\n"}))
	assert.Empty(t, Render(nil, nil))
}

func TestRenderKeepsTerminators(t *testing.T) {
	out := Render([]string{"a", "b", "c"}, []string{"\r\n", "\n", ""})
	assert.Equal(t, []byte("a\r\nb\nc"), out)
}
