package bib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBib = `@article{Love2014,
  title = {Moderated estimation of fold change},
  author = {Love, Michael I. and Huber, Wolfgang},
  doi = {10.1186/s13059-014-0550-8},
  year = {2014},
}

@book{Knuth1984,
  title = "The TeXbook",
  isbn = {0-201-13447-0},
}

@misc{untitled2020,
  url = {https://example.org},
}
`

func TestParse(t *testing.T) {
	file := Parse("refs.bib", []byte(sampleBib))
	require.Len(t, file.Entries, 3)

	love := file.Entries[0]
	assert.Equal(t, "Love2014", love.Key)
	assert.Equal(t, "article", love.Type)
	assert.Equal(t, 1, love.Line)
	assert.Equal(t, "Moderated estimation of fold change", love.Field("title"))
	assert.Equal(t, "10.1186/s13059-014-0550-8", love.Field("doi"))

	knuth := file.Entries[1]
	assert.Equal(t, "Knuth1984", knuth.Key)
	assert.Equal(t, "The TeXbook", knuth.Field("title"))
	assert.Equal(t, "0-201-13447-0", knuth.Field("isbn"))

	misc := file.Entries[2]
	assert.Equal(t, "untitled2020", misc.Key)
	assert.Empty(t, misc.Field("title"))
}

func TestParseSkipsDirectives(t *testing.T) {
	content := `@comment{this is ignored}
@string{pub = "Some Publisher"}
@preamble{"\\newcommand{\\x}{y}"}
@article{Real2021,
  title = {A real entry},
}
`
	file := Parse("refs.bib", []byte(content))
	require.Len(t, file.Entries, 1)
	assert.Equal(t, "Real2021", file.Entries[0].Key)
}

func TestFieldCaseInsensitive(t *testing.T) {
	content := "@article{K,\n  TITLE = {Upper},\n}\n"
	file := Parse("refs.bib", []byte(content))
	require.Len(t, file.Entries, 1)
	assert.Equal(t, "Upper", file.Entries[0].Field("Title"))
}

func TestHasAny(t *testing.T) {
	entry := Entry{Fields: map[string]string{"doi": "10.1/x"}}
	assert.True(t, entry.HasAny("doi", "url", "isbn"))

	empty := Entry{Fields: map[string]string{"note": "n"}}
	assert.False(t, empty.HasAny("doi", "url", "isbn"))
}

func TestParseMalformedNeverFails(t *testing.T) {
	file := Parse("refs.bib", []byte("@@@\nnot bibtex at all\n{{{"))
	assert.Empty(t, file.Entries)
}
