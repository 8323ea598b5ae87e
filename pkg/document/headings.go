package document

import (
	"bytes"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is one node of the derived heading tree.
type Heading struct {
	// Level is the heading depth, 1-6.
	Level int

	// Text is the raw heading text with inline markup stripped.
	Text string

	// Line is the 1-based source line of the heading.
	Line int
}

// markdown is the shared goldmark instance used for heading extraction.
// The corpus is authored as GitHub-flavored Markdown.
//
//nolint:gochecknoglobals // Parser instances are immutable and safe to share
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// extractHeadings parses content as GFM and returns every heading with its
// depth, text, and 1-based source line.
func extractHeadings(content []byte) []Heading {
	if len(content) == 0 {
		return nil
	}

	lineStarts := buildLineStarts(content)
	root := markdown.Parser().Parse(text.NewReader(content))

	var headings []Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		offset := heading.Lines().At(0).Start
		headings = append(headings, Heading{
			Level: heading.Level,
			Text:  nodeText(heading, content),
			Line:  offsetToLine(lineStarts, offset),
		})
		return ast.WalkContinue, nil
	})

	return headings
}

// buildLineStarts returns the byte offset of each line start.
func buildLineStarts(content []byte) []int {
	starts := []int{0}
	for idx, b := range content {
		if b == '\n' && idx+1 < len(content) {
			starts = append(starts, idx+1)
		}
	}
	return starts
}

// offsetToLine converts a byte offset to a 1-based line number.
func offsetToLine(starts []int, offset int) int {
	idx := sort.Search(len(starts), func(i int) bool { return starts[i] > offset })
	return idx
}

// nodeText collects the text segments beneath a node.
func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
