// Package document provides the line-oriented Markdown representation that
// the rule set operates on: an immutable line array plus a derived heading
// tree extracted with goldmark.
package document

import (
	"strings"
	"sync"
)

// Snapshot is an immutable view of a content file at a specific time.
// Lines are stored without their trailing newline. Internally the slice is
// 0-indexed; every reported position is 1-indexed.
type Snapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains each line of the file without newline characters.
	Lines []string

	headingsOnce sync.Once
	headings     []Heading
}

// NewSnapshot creates a Snapshot from raw content, splitting it into lines.
func NewSnapshot(path string, content []byte) *Snapshot {
	return &Snapshot{
		Path:    path,
		Content: content,
		Lines:   SplitLines(content),
	}
}

// SplitLines splits content into lines without trailing newlines.
// A trailing newline does not produce a final empty line.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// SplitLinesKeepEnds splits content into line text and the per-line
// terminators found in the source ("\n", "\r\n", or "" for a final line
// without one). Line boundaries and text match SplitLines, so positions
// computed against a Snapshot address the same lines.
func SplitLinesKeepEnds(content []byte) (lines, ends []string) {
	text := string(content)
	for len(text) > 0 {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			lines = append(lines, text)
			ends = append(ends, "")
			break
		}
		line, end := text[:nl], "\n"
		if strings.HasSuffix(line, "\r") {
			line, end = line[:len(line)-1], "\r\n"
		}
		lines = append(lines, line)
		ends = append(ends, end)
		text = text[nl+1:]
	}
	return lines, ends
}

// Line returns the content of the 1-based line number, or "" when out of range.
func (s *Snapshot) Line(num int) string {
	if num < 1 || num > len(s.Lines) {
		return ""
	}
	return s.Lines[num-1]
}

// LineCount returns the number of lines in the snapshot.
func (s *Snapshot) LineCount() int {
	return len(s.Lines)
}

// Headings returns the heading nodes of the document in source order.
// The tree is derived once per snapshot and cached.
func (s *Snapshot) Headings() []Heading {
	s.headingsOnce.Do(func() {
		s.headings = extractHeadings(s.Content)
	})
	return s.headings
}
