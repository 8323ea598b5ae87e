// Package fix provides the suggested-replacement model and the single-line
// patch application used by auto-fix.
package fix

import "errors"

// ErrMultiLine indicates a replacement spanning more than one physical line.
// Multi-line suggestions are reported to the operator but never applied.
var ErrMultiLine = errors.New("replacement spans multiple lines")

// ErrRangeOutOfBounds indicates a replacement addressing a line or column
// outside the file.
var ErrRangeOutOfBounds = errors.New("replacement range out of bounds")

// Replacement is a suggested text substitution carried by a diagnostic.
// Positions are 1-indexed; EndColumn is exclusive. An end of (StartLine+1, 1)
// denotes the end-of-line insertion point on StartLine.
type Replacement struct {
	// Text is the substitution text.
	Text string

	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// SingleLine reports whether the replacement addresses exactly one physical
// line, counting the rolled-over end-of-line form as single-line.
func (r Replacement) SingleLine() bool {
	if r.EndLine == r.StartLine {
		return true
	}
	return r.EndLine == r.StartLine+1 && r.EndColumn == 1
}

// Apply rewrites the addressed column range on the addressed line, returning
// a new line slice. All other lines are untouched. Columns are 1-indexed
// character offsets and are converted to byte offsets here. Returns
// ErrMultiLine for spans Apply cannot safely rewrite.
func Apply(lines []string, r Replacement) ([]string, error) {
	if !r.SingleLine() {
		return nil, ErrMultiLine
	}
	if r.StartLine < 1 || r.StartLine > len(lines) {
		return nil, ErrRangeOutOfBounds
	}

	line := lines[r.StartLine-1]
	start := byteOffset(line, r.StartColumn-1)
	end := byteOffset(line, r.EndColumn-1)
	if r.EndLine == r.StartLine+1 {
		// End-of-line insertion point.
		end = len(line)
	}
	if start < 0 || end < 0 || end < start {
		return nil, ErrRangeOutOfBounds
	}

	out := make([]string, len(lines))
	copy(out, lines)
	out[r.StartLine-1] = line[:start] + r.Text + line[end:]
	return out, nil
}

// byteOffset converts a 0-based character offset into a byte offset within
// line, returning -1 when the offset lies beyond the end of the line.
func byteOffset(line string, runeOff int) int {
	if runeOff < 0 {
		return -1
	}
	count := 0
	for i := range line {
		if count == runeOff {
			return i
		}
		count++
	}
	if count == runeOff {
		return len(line)
	}
	return -1
}

// Render joins lines back into file content using the per-line terminators
// captured when the file was split, so untouched lines keep their exact
// bytes, CRLF included.
func Render(lines, ends []string) []byte {
	size := 0
	for i, line := range lines {
		size += len(line)
		if i < len(ends) {
			size += len(ends[i])
		}
	}
	buf := make([]byte, 0, size)
	for i, line := range lines {
		buf = append(buf, line...)
		if i < len(ends) {
			buf = append(buf, ends[i]...)
		}
	}
	return buf
}
