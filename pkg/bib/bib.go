// Package bib provides a line-oriented BibTeX parser sufficient for
// bibliography validation: entry keys, entry types, and a flat field map.
// It is not a full BibTeX grammar; nested braces beyond one level and
// cross-entry string macros are out of scope.
package bib

import (
	"regexp"
	"strings"
)

// Entry is a single bibliography entry.
type Entry struct {
	// Key is the citation key.
	Key string

	// Type is the entry type without the leading @ (e.g. "article").
	Type string

	// Fields maps lower-cased field names to their raw values with
	// delimiters stripped.
	Fields map[string]string

	// Line is the 1-based line of the entry header.
	Line int
}

// File is an ordered sequence of entries parsed from one .bib file.
type File struct {
	Path    string
	Entries []Entry
}

var (
	entryStart = regexp.MustCompile(`^\s*@(\w+)\s*\{\s*([^,\s}]+)\s*,?\s*$`)
	fieldLine  = regexp.MustCompile(`^\s*([\w-]+)\s*=\s*(.+?)\s*,?\s*$`)
)

// Parse reads BibTeX content into an ordered entry list.
// Malformed lines are skipped; parsing never fails.
func Parse(path string, content []byte) *File {
	file := &File{Path: path}

	var current *Entry
	for idx, line := range strings.Split(string(content), "\n") {
		if m := entryStart.FindStringSubmatch(line); m != nil {
			if current != nil {
				file.Entries = append(file.Entries, *current)
			}
			entryType := strings.ToLower(m[1])
			if entryType == "comment" || entryType == "preamble" || entryType == "string" {
				current = nil
				continue
			}
			current = &Entry{
				Key:    m[2],
				Type:   entryType,
				Fields: make(map[string]string),
				Line:   idx + 1,
			}
			continue
		}

		if current == nil {
			continue
		}

		if strings.TrimSpace(line) == "}" {
			file.Entries = append(file.Entries, *current)
			current = nil
			continue
		}

		if m := fieldLine.FindStringSubmatch(line); m != nil {
			current.Fields[strings.ToLower(m[1])] = trimValue(m[2])
		}
	}

	if current != nil {
		file.Entries = append(file.Entries, *current)
	}

	return file
}

// trimValue strips BibTeX value delimiters ({...}, "...") from a raw value.
func trimValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, ",")
	for len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '{' && last == '}') || (first == '"' && last == '"') {
			v = strings.TrimSpace(v[1 : len(v)-1])
			continue
		}
		break
	}
	return v
}

// Field returns the named field value; lookup is case-insensitive.
func (e Entry) Field(name string) string {
	return e.Fields[strings.ToLower(name)]
}

// HasAny reports whether any of the named fields is present and non-empty.
func (e Entry) HasAny(names ...string) bool {
	for _, name := range names {
		if e.Field(name) != "" {
			return true
		}
	}
	return false
}
