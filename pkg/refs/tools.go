package refs

import "strings"

// toolshedSegments is the minimum number of path segments in a valid
// toolshed-style tool identifier
// (e.g. toolshed.g2.bx.psu.edu/repos/owner/name/tool/version).
const toolshedSegments = 5

// builtinTools is the fixed allow-list of short tool ids that ship with
// Galaxy itself and therefore carry no toolshed path.
//
//nolint:gochecknoglobals // Closed allow-list, read-only
var builtinTools = map[string]struct{}{
	"upload1":                    {},
	"cat1":                       {},
	"Cut1":                       {},
	"Filter1":                    {},
	"Grep1":                      {},
	"Grouping1":                  {},
	"Paste1":                     {},
	"Remove beginning1":          {},
	"Show beginning1":            {},
	"Show tail1":                 {},
	"Summary_Statistics1":        {},
	"addValue":                   {},
	"cat_multi_datasets":         {},
	"comp1":                      {},
	"gene2exon1":                 {},
	"intermine":                  {},
	"join1":                      {},
	"param_value_from_file":      {},
	"random_lines1":              {},
	"sort1":                      {},
	"ucsc_table_direct1":         {},
	"wc_gnu":                     {},
	"wig_to_bigWig":              {},
	"CONVERTER_interval_to_bed6": {},
	"__APPLY_RULES__":            {},
	"__BUILD_LIST__":             {},
	"__EXTRACT_DATASET__":        {},
	"__FILTER_FAILED_DATASETS__": {},
	"__FLATTEN__":                {},
	"__MERGE_COLLECTION__":       {},
	"__RELABEL_FROM_FILE__":      {},
	"__SORTLIST__":               {},
	"__TAG_FROM_FILE__":          {},
	"__UNZIP_COLLECTION__":       {},
	"__ZIP_COLLECTION__":         {},
}

// ToolIDStatus classifies a tool identifier from a tool directive.
type ToolIDStatus int

const (
	// ToolIDOK is a well-formed toolshed id or a known builtin.
	ToolIDOK ToolIDStatus = iota

	// ToolIDMalformed is a path-style id with too few segments.
	ToolIDMalformed

	// ToolIDUnknownBuiltin is a short id absent from the allow-list.
	ToolIDUnknownBuiltin
)

// CheckToolID validates a tool identifier. Ids containing a slash must be
// toolshed-style with at least toolshedSegments path segments; short ids
// must appear on the builtin allow-list or be interactive tools.
func CheckToolID(id string) ToolIDStatus {
	if strings.Contains(id, "/") {
		if len(strings.Split(id, "/")) < toolshedSegments {
			return ToolIDMalformed
		}
		return ToolIDOK
	}
	if strings.HasPrefix(id, "interactive_tool_") {
		return ToolIDOK
	}
	if _, ok := builtinTools[id]; ok {
		return ToolIDOK
	}
	return ToolIDUnknownBuiltin
}
