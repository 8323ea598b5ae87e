// Package workflow models Galaxy workflow files (.ga) and their co-located
// test definitions.
package workflow

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// RequiredKeys are the top-level keys every .ga file must carry.
//
//nolint:gochecknoglobals // Fixed contract of the Galaxy workflow format
var RequiredKeys = []string{"a_galaxy_workflow", "annotation", "steps"}

// Workflow is a decoded .ga file.
type Workflow struct {
	// Path is the source file path.
	Path string

	doc map[string]any
}

// Parse decodes workflow JSON. Decode failure is returned to the caller,
// which downgrades it to a file-level diagnostic rather than aborting.
func Parse(path string, content []byte) (*Workflow, error) {
	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode workflow JSON: %w", err)
	}
	return &Workflow{Path: path, doc: doc}, nil
}

// HasKey reports whether a top-level key is present.
func (w *Workflow) HasKey(key string) bool {
	_, ok := w.doc[key]
	return ok
}

// MissingKeys returns the required top-level keys absent from the document.
func (w *Workflow) MissingKeys() []string {
	var missing []string
	for _, key := range RequiredKeys {
		if !w.HasKey(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// Tags returns the workflow tag list, if any.
func (w *Workflow) Tags() []string {
	raw, ok := w.doc["tags"].([]any)
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		if s, ok := t.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

// Steps returns the decoded steps map.
func (w *Workflow) Steps() map[string]any {
	steps, _ := w.doc["steps"].(map[string]any)
	return steps
}

// UsesInteractiveTool reports whether any step runs an interactive tool.
// Such workflows are exempt from the test-definition requirement because
// interactive tools cannot run headless.
func (w *Workflow) UsesInteractiveTool() bool {
	for _, raw := range w.Steps() {
		step, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		toolID, _ := step["tool_id"].(string)
		if strings.Contains(toolID, "interactive_tool_") {
			return true
		}
	}
	return false
}

// TestPath returns the co-located test-definition path for a workflow file
// and whether it exists. For topics/t/workflows/wf.ga the convention is
// wf-test.yml, with wf-tests.yml accepted as an alternative.
func TestPath(gaPath string) (string, bool) {
	base := strings.TrimSuffix(gaPath, ".ga")
	for _, suffix := range []string{"-test.yml", "-tests.yml"} {
		candidate := base + suffix
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return base + "-test.yml", false
}
