package workflow

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TestCase is one job definition from a workflow test file.
type TestCase struct {
	// Doc is the optional human description of the case.
	Doc string `yaml:"doc"`

	// Job holds the input bindings for the case.
	Job map[string]any `yaml:"job"`

	// Outputs holds the expected outputs; empty outputs are a defect
	// unless the case is explicitly skipped.
	Outputs map[string]any `yaml:"outputs"`

	// Skip marks the case as intentionally unchecked.
	Skip bool `yaml:"skip"`
}

// ParseTests decodes a workflow test-definition file.
func ParseTests(content []byte) ([]TestCase, error) {
	var cases []TestCase
	if err := yaml.Unmarshal(content, &cases); err != nil {
		return nil, fmt.Errorf("decode workflow tests: %w", err)
	}
	return cases, nil
}
