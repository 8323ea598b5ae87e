package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// pathPosition is the fixed anchor for filename-level diagnostics; the file's
// content is never read during the global pass.
//
//nolint:gochecknoglobals // Shared constant anchor
var pathPosition = lint.Position{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 1}

// forbiddenPathChars are characters that break URLs and downstream tooling.
const forbiddenPathChars = "?:"

// PathCharsRule flags whitespace and reserved characters in file paths.
type PathCharsRule struct {
	lint.BaseRule
}

// NewPathCharsRule creates the path-characters rule.
func NewPathCharsRule() *PathCharsRule {
	return &PathCharsRule{
		BaseRule: lint.NewBaseRule(
			"GTN:023",
			"path-characters",
			"File paths must not contain whitespace, '?', or ':'",
			config.SeverityError,
			[]lint.FileKind{lint.KindFilename},
			false,
		),
	}
}

// Apply scans the path for forbidden characters.
func (r *PathCharsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	path := ctx.File.Path
	bad := strings.ContainsAny(path, forbiddenPathChars)
	if !bad {
		for _, c := range path {
			if c == ' ' || c == '\t' {
				bad = true
				break
			}
		}
	}
	if !bad {
		return nil, nil
	}

	diag := lint.NewDiagnosticAt(r.Code(), path, pathPosition,
		"Path contains whitespace or a forbidden character (? or :)").
		Build()
	return []lint.Diagnostic{diag}, nil
}

// SymlinkRule flags symlinks whose target does not resolve.
type SymlinkRule struct {
	lint.BaseRule
}

// NewSymlinkRule creates the broken-symlink rule.
func NewSymlinkRule() *SymlinkRule {
	return &SymlinkRule{
		BaseRule: lint.NewBaseRule(
			"GTN:024",
			"broken-symlink",
			"Symlinks must resolve to an existing target",
			config.SeverityError,
			[]lint.FileKind{lint.KindFilename},
			false,
		),
	}
}

// Apply checks the path with Lstat first so only symlinks pay the second stat.
func (r *SymlinkRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	path := ctx.File.Path

	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return nil, nil
	}
	if _, err := os.Stat(path); err == nil {
		return nil, nil
	}

	diag := lint.NewDiagnosticAt(r.Code(), path, pathPosition,
		"Symlink target does not exist").
		Build()
	return []lint.Diagnostic{diag}, nil
}

// dataLibraryVariants are misspellings of the canonical data-library file name.
//
//nolint:gochecknoglobals // Fixed naming convention
var dataLibraryVariants = map[string]struct{}{
	"data-library.yml":    {},
	"data_library.yaml":   {},
	"data_library.yml":    {},
	"data-libraries.yaml": {},
	"data-libraries.yml":  {},
}

// DataLibraryNameRule flags data-library files not named data-library.yaml.
type DataLibraryNameRule struct {
	lint.BaseRule
}

// NewDataLibraryNameRule creates the data-library-name rule.
func NewDataLibraryNameRule() *DataLibraryNameRule {
	return &DataLibraryNameRule{
		BaseRule: lint.NewBaseRule(
			"GTN:025",
			"data-library-name",
			"Data library files must be named data-library.yaml",
			config.SeverityWarning,
			[]lint.FileKind{lint.KindFilename},
			false,
		),
	}
}

// Apply flags known naming variants of the data-library file.
func (r *DataLibraryNameRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	base := filepath.Base(ctx.File.Path)
	if _, ok := dataLibraryVariants[base]; !ok {
		return nil, nil
	}

	diag := lint.NewDiagnosticAt(r.Code(), ctx.File.Path, pathPosition,
		fmt.Sprintf("Data library file %s must be named data-library.yaml", base)).
		Build()
	return []lint.Diagnostic{diag}, nil
}
