// Package runner provides corpus-wide linting orchestration.
package runner

// Options controls a corpus run.
type Options struct {
	// Root is the corpus root directory (the checkout containing topics/,
	// faqs/, and _config.yml).
	Root string

	// SinglePath restricts the run to one file. The global filename pass
	// still runs for that file.
	SinglePath string
}

// ContentRoots are the directories under the corpus root whose .md and .bib
// files are linted. Workflow files are only looked for under topics/.
//
//nolint:gochecknoglobals // Fixed layout of the corpus
var ContentRoots = []string{"topics", "faqs"}

// lintableExtensions are the content-pass extensions.
//
//nolint:gochecknoglobals // Fixed contract
var lintableExtensions = map[string]struct{}{
	".md":  {},
	".bib": {},
}
