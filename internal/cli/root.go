// Package cli provides the Cobra command structure for gtn-lint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/beatrizserrano/training-material/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gtn-lint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "gtn-lint",
		Short: "Static linter for Galaxy Training Network material",
		Long: `gtn-lint checks a training-material checkout for style and consistency
defects: tutorial Markdown, BibTeX bibliographies, Galaxy workflow files,
and repository-wide filename conventions.

Diagnostics carry stable GTN:NNN codes and can feed review tooling via
the rdjson output format.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
