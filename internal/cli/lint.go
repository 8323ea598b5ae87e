package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/beatrizserrano/training-material/internal/logging"
	"github.com/beatrizserrano/training-material/pkg/config"
	"github.com/beatrizserrano/training-material/pkg/lint"
	_ "github.com/beatrizserrano/training-material/pkg/lint/rules" // Register built-in rules
	"github.com/beatrizserrano/training-material/pkg/refs"
	"github.com/beatrizserrano/training-material/pkg/reporter"
	"github.com/beatrizserrano/training-material/pkg/runner"
)

// ErrLintIssuesFound is returned when lint errors are found. It carries no
// message worth logging; main only maps it to the exit code.
var ErrLintIssuesFound = errors.New("lint issues found")

// rootEnvVar names the environment variable that sets the corpus root.
const rootEnvVar = "GTN_ROOT"

type lintFlags struct {
	format    string
	path      string
	limit     []string
	autoFix   bool
	shortPath bool
}

func newLintCommand() *cobra.Command {
	var root string
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [root]",
		Short: "Lint a training-material checkout",
		Long:  lintLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				root = args[0]
			}
			return runLint(cmd, root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "plain", "output format: plain, rdjson")
	cmd.Flags().StringVar(&flags.path, "path", "", "lint a single file instead of the whole corpus")
	cmd.Flags().StringSliceVar(&flags.limit, "limit", nil, "only emit diagnostics with these codes (e.g. GTN:007)")
	cmd.Flags().BoolVar(&flags.autoFix, "auto-fix", false, "apply single-line suggested replacements in place")
	cmd.Flags().BoolVar(&flags.shortPath, "short-path", false, "report paths relative to the corpus root")

	return cmd
}

const lintLongDescription = `Lint a training-material checkout for style and consistency defects.

The corpus root is taken from the positional argument, the GTN_ROOT
environment variable, or the current directory, in that order. A .env
file in the working directory is loaded first if present.

Examples:
  gtn-lint lint                              # Lint the checkout in $GTN_ROOT or .
  gtn-lint lint ~/training-material          # Lint a specific checkout
  gtn-lint lint --path topics/a/tutorial.md  # Lint one file
  gtn-lint lint --limit GTN:007,GTN:012      # Only report selected codes
  gtn-lint lint --format rdjson              # Machine-readable output for review bots
  gtn-lint lint --auto-fix                   # Apply suggested replacements`

func runLint(cmd *cobra.Command, root string, flags *lintFlags) error {
	logger := logging.Default()

	// Optional .env for local development setups.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env", logging.FieldError, err)
	}

	cfg, err := buildConfig(root, flags)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug("starting lint run",
		logging.FieldRoot, cfg.Root,
		logging.FieldFormat, cfg.Format,
		logging.FieldAutoFix, cfg.AutoFix,
		logging.FieldLimit, cfg.Limit)

	indexes := refs.New(cfg.Root)
	engine := lint.NewEngine(lint.DefaultRegistry, indexes)

	pipeline := lint.NewPipeline(engine)
	pipeline.Limit = cfg.LimitSet()
	pipeline.AutoFix = cfg.AutoFix

	lintRunner := runner.New(pipeline, runner.Options{
		Root:       cfg.Root,
		SinglePath: cfg.Path,
	})

	result, err := lintRunner.Run(ctx)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      cfg.Format,
		Color:       colorMode,
		ShowSummary: cfg.Format == config.FormatPlain,
		Root:        cfg.Root,
		ShortPath:   cfg.ShortPath,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrLintIssuesFound
	}
	return nil
}

// buildConfig resolves flags and environment into a run configuration.
func buildConfig(root string, flags *lintFlags) (*config.Config, error) {
	cfg := config.NewConfig()

	if root == "" {
		root = os.Getenv(rootEnvVar)
	}
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	cfg.Root = absRoot

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return nil, err
	}
	cfg.Format = format

	cfg.Path = flags.path
	cfg.Limit = flags.limit
	cfg.AutoFix = flags.autoFix
	cfg.ShortPath = flags.shortPath

	return cfg, nil
}
