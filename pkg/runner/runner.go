package runner

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/beatrizserrano/training-material/internal/logging"
	"github.com/beatrizserrano/training-material/pkg/lint"
)

// Runner drives the three corpus passes through a pipeline, one file at a
// time. Files are small and the run is I/O bound on a warm cache, so the
// sequential model keeps diagnostics ordered without any synchronization.
type Runner struct {
	pipeline *lint.Pipeline
	opts     Options
	logger   *log.Logger
}

// New creates a Runner.
func New(pipeline *lint.Pipeline, opts Options) *Runner {
	return &Runner{
		pipeline: pipeline,
		opts:     opts,
		logger:   logging.Default(),
	}
}

// Run executes the configured passes and returns the aggregated result.
// File-level errors are recorded in the result; only setup failures (an
// unreadable root, cancellation) abort the run.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	result := newResult()

	if r.opts.SinglePath != "" {
		r.runSingle(ctx, result)
		return result, ctx.Err()
	}

	if err := r.globalPass(ctx, result); err != nil {
		return nil, err
	}
	if err := r.lintablePass(ctx, result); err != nil {
		return nil, err
	}
	if err := r.workflowPass(ctx, result); err != nil {
		return nil, err
	}

	r.logger.Debug("run complete",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal)

	return result, nil
}

// runSingle lints one file: its filename first, then its content.
func (r *Runner) runSingle(ctx context.Context, result *Result) {
	path := r.opts.SinglePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.opts.Root, path)
	}

	nameOutcome, err := r.pipeline.ProcessFilename(ctx, path)
	result.accumulate(FileOutcome{Path: path, Result: nameOutcome, Error: err})

	outcome, err := r.pipeline.ProcessFile(ctx, path)
	result.accumulate(FileOutcome{Path: path, Result: outcome, Error: err})
}

// globalPass runs filename-level checks for every file in the tree.
func (r *Runner) globalPass(ctx context.Context, result *Result) error {
	return walkFiles(ctx, r.opts.Root, func(path string, _ fs.DirEntry) error {
		outcome, err := r.pipeline.ProcessFilename(ctx, path)
		result.accumulate(FileOutcome{Path: path, Result: outcome, Error: err})
		return nil
	})
}

// lintablePass lints .md and .bib files under the content roots.
func (r *Runner) lintablePass(ctx context.Context, result *Result) error {
	for _, contentRoot := range ContentRoots {
		files, err := collectByExtension(ctx, filepath.Join(r.opts.Root, contentRoot), lintableExtensions)
		if err != nil {
			return fmt.Errorf("discover lintable files: %w", err)
		}
		r.processAll(ctx, files, result)
	}
	return nil
}

// workflowPass lints .ga files under topics/.
func (r *Runner) workflowPass(ctx context.Context, result *Result) error {
	files, err := collectByExtension(ctx, filepath.Join(r.opts.Root, "topics"),
		map[string]struct{}{".ga": {}})
	if err != nil {
		return fmt.Errorf("discover workflows: %w", err)
	}
	r.processAll(ctx, files, result)
	return nil
}

func (r *Runner) processAll(ctx context.Context, files []string, result *Result) {
	for _, path := range files {
		if ctx.Err() != nil {
			return
		}
		outcome, err := r.pipeline.ProcessFile(ctx, path)
		if err != nil {
			r.logger.Error("file failed", logging.FieldPath, path, logging.FieldError, err)
		}
		result.accumulate(FileOutcome{Path: path, Result: outcome, Error: err})
	}
}
