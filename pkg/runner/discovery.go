package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// walkFiles walks root and calls visit for every regular file and symlink,
// skipping hidden directories without descending into them. WalkDir visits
// entries in lexical order, so traversal is deterministic.
func walkFiles(ctx context.Context, root string, visit func(path string, entry fs.DirEntry) error) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return fmt.Errorf("walk cancelled: %w", ctx.Err())
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		return visit(path, entry)
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}
	return nil
}

// collectByExtension gathers files under root whose lowercased extension is
// in exts, sorted for deterministic processing order.
func collectByExtension(ctx context.Context, root string, exts map[string]struct{}) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}

	var files []string
	err := walkFiles(ctx, root, func(path string, _ fs.DirEntry) error {
		if _, ok := exts[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
