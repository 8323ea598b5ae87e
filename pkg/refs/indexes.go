// Package refs provides the process-lifetime reference indexes consulted by
// cross-referencing rules: the bibliography index, the site icon index, the
// topic set, and the acceptable-tool-id checks. Each index is built lazily
// on first use and is read-only afterwards.
package refs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/beatrizserrano/training-material/internal/logging"
	"github.com/beatrizserrano/training-material/pkg/bib"
)

// existsCacheSize bounds the file-existence memoization cache. Snippet and
// link checks probe the same include files over and over across a corpus run.
const existsCacheSize = 4096

// bibRoots are the directories scanned for .bib files, relative to root.
//
//nolint:gochecknoglobals // Fixed layout of the training-material checkout
var bibRoots = []string{"topics", "faqs"}

// Entry is one bibliography entry as seen by citation rules.
type Entry struct {
	Key   string
	DOI   string
	URL   string
	ISBN  string
	Title string
	File  string
}

// Indexes holds every reference index for a single corpus root.
// Build them once via New and share by reference; there is no invalidation
// within a run.
type Indexes struct {
	root string

	bibOnce sync.Once
	bib     map[string]Entry

	iconOnce sync.Once
	icons    map[string]string

	topicOnce sync.Once
	topics    map[string]struct{}

	exists *lru.Cache[string, bool]
}

// New creates the index set for a corpus root. Indexes are built lazily.
func New(root string) *Indexes {
	cache, err := lru.New[string, bool](existsCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}
	return &Indexes{root: root, exists: cache}
}

// Root returns the corpus root the indexes were built for.
func (ix *Indexes) Root() string {
	return ix.root
}

// Citation looks up a citation key across every loaded .bib file.
func (ix *Indexes) Citation(key string) (Entry, bool) {
	ix.bibOnce.Do(ix.buildBibliography)
	entry, ok := ix.bib[key]
	return entry, ok
}

// CitationCount returns the number of indexed bibliography entries.
func (ix *Indexes) CitationCount() int {
	ix.bibOnce.Do(ix.buildBibliography)
	return len(ix.bib)
}

// buildBibliography scans the bib roots for .bib files and indexes their
// entries by citation key, last-write-wins on duplicates.
func (ix *Indexes) buildBibliography() {
	ix.bib = make(map[string]Entry)
	logger := logging.Default()

	for _, rel := range bibRoots {
		base := filepath.Join(ix.root, rel)
		err := filepath.WalkDir(base, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil //nolint:nilerr // Missing roots are not an error
			}
			if entry.IsDir() {
				if strings.HasPrefix(entry.Name(), ".") && path != base {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(entry.Name(), ".bib") {
				return nil
			}
			content, readErr := os.ReadFile(path) //nolint:gosec // Paths come from the walked corpus
			if readErr != nil {
				logger.Warn("skipping unreadable bibliography", logging.FieldPath, path, logging.FieldError, readErr)
				return nil
			}
			for _, e := range bib.Parse(path, content).Entries {
				ix.bib[e.Key] = Entry{
					Key:   e.Key,
					DOI:   e.Field("doi"),
					URL:   e.Field("url"),
					ISBN:  e.Field("isbn"),
					Title: e.Field("title"),
					File:  path,
				}
			}
			return nil
		})
		if err != nil {
			logger.Warn("bibliography scan failed", logging.FieldRoot, base, logging.FieldError, err)
		}
	}
}

// Exists reports whether a path exists, memoizing stat results.
// Relative paths are resolved against the corpus root.
func (ix *Indexes) Exists(path string) bool {
	if !filepath.IsAbs(path) {
		path = filepath.Join(ix.root, path)
	}
	path = filepath.Clean(path)

	if cached, ok := ix.exists.Get(path); ok {
		return cached
	}
	_, err := os.Stat(path)
	found := err == nil
	ix.exists.Add(path, found)
	return found
}
