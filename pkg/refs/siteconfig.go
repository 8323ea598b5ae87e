package refs

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/beatrizserrano/training-material/internal/logging"
)

// siteConfigFile is the Jekyll site configuration at the corpus root.
const siteConfigFile = "_config.yml"

// siteConfig is the subset of _config.yml the linter consults.
type siteConfig struct {
	// IconTag maps icon keys to their FontAwesome classes.
	IconTag map[string]string `yaml:"icon-tag"`
}

// Icon looks up an icon key in the site configuration index.
func (ix *Indexes) Icon(key string) (string, bool) {
	ix.iconOnce.Do(ix.buildIcons)
	tag, ok := ix.icons[key]
	return tag, ok
}

// buildIcons loads the icon-tag map from the site configuration.
// A missing or unreadable configuration yields an empty index; icon rules
// then flag every icon, which surfaces the broken configuration loudly.
func (ix *Indexes) buildIcons() {
	ix.icons = make(map[string]string)

	path := filepath.Join(ix.root, siteConfigFile)
	content, err := os.ReadFile(path) //nolint:gosec // Fixed name under the corpus root
	if err != nil {
		logging.Default().Warn("site configuration not loaded", logging.FieldPath, path, logging.FieldError, err)
		return
	}

	var cfg siteConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		logging.Default().Warn("site configuration not parseable", logging.FieldPath, path, logging.FieldError, err)
		return
	}
	if cfg.IconTag != nil {
		ix.icons = cfg.IconTag
	}
}

// Topics returns the set of topic directory names under topics/.
// Workflow tags must name their containing topic.
func (ix *Indexes) Topics() map[string]struct{} {
	ix.topicOnce.Do(func() {
		ix.topics = make(map[string]struct{})
		entries, err := os.ReadDir(filepath.Join(ix.root, "topics"))
		if err != nil {
			logging.Default().Warn("topics directory not readable", logging.FieldRoot, ix.root, logging.FieldError, err)
			return
		}
		for _, entry := range entries {
			if entry.IsDir() {
				ix.topics[entry.Name()] = struct{}{}
			}
		}
	})
	return ix.topics
}
