// Package extensions models the leveled extension lists used for the
// $ext dimension. Two groups exist, backup suffixes and compression
// suffixes, each split into numbered levels so callers can trade list
// size against coverage.
package extensions

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fback/fback/pkg/jsonutil"
)

// MaxLevel is the highest selectable level.
const MaxLevel = 10

// Levels maps "level1".."level10" to extension lists. Levels may be
// sparse; missing levels are skipped during selection.
type Levels map[string][]string

// Set holds the two extension groups.
type Set struct {
	Backup   Levels `json:"backup" yaml:"backup"`
	Compress Levels `json:"compress" yaml:"compress"`
}

// Default returns the built-in extension set. Level 1 carries the
// suffixes most commonly left behind on production servers, level 2
// the long tail.
func Default() Set {
	return Set{
		Backup: Levels{
			"level1": {"bak", "backup", "old", "swp", "tmp", "save", "orig", "copy", "~", "back"},
			"level2": {"bck", "bkup", "bckp", "bk", "backupdb", "backup1", "bak2", "bak3", "bdb", "log", "sav", "sh", "bash", "new"},
		},
		Compress: Levels{
			"level1": {"zip", "rar", "tar.gz", "7z", "tar"},
			"level2": {"bz2", "gzip", "bzip", "bz"},
		},
	}
}

// Load reads an extension set from path, YAML for .yaml/.yml, JSON
// otherwise.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("extensions: reading %s: %w", path, err)
	}

	var set Set
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &set); err != nil {
			return Set{}, fmt.Errorf("extensions: parsing %s: %w", path, err)
		}
	default:
		if err := jsonutil.Unmarshal(data, &set); err != nil {
			return Set{}, fmt.Errorf("extensions: parsing %s: %w", path, err)
		}
	}
	return set, nil
}

// ParseLevels parses a comma-separated level selection like "1,2".
// Each entry must be an integer in [1, MaxLevel].
func ParseLevels(s string) ([]int, error) {
	tokens := strings.Split(s, ",")
	levels := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n < 1 || n > MaxLevel {
			return nil, fmt.Errorf("extensions: invalid level %q (levels are 1-%d)", tok, MaxLevel)
		}
		levels = append(levels, n)
	}
	return levels, nil
}

// Select collects extensions for the given levels from the chosen
// groups, in level order, backup before compress. Levels absent from a
// group are skipped silently.
func (s Set) Select(levels []int, backup, compress bool) []string {
	var out []string
	for _, n := range levels {
		key := "level" + strconv.Itoa(n)
		if backup {
			out = append(out, s.Backup[key]...)
		}
		if compress {
			out = append(out, s.Compress[key]...)
		}
	}
	return out
}
