package extensions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevels(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ParseLevels("1,2")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := ParseLevels("0")
		assert.Error(t, err)
		_, err = ParseLevels("11")
		assert.Error(t, err)
	})

	t.Run("non-numeric", func(t *testing.T) {
		_, err := ParseLevels("1,x")
		assert.Error(t, err)
	})
}

func TestSelect(t *testing.T) {
	set := Default()

	t.Run("both groups", func(t *testing.T) {
		exts := set.Select([]int{1}, true, true)
		assert.Contains(t, exts, "bak")
		assert.Contains(t, exts, "zip")
		assert.NotContains(t, exts, "backupdb") // level 2
	})

	t.Run("backup only", func(t *testing.T) {
		exts := set.Select([]int{1, 2}, true, false)
		assert.Contains(t, exts, "backupdb")
		assert.NotContains(t, exts, "zip")
	})

	t.Run("missing level skipped silently", func(t *testing.T) {
		exts := set.Select([]int{1, 7}, true, true)
		assert.NotEmpty(t, exts)
	})

	t.Run("extensions carry no leading dot", func(t *testing.T) {
		for _, e := range set.Select([]int{1, 2}, true, true) {
			if e == "~" {
				continue
			}
			assert.NotEqual(t, byte('.'), e[0], "extension %q", e)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ext.json")
		content := `{"backup": {"level1": ["bak"]}, "compress": {"level1": ["zip"]}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		set, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"bak"}, set.Backup["level1"])
		assert.Equal(t, []string{"zip"}, set.Compress["level1"])
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ext.yml")
		content := "backup:\n  level1: [bak, old]\ncompress:\n  level1: [zip]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		set, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"bak", "old"}, set.Backup["level1"])
	})
}
