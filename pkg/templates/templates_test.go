package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	set := Default()
	assert.Len(t, set.Patterns, 21)
	assert.Len(t, set.DateFormats, 5)
	assert.Contains(t, set.Patterns, "$file_name.$ext")
	assert.Contains(t, set.DateFormats, "$full_domain.%y-%m-%d.$ext")
}

func TestLoad(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "patterns.json")
		content := `{"patterns": ["$word.$ext"], "date-formats": ["%y.$ext"]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		set, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"$word.$ext"}, set.Patterns)
		assert.Equal(t, []string{"%y.$ext"}, set.DateFormats)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "patterns.yaml")
		content := "patterns:\n  - $word.$ext\ndate-formats:\n  - '%y.$ext'\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		set, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"$word.$ext"}, set.Patterns)
		assert.Equal(t, []string{"%y.$ext"}, set.DateFormats)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
