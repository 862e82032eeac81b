package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hooksFileDoc = `
- id: check-added-large-files
  name: check for added large files
  entry: check-added-large-files
  language: python
- id: check-symlinks
  name: check for broken symlinks
  entry: check-symlinks
  language: python
  files: ''
`

func TestParseHooksFile(t *testing.T) {
	f, err := ParseHooksFile([]byte(hooksFileDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"check-added-large-files", "check-symlinks"}, f.IDs())

	def, ok := f.Lookup("check-symlinks")
	require.True(t, ok)
	assert.Equal(t, "check for broken symlinks", def.Name)
	assert.Equal(t, "python", def.Language)

	_, ok = f.Lookup("black")
	assert.False(t, ok)
}

func TestParseHooksFileMissingID(t *testing.T) {
	_, err := ParseHooksFile([]byte("- name: anonymous hook\n"))
	assert.Error(t, err)
}

func TestLoadHooksFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, HooksFileName), []byte(hooksFileDoc), 0644))

	f, err := LoadHooksFile(dir)
	require.NoError(t, err)
	assert.Len(t, f.Definitions, 2)
}

func TestLoadHooksFileMissing(t *testing.T) {
	_, err := LoadHooksFile(t.TempDir())
	assert.Error(t, err)
}
