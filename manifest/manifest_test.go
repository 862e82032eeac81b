package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSample(t *testing.T) {
	m, err := LoadFromBytes(Sample())
	require.NoError(t, err)

	// The starter manifest: 6 hook declarations across 5 distinct repos.
	assert.Equal(t, 6, m.HookCount())
	assert.Equal(t, 5, m.RepoCount())

	var maxkb, skip int
	for _, repo := range m.Repos {
		for _, hook := range repo.Hooks {
			for _, arg := range hook.Args {
				if arg == "--maxkb=500" {
					maxkb++
				}
				if arg == "B101" {
					skip++
				}
			}
		}
	}
	assert.Equal(t, 1, maxkb, "exactly one large-file threshold argument")
	assert.Equal(t, 1, skip, "exactly one suppressed warning code argument")

	require.NoError(t, m.Validate())
}

func TestLoadFromBytesOrder(t *testing.T) {
	doc := []byte(`
repos:
  - repo: https://github.com/psf/black
    rev: 23.3.0
    hooks:
      - id: black
  - repo: https://github.com/PyCQA/bandit
    rev: 1.7.5
    hooks:
      - id: bandit
        args: [-s, B101]
      - id: bandit-baseline
`)
	m, err := LoadFromBytes(doc)
	require.NoError(t, err)

	require.Len(t, m.Repos, 2)
	assert.Equal(t, "https://github.com/psf/black", m.Repos[0].Repo)
	assert.Equal(t, "https://github.com/PyCQA/bandit", m.Repos[1].Repo)
	require.Len(t, m.Repos[1].Hooks, 2)
	assert.Equal(t, "bandit", m.Repos[1].Hooks[0].ID)
	assert.Equal(t, []string{"-s", "B101"}, m.Repos[1].Hooks[0].Args)
}

func TestLegacyTopLevelList(t *testing.T) {
	doc := []byte(`
- repo: https://github.com/psf/black
  rev: 23.3.0
  hooks:
    - id: black
`)
	m, err := LoadFromBytes(doc)
	require.NoError(t, err)
	require.Len(t, m.Repos, 1)
	assert.Equal(t, "black", m.Repos[0].Hooks[0].ID)
}

func TestExtensions(t *testing.T) {
	doc := []byte(`
repos:
  - repo: https://github.com/psf/black
    rev: 23.3.0
    hooks:
      - id: black

# Runner-specific hosted CI section
ci:
  autofix_prs: true
  skip: [black]
`)
	m, err := LoadFromBytes(doc)
	require.NoError(t, err)
	require.Contains(t, m.Extensions, "ci")

	type CIConfig struct {
		AutofixPRs bool     `yaml:"autofix_prs"`
		Skip       []string `yaml:"skip"`
	}

	var ci CIConfig
	require.NoError(t, m.UnmarshalExtension("ci", &ci))
	assert.True(t, ci.AutofixPRs)
	assert.Equal(t, []string{"black"}, ci.Skip)

	// Absent keys leave the target zero-valued.
	var other CIConfig
	require.NoError(t, m.UnmarshalExtension("nope", &other))
	assert.False(t, other.AutofixPRs)
}

func TestDisplayName(t *testing.T) {
	h := Hook{ID: "bandit"}
	assert.Equal(t, "bandit", h.DisplayName())

	h.Name = "bandit security scan"
	assert.Equal(t, "bandit security scan", h.DisplayName())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".pre-commit-config.yaml")

	m, err := LoadFromBytes(Sample())
	require.NoError(t, err)

	require.NoError(t, Save(path, m))

	reloaded, err := Load(path)
	require.NoError(t, err)

	require.Len(t, reloaded.Repos, len(m.Repos))
	for i := range m.Repos {
		assert.Equal(t, m.Repos[i].Repo, reloaded.Repos[i].Repo)
		assert.Equal(t, m.Repos[i].Rev, reloaded.Repos[i].Rev)
		require.Len(t, reloaded.Repos[i].Hooks, len(m.Repos[i].Hooks))
		for j := range m.Repos[i].Hooks {
			assert.Equal(t, m.Repos[i].Hooks[j].ID, reloaded.Repos[i].Hooks[j].ID)
			assert.Equal(t, m.Repos[i].Hooks[j].Args, reloaded.Repos[i].Hooks[j].Args)
		}
	}
}

func TestFindManifest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "pkg", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))

	path := filepath.Join(root, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(path, Sample(), 0644))

	found, err := FindManifest(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindManifestMissing(t *testing.T) {
	_, err := FindManifest(t.TempDir())
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ".pre-commit-config.yaml"))
	assert.Error(t, err)
}
