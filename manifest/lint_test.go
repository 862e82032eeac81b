package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findingMessages(findings []Finding) string {
	var sb strings.Builder
	for _, f := range findings {
		sb.WriteString(f.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestLintCleanManifest(t *testing.T) {
	findings, err := Lint(Sample())
	require.NoError(t, err)
	assert.Empty(t, findings, findingMessages(findings))
}

func TestLintDuplicateKeys(t *testing.T) {
	doc := []byte(`
repos:
  - repo: https://github.com/psf/black
    rev: 23.3.0
    rev: 23.1.0
    hooks:
      - id: black
`)
	findings, err := Lint(doc)
	require.NoError(t, err)
	require.True(t, HasErrors(findings), findingMessages(findings))
	assert.Contains(t, findingMessages(findings), "duplicate key 'rev'")
}

func TestLintNestedArgs(t *testing.T) {
	doc := []byte(`
repos:
  - repo: https://github.com/PyCQA/bandit
    rev: 1.7.5
    hooks:
      - id: bandit
        args:
          - -s
          - [B101, B102]
`)
	findings, err := Lint(doc)
	require.NoError(t, err)
	assert.Contains(t, findingMessages(findings), "scalar strings")
}

func TestLintMutableRev(t *testing.T) {
	doc := []byte(`
repos:
  - repo: https://github.com/psf/black
    rev: master
    hooks:
      - id: black
`)
	findings, err := Lint(doc)
	require.NoError(t, err)
	require.True(t, HasErrors(findings))
	assert.Contains(t, findingMessages(findings), "mutable reference")
}

func TestLintMissingRev(t *testing.T) {
	doc := []byte(`
repos:
  - repo: https://github.com/psf/black
    hooks:
      - id: black
`)
	findings, err := Lint(doc)
	require.NoError(t, err)
	assert.Contains(t, findingMessages(findings), "has no rev")
}

func TestLintMissingRepos(t *testing.T) {
	findings, err := Lint([]byte(`fail_fast: true`))
	require.NoError(t, err)
	require.True(t, HasErrors(findings))
	assert.Contains(t, findingMessages(findings), "missing required top-level key 'repos'")
}

func TestLintLegacyFormat(t *testing.T) {
	doc := []byte(`
- repo: https://github.com/psf/black
  rev: 23.3.0
  hooks:
    - id: black
`)
	findings, err := Lint(doc)
	require.NoError(t, err)
	assert.False(t, HasErrors(findings), findingMessages(findings))
	assert.Contains(t, findingMessages(findings), "legacy top-level repo list")
}

func TestLintUnknownHookKey(t *testing.T) {
	doc := []byte(`
repos:
  - repo: https://github.com/psf/black
    rev: 23.3.0
    hooks:
      - id: black
        arg: [--check]
`)
	findings, err := Lint(doc)
	require.NoError(t, err)
	assert.Contains(t, findingMessages(findings), "unknown hook key 'arg'")
}

func TestLintEmptyDocument(t *testing.T) {
	findings, err := Lint([]byte(""))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
}

func TestLintLanguageVersionLatest(t *testing.T) {
	doc := []byte(`
repos:
  - repo: https://github.com/psf/black
    rev: 23.3.0
    hooks:
      - id: black
        language_version: latest
`)
	findings, err := Lint(doc)
	require.NoError(t, err)
	assert.Contains(t, findingMessages(findings), "not reproducible")
	assert.False(t, HasErrors(findings))
}
