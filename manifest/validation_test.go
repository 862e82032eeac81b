package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/committools/hookman/errors"
)

func validManifest() *Manifest {
	return &Manifest{
		Repos: []Repo{
			{
				Repo: "https://github.com/pre-commit/pre-commit-hooks",
				Rev:  "v4.4.0",
				Hooks: []Hook{
					{ID: "check-added-large-files", Args: []string{"--maxkb=500"}},
					{ID: "check-symlinks"},
				},
			},
			{
				Repo:  RepoLocal,
				Hooks: []Hook{{ID: "make-lint"}},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validManifest().Validate())

	// Empty manifest is structurally valid; lint flags it instead.
	assert.NoError(t, (&Manifest{}).Validate())
}

func TestValidateErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Manifest)
		code   errors.ErrorCode
	}{
		{
			"empty repo URL",
			func(m *Manifest) { m.Repos[0].Repo = "" },
			errors.ErrCodeManifestValidation,
		},
		{
			"missing rev on remote repo",
			func(m *Manifest) { m.Repos[0].Rev = "" },
			errors.ErrCodeManifestValidation,
		},
		{
			"mutable rev",
			func(m *Manifest) { m.Repos[0].Rev = "master" },
			errors.ErrCodeRevMutable,
		},
		{
			"rev on local repo",
			func(m *Manifest) { m.Repos[1].Rev = "v1.0" },
			errors.ErrCodeManifestValidation,
		},
		{
			"unsupported URL scheme",
			func(m *Manifest) { m.Repos[0].Repo = "file:///etc" },
			errors.ErrCodeManifestValidation,
		},
		{
			"rev with shell metacharacter",
			func(m *Manifest) { m.Repos[0].Rev = "v1;rm" },
			errors.ErrCodeManifestValidation,
		},
		{
			"repo with no hooks",
			func(m *Manifest) { m.Repos[0].Hooks = nil },
			errors.ErrCodeManifestValidation,
		},
		{
			"empty hook id",
			func(m *Manifest) { m.Repos[0].Hooks[0].ID = "" },
			errors.ErrCodeManifestValidation,
		},
		{
			"hook id with spaces",
			func(m *Manifest) { m.Repos[0].Hooks[0].ID = "check files" },
			errors.ErrCodeManifestValidation,
		},
		{
			"empty arg entry",
			func(m *Manifest) { m.Repos[0].Hooks[0].Args = []string{""} },
			errors.ErrCodeManifestValidation,
		},
		{
			"duplicate hook for same repo",
			func(m *Manifest) { m.Repos[0].Hooks[1].ID = "check-added-large-files" },
			errors.ErrCodeHookDuplicate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := validManifest()
			tc.mutate(m)

			err := m.Validate()
			assert.Error(t, err)
			assert.Equal(t, tc.code, errors.GetCode(err))
		})
	}
}

func TestIsMutableRev(t *testing.T) {
	assert.True(t, IsMutableRev("master"))
	assert.True(t, IsMutableRev("HEAD"))
	assert.True(t, IsMutableRev("latest"))
	assert.False(t, IsMutableRev("v4.4.0"))
	assert.False(t, IsMutableRev("19c2add1e0dbd95e5e04531d5822b6b8c905d9a2"))
}

func TestSameHookIDAcrossRepos(t *testing.T) {
	// The same id exported by two different repos is not a duplicate.
	m := &Manifest{
		Repos: []Repo{
			{Repo: "https://github.com/a/one", Rev: "v1.0", Hooks: []Hook{{ID: "lint"}}},
			{Repo: "https://github.com/b/two", Rev: "v2.0", Hooks: []Hook{{ID: "lint"}}},
		},
	}
	assert.NoError(t, m.Validate())
}
