package manifest

import (
	"fmt"
	"regexp"

	"github.com/committools/hookman/command"
	"github.com/committools/hookman/errors"
)

var hookIDRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// mutableRefs are revision values that move over time and therefore violate
// the pin contract: a rev must resolve to an immutable commit.
var mutableRefs = map[string]bool{
	"HEAD":    true,
	"head":    true,
	"master":  true,
	"main":    true,
	"trunk":   true,
	"develop": true,
	"latest":  true,
}

// IsMutableRev reports whether a revision string is a known moving reference.
func IsMutableRev(rev string) bool {
	return mutableRefs[rev]
}

// Validate checks the manifest against the declaration contract: every hook
// has a non-empty id, every remote repo carries an immutable-looking rev, and
// no (repo, hook id) pair is declared twice.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool)

	for i, repo := range m.Repos {
		if repo.Repo == "" {
			return errors.New(errors.ErrCodeManifestValidation, fmt.Sprintf("repos[%d]: repo URL cannot be empty", i))
		}

		if repo.IsRemote() {
			if err := command.ValidateRepoURL(repo.Repo); err != nil {
				return errors.Wrap(err, errors.ErrCodeManifestValidation, fmt.Sprintf("repos[%d]: invalid repo URL", i)).
					WithDetail("repo", repo.Repo)
			}
			if repo.Rev == "" {
				return errors.New(errors.ErrCodeManifestValidation, fmt.Sprintf("repos[%d]: remote repo %s requires a rev", i, repo.Repo)).
					WithDetail("repo", repo.Repo)
			}
			if err := command.ValidateGitRef(repo.Rev); err != nil {
				return errors.Wrap(err, errors.ErrCodeManifestValidation, fmt.Sprintf("repos[%d]: invalid rev", i)).
					WithDetail("repo", repo.Repo).
					WithDetail("rev", repo.Rev)
			}
			if IsMutableRev(repo.Rev) {
				return errors.RevMutable(repo.Repo, repo.Rev)
			}
		} else if repo.Rev != "" {
			return errors.New(errors.ErrCodeManifestValidation, fmt.Sprintf("repos[%d]: %s repos take no rev", i, repo.Repo)).
				WithDetail("repo", repo.Repo).
				WithDetail("rev", repo.Rev)
		}

		if len(repo.Hooks) == 0 {
			return errors.New(errors.ErrCodeManifestValidation, fmt.Sprintf("repos[%d]: %s declares no hooks", i, repo.Repo)).
				WithDetail("repo", repo.Repo)
		}

		for j, hook := range repo.Hooks {
			if err := validateHook(&hook); err != nil {
				return errors.Wrap(err, errors.ErrCodeManifestValidation, fmt.Sprintf("repos[%d].hooks[%d]: invalid hook declaration", i, j)).
					WithDetail("repo", repo.Repo).
					WithDetail("hook", hook.ID)
			}

			key := repo.Repo + "\x00" + hook.ID
			if seen[key] {
				return errors.HookDuplicate(repo.Repo, hook.ID)
			}
			seen[key] = true
		}
	}

	return nil
}

func validateHook(h *Hook) error {
	if h.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "hook id cannot be empty")
	}

	if !hookIDRegex.MatchString(h.ID) {
		return errors.New(errors.ErrCodeInvalidInput, "hook id must start with a letter or digit and contain only letters, digits, dots, underscores, and hyphens").
			WithDetail("id", h.ID)
	}

	for _, arg := range h.Args {
		if arg == "" {
			return errors.New(errors.ErrCodeInvalidInput, "hook args cannot contain empty strings").
				WithDetail("id", h.ID)
		}
	}

	return nil
}
