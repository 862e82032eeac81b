package git

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/committools/hookman/command"
	"github.com/committools/hookman/errors"
)

// Cache manages shallow checkouts of hook source repositories, keyed by
// (url, rev). Checkouts are immutable once fetched: the rev pin guarantees
// the content cannot change, so a cache hit never refetches.
type Cache struct {
	root    string
	builder *command.SafeBuilder
}

// DefaultCacheRoot returns the default on-disk location for repo checkouts.
func DefaultCacheRoot() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to locate user cache directory")
	}
	return filepath.Join(base, "hookman", "repos"), nil
}

// NewCache creates a Cache rooted at dir.
func NewCache(dir string) *Cache {
	return &Cache{root: dir, builder: command.NewSafeBuilder()}
}

// Dir returns the cache directory a (url, rev) pair maps to, whether or not
// it has been fetched yet.
func (c *Cache) Dir(url, rev string) string {
	sum := sha256.Sum256([]byte(url + "@" + rev))
	return filepath.Join(c.root, hex.EncodeToString(sum[:])[:16])
}

// CloneAtRev ensures a checkout of url at rev exists in the cache and
// returns its directory. The fetch is depth-1: only the pinned commit's tree
// is needed, never history.
func (c *Cache) CloneAtRev(ctx context.Context, url, rev string) (string, error) {
	if err := command.ValidateRepoURL(url); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid repository URL")
	}
	if err := command.ValidateGitRef(rev); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid revision")
	}

	dir := c.Dir(url, rev)
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return dir, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeGitCloneFailed, "failed to create cache directory").
			WithDetail("dir", dir)
	}

	steps := [][]string{
		{"init", "--quiet", "."},
		{"remote", "add", "origin", url},
		{"fetch", "--quiet", "--depth", "1", "origin", rev},
		{"checkout", "--quiet", "FETCH_HEAD"},
	}

	for _, args := range steps {
		if err := c.run(ctx, dir, args...); err != nil {
			// A half-fetched checkout would look like a cache hit next time.
			os.RemoveAll(dir)
			return "", errors.Wrap(err, errors.ErrCodeGitCloneFailed, "failed to fetch repository at revision").
				WithDetail("repo", url).
				WithDetail("rev", rev)
		}
	}

	return dir, nil
}

func (c *Cache) run(ctx context.Context, dir string, args ...string) error {
	cmd, err := c.builder.Build(ctx, "git", args...)
	if err != nil {
		return err
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	if err := execCmd.Run(); err != nil {
		return errors.CommandFailed("git "+args[0], err)
	}
	return nil
}
