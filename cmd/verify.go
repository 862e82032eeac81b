package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/committools/hookman/cli"
	"github.com/committools/hookman/errors"
	"github.com/committools/hookman/git"
	"github.com/committools/hookman/manifest"
	"github.com/committools/hookman/settings"
)

// NewVerifyCmd checks the declaration invariant against the remotes: every
// rev resolves, and every declared hook id is exported by its source repo at
// the pinned revision.
func NewVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify every declared hook exists at its pinned revision",
		Long: `Verify fetches each remote source repository at its pinned revision and
checks that every declared hook id appears in the repository's exported
hooks file. Local and meta repos are resolved by the runner itself and are
skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			logger := cli.GetLogger(cmd)

			path, err := cli.ResolveManifestPath(opts.ManifestFile)
			if err != nil {
				return err
			}

			m, err := manifest.Load(path)
			if err != nil {
				return err
			}
			if err := m.Validate(); err != nil {
				return err
			}

			cfg, err := settings.Load()
			if err != nil {
				return err
			}

			cacheRoot := cfg.CacheDir
			if cacheRoot == "" {
				cacheRoot, err = git.DefaultCacheRoot()
				if err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RemoteTimeoutDuration())
			defer cancel()

			remote := git.NewRemote()
			cache := git.NewCache(cacheRoot)
			progress := cli.NewProgressReporter(cmd.OutOrStdout())

			verified := 0
			for _, repo := range m.Repos {
				if !repo.IsRemote() {
					continue
				}

				progress.Update(repo.Repo, "resolving")
				if _, err := remote.ResolveRev(ctx, repo.Repo, repo.Rev); err != nil {
					progress.Update(repo.Repo, "failed")
					return err
				}

				progress.Update(repo.Repo, "fetching")
				dir, err := cache.CloneAtRev(ctx, repo.Repo, repo.Rev)
				if err != nil {
					progress.Update(repo.Repo, "failed")
					return err
				}

				hooksFile, err := manifest.LoadHooksFile(dir)
				if err != nil {
					progress.Update(repo.Repo, "failed")
					return errors.Wrap(err, errors.ErrCodeHookUnknown, fmt.Sprintf("%s exports no hooks at %s", repo.Repo, repo.Rev)).
						WithDetail("repo", repo.Repo).
						WithDetail("rev", repo.Rev)
				}

				for _, hook := range repo.Hooks {
					if _, ok := hooksFile.Lookup(hook.ID); !ok {
						progress.Update(repo.Repo, "failed")
						logger.WithField("repo", repo.Repo).
							WithField("exported", strings.Join(hooksFile.IDs(), ", ")).
							Debug("Hook id not found in exported hooks")
						return errors.HookUnknown(repo.Repo, hook.ID).
							WithDetail("exported", hooksFile.IDs())
					}
					verified++
				}
				progress.Update(repo.Repo, "done")
			}
			progress.Done()

			fmt.Printf("verified %d hook declarations\n", verified)
			return nil
		},
	}
}
