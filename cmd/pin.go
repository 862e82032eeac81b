package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/committools/hookman/cli"
	"github.com/committools/hookman/git"
	"github.com/committools/hookman/manifest"
	"github.com/committools/hookman/settings"
)

// NewPinCmd rewrites rev pins: by default each rev resolves to the commit
// SHA it points at; with --latest each remote is bumped to its highest
// version tag first.
func NewPinCmd() *cobra.Command {
	var (
		latest bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Resolve rev pins to immutable revisions",
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

			cfg, err := settings.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RemoteTimeoutDuration())
			defer cancel()

			remote := git.NewRemote()
			progress := cli.NewProgressReporter(cmd.OutOrStdout())

			changed := 0
			for i := range m.Repos {
				repo := &m.Repos[i]
				if !repo.IsRemote() {
					continue
				}

				progress.Update(repo.Repo, "resolving")

				target := repo.Rev
				if latest {
					tag, err := remote.LatestTag(ctx, repo.Repo)
					if err != nil {
						progress.Update(repo.Repo, "failed")
						return err
					}
					target = tag
				} else {
					sha, err := remote.ResolveRev(ctx, repo.Repo, repo.Rev)
					if err != nil {
						progress.Update(repo.Repo, "failed")
						return err
					}
					target = sha
				}

				if target != repo.Rev {
					logger.WithField("repo", repo.Repo).
						WithField("from", repo.Rev).
						WithField("to", target).
						Debug("Updating rev pin")
					repo.Rev = target
					changed++
				}
				progress.Update(repo.Repo, "done")
			}
			progress.Done()

			if changed == 0 {
				fmt.Println("all pins already up to date")
				return nil
			}

			if dryRun {
				fmt.Printf("%d pins would change (dry run, %s not written)\n", changed, path)
				return nil
			}

			if err := manifest.Save(path, m); err != nil {
				return err
			}
			fmt.Printf("updated %d pins in %s\n", changed, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&latest, "latest", false, "Bump each remote to its highest version tag")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show changes without writing the manifest")
	return cmd
}
