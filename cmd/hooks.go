package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/committools/hookman/git"
	"github.com/committools/hookman/settings"
)

// NewInstallHooksCmd installs the pre-commit shim into the current repository.
func NewInstallHooksCmd() *cobra.Command {
	var runner string

	cmd := &cobra.Command{
		Use:   "install-hooks",
		Short: "Install the pre-commit shim into .git/hooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			root, err := git.GetGitRoot(cwd)
			if err != nil {
				return err
			}

			if runner == "" {
				cfg, err := settings.Load()
				if err != nil {
					return err
				}
				runner = cfg.Runner
			}

			manager := git.NewHookManager(runner)
			if err := manager.InstallHooks(cmd.Context(), root); err != nil {
				return err
			}

			fmt.Printf("installed pre-commit hook in %s (runner: %s)\n", root, runner)
			return nil
		},
	}

	cmd.Flags().StringVar(&runner, "runner", "", "External runner binary the shim delegates to")
	return cmd
}

// NewUninstallHooksCmd removes the managed shim, restoring any backup.
func NewUninstallHooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall-hooks",
		Short: "Remove the managed pre-commit shim from .git/hooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			root, err := git.GetGitRoot(cwd)
			if err != nil {
				return err
			}

			manager := git.NewHookManager("")
			if err := manager.UninstallHooks(cmd.Context(), root); err != nil {
				return err
			}

			fmt.Printf("removed pre-commit hook from %s\n", root)
			return nil
		},
	}
}
