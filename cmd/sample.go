package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/committools/hookman/errors"
	"github.com/committools/hookman/manifest"
)

// NewSampleCmd writes the starter manifest into the current directory.
func NewSampleCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a starter hook manifest into the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := manifest.ManifestNames[0]

			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("%s already exists (use --force to overwrite)", path)).
					WithDetail("path", path)
			}

			if err := os.WriteFile(path, manifest.Sample(), 0644); err != nil {
				return err
			}

			m, err := manifest.LoadFromBytes(manifest.Sample())
			if err != nil {
				return err
			}

			fmt.Printf("wrote %s (%d hooks across %d repos)\n", path, m.HookCount(), m.RepoCount())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing manifest")
	return cmd
}
