package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/committools/hookman/cli"
	"github.com/committools/hookman/manifest"
)

// NewValidateCmd validates the manifest against the JSON Schema and the
// declaration contract.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the hook manifest against its schema and declaration contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			logger := cli.GetLogger(cmd)

			path, err := cli.ResolveManifestPath(opts.ManifestFile)
			if err != nil {
				return err
			}
			logger.WithField("path", path).Debug("Validating manifest")

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			validator, err := manifest.NewSchemaValidator()
			if err != nil {
				return err
			}
			if err := validator.ValidateBytes(data); err != nil {
				return err
			}

			m, err := manifest.LoadFromBytes(data)
			if err != nil {
				return err
			}
			if err := m.Validate(); err != nil {
				return err
			}

			fmt.Printf("%s: valid (%d hooks across %d repos)\n", path, m.HookCount(), m.RepoCount())
			return nil
		},
	}
}
