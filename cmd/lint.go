package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/committools/hookman/cli"
	"github.com/committools/hookman/errors"
	"github.com/committools/hookman/manifest"
)

// NewLintCmd reports shape problems in the raw manifest document with source
// line numbers.
func NewLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Report manifest problems with source locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)

			path, err := cli.ResolveManifestPath(opts.ManifestFile)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			findings, err := manifest.Lint(data)
			if err != nil {
				return err
			}

			if opts.JSONOutput {
				out, err := json.MarshalIndent(findings, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
			} else {
				for _, f := range findings {
					fmt.Printf("%s: %s\n", path, f)
				}
				if len(findings) == 0 {
					fmt.Printf("%s: no problems found\n", path)
				}
			}

			if manifest.HasErrors(findings) {
				return errors.New(errors.ErrCodeManifestValidation, "manifest has lint errors").
					WithDetail("path", path).
					WithDetail("findings", len(findings))
			}
			return nil
		},
	}
}
