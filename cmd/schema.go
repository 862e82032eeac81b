package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/committools/hookman/manifest"
)

// NewSchemaCmd prints the JSON Schema for the manifest format, for editor
// integration and external validation.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the hook manifest format",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := manifest.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
