package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionInfo carries the build metadata shown by --version.
type VersionInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// SetVersionTemplate wires build metadata into cobra's --version output.
func SetVersionTemplate(cmd *cobra.Command, info VersionInfo) {
	cmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:    %s
  Built:     %s
`, info.Commit, info.BuildDate))
}
