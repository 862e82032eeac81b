package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/committools/hookman/logging"
	"github.com/committools/hookman/manifest"
)

// CommandOptions holds common options for hookman commands
type CommandOptions struct {
	ManifestFile string
	Verbose      bool
	JSONOutput   bool
}

// NewStandardCommand creates a new command with standard hookman flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Standard flags for all hookman commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to the hook manifest file")

	return cmd
}

// GetLogger creates a logger based on command flags
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	entry := logging.NewLogger("hookman-cli")
	logger := entry.Logger

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetOutput(os.Stderr)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	manifestFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ManifestFile: manifestFile,
		Verbose:      verbose,
		JSONOutput:   jsonOutput,
	}
}

// ResolveManifestPath returns the manifest path from the --config flag, or
// searches upward from the working directory.
func ResolveManifestPath(manifestFile string) (string, error) {
	if manifestFile != "" {
		return manifestFile, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return manifest.FindManifest(cwd)
}
