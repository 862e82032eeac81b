package main

import (
	"os"

	"github.com/committools/hookman/cli"
	"github.com/committools/hookman/cmd"
	"github.com/committools/hookman/version"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"hookman",
		"Manage declarative pre-commit hook manifests",
	)
	rootCmd.Version = version.Version
	cli.SetVersionTemplate(rootCmd, cli.VersionInfo{
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
	})

	// Add subcommands
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewLintCmd())
	rootCmd.AddCommand(cmd.NewListCmd())
	rootCmd.AddCommand(cmd.NewSampleCmd())
	rootCmd.AddCommand(cmd.NewSchemaCmd())
	rootCmd.AddCommand(cmd.NewPinCmd())
	rootCmd.AddCommand(cmd.NewVerifyCmd())
	rootCmd.AddCommand(cmd.NewInstallHooksCmd())
	rootCmd.AddCommand(cmd.NewUninstallHooksCmd())
	rootCmd.AddCommand(cmd.NewWatchCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		verbose := false
		for _, arg := range os.Args[1:] {
			if arg == "-v" || arg == "--verbose" {
				verbose = true
			}
		}
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
