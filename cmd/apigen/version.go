package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/egg/apigen/internal/ui"
	"go.eggybyte.com/egg/apigen/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show apigen version information",
	Long:  `Display the apigen version, git commit, build timestamp and Go runtime.`,
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Version = version.GetVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func runVersion(cmd *cobra.Command, args []string) {
	ui.Data(version.GetInfo(), "%s", version.GetFullVersionInfo())
}
