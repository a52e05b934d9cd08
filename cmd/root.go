package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jetscout",
	Short: "jetscout - recent JetBrains project discovery",
	Long: `jetscout locates the versioned configuration directory of each known
JetBrains-family IDE, reads its recent-projects registry, and reports the
projects it finds as JSON for launcher integrations.`,
}

func Execute() error {
	// Silence usage and errors to avoid cluttering output with Cobra defaults
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	return rootCmd.Execute()
}
