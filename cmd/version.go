package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time using -ldflags.
var (
	version   = "dev"
	gitCommit = ""
)

// versionCmd prints the application version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of " + appName,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionStr())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionStr renders the full version string of the application.
func versionStr() string {
	s := appName + " " + version
	if gitCommit != "" {
		s += " (" + gitCommit + ")"
	}
	return s
}
