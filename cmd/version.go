package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobcf/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobcf",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gobcf v%s\n", version.Version)
		fmt.Fprintf(out, "Build: %s (%s)\n", version.GitCommit, version.BuildTime)
		fmt.Fprintln(out, "Bearing Capacity Factor Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
