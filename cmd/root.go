package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobcf/internal/version"
	"github.com/spf13/cobra"
)

const rule = "───────────────────────────────────────────────────────────────"
const doubleRule = "═══════════════════════════════════════════════════════════════"

var rootCmd = &cobra.Command{
	Use:   "gobcf",
	Short: "Bearing Capacity Factor Calculator",
	Long: `gobcf - Go Bearing Capacity Factors

A CLI tool for computing the bearing capacity factors Nc, Nq and Nγ
of shallow foundations from the soil friction angle φ.

Supported methods:
  - Terzaghi (1943)
  - Meyerhof (1963)
  - Vesic (1973)
  - Hansen (1970)
  - EC7 (EN 1997-1 Annex D)

Angles are in degrees.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gobcf v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Bearing Capacity Factors                             ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Nc, Nq, Nγ by Terzaghi, Meyerhof, Vesic, Hansen and EC7")
		fmt.Fprintln(out, "    • Factor tables and charts over a range of φ")
		fmt.Fprintln(out, "    • Strip footing ultimate and allowable bearing capacity")
		fmt.Fprintln(out, "    • Soil profiles from JSON files")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gobcf --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  "+rule)
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
