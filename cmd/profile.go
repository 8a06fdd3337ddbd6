package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gobcf/internal/profile"
	"github.com/spf13/cobra"
)

var (
	profileFile string
	profileJSON bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Bearing capacity factors for every layer of a soil profile",
	Long: `Compute bearing capacity factors for the layers of a soil profile
defined in a JSON file.

A layer without a method is evaluated with every method.

Example JSON file structure:
{
  "name": "Borehole BH-1",
  "description": "Sand over clay",
  "layers": [
    {"name": "Fill", "phi": 28, "method": "meyerhof"},
    {"name": "Dense sand", "phi": 34, "method": "vesic"},
    {"name": "Soft clay", "phi": 0}
  ]
}

Examples:
  gobcf profile --file bh1.json
  gobcf profile -f bh1.json --json`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVarP(&profileFile, "file", "f", "", "Path to profile JSON file [required]")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "Print results as JSON")

	profileCmd.MarkFlagRequired("file")
}

func runProfile(cmd *cobra.Command, args []string) error {
	p, err := profile.LoadFromFile(profileFile)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	rows, err := p.Analyze()
	if err != nil {
		return fmt.Errorf("analyzing profile: %w", err)
	}

	out := cmd.OutOrStdout()
	if profileJSON {
		return writeJSON(out, rows)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintln(out, "     SOIL PROFILE BEARING CAPACITY FACTORS")
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintln(out)

	if p.Name != "" {
		fmt.Fprintf(out, "  Profile: %s\n", p.Name)
	}
	if p.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", p.Description)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tφ (°)\tMethod\tNc\tNq\tNγ\n")
	fmt.Fprintf(w, "  ─────\t─────\t──────\t──\t──\t──\n")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%.1f\t%s\t%.2f\t%.2f\t%.2f\n",
			r.Layer, r.Phi, r.Method, r.Factors.Nc, r.Factors.Nq, r.Factors.Ngamma)
	}
	w.Flush()
	fmt.Fprintln(out)

	return nil
}
