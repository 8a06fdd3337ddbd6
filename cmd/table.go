package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gobcf/internal/bearing"
	"github.com/spf13/cobra"
)

var (
	tableMethod string
	tableFrom   float64
	tableTo     float64
	tableStep   float64
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Tabulate bearing capacity factors over a range of φ",
	Long: `Print Nc, Nq and Nγ for one method over an inclusive range of
friction angles.

Examples:
  gobcf table --method meyerhof
  gobcf table -m terzaghi --from 20 --to 40 --step 1`,
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringVarP(&tableMethod, "method", "m", "", "Method: terzaghi, meyerhof, vesic, hansen, ec7 [required]")
	tableCmd.Flags().Float64Var(&tableFrom, "from", 0, "First friction angle (degrees)")
	tableCmd.Flags().Float64Var(&tableTo, "to", 45, "Last friction angle (degrees)")
	tableCmd.Flags().Float64Var(&tableStep, "step", 5, "Angle increment (degrees)")

	tableCmd.MarkFlagRequired("method")
}

func runTable(cmd *cobra.Command, args []string) error {
	m, err := bearing.ParseMethod(tableMethod)
	if err != nil {
		return err
	}

	phis, factors, err := bearing.Series(m, tableFrom, tableTo, tableStep)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintf(out, "     BEARING CAPACITY FACTORS - %s\n", m.Description())
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  φ (°)\tNc\tNq\tNγ\t\n")
	fmt.Fprintf(w, "  ─────\t──\t──\t──\t\n")
	for i, phi := range phis {
		f := factors[i]
		fmt.Fprintf(w, "  %.1f\t%.2f\t%.2f\t%.2f\t\n", phi, f.Nc, f.Nq, f.Ngamma)
	}
	w.Flush()
	fmt.Fprintln(out)

	return nil
}
