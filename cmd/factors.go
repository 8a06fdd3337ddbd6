package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/alexiusacademia/gobcf/internal/bearing"
	"github.com/alexiusacademia/gobcf/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	factorsPhi       float64
	factorsMethod    string
	factorsAll       bool
	factorsJSON      bool
	factorsPrecision int
)

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Calculate Nc, Nq and Nγ for a friction angle",
	Long: `Calculate the bearing capacity factors Nc, Nq and Nγ for a soil
friction angle φ (degrees) using one method or all of them.

A negative angle is taken by its magnitude. At φ = 0 Nc takes the
limiting value of the method (5.71 for Terzaghi, 5.14 otherwise).

Examples:
  gobcf factors --phi 30 --method vesic
  gobcf factors -p 25 --all
  gobcf factors -p 32 -m ec7 --json`,
	RunE: runFactors,
}

func init() {
	rootCmd.AddCommand(factorsCmd)

	factorsCmd.Flags().Float64VarP(&factorsPhi, "phi", "p", 0, "Friction angle φ (degrees) [required]")
	factorsCmd.Flags().StringVarP(&factorsMethod, "method", "m", "", "Method: terzaghi, meyerhof, vesic, hansen, ec7")
	factorsCmd.Flags().BoolVarP(&factorsAll, "all", "a", false, "Compute with every method")
	factorsCmd.Flags().BoolVar(&factorsJSON, "json", false, "Print results as JSON")
	factorsCmd.Flags().IntVar(&factorsPrecision, "precision", 2, "Decimal places in the output")

	factorsCmd.MarkFlagRequired("phi")
	factorsCmd.MarkFlagsMutuallyExclusive("method", "all")
}

// factorRow is one method's result as reported by the CLI
type factorRow struct {
	Method  bearing.Method  `json:"method"`
	Phi     float64         `json:"phi"`
	Factors bearing.Factors `json:"factors"`
}

func selectedMethods(name string, all bool) ([]bearing.Method, error) {
	if all {
		return bearing.Methods(), nil
	}
	if name == "" {
		return nil, fmt.Errorf("provide --method or --all")
	}
	m, err := bearing.ParseMethod(name)
	if err != nil {
		return nil, err
	}
	return []bearing.Method{m}, nil
}

func runFactors(cmd *cobra.Command, args []string) error {
	methods, err := selectedMethods(factorsMethod, factorsAll)
	if err != nil {
		return err
	}

	phi := math.Abs(factorsPhi)
	rows := make([]factorRow, 0, len(methods))
	for _, m := range methods {
		rows = append(rows, factorRow{
			Method:  m,
			Phi:     phi,
			Factors: m.Compute(phi).Round(factorsPrecision),
		})
	}

	out := cmd.OutOrStdout()
	if factorsJSON {
		return writeJSON(out, rows)
	}

	if len(rows) == 1 {
		r := rows[0]
		fmt.Fprintln(out)
		fmt.Fprint(out, diagram.DrawSummaryBox(
			fmt.Sprintf("%s  φ = %.2f°", r.Method.Description(), r.Phi),
			[]string{
				fmt.Sprintf("Nc = %.*f", factorsPrecision, r.Factors.Nc),
				fmt.Sprintf("Nq = %.*f", factorsPrecision, r.Factors.Nq),
				fmt.Sprintf("Nγ = %.*f", factorsPrecision, r.Factors.Ngamma),
			}))
		fmt.Fprintln(out)
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintf(out, "     BEARING CAPACITY FACTORS  φ = %.2f°\n", phi)
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Method\tNc\tNq\tNγ\n")
	fmt.Fprintf(w, "  ──────\t──\t──\t──\n")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%.*f\t%.*f\t%.*f\n", r.Method,
			factorsPrecision, r.Factors.Nc,
			factorsPrecision, r.Factors.Nq,
			factorsPrecision, r.Factors.Ngamma)
	}
	w.Flush()
	fmt.Fprintln(out)

	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
