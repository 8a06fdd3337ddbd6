package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gobcf/internal/bearing"
	"github.com/alexiusacademia/gobcf/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	plotMethod string
	plotFactor string
	plotFrom   float64
	plotTo     float64
	plotStep   float64
	plotOutput string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Chart bearing capacity factors against φ",
	Long: `Chart bearing capacity factors against the friction angle.

With --method the three factors of that method are plotted. Without it,
one factor (--factor) is compared across every method.

The chart is drawn in the terminal unless --output is given, in which
case it is exported to an image (png, svg, pdf).

Examples:
  gobcf plot --method vesic
  gobcf plot --factor ngamma --to 40
  gobcf plot -m hansen -o charts/hansen.png`,
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringVarP(&plotMethod, "method", "m", "", "Plot Nc, Nq and Nγ of one method")
	plotCmd.Flags().StringVarP(&plotFactor, "factor", "f", "nq", "Factor compared across methods: nc, nq, ngamma")
	plotCmd.Flags().Float64Var(&plotFrom, "from", 0, "First friction angle (degrees)")
	plotCmd.Flags().Float64Var(&plotTo, "to", 45, "Last friction angle (degrees)")
	plotCmd.Flags().Float64Var(&plotStep, "step", 1, "Angle increment (degrees)")
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "Export chart to file (png, svg, pdf)")
}

// pickFactor returns the accessor for a factor name
func pickFactor(name string) (string, func(bearing.Factors) float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nc":
		return "Nc", func(f bearing.Factors) float64 { return f.Nc }, nil
	case "nq":
		return "Nq", func(f bearing.Factors) float64 { return f.Nq }, nil
	case "ngamma", "ng", "nγ":
		return "Nγ", func(f bearing.Factors) float64 { return f.Ngamma }, nil
	}
	return "", nil, fmt.Errorf("unknown factor %q (want nc, nq or ngamma)", name)
}

func buildCurves(method, factor string, from, to, step float64) (string, []float64, []diagram.Curve, error) {
	if method != "" {
		m, err := bearing.ParseMethod(method)
		if err != nil {
			return "", nil, nil, err
		}
		phis, factors, err := bearing.Series(m, from, to, step)
		if err != nil {
			return "", nil, nil, err
		}
		return m.Description() + " bearing capacity factors", phis, diagram.FactorCurves(factors), nil
	}

	label, get, err := pickFactor(factor)
	if err != nil {
		return "", nil, nil, err
	}

	var phis []float64
	var curves []diagram.Curve
	for _, m := range bearing.Methods() {
		p, factors, err := bearing.Series(m, from, to, step)
		if err != nil {
			return "", nil, nil, err
		}
		phis = p
		values := make([]float64, len(factors))
		for i, f := range factors {
			values[i] = get(f)
		}
		curves = append(curves, diagram.Curve{Label: m.String(), Values: values})
	}
	return label + " by method", phis, curves, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	title, phis, curves, err := buildCurves(plotMethod, plotFactor, plotFrom, plotTo, plotStep)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if plotOutput == "" {
		fmt.Fprint(out, diagram.DrawFactorChart(title, phis, curves))
		fmt.Fprintln(out)
		return nil
	}

	written, err := diagram.ExportFactorChart(title, phis, curves, plotOutput)
	if err != nil {
		return fmt.Errorf("exporting chart: %w", err)
	}
	fmt.Fprintf(out, "Chart exported to: %s\n", written)
	return nil
}
