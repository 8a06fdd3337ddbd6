package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/alexiusacademia/gobcf/internal/bearing"
	"github.com/alexiusacademia/gobcf/internal/footing"
	"github.com/spf13/cobra"
)

var (
	footingWidth      float64
	footingDepth      float64
	footingCohesion   float64
	footingUnitWeight float64
	footingPhi        float64
	footingMethod     string
	footingFS         float64
	footingEC7Design  bool
)

var footingCmd = &cobra.Command{
	Use:   "footing",
	Short: "Ultimate and allowable bearing capacity of a strip footing",
	Long: `Calculate the bearing capacity of a shallow strip footing with
the general equation

  qu = c·Nc + q·Nq + 0.5·γ·B·Nγ,   q = γ·Df,   qall = qu / FS

With --ec7-design the EC7 method is applied to design values of φ and c
reduced by the M2 partial factors (γφ' = 1.25, γc' = 1.25).

Examples:
  gobcf footing --width 2 --depth 1.5 --cohesion 10 --gamma 18 --phi 30 --method vesic
  gobcf footing -B 1.5 -D 1 -c 5 -g 18 -p 32 --ec7-design --fs 1`,
	RunE: runFooting,
}

func init() {
	rootCmd.AddCommand(footingCmd)

	footingCmd.Flags().Float64VarP(&footingWidth, "width", "B", 0, "Footing width B (m) [required]")
	footingCmd.Flags().Float64VarP(&footingDepth, "depth", "D", 0, "Embedment depth Df (m)")
	footingCmd.Flags().Float64VarP(&footingCohesion, "cohesion", "c", 0, "Soil cohesion c (kPa)")
	footingCmd.Flags().Float64VarP(&footingUnitWeight, "gamma", "g", 18, "Soil unit weight γ (kN/m³)")
	footingCmd.Flags().Float64VarP(&footingPhi, "phi", "p", 0, "Friction angle φ (degrees) [required]")
	footingCmd.Flags().StringVarP(&footingMethod, "method", "m", "terzaghi", "Method: terzaghi, meyerhof, vesic, hansen, ec7")
	footingCmd.Flags().Float64Var(&footingFS, "fs", footing.DefaultFactorOfSafety, "Factor of safety")
	footingCmd.Flags().BoolVar(&footingEC7Design, "ec7-design", false, "Use EC7 with M2 partial factors on φ and c")

	footingCmd.MarkFlagRequired("width")
	footingCmd.MarkFlagRequired("phi")
}

func runFooting(cmd *cobra.Command, args []string) error {
	f := footing.NewStripFooting(footingWidth, footingDepth, footingCohesion, footingUnitWeight, math.Abs(footingPhi))

	var result *footing.CapacityResult
	var err error
	if footingEC7Design {
		result, err = f.DesignCapacity(footingFS)
	} else {
		var m bearing.Method
		m, err = bearing.ParseMethod(footingMethod)
		if err != nil {
			return err
		}
		result, err = f.Capacity(m, footingFS)
	}
	if err != nil {
		return fmt.Errorf("calculating capacity: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintln(out, "     STRIP FOOTING BEARING CAPACITY")
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "FOOTING AND SOIL:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (B):\t%.2f m\n", f.Width)
	fmt.Fprintf(w, "  Embedment (Df):\t%.2f m\n", f.Depth)
	fmt.Fprintf(w, "  Cohesion (c):\t%.2f kPa\n", f.Cohesion)
	fmt.Fprintf(w, "  Unit weight (γ):\t%.2f kN/m³\n", f.UnitWeight)
	fmt.Fprintf(w, "  Friction angle (φ):\t%.2f°\n", f.Phi)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "FACTORS (%s):\n", result.Method.Description())
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if footingEC7Design {
		fmt.Fprintf(w, "  Design φd:\t%.2f°\n", result.Phi)
		fmt.Fprintf(w, "  Design cd:\t%.2f kPa\n", footing.DesignCohesion(f.Cohesion, footing.PartialFactorCohesion))
	}
	fmt.Fprintf(w, "  Nc:\t%.2f\n", result.Factors.Nc)
	fmt.Fprintf(w, "  Nq:\t%.2f\n", result.Factors.Nq)
	fmt.Fprintf(w, "  Nγ:\t%.2f\n", result.Factors.Ngamma)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "CONTRIBUTIONS:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Surcharge q = γ·Df:\t%.2f kPa\n", result.Surcharge)
	fmt.Fprintf(w, "  c·Nc:\t%.2f kPa\n", result.CohesionTerm)
	fmt.Fprintf(w, "  q·Nq:\t%.2f kPa\n", result.SurchargeTerm)
	fmt.Fprintf(w, "  0.5·γ·B·Nγ:\t%.2f kPa\n", result.UnitWeightTerm)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  ULTIMATE  qu   = %10.2f kPa\n", result.Ultimate)
	fmt.Fprintf(out, "  ║  ALLOWABLE qall = %10.2f kPa  (FS = %.2f)\n", result.Allowable, result.FactorOfSafety)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════════════╝\n")
	fmt.Fprintf(out, "  Per metre run: qu·B = %.2f kN/m, qall·B = %.2f kN/m\n", result.UltimateLine, result.AllowableLine)
	fmt.Fprintln(out)

	return nil
}
