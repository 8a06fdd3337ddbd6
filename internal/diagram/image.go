package diagram

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ExportFactorChart exports curves against φ to an image file and returns
// the path written. The format follows the file extension (png, svg, pdf);
// anything else is saved as png with ".png" appended.
func ExportFactorChart(title string, phis []float64, curves []Curve, filename string) (string, error) {
	if len(phis) == 0 || len(curves) == 0 {
		return "", fmt.Errorf("nothing to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Friction angle φ (degrees)"
	p.Y.Label.Text = "Bearing capacity factor"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, c := range curves {
		if len(c.Values) != len(phis) {
			return "", fmt.Errorf("curve %q has %d points, want %d", c.Label, len(c.Values), len(phis))
		}

		pts := make(plotter.XYs, len(phis))
		for j := range phis {
			pts[j] = plotter.XY{X: phis[j], Y: c.Values[j]}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(c.Label, line)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	if ext := filepath.Ext(filename); ext != ".png" && ext != ".svg" && ext != ".pdf" {
		filename += ".png"
	}

	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
