package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gobcf/internal/bearing"
	"github.com/guptarohit/asciigraph"
)

// Chart dimensions in terminal cells
const (
	ChartHeight = 15
	ChartWidth  = 60
)

// Curve is one labelled series plotted against the friction angle
type Curve struct {
	Label  string
	Values []float64
}

// FactorCurves splits a tabulated method into Nc, Nq and Nγ curves
func FactorCurves(factors []bearing.Factors) []Curve {
	nc := make([]float64, len(factors))
	nq := make([]float64, len(factors))
	ng := make([]float64, len(factors))
	for i, f := range factors {
		nc[i] = f.Nc
		nq[i] = f.Nq
		ng[i] = f.Ngamma
	}
	return []Curve{
		{Label: "Nc", Values: nc},
		{Label: "Nq", Values: nq},
		{Label: "Nγ", Values: ng},
	}
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Goldenrod,
	asciigraph.Magenta,
}

// DrawFactorChart renders curves against φ as an ASCII line chart
func DrawFactorChart(title string, phis []float64, curves []Curve) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", utf8.RuneCountInString(title))))

	if len(phis) == 0 || len(curves) == 0 {
		sb.WriteString("  (no data)\n")
		return sb.String()
	}

	data := make([][]float64, len(curves))
	labels := make([]string, len(curves))
	colors := make([]asciigraph.AnsiColor, len(curves))
	for i, c := range curves {
		data[i] = c.Values
		labels[i] = c.Label
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(ChartHeight),
		asciigraph.Width(ChartWidth),
		asciigraph.Precision(1),
		asciigraph.Offset(4),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(labels...),
		asciigraph.Caption(fmt.Sprintf("φ = %.1f° … %.1f°", phis[0], phis[len(phis)-1])),
	)
	sb.WriteString(graph)
	sb.WriteString("\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}

	border := strings.Repeat("═", maxLen+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
