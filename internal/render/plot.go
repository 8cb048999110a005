package render

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
)

const (
	fillRune  = '░'
	pointRune = '•'
	startRune = 'S'
	endRune   = 'E'
)

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Plot describes a line chart of ys against xs.
type Plot struct {
	Title  string
	XLabel string
	YLabel string
	Width  int // chart columns, including the y-axis labels
	Height int
	// Fill shades the area under the curve.
	Fill bool
	// Endpoints marks the first point S and the last point E.
	Endpoints bool
	// Format renders axis tick values.
	Format func(float64) string
}

// Render draws the chart. xs and ys must have equal length.
func (p Plot) Render(xs, ys []float64) string {
	if len(xs) == 0 || len(xs) != len(ys) {
		return EmptyState("Nothing to plot.", "", true)
	}

	w, h := max(p.Width, 10), max(p.Height, 4)
	format := p.Format
	if format == nil {
		format = func(v float64) string { return fmt.Sprintf("%.2f", v) }
	}
	label := func(_ int, v float64) string { return format(v) }

	xlo, xhi := bounds(xs)
	ylo, yhi := bounds(ys)

	lc := linechart.New(w, h, xlo, xhi, ylo, yhi,
		linechart.WithXYSteps(2, 2),
		linechart.WithXLabelFormatter(label),
		linechart.WithYLabelFormatter(label),
		linechart.WithStyles(axisStyle, labelStyle, lineStyle),
	)
	lc.DrawXYAxisAndLabel()

	pt := func(i int) canvas.Float64Point {
		return canvas.Float64Point{X: xs[i], Y: ys[i]}
	}

	if p.Fill {
		for i := range xs {
			lc.DrawRuneLine(canvas.Float64Point{X: xs[i], Y: ylo}, pt(i), fillRune)
		}
	}
	if len(xs) == 1 {
		lc.DrawRune(pt(0), pointRune)
	}
	for i := 1; i < len(xs); i++ {
		lc.DrawBrailleLine(pt(i-1), pt(i))
	}
	if p.Endpoints {
		lc.DrawRune(pt(0), startRune)
		lc.DrawRune(pt(len(xs)-1), endRune)
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, StyledText(p.Title, lipgloss.NewStyle().Bold(true)))
	}
	if p.YLabel != "" {
		lines = append(lines, p.YLabel)
	}
	lines = append(lines, lc.View())
	if p.XLabel != "" {
		lines = append(lines, fmt.Sprintf("%*s", w, p.XLabel))
	}
	return strings.Join(lines, "\n")
}

// bounds returns the range of vs, widened by one unit either side when
// every value is equal so the chart has a non-empty domain.
func bounds(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo, hi
}
