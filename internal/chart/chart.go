package chart

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fuzzwater/internal/domain"
	"github.com/abhisek/fuzzwater/internal/ui/theme"
)

const (
	DefaultWidth  = 60
	DefaultHeight = 12

	minWidth  = 10
	minHeight = 3

	axisGutter = 5 // "1.0 ┤"
)

// Options controls chart size and the optional marked value.
type Options struct {
	Width  int // plot columns, excluding the axis gutter
	Height int // plot rows, excluding axis and labels
	Mark   float64
	Marked bool
}

// MarkAt returns opts with x marked.
func (o Options) MarkAt(x float64) Options {
	o.Mark = x
	o.Marked = true
	return o
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Width < minWidth {
		o.Width = minWidth
	}
	if o.Height < minHeight {
		o.Height = minHeight
	}
	return o
}

// Render draws the membership curves of d with axes and a legend. When a
// value is marked, a caption lists its degree in each set it belongs to.
func Render(d domain.Domain, opts Options) string {
	opts = opts.withDefaults()
	g := Plot(d, opts)

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render(d.Title))

	mid := (g.Height - 1) / 2
	for row := 0; row < g.Height; row++ {
		label := "    "
		tick := "│"
		switch row {
		case 0:
			label, tick = "1.0 ", "┤"
		case mid:
			label, tick = "0.5 ", "┤"
		case g.Height - 1:
			label, tick = "0.0 ", "┤"
		}
		gutter := lipgloss.NewStyle().Foreground(theme.TextDim).Render(label + tick)
		lines = append(lines, gutter+renderRow(g, row))
	}

	axis := strings.Repeat(" ", axisGutter-1) + "└" + strings.Repeat("─", g.Width)
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(axis))
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(xLabels(d, g.Width)))
	lines = append(lines, legend(d, g.Width+axisGutter))

	if opts.Marked {
		lines = append(lines, caption(d, opts.Mark))
	}

	return strings.Join(lines, "\n")
}

// RenderAll draws one chart per domain side by side.
func RenderAll(domains []domain.Domain, opts Options) string {
	charts := make([]string, 0, len(domains)*2)
	for i, d := range domains {
		if i > 0 {
			charts = append(charts, "    ")
		}
		charts = append(charts, Render(d, opts))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, charts...)
}

func renderRow(g Grid, row int) string {
	var b strings.Builder
	for col := 0; col < g.Width; col++ {
		r := string(g.Rune(row, col))
		switch s := g.Series(row, col); {
		case s >= 0:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.SeriesColor(s)).Render(r))
		case s == markerSeries:
			b.WriteString(theme.Marker.Render(r))
		default:
			b.WriteString(r)
		}
	}
	return b.String()
}

func xLabels(d domain.Domain, width int) string {
	lo := fmt.Sprintf("%g", d.Min)
	mid := fmt.Sprintf("%g", (d.Min+d.Max)/2)
	hi := fmt.Sprintf("%g", d.Max)
	if d.Unit != "" {
		hi += " " + d.Unit
	}

	row := []rune(strings.Repeat(" ", axisGutter+width+len([]rune(hi))))
	place := func(s string, at int) {
		for i, r := range []rune(s) {
			if at+i >= 0 && at+i < len(row) {
				row[at+i] = r
			}
		}
	}
	place(lo, axisGutter)
	place(mid, axisGutter+width/2-len(mid)/2)
	place(hi, axisGutter+width-len([]rune(fmt.Sprintf("%g", d.Max))))
	return strings.TrimRight(string(row), " ")
}

func legend(d domain.Domain, width int) string {
	var items []string
	for i, s := range d.Classifier.Sets() {
		items = append(items, lipgloss.NewStyle().Foreground(theme.SeriesColor(i)).Render(string(pointRune)+" "+s.Name))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(items, "  "))
}

func caption(d domain.Domain, x float64) string {
	var parts []string
	for i, s := range d.Classifier.Sets() {
		if deg := s.Degree(x); deg > 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.SeriesColor(i)).
				Render(fmt.Sprintf("%s μ=%.3f", s.Name, deg)))
		}
	}
	head := theme.Marker.Render(fmt.Sprintf("%c x=%g", markerRune, x))
	if len(parts) == 0 {
		return head + "  " + theme.Hint.Render("outside every set")
	}
	return head + "  " + strings.Join(parts, "  ")
}
