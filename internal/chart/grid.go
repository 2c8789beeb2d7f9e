package chart

import (
	"math"

	"github.com/abhisek/fuzzwater/internal/domain"
)

const (
	curveRune  = '•'
	pointRune  = '●'
	markerRune = '┊'

	noSeries     = -1
	markerSeries = -2
)

type cell struct {
	r      rune
	series int
}

// Grid is a character raster of a domain's membership curves. Row 0 is
// degree 1 and the last row is degree 0; column 0 is the domain minimum and
// the last column its maximum.
type Grid struct {
	Width, Height int
	// MarkCol is the column of the marked value, or -1.
	MarkCol int
	cells   [][]cell
}

// Plot rasterizes every set of d into a grid. Only points with a positive
// degree are drawn; steep edges are joined vertically.
func Plot(d domain.Domain, opts Options) Grid {
	opts = opts.withDefaults()
	g := newGrid(opts.Width, opts.Height)

	for idx, s := range d.Classifier.Sets() {
		prevRow := -1
		for col := 0; col < g.Width; col++ {
			deg := s.Degree(g.xAt(d, col))
			row := g.rowFor(deg)
			if deg > 0 {
				g.set(row, col, curveRune, idx)
			}
			if prevRow >= 0 {
				lo, hi := min(row, prevRow), max(row, prevRow)
				for r := lo + 1; r < hi; r++ {
					g.set(r, col, curveRune, idx)
				}
			}
			prevRow = row
		}
	}

	if opts.Marked {
		g.MarkCol = g.colFor(d, opts.Mark)
		for row := 0; row < g.Height; row++ {
			g.set(row, g.MarkCol, markerRune, markerSeries)
		}
		for idx, s := range d.Classifier.Sets() {
			if deg := s.Degree(opts.Mark); deg > 0 {
				g.force(g.rowFor(deg), g.MarkCol, pointRune, idx)
			}
		}
	}

	return g
}

func newGrid(w, h int) Grid {
	cells := make([][]cell, h)
	for r := range cells {
		cells[r] = make([]cell, w)
		for c := range cells[r] {
			cells[r][c] = cell{r: ' ', series: noSeries}
		}
	}
	return Grid{Width: w, Height: h, MarkCol: -1, cells: cells}
}

// Rune returns the character at row, col.
func (g Grid) Rune(row, col int) rune {
	return g.cells[row][col].r
}

// Series returns the index of the set drawn at row, col, -1 for an empty
// cell and -2 for the marker line.
func (g Grid) Series(row, col int) int {
	return g.cells[row][col].series
}

// Line returns row as plain text.
func (g Grid) Line(row int) string {
	rs := make([]rune, g.Width)
	for c, cl := range g.cells[row] {
		rs[c] = cl.r
	}
	return string(rs)
}

// set writes a cell unless a curve already occupies it.
func (g Grid) set(row, col int, r rune, series int) {
	if g.cells[row][col].series >= 0 {
		return
	}
	g.cells[row][col] = cell{r: r, series: series}
}

func (g Grid) force(row, col int, r rune, series int) {
	g.cells[row][col] = cell{r: r, series: series}
}

func (g Grid) xAt(d domain.Domain, col int) float64 {
	if g.Width == 1 {
		return d.Min
	}
	return d.Min + (d.Max-d.Min)*float64(col)/float64(g.Width-1)
}

func (g Grid) colFor(d domain.Domain, x float64) int {
	if d.Max == d.Min {
		return 0
	}
	col := int(math.Round((x - d.Min) / (d.Max - d.Min) * float64(g.Width-1)))
	return clamp(col, 0, g.Width-1)
}

func (g Grid) rowFor(deg float64) int {
	row := g.Height - 1 - int(math.Round(deg*float64(g.Height-1)))
	return clamp(row, 0, g.Height-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
