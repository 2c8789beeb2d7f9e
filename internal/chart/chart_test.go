package chart

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fuzzwater/internal/domain"
)

// With 101 columns over [0, 100] every column is one mg/L.
var unitOpts = Options{Width: 101, Height: 11}

func TestPlot_Defaults(t *testing.T) {
	g := Plot(domain.Temperature(), Options{})
	assert.Equal(t, DefaultWidth, g.Width)
	assert.Equal(t, DefaultHeight, g.Height)
	assert.Equal(t, -1, g.MarkCol)
}

func TestPlot_MinimumSize(t *testing.T) {
	g := Plot(domain.Temperature(), Options{Width: 2, Height: 1})
	assert.Equal(t, minWidth, g.Width)
	assert.Equal(t, minHeight, g.Height)
}

func TestPlot_Peaks(t *testing.T) {
	g := Plot(domain.Cleanliness(), unitOpts)

	// Clean peaks at 0, Polluted at 65, Heavily polluted at 100.
	assert.Equal(t, 0, g.Series(0, 0))
	assert.Equal(t, curveRune, g.Rune(0, 0))
	assert.Equal(t, 2, g.Series(0, 65))
	assert.Equal(t, 3, g.Series(0, 100))

	// Nothing reaches full membership between the peaks.
	assert.Equal(t, noSeries, g.Series(0, 50))
}

func TestPlot_ZeroDegreeNotDrawn(t *testing.T) {
	g := Plot(domain.Cleanliness(), unitOpts)
	bottom := g.Height - 1

	// At x=60 only Polluted is non-zero (0.75), so the bottom row is empty.
	assert.Equal(t, noSeries, g.Series(bottom, 60))
	assert.Equal(t, ' ', g.Rune(bottom, 60))
}

func TestPlot_Mark(t *testing.T) {
	g := Plot(domain.Cleanliness(), unitOpts.MarkAt(25))
	require.Equal(t, 25, g.MarkCol)

	// Slightly polluted is 0.5 at 25: row 5 of 0..10.
	assert.Equal(t, pointRune, g.Rune(5, 25))
	assert.Equal(t, 1, g.Series(5, 25))

	assert.Equal(t, markerRune, g.Rune(0, 25))
	assert.Equal(t, markerSeries, g.Series(0, 25))
}

func TestPlot_MarkClamped(t *testing.T) {
	g := Plot(domain.Cleanliness(), unitOpts.MarkAt(250))
	assert.Equal(t, 100, g.MarkCol)

	g = Plot(domain.Cleanliness(), unitOpts.MarkAt(-5))
	assert.Equal(t, 0, g.MarkCol)
}

func TestGrid_Line(t *testing.T) {
	g := Plot(domain.Cleanliness(), unitOpts)
	line := g.Line(0)
	assert.Equal(t, 101, len([]rune(line)))
	assert.True(t, strings.HasPrefix(line, string(curveRune)))
}

func TestRender(t *testing.T) {
	out := Render(domain.Cleanliness(), Options{Width: 60, Height: 10})

	assert.Contains(t, out, "Water cleanliness")
	for _, name := range []string{"Clean", "Slightly polluted", "Polluted", "Heavily polluted"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "1.0 ┤")
	assert.Contains(t, out, "0.0 ┤")
	assert.Contains(t, out, "100 mg/L")
	assert.NotContains(t, out, "x=")

	// title + rows + axis + x labels + legend
	assert.Equal(t, 1+10+3, len(strings.Split(out, "\n")))
}

func TestRender_MarkedCaption(t *testing.T) {
	out := Render(domain.Temperature(), Options{}.MarkAt(22))

	assert.Contains(t, out, "x=22")
	assert.Contains(t, out, "Cool μ=0.286")
	assert.Contains(t, out, "Warm μ=0.286")
	assert.NotContains(t, out, "Cold μ=")
}

func TestRender_MarkOutsideEverySet(t *testing.T) {
	d := domain.Domain{
		ID: "gap", Title: "Gap", Min: 0, Max: 10,
		Classifier: domain.Temperature().Classifier,
	}
	out := Render(d, Options{}.MarkAt(-1))
	assert.Contains(t, out, "outside every set")
}

func TestRenderAll_SideBySide(t *testing.T) {
	opts := Options{Width: 30, Height: 6}
	single := Render(domain.Cleanliness(), opts)
	both := RenderAll(domain.Builtin(), opts)

	assert.Contains(t, both, "Water cleanliness")
	assert.Contains(t, both, "Water temperature")
	assert.Greater(t, lipgloss.Width(both), lipgloss.Width(single))
	assert.Equal(t, lipgloss.Height(single), lipgloss.Height(both))
}
