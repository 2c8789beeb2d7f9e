package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: water tones with warm accents for alerts.
var (
	Primary   = lipgloss.Color("#0EA5E9") // Sky
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Series colors, one per fuzzy set in chart and bar order. Wraps around
// for domains with more sets.
var Series = []color.Color{
	lipgloss.Color("#38BDF8"), // Light Sky
	lipgloss.Color("#A3E635"), // Lime
	lipgloss.Color("#FB923C"), // Orange
	lipgloss.Color("#E879F9"), // Fuchsia
	lipgloss.Color("#FACC15"), // Yellow
	lipgloss.Color("#2DD4BF"), // Turquoise
}

// SeriesColor returns the color for the i-th fuzzy set.
func SeriesColor(i int) color.Color {
	if i < 0 {
		return Text
	}
	return Series[i%len(Series)]
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Winner = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Invalid = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	BarFilled = lipgloss.NewStyle().
			Background(Secondary)

	BarEmpty = lipgloss.NewStyle().
			Background(Border)

	Marker = lipgloss.NewStyle().
		Foreground(Error)
)
