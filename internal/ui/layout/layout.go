package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fuzzwater/internal/ui/theme"
)

const (
	MinWidth  = 72
	MinHeight = 24

	// MinChartWidth is the narrowest plot area worth drawing next to another.
	MinChartWidth = 30
	// MaxChartWidth caps the plot area on wide terminals.
	MaxChartWidth = 80

	// chartChrome is the width a chart adds to its plot area: the y-axis
	// gutter on the left and the unit label past the last column.
	chartChrome = 12
	chartGap    = 4
)

// KeyHint is a key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum frame size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ChartWidth returns the plot width for cols charts placed side by side in
// width columns, capped at MaxChartWidth.
func ChartWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := (width-chartGap*(cols-1))/cols - chartChrome
	return min(w, MaxChartWidth)
}

// FitsSideBySide reports whether n charts fit next to each other.
func FitsSideBySide(width, n int) bool {
	return n > 1 && ChartWidth(width, n) >= MinChartWidth
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nfuzzwater needs %d x %d\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(msg)
}

// RenderHeader renders the bar at the top: brand on the left, screen title
// centred, status on the right.
func RenderHeader(title, status string, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  fuzzwater")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := max(width-4, 0)
	used := lipgloss.Width(brand) + lipgloss.Width(center) + lipgloss.Width(right)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(brand), 1)
	rightGap := max(inner-used-leftGap, 1)

	return bar(width).Render(brand + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// RenderFooter renders the key hints bar.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, giving the content all
// rows the bars leave free.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}
