package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fuzzwater/internal/ui/theme"
)

// DegreeBar displays a membership degree in [0, 1] as a horizontal bar.
type DegreeBar struct {
	Label      string
	LabelWidth int
	Degree     float64
	Width      int
	Color      color.Color
	Highlight  bool
}

// NewDegreeBar creates a bar for one fuzzy set.
func NewDegreeBar(label string, degree float64, width int, c color.Color) DegreeBar {
	return DegreeBar{
		Label:  label,
		Degree: degree,
		Width:  width,
		Color:  c,
	}
}

// View renders the bar as "label  ███░░░  0.500".
func (p DegreeBar) View() string {
	var result string

	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if p.Highlight {
		labelStyle = theme.Winner
	}
	if p.Label != "" {
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		result += labelStyle.Render(label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	valueWidth := 7 // "  0.000"

	barWidth := p.Width - labelWidth - valueWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*p.Degree + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}

	filledStr := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))

	emptyStr := theme.BarEmpty.
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %.3f", p.Degree))

	return result
}
