package curves

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fuzzwater/internal/chart"
	"github.com/abhisek/fuzzwater/internal/domain"
	"github.com/abhisek/fuzzwater/internal/router"
	"github.com/abhisek/fuzzwater/internal/screen"
	"github.com/abhisek/fuzzwater/internal/ui/layout"
)

// CurvesScreen shows the membership curves of every domain.
type CurvesScreen struct {
	domains []domain.Domain
}

var _ screen.Screen = (*CurvesScreen)(nil)
var _ screen.KeyHintProvider = (*CurvesScreen)(nil)

// New creates a CurvesScreen.
func New(domains []domain.Domain) *CurvesScreen {
	return &CurvesScreen{domains: domains}
}

func (c *CurvesScreen) Init() tea.Cmd {
	return nil
}

func (c *CurvesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return c, nil
}

func (c *CurvesScreen) View(width, height int) string {
	var content string
	if layout.FitsSideBySide(width, len(c.domains)) {
		cols := len(c.domains)
		opts := chart.Options{Width: layout.ChartWidth(width, cols), Height: height - 8}
		content = chart.RenderAll(c.domains, opts)
	} else {
		opts := chart.Options{Width: layout.ChartWidth(width, 1), Height: chartHeight(height, len(c.domains))}
		parts := make([]string, 0, len(c.domains))
		for _, d := range c.domains {
			parts = append(parts, chart.Render(d, opts))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top).
		Render(content)
}

// chartHeight splits the content height between n stacked charts, leaving
// room for each chart's title, axis, labels and legend.
func chartHeight(height, n int) int {
	if n == 0 {
		return 0
	}
	return height/n - 6
}

func (c *CurvesScreen) Title() string {
	return "Fuzzy sets"
}

func (c *CurvesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
