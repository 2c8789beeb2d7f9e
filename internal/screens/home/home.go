package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/fuzzwater/internal/domain"
	"github.com/abhisek/fuzzwater/internal/router"
	"github.com/abhisek/fuzzwater/internal/screen"
	"github.com/abhisek/fuzzwater/internal/screens/curves"
	"github.com/abhisek/fuzzwater/internal/screens/evaluate"
	"github.com/abhisek/fuzzwater/internal/ui/components"
	"github.com/abhisek/fuzzwater/internal/ui/theme"
)

const titleCompact = "F · U · Z · Z · W · A · T · E · R"

// HomeScreen is the main menu: one entry per domain, the curve overview and
// exit.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen for the registered domains.
func New(registry *domain.Registry, logger *zap.Logger) *HomeScreen {
	domains := registry.All()
	items := make([]components.MenuItem, 0, len(domains)+2)

	for _, d := range domains {
		d := d
		items = append(items, components.MenuItem{
			Label: "Evaluate " + strings.ToLower(d.Title),
			Hint:  d.RangeLabel(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: evaluate.New(d, logger)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "Show all fuzzy sets",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: curves.New(domains)}
				}
			},
		},
		components.MenuItem{
			Label: "Exit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render(titleCompact))

	subtitle := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Subtitle.Render("Fuzzy water quality assessment"))

	menu := theme.Card.
		Width(cw).
		Render(strings.TrimRight(h.menu.View(), "\n"))

	hint := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Hint.Render(fmt.Sprintf("choose 1-%d", len(h.menu.Items))))

	content := lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", menu, hint)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Menu"
}

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}
