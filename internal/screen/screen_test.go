package screen

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/fuzzwater/internal/ui/layout"
)

type plainScreen struct{}

func (plainScreen) Init() tea.Cmd                      { return nil }
func (p plainScreen) Update(tea.Msg) (Screen, tea.Cmd) { return p, nil }
func (plainScreen) View(int, int) string               { return "" }
func (plainScreen) Title() string                      { return "plain" }

type hintedScreen struct {
	plainScreen
	hints []layout.KeyHint
}

func (h hintedScreen) KeyHints() []layout.KeyHint { return h.hints }

func TestHints(t *testing.T) {
	fallback := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	own := []layout.KeyHint{{Key: "C", Description: "Toggle chart"}}

	assert.Equal(t, fallback, Hints(plainScreen{}, fallback))
	assert.Equal(t, own, Hints(hintedScreen{hints: own}, fallback))
	assert.Equal(t, fallback, Hints(hintedScreen{}, fallback))
	assert.Equal(t, fallback, Hints(nil, fallback))
}
