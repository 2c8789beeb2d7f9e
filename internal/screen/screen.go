// Package screen defines the contract between the router and the views it
// stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fuzzwater/internal/ui/layout"
)

// Screen is one view in the router's stack. The app frame draws the header
// and footer; a Screen only renders the area between them.
type Screen interface {
	Init() tea.Cmd

	// Update may return a different Screen; the router stores whatever comes
	// back in place of the receiver.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	View(width, height int) string

	// Title is shown in the header while the screen is active.
	Title() string
}

// KeyHintProvider is implemented by screens whose keys differ from the
// frame's defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Hints returns s's own key hints when it provides any, otherwise fallback.
func Hints(s Screen, fallback []layout.KeyHint) []layout.KeyHint {
	if p, ok := s.(KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	return fallback
}
