package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nbhznb/learnify/internal/ui/layout"
)

// Screen is one view in the navigation stack. The router owns the
// header and footer chrome; View renders only the content between
// them.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title names the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints with
// its own key bindings.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
