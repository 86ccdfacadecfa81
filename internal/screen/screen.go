package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/odootrail/internal/ui/layout"
)

// Screen is implemented by every navigable view in the app: the dashboard,
// the practice hub, and the lesson view.
type Screen interface {
	// Init returns the command to run when the screen first appears.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body. Header and footer are drawn by the app.
	View(width, height int) string

	// Title returns the name shown in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints instead of
// the default set.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
