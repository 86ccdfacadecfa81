package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/router"
	"github.com/abhisek/odootrail/internal/screen"
	"github.com/abhisek/odootrail/internal/screens/dashboard"
	"github.com/abhisek/odootrail/internal/screens/practicehub"
	"github.com/abhisek/odootrail/internal/tutor"
	"github.com/abhisek/odootrail/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	prog   *progress.Store
	width  int
	height int
}

// newAppModel wires the progress store and tutor service into the screen
// graph, starting on the dashboard.
func newAppModel(prog *progress.Store, tut *tutor.Service) AppModel {
	var newDash, newHub func() screen.Screen
	newDash = func() screen.Screen { return dashboard.New(prog, tut, newHub) }
	newHub = func() screen.Screen { return practicehub.New(prog, tut, newDash) }

	dash := newDash()
	return AppModel{
		router: router.New(dash),
		prog:   prog,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	cur := m.prog.Current()
	header := layout.RenderHeader(title, cur.TotalXP, cur.StreakDays, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Options carries the dependencies for the TUI.
type Options struct {
	Progress *progress.Store
	Tutor    *tutor.Service
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts.Progress, opts.Tutor))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
