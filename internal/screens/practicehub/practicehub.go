package practicehub

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/odootrail/internal/catalog"
	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/router"
	"github.com/abhisek/odootrail/internal/screen"
	"github.com/abhisek/odootrail/internal/screens/lesson"
	"github.com/abhisek/odootrail/internal/tutor"
	"github.com/abhisek/odootrail/internal/ui/layout"
	"github.com/abhisek/odootrail/internal/ui/theme"
)

// PracticeHubScreen lists the standalone challenges. Completing a challenge
// returns here, not to the dashboard.
type PracticeHubScreen struct {
	prog      *progress.Store
	tut       *tutor.Service
	dashboard func() screen.Screen

	challenges []catalog.Challenge
	selected   int
}

var _ screen.Screen = (*PracticeHubScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeHubScreen)(nil)

// New creates the practice hub over the authored challenges. The dashboard
// factory breaks the import cycle between the two top-level screens; the app
// wires it.
func New(prog *progress.Store, tut *tutor.Service, dashboard func() screen.Screen) *PracticeHubScreen {
	return &PracticeHubScreen{
		prog:       prog,
		tut:        tut,
		dashboard:  dashboard,
		challenges: catalog.Curriculum().Challenges,
	}
}

func (p *PracticeHubScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeHubScreen) Title() string {
	return "Zona de Práctica"
}

func (p *PracticeHubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Empezar reto"},
		{Key: "D", Description: "Dashboard"},
		{Key: "Q", Description: "Salir"},
	}
}

func (p *PracticeHubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.challenges)-1 {
			p.selected++
		}
	case "enter":
		l := catalog.ChallengeLesson(p.challenges[p.selected])
		ls := lesson.New(l, "Zona de Práctica", p.prog, p.tut)
		return p, func() tea.Msg { return router.PushScreenMsg{Screen: ls} }
	case "d", "esc":
		return p, func() tea.Msg { return router.ReplaceScreenMsg{Screen: p.dashboard()} }
	case "q":
		return p, tea.Quit
	}
	return p, nil
}

func (p *PracticeHubScreen) View(width, height int) string {
	completed := p.prog.Current().Completed()

	var b strings.Builder
	b.WriteString("  " + theme.Title.Align(lipgloss.Left).Render("Retos de práctica") + "\n")
	b.WriteString("  " + theme.Subtitle.Align(lipgloss.Left).Render("Ejercicios libres fuera del plan de estudios.") + "\n\n")

	for i, c := range p.challenges {
		style := theme.Unselected
		marker := "  "
		if i == p.selected {
			style = theme.Selected
			marker = "▸ "
		}

		status := " "
		if completed[c.ID] {
			status = theme.Correct.Render("✓")
		}

		b.WriteString(fmt.Sprintf("  %s%s %s", marker, status, style.Render(c.Title)))
		b.WriteString(theme.Hint.Render(fmt.Sprintf("   %s · %d XP", c.Difficulty, c.XP)) + "\n")
	}

	sel := p.challenges[p.selected]
	card := theme.Card.Width(min(width-8, 76)).Render(
		theme.Body.Bold(true).Render(sel.Title) + "\n\n" +
			theme.Body.Render(sel.Description) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render("Misión: ") + theme.Body.Render(sel.Task))
	b.WriteString("\n  " + strings.ReplaceAll(card, "\n", "\n  ") + "\n")

	tip := catalog.Tips[len(completed)%len(catalog.Tips)]
	b.WriteString("\n  " + theme.Callout.Width(min(width-8, 76)).Render("💡 "+tip))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
