package dashboard

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/odootrail/internal/catalog"
	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/router"
	"github.com/abhisek/odootrail/internal/screen"
	"github.com/abhisek/odootrail/internal/screens/lesson"
	"github.com/abhisek/odootrail/internal/tutor"
	"github.com/abhisek/odootrail/internal/ui/layout"
)

// row is one selectable line in the curriculum listing.
type row struct {
	track  *catalog.Track
	module *catalog.Module
	lesson *catalog.Lesson
}

// DashboardScreen is the entry screen: next step, the full curriculum, and
// the badge shelf.
type DashboardScreen struct {
	prog *progress.Store
	tut  *tutor.Service
	hub  func() screen.Screen

	rows     []row
	selected int
	offset   int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard over the authored curriculum. The hub factory
// breaks the import cycle with the practice hub; the app wires it.
func New(prog *progress.Store, tut *tutor.Service, hub func() screen.Screen) *DashboardScreen {
	var rows []row
	c := catalog.Curriculum()
	for ti := range c.Tracks {
		track := &c.Tracks[ti]
		for mi := range track.Modules {
			module := &track.Modules[mi]
			for li := range module.Lessons {
				rows = append(rows, row{track: track, module: module, lesson: &module.Lessons[li]})
			}
		}
	}
	return &DashboardScreen{prog: prog, tut: tut, hub: hub, rows: rows}
}

func (d *DashboardScreen) Init() tea.Cmd {
	// Land the cursor on the next unfinished lesson.
	completed := d.prog.Current().Completed()
	if step := catalog.Resolve(catalog.Curriculum(), completed); step != nil {
		for i, r := range d.rows {
			if r.lesson.ID == step.Lesson.ID {
				d.selected = i
				break
			}
		}
	}
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir lección"},
		{Key: "P", Description: "Práctica"},
		{Key: "Q", Description: "Salir"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(d.rows)-1 {
			d.selected++
		}
	case "enter":
		r := d.rows[d.selected]
		ls := lesson.New(*r.lesson, r.module.Title, d.prog, d.tut)
		return d, func() tea.Msg { return router.PushScreenMsg{Screen: ls} }
	case "p":
		return d, func() tea.Msg { return router.ReplaceScreenMsg{Screen: d.hub()} }
	case "q":
		return d, tea.Quit
	}
	return d, nil
}
