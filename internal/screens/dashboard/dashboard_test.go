package dashboard

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/odootrail/internal/catalog"
	"github.com/abhisek/odootrail/internal/llm"
	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/router"
	"github.com/abhisek/odootrail/internal/screen"
	"github.com/abhisek/odootrail/internal/tutor"
)

type memRepo struct {
	data map[string]any
}

func (m *memRepo) Load(context.Context) (map[string]any, bool, error) {
	if m.data == nil {
		return nil, false, nil
	}
	return m.data, true, nil
}
func (m *memRepo) Save(_ context.Context, data map[string]any) error {
	m.data = data
	return nil
}
func (m *memRepo) Clear(context.Context) error {
	m.data = nil
	return nil
}

type nopSink struct{}

func (nopSink) RecordCompletion(context.Context, progress.Completion) error { return nil }
func (nopSink) RecordBadge(context.Context, progress.BadgeUnlock) error     { return nil }

type stubHub struct{}

func (stubHub) Init() tea.Cmd                             { return nil }
func (s stubHub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubHub) View(int, int) string                      { return "hub" }
func (stubHub) Title() string                             { return "hub" }

func testDashboard(t *testing.T) (*DashboardScreen, *progress.Store) {
	t.Helper()
	prog := progress.New(&memRepo{}, nopSink{})
	prog.Load(context.Background())
	tut := tutor.NewService(llm.NewMockProvider(), tutor.DefaultConfig())
	return New(prog, tut, func() screen.Screen { return stubHub{} }), prog
}

func TestRowsCoverWholeCatalog(t *testing.T) {
	d, _ := testDashboard(t)
	want := len(catalog.Curriculum().Lessons())
	if len(d.rows) != want {
		t.Errorf("rows = %d, want %d", len(d.rows), want)
	}
}

func TestInitLandsOnNextStep(t *testing.T) {
	d, prog := testDashboard(t)
	first, _ := catalog.Curriculum().FindLesson("les-0-1")
	if _, err := prog.Complete(context.Background(), first); err != nil {
		t.Fatal(err)
	}

	d.Init()
	if d.rows[d.selected].lesson.ID == "les-0-1" {
		t.Error("cursor still on completed lesson")
	}
	if d.rows[d.selected].lesson.ID != "les-0-2" {
		t.Errorf("cursor on %s, want les-0-2", d.rows[d.selected].lesson.ID)
	}
}

func TestEnterOpensLesson(t *testing.T) {
	d, _ := testDashboard(t)
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != d.rows[0].lesson.Title {
		t.Errorf("pushed screen title = %q", push.Screen.Title())
	}
}

func TestPracticeKeySwitchesScreens(t *testing.T) {
	d, _ := testDashboard(t)
	_, cmd := d.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	if cmd == nil {
		t.Fatal("p produced no command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
}

func TestViewShowsNextStepAndBadges(t *testing.T) {
	d, _ := testDashboard(t)
	view := d.View(120, 200)
	if !strings.Contains(view, "Siguiente paso:") {
		t.Error("view missing next-step hero")
	}
	if !strings.Contains(view, "Insignias:") {
		t.Error("view missing badge shelf")
	}
}
