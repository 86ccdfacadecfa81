package practicehub

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

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

type stubDash struct{}

func (stubDash) Init() tea.Cmd                             { return nil }
func (s stubDash) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubDash) View(int, int) string                      { return "dash" }
func (stubDash) Title() string                             { return "dash" }

func testHub(t *testing.T) *PracticeHubScreen {
	t.Helper()
	prog := progress.New(&memRepo{}, nopSink{})
	prog.Load(context.Background())
	tut := tutor.NewService(llm.NewMockProvider(), tutor.DefaultConfig())
	return New(prog, tut, func() screen.Screen { return stubDash{} })
}

func TestEnterStartsChallengeAsCodeLesson(t *testing.T) {
	h := testHub(t)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != h.challenges[0].Title {
		t.Errorf("pushed title = %q, want %q", push.Screen.Title(), h.challenges[0].Title)
	}
}

func TestDashboardKeyReplaces(t *testing.T) {
	h := testHub(t)
	_, cmd := h.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if cmd == nil {
		t.Fatal("d produced no command")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if rep.Screen.Title() != "dash" {
		t.Errorf("replacement = %q", rep.Screen.Title())
	}
}

func TestViewListsChallengesAndTip(t *testing.T) {
	h := testHub(t)
	view := h.View(110, 40)
	for _, c := range h.challenges {
		if !strings.Contains(view, c.Title) {
			t.Errorf("view missing challenge %q", c.Title)
		}
	}
	if !strings.Contains(view, "💡") {
		t.Error("view missing pro tip")
	}
}
