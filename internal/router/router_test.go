package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/odootrail/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	s2 := &stubScreen{title: "lesson"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "lesson" {
		t.Errorf("expected active 'lesson', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	s2 := &stubScreen{title: "lesson"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "dashboard" {
		t.Errorf("expected active 'dashboard', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	s2 := &stubScreen{title: "practice"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "practice" {
		t.Errorf("expected active 'practice', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	s2 := &stubScreen{title: "lesson"}
	r.Update(PushScreenMsg{Screen: s2})
	if r.Depth() != 2 || !s2.initRan {
		t.Fatalf("push msg: depth=%d initRan=%v", r.Depth(), s2.initRan)
	}

	s3 := &stubScreen{title: "summary"}
	r.Update(ReplaceScreenMsg{Screen: s3})
	if r.Depth() != 2 || r.Active().Title() != "summary" {
		t.Fatalf("replace msg: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
	if !s3.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active().Title() != "dashboard" {
		t.Fatalf("pop msg: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}
