package lesson

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/odootrail/internal/catalog"
	"github.com/abhisek/odootrail/internal/llm"
	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/router"
	sess "github.com/abhisek/odootrail/internal/session"
	"github.com/abhisek/odootrail/internal/tutor"
)

// memRepo implements progress.RecordRepo in memory.
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

// memSink implements progress.EventSink in memory.
type memSink struct {
	completions []progress.Completion
}

func (m *memSink) RecordCompletion(_ context.Context, c progress.Completion) error {
	m.completions = append(m.completions, c)
	return nil
}
func (m *memSink) RecordBadge(context.Context, progress.BadgeUnlock) error { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testScreen(t *testing.T, l catalog.Lesson, responses ...llm.MockResponse) (*LessonScreen, *memSink) {
	t.Helper()
	sink := &memSink{}
	prog := progress.New(&memRepo{}, sink)
	prog.Load(context.Background())
	tut := tutor.NewService(llm.NewMockProvider(responses...), tutor.DefaultConfig())
	return New(l, "Fase 1", prog, tut), sink
}

// drain executes commands and feeds this package's async results back into
// the screen. Editor focus commands block on a channel that only a running
// program serves, so execution happens on a goroutine with a deadline, and
// only messages this package defines are fed back.
func drain(t *testing.T, s *LessonScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-out:
	case <-time.After(100 * time.Millisecond):
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(t, s, c)
		}
		return
	}
	switch msg.(type) {
	case quizReadyMsg, runDoneMsg, chatReplyMsg, completeDoneMsg:
		_, next := s.Update(msg)
		drain(t, s, next)
	}
}

func theoryLesson() catalog.Lesson {
	return catalog.Lesson{ID: "les-0-1", Title: "Teoría", Type: catalog.TypeTheory,
		XP: 20, Origin: catalog.OriginCatalog, Body: "# Hola\n\nContenido."}
}

func quizLesson() catalog.Lesson {
	return catalog.Lesson{ID: "les-0-3", Title: "Examen", Type: catalog.TypeQuiz,
		XP: 50, Origin: catalog.OriginCatalog, Body: "Repaso del módulo."}
}

func codeLesson() catalog.Lesson {
	return catalog.Lesson{ID: "les-1-2", Title: "Modelos", Type: catalog.TypeCode,
		XP: 50, Origin: catalog.OriginCatalog, Body: "Crea un modelo."}
}

func TestQuizLessonGeneratesOnInit(t *testing.T) {
	quizJSON, _ := json.Marshal(map[string]any{
		"question":     "¿Qué es un modelo?",
		"options":      []string{"Una tabla", "Una vista", "Un reporte"},
		"correctIndex": 0,
		"explanation":  "Los modelos mapean tablas.",
	})
	s, _ := testScreen(t, quizLesson(), llm.MockResponse{Content: quizJSON})

	drain(t, s, s.Init())

	q := s.session.Quiz()
	if q == nil {
		t.Fatal("quiz not installed after init")
	}
	if q.Question != "¿Qué es un modelo?" {
		t.Errorf("question = %q", q.Question)
	}
}

func TestQuizAnswerAndComplete(t *testing.T) {
	quizJSON, _ := json.Marshal(map[string]any{
		"question":     "¿Qué es un modelo?",
		"options":      []string{"Una tabla", "Una vista"},
		"correctIndex": 0,
		"explanation":  "",
	})
	s, sink := testScreen(t, quizLesson(), llm.MockResponse{Content: quizJSON})
	drain(t, s, s.Init())

	_, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.session.Solved() {
		t.Fatal("correct answer did not solve")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+d produced no completion command")
	}
	msg := cmd()
	done, ok := msg.(completeDoneMsg)
	if !ok {
		t.Fatalf("expected completeDoneMsg, got %T", msg)
	}
	if done.Err != nil || done.Result.XPAwarded != 50 {
		t.Fatalf("completion = %+v err=%v", done.Result, done.Err)
	}
	s.Update(msg)

	if len(sink.completions) != 1 || sink.completions[0].LessonID != "les-0-3" {
		t.Fatalf("completions = %+v", sink.completions)
	}

	// Any further key leaves the lesson.
	_, cmd = s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("no navigation after completion")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected pop back to origin")
	}
}

func TestQuizGenerationFailureShowsError(t *testing.T) {
	s, _ := testScreen(t, quizLesson(), llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	drain(t, s, s.Init())

	if !s.session.QuizFailed() {
		t.Fatal("session not in failed state")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "No se pudo generar la pregunta.") {
		t.Errorf("view missing failure notice:\n%s", view)
	}
}

func TestCodeRunThroughValidator(t *testing.T) {
	verdict, _ := json.Marshal(map[string]any{
		"valid":         true,
		"feedback":      "¡Perfecto!",
		"consoleOutput": "INFO: registry loaded\n",
	})
	s, _ := testScreen(t, codeLesson(), llm.MockResponse{Content: verdict})
	drain(t, s, s.Init())

	if s.session.Tab() != sess.TabPractice {
		t.Fatal("code lesson must open on the practice tab")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+r produced no run command")
	}
	if !s.session.Executing() {
		t.Fatal("run not marked executing")
	}
	s.Update(cmd())

	if !s.session.Solved() {
		t.Error("valid verdict did not solve")
	}
	if !strings.Contains(s.session.Console(), "INFO: registry loaded") {
		t.Errorf("console = %q", s.session.Console())
	}
}

func TestCodeResetDiscardsLateVerdict(t *testing.T) {
	verdict, _ := json.Marshal(map[string]any{
		"valid": true, "feedback": "ok", "consoleOutput": "out",
	})
	s, _ := testScreen(t, codeLesson(), llm.MockResponse{Content: verdict})
	drain(t, s, s.Init())

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	late := cmd()
	s.Update(tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl})
	s.Update(late)

	if s.session.Solved() {
		t.Error("verdict from before reset applied")
	}
}

func TestChatRoundTrip(t *testing.T) {
	reply, _ := json.Marshal("Un modelo mapea una tabla de PostgreSQL.")
	s, _ := testScreen(t, theoryLesson(), llm.MockResponse{Content: reply})
	drain(t, s, s.Init())

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.session.Tab() != sess.TabChat {
		t.Fatal("tab did not reach chat")
	}

	for _, r := range "hola" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no chat command")
	}
	s.Update(cmd())

	transcript := s.session.Transcript()
	if len(transcript) != 2 {
		t.Fatalf("transcript = %+v", transcript)
	}
	if transcript[1].Text != "Un modelo mapea una tabla de PostgreSQL." {
		t.Errorf("reply = %q", transcript[1].Text)
	}
}

func TestEscapePopsToOrigin(t *testing.T) {
	s, _ := testScreen(t, theoryLesson())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSnippetInsert(t *testing.T) {
	s, _ := testScreen(t, codeLesson())
	drain(t, s, s.Init())

	s.Update(tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl})
	if !s.snippetMenu {
		t.Fatal("snippet menu not open")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.snippetMenu {
		t.Error("snippet menu still open after insert")
	}
	if !strings.Contains(s.session.CodeBuffer(), catalog.Snippets[0].Code) {
		t.Error("snippet not inserted into buffer")
	}
}
