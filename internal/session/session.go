package session

import (
	"fmt"
	"strings"

	"github.com/abhisek/odootrail/internal/catalog"
)

// Session is the transient state of one open lesson. It is created when the
// lesson opens and discarded on navigation away; nothing here is persisted.
// Not safe for concurrent use; the event loop owns it.
type Session struct {
	lesson      catalog.Lesson
	moduleTitle string

	tab    Tab
	solved bool

	cards flashcardState
	quiz  quizState
	code  codeState
	chat  chatState
}

// New opens a session for the given lesson. moduleTitle feeds the chat
// context and the header display.
func New(lesson catalog.Lesson, moduleTitle string) *Session {
	s := &Session{
		lesson:      lesson,
		moduleTitle: moduleTitle,
		tab:         TabTheory,
		// Theory and flashcard lessons gate completion on explicit user
		// acknowledgment only; code and quiz gate on a correctness signal.
		solved: lesson.Type == catalog.TypeTheory || lesson.Type == catalog.TypeFlashcard,
	}
	if lesson.Type == catalog.TypeCode {
		s.tab = TabPractice
		s.code.buffer = CodePlaceholder
	}
	s.quiz.selected = noSelection
	return s
}

// Lesson returns the lesson this session runs.
func (s *Session) Lesson() catalog.Lesson { return s.lesson }

// ModuleTitle returns the owning module's title.
func (s *Session) ModuleTitle() string { return s.moduleTitle }

// Tab returns the active tab.
func (s *Session) Tab() Tab { return s.tab }

// Solved reports whether completion is currently allowed.
func (s *Session) Solved() bool { return s.solved }

// SelectTab switches panes. The practice tab only exists for code lessons;
// selecting it otherwise is a no-op. Sub-state always survives switches.
func (s *Session) SelectTab(tab Tab) {
	if tab == TabPractice && s.lesson.Type != catalog.TypeCode {
		return
	}
	switch tab {
	case TabTheory, TabPractice, TabChat:
		s.tab = tab
	}
}

// Complete returns the completion report if the lesson is in a completable
// state. The caller forwards it to the progress store and navigates away.
func (s *Session) Complete() (Report, bool) {
	if !s.solved {
		return Report{}, false
	}
	return Report{
		LessonID: s.lesson.ID,
		Title:    s.lesson.Title,
		XP:       s.lesson.XP,
	}, true
}

// ChatContext composes the lesson context string sent with every tutor
// chat request.
func (s *Session) ChatContext() string {
	return fmt.Sprintf("Módulo: %s. Lección: %s. Contenido: %s",
		s.moduleTitle, s.lesson.Title, s.lessonContent())
}

// lessonContent flattens the content union for prompt building. Flashcard
// decks are rendered as question/answer lines.
func (s *Session) lessonContent() string {
	if s.lesson.Type != catalog.TypeFlashcard {
		return s.lesson.Body
	}
	var b strings.Builder
	for _, c := range s.lesson.Cards {
		fmt.Fprintf(&b, "P: %s R: %s\n", c.Question, c.Answer)
	}
	return b.String()
}
