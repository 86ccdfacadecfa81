// Package session holds the transient state of one open lesson: active tab,
// solved flag, and the per-type sub-flows (flashcards, quiz, code, chat).
// It is a pure state machine; async tutor calls are started and resolved by
// the caller, with generation counters guarding against stale results.
package session

import "github.com/abhisek/odootrail/internal/tutor"

// Tab is the active lesson pane.
type Tab string

const (
	TabTheory   Tab = "theory"
	TabPractice Tab = "practice"
	TabChat     Tab = "chat"
)

// CodePlaceholder seeds the editor for code lessons.
const CodePlaceholder = "# Escribe tu código aquí\n\n"

// RunStartupLine opens the console on every run.
const RunStartupLine = "Iniciando entorno...\n"

// Quiz feedback strings.
const (
	QuizCorrectFeedback = "¡Correcto! Bien hecho."
	QuizIncorrectPrefix = "Incorrecto. "
)

const noSelection = -1

// flashcardState tracks position in a deck.
type flashcardState struct {
	index    int
	flipped  bool
	deckDone bool
}

// quizState tracks the one-shot generated quiz.
type quizState struct {
	requested bool
	pending   bool
	failed    bool
	gen       int
	quiz      *tutor.Quiz
	selected  int
	feedback  string
}

// codeState tracks the editor, console, and last validation.
type codeState struct {
	buffer     string
	console    string
	executing  bool
	gen        int
	validation *tutor.Validation
}

// chatState tracks the transcript and the in-flight guard.
type chatState struct {
	transcript []tutor.Turn
	pending    bool
	gen        int
}

// Report is handed to the completion callback when a lesson is finished.
type Report struct {
	LessonID string
	Title    string
	XP       int
}
