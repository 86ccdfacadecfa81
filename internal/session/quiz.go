package session

import (
	"github.com/abhisek/odootrail/internal/catalog"
	"github.com/abhisek/odootrail/internal/tutor"
)

// NeedsQuiz reports whether a quiz should be requested: quiz lesson, no
// generation started yet. The once-per-session guard lives here.
func (s *Session) NeedsQuiz() bool {
	return s.lesson.Type == catalog.TypeQuiz && !s.quiz.requested
}

// BeginQuiz marks generation in flight and returns the generation token the
// caller must hand back to ResolveQuiz.
func (s *Session) BeginQuiz() int {
	s.quiz.requested = true
	s.quiz.pending = true
	s.quiz.failed = false
	s.quiz.gen++
	return s.quiz.gen
}

// ResolveQuiz installs the generated question. Results from a superseded
// generation are discarded. A nil quiz moves the flow to its failed state.
func (s *Session) ResolveQuiz(gen int, q *tutor.Quiz) {
	if gen != s.quiz.gen {
		return
	}
	s.quiz.pending = false
	if q == nil {
		s.quiz.failed = true
		return
	}
	s.quiz.quiz = q
}

// Quiz returns the generated question, or nil while pending or failed.
func (s *Session) Quiz() *tutor.Quiz { return s.quiz.quiz }

// QuizPending reports whether generation is in flight.
func (s *Session) QuizPending() bool { return s.quiz.pending }

// QuizFailed reports whether generation failed for this session.
func (s *Session) QuizFailed() bool { return s.quiz.failed }

// SelectOption answers the quiz. One-shot: the first selection is final for
// this generation, and a correct answer flips solved. Out-of-range indexes
// and selections without a loaded quiz are ignored.
func (s *Session) SelectOption(i int) {
	if s.quiz.quiz == nil || s.quiz.selected != noSelection {
		return
	}
	if i < 0 || i >= len(s.quiz.quiz.Options) {
		return
	}
	s.quiz.selected = i
	if i == s.quiz.quiz.CorrectIndex {
		s.solved = true
		s.quiz.feedback = QuizCorrectFeedback
		return
	}
	s.quiz.feedback = QuizIncorrectPrefix + s.quiz.quiz.Explanation
}

// SelectedOption returns the chosen index, or -1 before any selection.
func (s *Session) SelectedOption() int { return s.quiz.selected }

// QuizAnswered reports whether a selection was made.
func (s *Session) QuizAnswered() bool { return s.quiz.selected != noSelection }

// QuizFeedback returns the feedback line shown after answering.
func (s *Session) QuizFeedback() string { return s.quiz.feedback }
