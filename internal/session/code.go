package session

import (
	"github.com/abhisek/odootrail/internal/catalog"
	"github.com/abhisek/odootrail/internal/tutor"
)

// CodeBuffer returns the editor contents.
func (s *Session) CodeBuffer() string { return s.code.buffer }

// SetCodeBuffer replaces the editor contents.
func (s *Session) SetCodeBuffer(code string) { s.code.buffer = code }

// Console returns the accumulated console output.
func (s *Session) Console() string { return s.code.console }

// Executing reports whether a run is in flight.
func (s *Session) Executing() bool { return s.code.executing }

// Validation returns the last run's verdict, or nil before any run.
func (s *Session) Validation() *tutor.Validation { return s.code.validation }

// RunTask is what the validator is asked to check: the lesson title plus
// its full content.
func (s *Session) RunTask() string {
	return s.lesson.Title + "\n" + s.lesson.Body
}

// BeginRun starts a code run: clears the previous verdict, opens the
// console with the startup line, and returns the generation token for
// FinishRun. Returns false while a run is already executing.
func (s *Session) BeginRun() (int, bool) {
	if s.code.executing {
		return 0, false
	}
	s.code.executing = true
	s.code.validation = nil
	s.code.console = RunStartupLine
	s.code.gen++
	return s.code.gen, true
}

// FinishRun installs a run result. Stale generations are discarded. A valid
// verdict flips solved for code lessons only.
func (s *Session) FinishRun(gen int, v tutor.Validation) {
	if gen != s.code.gen {
		return
	}
	s.code.executing = false
	s.code.console += v.ConsoleOutput
	s.code.validation = &v
	if v.Valid && s.lesson.Type == catalog.TypeCode {
		s.solved = true
	}
}

// ResetCode restores the editor scaffold and clears console and verdict.
// For code lessons this re-arms the solved gate: the restored buffer has
// not been validated.
func (s *Session) ResetCode() {
	s.code.buffer = CodePlaceholder
	s.code.console = ""
	s.code.validation = nil
	s.code.gen++ // orphan any in-flight run
	s.code.executing = false
	if s.lesson.Type == catalog.TypeCode {
		s.solved = false
	}
}

// InsertSnippet appends cheatsheet code to the buffer. Validation state is
// untouched; inserted code must be run to count.
func (s *Session) InsertSnippet(code string) {
	s.code.buffer += "\n" + code
}
