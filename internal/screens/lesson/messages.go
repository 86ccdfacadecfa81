package lesson

import (
	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/tutor"
)

// quizReadyMsg carries a generated quiz question, or nil on failure. Gen ties
// the result to the generation that requested it.
type quizReadyMsg struct {
	Gen  int
	Quiz *tutor.Quiz
}

// runDoneMsg carries the validator verdict for a code run.
type runDoneMsg struct {
	Gen    int
	Result tutor.Validation
}

// chatReplyMsg carries the tutor's reply to a chat message.
type chatReplyMsg struct {
	Gen   int
	Reply string
}

// completeDoneMsg is sent after the completion has been recorded.
type completeDoneMsg struct {
	Result progress.Result
	Err    error
}
