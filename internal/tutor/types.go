// Package tutor is the LLM-backed tutoring service: chat replies, code
// validation, and quiz generation. Every operation is fail-soft; a provider
// failure produces a fixed in-session fallback, never an error the UI has
// to handle.
package tutor

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry in a chat transcript.
type Turn struct {
	Role Role
	Text string
}

// Validation is the outcome of a code validation run.
type Validation struct {
	Valid         bool   `json:"valid"`
	Feedback      string `json:"feedback"`
	ConsoleOutput string `json:"consoleOutput"`
}

// Quiz is a generated multiple-choice question.
type Quiz struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}
