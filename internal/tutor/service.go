package tutor

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/odootrail/internal/llm"
)

// Fixed fallback values returned when the provider fails. The session keeps
// working offline; it just gets canned answers.
const (
	chatFallback          = "Lo siento, tuve un problema conectando con el servidor de IA. Por favor intenta de nuevo."
	validateFallbackMsg   = "Error de conexión con el validador."
	validateFallbackShell = "Error 500: Unable to connect to validation server."
)

// Service answers tutor requests through an llm.Provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Chat answers a student message. lessonContext carries the module title,
// lesson title, and lesson content; history is the prior transcript in
// order. Returns a fallback apology on provider failure.
func (s *Service) Chat(ctx context.Context, message, lessonContext string, history []Turn) string {
	ctx = llm.WithPurpose(ctx, llm.PurposeChat)

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		role := llm.RoleUser
		if t.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	req := llm.Request{
		System:      buildChatSystemPrompt(lessonContext),
		Messages:    msgs,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return chatFallback
	}
	return decodeText(resp.Content)
}

// ValidateCode runs the student's code through a simulated interpreter.
// Never fails: provider errors yield a fixed invalid verdict.
func (s *Service) ValidateCode(ctx context.Context, task, code string) Validation {
	ctx = llm.WithPurpose(ctx, llm.PurposeCodeValidation)

	req := llm.Request{
		System: validateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildValidateUserMessage(task, code)},
		},
		Schema:      ValidationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fallbackValidation()
	}

	var v Validation
	if err := json.Unmarshal(resp.Content, &v); err != nil {
		return fallbackValidation()
	}
	return v
}

// GenerateQuiz produces one multiple-choice question from lesson content.
// Returns nil when the provider fails or the result is unusable.
func (s *Service) GenerateQuiz(ctx context.Context, lessonContent string) *Quiz {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGeneration)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(lessonContent)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil
	}

	var q Quiz
	if err := json.Unmarshal(resp.Content, &q); err != nil {
		return nil
	}
	if q.Question == "" || len(q.Options) < 2 {
		return nil
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return nil
	}
	return &q
}

func fallbackValidation() Validation {
	return Validation{
		Valid:         false,
		Feedback:      validateFallbackMsg,
		ConsoleOutput: validateFallbackShell,
	}
}

// decodeText unwraps a schemaless response. Providers wrap plain text as a
// JSON string; raw content is passed through as-is.
func decodeText(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return strings.TrimSpace(string(raw))
}
