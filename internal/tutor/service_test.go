package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/odootrail/internal/llm"
)

func TestChatSendsTranscriptAndContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"Un campo Many2one apunta a otro modelo."`)},
	)
	svc := NewService(mock, DefaultConfig())

	history := []Turn{
		{Role: RoleUser, Text: "¿Qué es un modelo?"},
		{Role: RoleAssistant, Text: "Es una clase Python persistida."},
	}
	got := svc.Chat(context.Background(), "¿Y un Many2one?",
		"Módulo: Fase 2. Lección: Campos Relacionales. Contenido: ...", history)

	if got != "Un campo Many2one apunta a otro modelo." {
		t.Errorf("Chat() = %q", got)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, "OdooBot") {
		t.Error("system prompt missing tutor persona")
	}
	if !strings.Contains(req.System, "Campos Relacionales") {
		t.Error("system prompt missing lesson context")
	}
	if len(req.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(req.Messages))
	}
	if req.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("history role = %s, want assistant", req.Messages[1].Role)
	}
	if req.Messages[2].Content != "¿Y un Many2one?" {
		t.Errorf("last message = %q", req.Messages[2].Content)
	}
}

func TestChatFallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(mock, DefaultConfig())

	got := svc.Chat(context.Background(), "hola", "ctx", nil)
	if got != chatFallback {
		t.Errorf("Chat() = %q, want fallback", got)
	}
}

func TestValidateCode(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(
			`{"valid":true,"feedback":"¡Bien hecho!","consoleOutput":"INFO: odoo.modules.loading: loading 1 modules..."}`,
		)},
	)
	svc := NewService(mock, DefaultConfig())

	v := svc.ValidateCode(context.Background(), "Itera sobre self", "for rec in self:\n    pass")
	if !v.Valid || v.Feedback != "¡Bien hecho!" {
		t.Errorf("ValidateCode() = %+v", v)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "code-validation" {
		t.Error("validation schema not attached")
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, "Itera sobre self") || !strings.Contains(user, "for rec in self:") {
		t.Errorf("user message missing task or code:\n%s", user)
	}
}

func TestValidateCodeFallback(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(mock, DefaultConfig())

	v := svc.ValidateCode(context.Background(), "t", "c")
	if v.Valid {
		t.Error("fallback verdict must be invalid")
	}
	if v.Feedback != validateFallbackMsg || v.ConsoleOutput != validateFallbackShell {
		t.Errorf("fallback = %+v", v)
	}
}

func TestGenerateQuiz(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(
			`{"question":"¿Qué atributo define el nombre técnico?","options":["_name","_inherit","_description"],"correctIndex":0,"explanation":"_name define el nombre técnico del modelo."}`,
		)},
	)
	svc := NewService(mock, DefaultConfig())

	q := svc.GenerateQuiz(context.Background(), "contenido de la lección")
	if q == nil {
		t.Fatal("expected a quiz")
	}
	if q.CorrectIndex != 0 || len(q.Options) != 3 {
		t.Errorf("quiz = %+v", q)
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "quiz-question" {
		t.Error("quiz schema not attached")
	}
}

func TestGenerateQuizTruncatesContent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(
			`{"question":"q","options":["a","b"],"correctIndex":1,"explanation":"e"}`,
		)},
	)
	svc := NewService(mock, DefaultConfig())

	long := strings.Repeat("á", 2000)
	if svc.GenerateQuiz(context.Background(), long) == nil {
		t.Fatal("expected a quiz")
	}
	user := mock.Calls[0].Messages[0].Content
	if len(user) > 1500 {
		t.Errorf("prompt not truncated: %d bytes", len(user))
	}
	if !strings.Contains(user, "á") {
		t.Error("excerpt lost content")
	}
}

func TestGenerateQuizRejectsUnusable(t *testing.T) {
	cases := []string{
		`{"question":"q","options":["solo una"],"correctIndex":0,"explanation":"e"}`,
		`{"question":"q","options":["a","b"],"correctIndex":5,"explanation":"e"}`,
		`{"question":"q","options":["a","b"],"correctIndex":-1,"explanation":"e"}`,
		`{"question":"","options":["a","b"],"correctIndex":0,"explanation":"e"}`,
	}
	for _, raw := range cases {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
		svc := NewService(mock, DefaultConfig())
		if q := svc.GenerateQuiz(context.Background(), "c"); q != nil {
			t.Errorf("accepted unusable quiz %s: %+v", raw, q)
		}
	}
}

func TestGenerateQuizNilOnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)
	svc := NewService(mock, DefaultConfig())
	if q := svc.GenerateQuiz(context.Background(), "c"); q != nil {
		t.Errorf("expected nil quiz, got %+v", q)
	}
}
