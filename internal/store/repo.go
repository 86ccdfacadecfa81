package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressRepo persists the single learner progress aggregate as one JSON
// document under a fixed record key. Save is a full overwrite.
type ProgressRepo interface {
	Load(ctx context.Context) (map[string]any, bool, error)
	Save(ctx context.Context, data map[string]any) error
	Clear(ctx context.Context) error
}

// CompletionEventData captures one lesson or challenge completion.
type CompletionEventData struct {
	SessionID   string
	LessonID    string
	LessonTitle string
	Origin      string
	XPAwarded   int
	TotalXP     int
}

// CompletionEvent is a stored completion with its log position.
type CompletionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	CompletionEventData
}

// BadgeEventData captures one badge unlock.
type BadgeEventData struct {
	SessionID  string
	BadgeID    string
	BadgeTitle string
	Reason     string
}

// BadgeEvent is a stored badge unlock with its log position.
type BadgeEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	BadgeEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request with its log position.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM token usage per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events. Appends
// share one global sequence so ordering holds across event types.
type EventRepo interface {
	// AppendCompletion records a first-time lesson completion.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// AppendBadge records a badge unlock.
	AppendBadge(ctx context.Context, data BadgeEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryCompletions returns completions in descending sequence order.
	QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEvent, error)

	// QueryBadges returns badge unlocks in descending sequence order.
	QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeEvent, error)

	// QueryLLMEvents returns LLM events in descending sequence order.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by row id, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
