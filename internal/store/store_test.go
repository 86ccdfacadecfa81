package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressRecordLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// Nothing stored yet.
	_, ok, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if ok {
		t.Fatal("expected no progress record")
	}

	// First save creates the record.
	first := map[string]any{"totalXP": 20.0, "streakDays": 1.0}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, ok, err := repo.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if data["totalXP"] != 20.0 {
		t.Errorf("totalXP = %v, want 20", data["totalXP"])
	}

	// Second save overwrites in full: dropped keys must not survive.
	if err := repo.Save(ctx, map[string]any{"totalXP": 70.0}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, _, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if data["totalXP"] != 70.0 {
		t.Errorf("totalXP = %v, want 70", data["totalXP"])
	}
	if _, present := data["streakDays"]; present {
		t.Error("stale key survived a full overwrite")
	}

	// Only one row exists regardless of save count.
	count, err := s.Client().ProgressRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("progress records = %d, want 1", count)
	}

	// Clear removes the record.
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := repo.Load(ctx); ok {
		t.Error("record still present after clear")
	}
	// Clearing an empty store is fine.
	if err := repo.Clear(ctx); err != nil {
		t.Errorf("clear (empty): %v", err)
	}
}

func TestCompletionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []CompletionEventData{
		{SessionID: "sess-1", LessonID: "les-0-1", LessonTitle: "Python para Odoo", Origin: "catalog", XPAwarded: 20, TotalXP: 20},
		{SessionID: "sess-1", LessonID: "chal-singleton", LessonTitle: "Debug: Singleton Error", Origin: "practice", XPAwarded: 50, TotalXP: 70},
	}
	for _, e := range events {
		if err := repo.AppendCompletion(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryCompletions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	// Descending sequence: newest first.
	if got[0].LessonID != "chal-singleton" || got[1].LessonID != "les-0-1" {
		t.Errorf("order = [%s %s]", got[0].LessonID, got[1].LessonID)
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("sequences not increasing: %d then %d", got[1].Sequence, got[0].Sequence)
	}
	if got[0].Origin != "practice" || got[0].TotalXP != 70 {
		t.Errorf("event data = %+v", got[0])
	}

	limited, err := repo.QueryCompletions(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].LessonID != "chal-singleton" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestBadgeEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendBadge(ctx, BadgeEventData{
		SessionID: "sess-1", BadgeID: "badge-hello", BadgeTitle: "Hola Mundo", Reason: "Completa tu primera lección",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.QueryBadges(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].BadgeID != "badge-hello" {
		t.Errorf("badges = %+v", got)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-flash", Purpose: "chat",
		InputTokens: 120, OutputTokens: 30, LatencyMs: 800, Success: true,
		RequestBody: "[user]\nhola", ResponseBody: `"¡Hola!"`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Purpose != "chat" || e.RequestBody != "[user]\nhola" {
		t.Errorf("event = %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-flash", Purpose: "chat", InputTokens: 100, OutputTokens: 20, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-flash", Purpose: "chat", InputTokens: 300, OutputTokens: 40, LatencyMs: 600, Success: true},
		{Provider: "gemini", Model: "gemini-flash", Purpose: "quiz-gen", InputTokens: 50, OutputTokens: 80, LatencyMs: 900, Success: true},
	}
	for _, e := range appends {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := map[string]PurposeUsage{}
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	chat := usage["chat"]
	if chat.Calls != 2 || chat.InputTokens != 400 || chat.OutputTokens != 60 {
		t.Errorf("chat usage = %+v", chat)
	}
	if chat.AvgLatencyMs != 500 {
		t.Errorf("chat avg latency = %d, want 500", chat.AvgLatencyMs)
	}
	if usage["quiz-gen"].Calls != 1 {
		t.Errorf("quiz-gen usage = %+v", usage["quiz-gen"])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 || byModel[0].InputTokens != 450 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendCompletion(ctx, CompletionEventData{SessionID: "s", LessonID: "les-0-1", Origin: "catalog", XPAwarded: 20, TotalXP: 20}); err != nil {
		t.Fatalf("append completion: %v", err)
	}
	if err := repo.AppendBadge(ctx, BadgeEventData{SessionID: "s", BadgeID: "badge-hello"}); err != nil {
		t.Fatalf("append badge: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock"}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	comps, _ := repo.QueryCompletions(ctx, QueryOpts{})
	badges, _ := repo.QueryBadges(ctx, QueryOpts{})
	llms, _ := repo.QueryLLMEvents(ctx, QueryOpts{})

	seqs := []int64{comps[0].Sequence, badges[0].Sequence, llms[0].Sequence}
	if !(seqs[0] < seqs[1] && seqs[1] < seqs[2]) {
		t.Errorf("sequences not globally ordered: %v", seqs)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"progress_records", "completion_events", "badge_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
