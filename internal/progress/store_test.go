package progress

import (
	"context"
	"testing"

	"github.com/abhisek/odootrail/internal/catalog"
)

type memRepo struct {
	data    map[string]any
	saves   int
	loadErr error
	saveErr error
}

func (m *memRepo) Load(ctx context.Context) (map[string]any, bool, error) {
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	if m.data == nil {
		return nil, false, nil
	}
	return m.data, true, nil
}

func (m *memRepo) Save(ctx context.Context, data map[string]any) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = data
	m.saves++
	return nil
}

func (m *memRepo) Clear(ctx context.Context) error {
	m.data = nil
	return nil
}

type memSink struct {
	completions []Completion
	unlocks     []BadgeUnlock
}

func (m *memSink) RecordCompletion(ctx context.Context, c Completion) error {
	m.completions = append(m.completions, c)
	return nil
}

func (m *memSink) RecordBadge(ctx context.Context, b BadgeUnlock) error {
	m.unlocks = append(m.unlocks, b)
	return nil
}

func codeLesson(id string, xp int) catalog.Lesson {
	return catalog.Lesson{ID: id, Title: id, Type: catalog.TypeCode, XP: xp, Origin: catalog.OriginCatalog}
}

func TestLoadZeroState(t *testing.T) {
	s := New(&memRepo{}, nil)
	p := s.Load(context.Background())
	if p.TotalXP != 0 || p.StreakDays != 1 {
		t.Errorf("zero state = %+v", p)
	}
	if len(p.CompletedLessonIDs) != 0 || len(p.UnlockedBadges) != 0 {
		t.Errorf("zero state not empty: %+v", p)
	}
	if p.CurrentTrackID != "track-jr" {
		t.Errorf("current track = %q, want track-jr", p.CurrentTrackID)
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	cases := []map[string]any{
		{"totalXP": "not a number"},
		{"totalXP": -10.0, "streakDays": 1.0},
		{"completedLessonIds": []any{"les-0-1", "les-0-1"}},
	}
	for _, data := range cases {
		s := New(&memRepo{data: data}, nil)
		p := s.Load(context.Background())
		if p.TotalXP != 0 || len(p.CompletedLessonIDs) != 0 {
			t.Errorf("data %v did not fall back to zero state: %+v", data, p)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	repo := &memRepo{}
	s := New(repo, nil)
	s.Load(context.Background())
	if _, err := s.Complete(context.Background(), codeLesson("les-0-1", 20)); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	again := New(repo, nil)
	p := again.Load(context.Background())
	if p.TotalXP != 20 || !p.HasCompleted("les-0-1") {
		t.Errorf("reloaded state = %+v", p)
	}
}

func TestCompleteIdempotent(t *testing.T) {
	repo := &memRepo{}
	s := New(repo, nil)
	s.Load(context.Background())

	first, err := s.Complete(context.Background(), codeLesson("les-0-1", 20))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if first.AlreadyDone || first.XPAwarded != 20 {
		t.Errorf("first completion = %+v", first)
	}
	savesAfterFirst := repo.saves

	second, err := s.Complete(context.Background(), codeLesson("les-0-1", 20))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !second.AlreadyDone || second.XPAwarded != 0 {
		t.Errorf("repeat completion = %+v", second)
	}
	if second.Progress.TotalXP != 20 || len(second.Progress.CompletedLessonIDs) != 1 {
		t.Errorf("repeat mutated state: %+v", second.Progress)
	}
	if repo.saves != savesAfterFirst {
		t.Error("no-op completion wrote to the repo")
	}
}

func TestCompleteUnlocksFirstLessonBadge(t *testing.T) {
	s := New(&memRepo{}, nil)
	s.Load(context.Background())
	res, err := s.Complete(context.Background(), codeLesson("les-0-1", 20))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(res.NewBadges) != 1 || res.NewBadges[0].ID != "badge-hello" {
		t.Errorf("new badges = %+v, want badge-hello", res.NewBadges)
	}
	if !res.Progress.HasBadge("badge-hello") {
		t.Error("badge missing from progress")
	}
}

func TestCompleteXPThresholdSamePass(t *testing.T) {
	// Crossing 500 XP in the same update that adds a lesson must unlock
	// badge-junior in that pass, not one completion later.
	repo := &memRepo{data: map[string]any{
		"currentTrackId":     "track-jr",
		"completedLessonIds": []any{"a", "b", "c"},
		"totalXP":            480.0,
		"streakDays":         1.0,
		"unlockedBadges":     []any{"badge-hello"},
	}}
	s := New(repo, nil)
	s.Load(context.Background())

	res, err := s.Complete(context.Background(), codeLesson("les-0-1", 20))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.Progress.TotalXP != 500 {
		t.Fatalf("total xp = %d, want 500", res.Progress.TotalXP)
	}
	if len(res.NewBadges) != 1 || res.NewBadges[0].ID != "badge-junior" {
		t.Errorf("new badges = %+v, want badge-junior", res.NewBadges)
	}
}

func TestCompleteRecordsEvents(t *testing.T) {
	sink := &memSink{}
	s := New(&memRepo{}, sink)
	s.Load(context.Background())

	lesson := catalog.Lesson{ID: "chal-singleton", Title: "Debug: Singleton Error",
		Type: catalog.TypeCode, XP: 50, Origin: catalog.OriginPractice}
	if _, err := s.Complete(context.Background(), lesson); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if len(sink.completions) != 1 {
		t.Fatalf("completions = %d, want 1", len(sink.completions))
	}
	c := sink.completions[0]
	if c.LessonID != "chal-singleton" || c.Origin != catalog.OriginPractice || c.XPAwarded != 50 || c.TotalXP != 50 {
		t.Errorf("completion event = %+v", c)
	}
	if len(sink.unlocks) != 1 || sink.unlocks[0].BadgeID != "badge-hello" {
		t.Errorf("badge events = %+v", sink.unlocks)
	}
	if c.SessionID == "" || sink.unlocks[0].SessionID != c.SessionID {
		t.Error("events not tied to one session id")
	}
}

func TestBadgesNeverRevoked(t *testing.T) {
	repo := &memRepo{data: map[string]any{
		"currentTrackId":     "track-jr",
		"completedLessonIds": []any{"a"},
		"totalXP":            10.0,
		"streakDays":         1.0,
		"unlockedBadges":     []any{"badge-streak-3"},
	}}
	s := New(repo, nil)
	p := s.Load(context.Background())
	if !p.HasBadge("badge-streak-3") {
		t.Fatal("badge lost on load")
	}
	res, err := s.Complete(context.Background(), codeLesson("b", 10))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !res.Progress.HasBadge("badge-streak-3") {
		t.Error("badge lost on completion")
	}
}

func TestSetCurrentTrack(t *testing.T) {
	repo := &memRepo{}
	s := New(repo, nil)
	s.Load(context.Background())
	if err := s.SetCurrentTrack(context.Background(), "track-mid"); err != nil {
		t.Fatalf("SetCurrentTrack: %v", err)
	}
	if s.Current().CurrentTrackID != "track-mid" {
		t.Errorf("track = %q", s.Current().CurrentTrackID)
	}
	saves := repo.saves
	if err := s.SetCurrentTrack(context.Background(), "track-mid"); err != nil {
		t.Fatalf("SetCurrentTrack: %v", err)
	}
	if repo.saves != saves {
		t.Error("unchanged track wrote to the repo")
	}
}

func TestReset(t *testing.T) {
	repo := &memRepo{}
	s := New(repo, nil)
	s.Load(context.Background())
	if _, err := s.Complete(context.Background(), codeLesson("les-0-1", 20)); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if err := s.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if s.Current().TotalXP != 0 || len(s.Current().CompletedLessonIDs) != 0 {
		t.Errorf("state after reset = %+v", s.Current())
	}
	if repo.data != nil {
		t.Error("repo still holds a snapshot after reset")
	}
}
