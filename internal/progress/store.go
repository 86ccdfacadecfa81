package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/odootrail/internal/badges"
	"github.com/abhisek/odootrail/internal/catalog"
)

// RecordRepo persists the progress aggregate as a single JSON document,
// overwritten in full on every save.
type RecordRepo interface {
	Load(ctx context.Context) (map[string]any, bool, error)
	Save(ctx context.Context, data map[string]any) error
	Clear(ctx context.Context) error
}

// Completion describes one lesson completion for the event log.
type Completion struct {
	SessionID   string
	LessonID    string
	LessonTitle string
	Origin      catalog.Origin
	XPAwarded   int
	TotalXP     int
}

// BadgeUnlock describes one badge unlock for the event log.
type BadgeUnlock struct {
	SessionID  string
	BadgeID    string
	BadgeTitle string
	Reason     string
}

// EventSink records completion and badge history. Sink failures are logged
// by the caller, never surfaced to the learner.
type EventSink interface {
	RecordCompletion(ctx context.Context, c Completion) error
	RecordBadge(ctx context.Context, b BadgeUnlock) error
}

// Result is the outcome of a Complete call.
type Result struct {
	Progress    UserProgress
	XPAwarded   int
	NewBadges   []badges.Badge
	AlreadyDone bool
}

// Store is the only writer of UserProgress. It is not safe for concurrent
// use; the event loop owns it.
type Store struct {
	repo      RecordRepo
	events    EventSink
	sessionID string
	cur       UserProgress
	loaded    bool
}

// New builds a Store over the given repo. events may be nil to disable
// history recording.
func New(repo RecordRepo, events EventSink) *Store {
	return &Store{
		repo:      repo,
		events:    events,
		sessionID: uuid.NewString(),
	}
}

// Current returns the in-memory aggregate. Load must run first; before that
// it returns the zero state.
func (s *Store) Current() UserProgress {
	if !s.loaded {
		return Zero()
	}
	return s.cur
}

// Load reads the persisted snapshot. A missing, unreadable, or malformed
// record falls back to the zero state rather than failing the session.
func (s *Store) Load(ctx context.Context) UserProgress {
	s.loaded = true
	s.cur = Zero()

	data, ok, err := s.repo.Load(ctx)
	if err != nil || !ok {
		return s.cur
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return s.cur
	}
	var p UserProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return s.cur
	}
	if p.CompletedLessonIDs == nil {
		p.CompletedLessonIDs = []string{}
	}
	if p.UnlockedBadges == nil {
		p.UnlockedBadges = []string{}
	}
	if !p.valid() {
		return s.cur
	}
	s.cur = p
	return s.cur
}

// Complete marks a lesson done and awards its XP. Completing an
// already-completed lesson is a no-op. Badge conditions are evaluated
// against the updated state in the same pass, and the new snapshot is
// persisted before Complete returns.
func (s *Store) Complete(ctx context.Context, l catalog.Lesson) (Result, error) {
	if !s.loaded {
		s.Load(ctx)
	}
	if s.cur.HasCompleted(l.ID) {
		return Result{Progress: s.cur, AlreadyDone: true}, nil
	}
	if l.XP < 0 {
		return Result{Progress: s.cur}, fmt.Errorf("progress: negative xp for lesson %s", l.ID)
	}

	next := s.cur
	next.CompletedLessonIDs = append(append([]string{}, next.CompletedLessonIDs...), l.ID)
	next.UnlockedBadges = append([]string{}, next.UnlockedBadges...)
	next.TotalXP += l.XP

	stats := badges.Stats{
		LessonsCompleted: len(next.CompletedLessonIDs),
		TotalXP:          next.TotalXP,
		StreakDays:       next.StreakDays,
		Completed:        next.Completed(),
	}
	var fresh []badges.Badge
	for _, id := range badges.Evaluate(stats, next.Badges()) {
		next.UnlockedBadges = append(next.UnlockedBadges, id)
		if b, ok := badges.Find(id); ok {
			fresh = append(fresh, b)
		}
	}

	s.cur = next
	res := Result{Progress: next, XPAwarded: l.XP, NewBadges: fresh}

	if err := s.Save(ctx); err != nil {
		return res, err
	}
	if s.events != nil {
		if err := s.events.RecordCompletion(ctx, Completion{
			SessionID:   s.sessionID,
			LessonID:    l.ID,
			LessonTitle: l.Title,
			Origin:      l.Origin,
			XPAwarded:   l.XP,
			TotalXP:     next.TotalXP,
		}); err != nil {
			return res, err
		}
		for _, b := range fresh {
			if err := s.events.RecordBadge(ctx, BadgeUnlock{
				SessionID:  s.sessionID,
				BadgeID:    b.ID,
				BadgeTitle: b.Title,
				Reason:     b.Description,
			}); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

// SetCurrentTrack updates the advisory track pointer and persists.
func (s *Store) SetCurrentTrack(ctx context.Context, trackID string) error {
	if !s.loaded {
		s.Load(ctx)
	}
	if s.cur.CurrentTrackID == trackID {
		return nil
	}
	s.cur.CurrentTrackID = trackID
	return s.Save(ctx)
}

// Save writes the full snapshot. Called after every mutation.
func (s *Store) Save(ctx context.Context) error {
	raw, err := json.Marshal(s.cur)
	if err != nil {
		return fmt.Errorf("progress: encode snapshot: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("progress: encode snapshot: %w", err)
	}
	return s.repo.Save(ctx, data)
}

// Reset wipes the persisted snapshot and returns to the zero state.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.cur = Zero()
	s.loaded = true
	return nil
}
