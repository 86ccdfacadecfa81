// Package progress owns the single mutable user aggregate: completed
// lessons, XP, streak, and unlocked badges. All mutation flows through
// Store.Complete so badge evaluation and persistence can never be skipped.
package progress

import (
	"github.com/abhisek/odootrail/internal/catalog"
)

// UserProgress is the persisted aggregate. JSON tags match the stored record
// so old snapshots keep loading.
type UserProgress struct {
	CurrentTrackID     string   `json:"currentTrackId"`
	CompletedLessonIDs []string `json:"completedLessonIds"`
	TotalXP            int      `json:"totalXP"`
	StreakDays         int      `json:"streakDays"`
	UnlockedBadges     []string `json:"unlockedBadges"`
}

// Zero returns the starting state for a fresh user: nothing completed, no
// XP, a one-day streak, and the current track pointing at the first track.
func Zero() UserProgress {
	trackID := ""
	if ts := catalog.Curriculum().Tracks; len(ts) > 0 {
		trackID = ts[0].ID
	}
	return UserProgress{
		CurrentTrackID:     trackID,
		CompletedLessonIDs: []string{},
		TotalXP:            0,
		StreakDays:         1,
		UnlockedBadges:     []string{},
	}
}

// Completed returns the completed lesson ids as a set.
func (p UserProgress) Completed() map[string]bool {
	set := make(map[string]bool, len(p.CompletedLessonIDs))
	for _, id := range p.CompletedLessonIDs {
		set[id] = true
	}
	return set
}

// HasCompleted reports whether the lesson id is in the completed set.
func (p UserProgress) HasCompleted(lessonID string) bool {
	for _, id := range p.CompletedLessonIDs {
		if id == lessonID {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge id is unlocked.
func (p UserProgress) HasBadge(badgeID string) bool {
	for _, id := range p.UnlockedBadges {
		if id == badgeID {
			return true
		}
	}
	return false
}

// Badges returns the unlocked badge ids as a set.
func (p UserProgress) Badges() map[string]bool {
	set := make(map[string]bool, len(p.UnlockedBadges))
	for _, id := range p.UnlockedBadges {
		set[id] = true
	}
	return set
}

// valid rejects snapshots that would corrupt downstream invariants. Loading
// falls back to the zero state when this fails.
func (p UserProgress) valid() bool {
	if p.TotalXP < 0 || p.StreakDays < 0 {
		return false
	}
	seen := map[string]bool{}
	for _, id := range p.CompletedLessonIDs {
		if id == "" || seen[id] {
			return false
		}
		seen[id] = true
	}
	seen = map[string]bool{}
	for _, id := range p.UnlockedBadges {
		if id == "" || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}
