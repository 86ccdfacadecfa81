package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		unlocked map[string]bool
		want     []string
	}{
		{
			name:     "zero state",
			stats:    Stats{StreakDays: 1},
			unlocked: map[string]bool{},
			want:     nil,
		},
		{
			name: "first lesson",
			stats: Stats{
				LessonsCompleted: 1,
				TotalXP:          20,
				StreakDays:       1,
				Completed:        map[string]bool{"les-0-1": true},
			},
			unlocked: map[string]bool{},
			want:     []string{"badge-hello"},
		},
		{
			name:     "xp threshold exact",
			stats:    Stats{LessonsCompleted: 8, TotalXP: 500, StreakDays: 1},
			unlocked: map[string]bool{"badge-hello": true},
			want:     []string{"badge-junior"},
		},
		{
			name: "specific lesson",
			stats: Stats{
				LessonsCompleted: 5,
				TotalXP:          200,
				StreakDays:       1,
				Completed:        map[string]bool{"les-2-2": true},
			},
			unlocked: map[string]bool{"badge-hello": true},
			want:     []string{"badge-orm"},
		},
		{
			name: "multiple at once",
			stats: Stats{
				LessonsCompleted: 1,
				TotalXP:          600,
				StreakDays:       3,
				Completed:        map[string]bool{"les-6-2": true},
			},
			unlocked: map[string]bool{},
			want:     []string{"badge-hello", "badge-streak-3", "badge-junior", "badge-owl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.stats, tt.unlocked)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateNeverRepeats(t *testing.T) {
	s := Stats{LessonsCompleted: 10, TotalXP: 900, StreakDays: 5,
		Completed: map[string]bool{"les-2-2": true, "les-6-2": true}}
	unlocked := map[string]bool{}
	for _, id := range Evaluate(s, unlocked) {
		unlocked[id] = true
	}
	assert.Empty(t, Evaluate(s, unlocked), "second pass must unlock nothing")
}

func TestEvaluateMonotonic(t *testing.T) {
	// A badge stays unlocked even if the stats fall below its threshold.
	unlocked := map[string]bool{"badge-streak-3": true}
	got := Evaluate(Stats{StreakDays: 1}, unlocked)
	assert.NotContains(t, got, "badge-streak-3")
	assert.True(t, unlocked["badge-streak-3"], "held badge mutated")
}

func TestFind(t *testing.T) {
	b, ok := Find("badge-owl")
	require.True(t, ok)
	assert.Equal(t, "Piloto OWL", b.Title)

	_, ok = Find("badge-nope")
	assert.False(t, ok)
}
