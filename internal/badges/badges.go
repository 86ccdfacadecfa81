// Package badges defines the achievement catalog and its evaluator. Unlock
// conditions are data, not closures, so they can be listed, rendered, and
// tested without running them.
package badges

// ConditionKind discriminates the supported unlock conditions.
type ConditionKind string

const (
	// CondLessonCount unlocks once at least Threshold lessons are completed.
	CondLessonCount ConditionKind = "lesson-count"
	// CondXP unlocks once total XP reaches Threshold.
	CondXP ConditionKind = "xp"
	// CondStreak unlocks once the streak reaches Threshold days.
	CondStreak ConditionKind = "streak"
	// CondLesson unlocks when the lesson named by LessonID is completed.
	CondLesson ConditionKind = "lesson"
)

// Condition is one unlock predicate.
type Condition struct {
	Kind      ConditionKind
	Threshold int
	LessonID  string
}

// Badge is a static achievement definition.
type Badge struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Condition   Condition
}

// Stats is the progress snapshot a condition is evaluated against.
type Stats struct {
	LessonsCompleted int
	TotalXP          int
	StreakDays       int
	Completed        map[string]bool
}

// All is the badge catalog in display order.
var All = []Badge{
	{
		ID:          "badge-hello",
		Title:       "Hola Mundo",
		Description: "Completa tu primera lección",
		Icon:        "🚀",
		Condition:   Condition{Kind: CondLessonCount, Threshold: 1},
	},
	{
		ID:          "badge-streak-3",
		Title:       "Constancia",
		Description: "Mantén una racha de 3 días",
		Icon:        "🔥",
		Condition:   Condition{Kind: CondStreak, Threshold: 3},
	},
	{
		ID:          "badge-junior",
		Title:       "Dev Junior",
		Description: "Alcanza 500 XP",
		Icon:        "🎓",
		Condition:   Condition{Kind: CondXP, Threshold: 500},
	},
	{
		ID:          "badge-orm",
		Title:       "Maestro ORM",
		Description: "Domina los campos computados",
		Icon:        "🗃️",
		Condition:   Condition{Kind: CondLesson, LessonID: "les-2-2"},
	},
	{
		ID:          "badge-owl",
		Title:       "Piloto OWL",
		Description: "Crea tu primer componente frontend",
		Icon:        "🦉",
		Condition:   Condition{Kind: CondLesson, LessonID: "les-6-2"},
	},
}

// Find returns the badge with the given id.
func Find(id string) (Badge, bool) {
	for _, b := range All {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Met reports whether the condition holds for the given stats.
func (c Condition) Met(s Stats) bool {
	switch c.Kind {
	case CondLessonCount:
		return s.LessonsCompleted >= c.Threshold
	case CondXP:
		return s.TotalXP >= c.Threshold
	case CondStreak:
		return s.StreakDays >= c.Threshold
	case CondLesson:
		return s.Completed[c.LessonID]
	default:
		return false
	}
}

// Evaluate returns the ids of badges newly unlocked by the given stats, in
// catalog order. Already-unlocked badges are never returned again and never
// re-locked, whatever the stats say.
func Evaluate(s Stats, unlocked map[string]bool) []string {
	var fresh []string
	for _, b := range All {
		if unlocked[b.ID] {
			continue
		}
		if b.Condition.Met(s) {
			fresh = append(fresh, b.ID)
		}
	}
	return fresh
}
