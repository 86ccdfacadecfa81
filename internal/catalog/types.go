package catalog

// Level is the proficiency level of a track. Levels are ordered:
// Junior < Middle < Senior.
type Level int

const (
	LevelJunior Level = iota
	LevelMiddle
	LevelSenior
)

// String returns the display name of the level.
func (l Level) String() string {
	switch l {
	case LevelJunior:
		return "Junior"
	case LevelMiddle:
		return "Middle"
	case LevelSenior:
		return "Senior"
	default:
		return "Junior"
	}
}

// Difficulty tags a module or challenge.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Principiante"
	DifficultyIntermediate Difficulty = "Intermedio"
	DifficultyAdvanced     Difficulty = "Avanzado"
)

// LessonType discriminates the four lesson kinds and keys the content union:
// theory/code/quiz lessons carry a markdown Body, flashcard lessons carry Cards.
type LessonType string

const (
	TypeTheory    LessonType = "theory"
	TypeCode      LessonType = "code"
	TypeQuiz      LessonType = "quiz"
	TypeFlashcard LessonType = "flashcard"
)

// Origin marks where a lesson came from. It replaces the fragile id-prefix
// convention: completion routing and history grouping consult this field only.
type Origin string

const (
	OriginCatalog  Origin = "catalog"
	OriginPractice Origin = "practice"
)

// Card is a single flashcard: question on the front, answer on the back.
type Card struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Lesson is the atomic learning unit. Immutable once authored.
// Exactly one of Body or Cards is populated, keyed by Type.
type Lesson struct {
	ID     string
	Title  string
	Type   LessonType
	XP     int
	Origin Origin

	// Body is markdown-like prose with fenced code blocks.
	// Set for theory, code, and quiz lessons.
	Body string

	// Cards is the flashcard deck. Set for flashcard lessons only.
	Cards []Card
}

// Module is an ordered group of lessons. Lessons are consumed in slice order
// for next-step resolution.
type Module struct {
	ID          string
	Title       string
	Description string
	Difficulty  Difficulty
	Lessons     []Lesson
}

// Track is a top-level curriculum grouping tagged with a proficiency level.
type Track struct {
	ID          string
	Title       string
	Level       Level
	Description string
	Icon        string
	Modules     []Module
}

// Challenge is a standalone practice exercise. It is converted on demand into
// a code-type Lesson via ChallengeLesson.
type Challenge struct {
	ID          string
	Title       string
	Description string
	Difficulty  Difficulty
	XP          int
	Task        string
	InitialCode string
}

// SnippetCategory groups cheatsheet snippets.
type SnippetCategory string

const (
	SnippetFields  SnippetCategory = "Fields"
	SnippetMethods SnippetCategory = "Methods"
	SnippetORM     SnippetCategory = "ORM"
	SnippetXML     SnippetCategory = "XML"
)

// Snippet is a cheatsheet entry that can be inserted into the code editor.
type Snippet struct {
	Label    string
	Category SnippetCategory
	Code     string
}

// Catalog is the full static curriculum: tracks plus standalone challenges.
// Loaded once at startup, never mutated.
type Catalog struct {
	Tracks     []Track
	Challenges []Challenge
}
