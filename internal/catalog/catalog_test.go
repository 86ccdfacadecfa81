package catalog

import (
	"strings"
	"testing"
)

func TestCurriculumIDsUnique(t *testing.T) {
	c := Curriculum()
	seen := map[string]bool{}
	check := func(kind, id string) {
		if id == "" {
			t.Errorf("%s with empty id", kind)
		}
		if seen[id] {
			t.Errorf("duplicate id %q (%s)", id, kind)
		}
		seen[id] = true
	}
	for _, tr := range c.Tracks {
		check("track", tr.ID)
		for _, m := range tr.Modules {
			check("module", m.ID)
			for _, l := range m.Lessons {
				check("lesson", l.ID)
			}
		}
	}
	for _, ch := range c.Challenges {
		check("challenge", ch.ID)
	}
}

func TestCurriculumContentUnion(t *testing.T) {
	for _, l := range Curriculum().Lessons() {
		switch l.Type {
		case TypeFlashcard:
			if len(l.Cards) == 0 {
				t.Errorf("flashcard lesson %s has no cards", l.ID)
			}
			if l.Body != "" {
				t.Errorf("flashcard lesson %s carries a body", l.ID)
			}
			for i, card := range l.Cards {
				if card.Question == "" || card.Answer == "" {
					t.Errorf("lesson %s card %d incomplete", l.ID, i)
				}
			}
		case TypeTheory, TypeCode, TypeQuiz:
			if l.Body == "" {
				t.Errorf("%s lesson %s has empty body", l.Type, l.ID)
			}
			if len(l.Cards) != 0 {
				t.Errorf("%s lesson %s carries cards", l.Type, l.ID)
			}
		default:
			t.Errorf("lesson %s has unknown type %q", l.ID, l.Type)
		}
		if l.XP <= 0 {
			t.Errorf("lesson %s has non-positive xp %d", l.ID, l.XP)
		}
		if l.Origin != OriginCatalog {
			t.Errorf("catalog lesson %s has origin %q", l.ID, l.Origin)
		}
	}
}

func TestCurriculumTotals(t *testing.T) {
	c := Curriculum()
	if got := len(c.Lessons()); got != 18 {
		t.Errorf("lesson count = %d, want 18", got)
	}
	if got := c.TotalXP(); got != 1000 {
		t.Errorf("total xp = %d, want 1000", got)
	}
	if len(c.Challenges) != 3 {
		t.Errorf("challenge count = %d, want 3", len(c.Challenges))
	}
}

func TestResolveZeroState(t *testing.T) {
	step := Resolve(Curriculum(), map[string]bool{})
	if step == nil {
		t.Fatal("expected a step for zero state")
	}
	if step.Lesson.ID != "les-0-1" {
		t.Errorf("first lesson = %s, want les-0-1", step.Lesson.ID)
	}
	if step.Track.ID != "track-jr" || step.Module.ID != "mod-f0" {
		t.Errorf("step located in %s/%s, want track-jr/mod-f0", step.Track.ID, step.Module.ID)
	}
}

func TestResolveSkipsCompleted(t *testing.T) {
	completed := map[string]bool{"les-0-1": true, "les-0-2": true}
	step := Resolve(Curriculum(), completed)
	if step == nil {
		t.Fatal("expected a step")
	}
	if step.Lesson.ID != "les-1-1" {
		t.Errorf("next lesson = %s, want les-1-1", step.Lesson.ID)
	}
	if step.Module.ID != "mod-f1" {
		t.Errorf("next module = %s, want mod-f1", step.Module.ID)
	}
}

func TestResolveGapsResumeInOrder(t *testing.T) {
	// Completing a later lesson out of order must not hide the earlier gap.
	completed := map[string]bool{"les-0-1": true, "les-1-2": true}
	step := Resolve(Curriculum(), completed)
	if step == nil || step.Lesson.ID != "les-0-2" {
		t.Fatalf("expected les-0-2, got %+v", step)
	}
}

func TestResolveIgnoresChallenges(t *testing.T) {
	completed := map[string]bool{"chal-singleton": true}
	step := Resolve(Curriculum(), completed)
	if step == nil || step.Lesson.ID != "les-0-1" {
		t.Fatalf("challenge completion must not advance the step, got %+v", step)
	}
}

func TestResolveAllDone(t *testing.T) {
	completed := map[string]bool{}
	for _, l := range Curriculum().Lessons() {
		completed[l.ID] = true
	}
	if step := Resolve(Curriculum(), completed); step != nil {
		t.Errorf("expected nil step when everything is done, got %s", step.Lesson.ID)
	}
}

func TestChallengeLesson(t *testing.T) {
	ch := Challenge{
		ID:          "chal-x",
		Title:       "Debug: Algo",
		Description: "Arregla el bug.",
		Difficulty:  DifficultyBeginner,
		XP:          50,
		Task:        "Corrige el método.",
		InitialCode: "def broken(self):\n    pass",
	}
	l := ChallengeLesson(ch)
	if l.ID != ch.ID || l.Title != ch.Title || l.XP != ch.XP {
		t.Errorf("identity fields not carried over: %+v", l)
	}
	if l.Type != TypeCode {
		t.Errorf("type = %s, want code", l.Type)
	}
	if l.Origin != OriginPractice {
		t.Errorf("origin = %s, want practice", l.Origin)
	}
	for _, want := range []string{
		"# Debug: Algo",
		"### Misión:\nCorrige el método.",
		"### Descripción:\nArregla el bug.",
		"```python\ndef broken(self):\n    pass\n```",
	} {
		if !strings.Contains(l.Body, want) {
			t.Errorf("body missing %q\nbody:\n%s", want, l.Body)
		}
	}
	// Determinism.
	if again := ChallengeLesson(ch); again.Body != l.Body {
		t.Error("conversion is not deterministic")
	}
}

func TestFindLesson(t *testing.T) {
	c := Curriculum()
	if l, ok := c.FindLesson("les-2-2"); !ok || l.Title != "Campos Computados" {
		t.Errorf("FindLesson(les-2-2) = %+v, %v", l, ok)
	}
	if l, ok := c.FindLesson("chal-singleton"); !ok || l.Origin != OriginPractice || l.Type != TypeCode {
		t.Errorf("FindLesson(chal-singleton) = %+v, %v", l, ok)
	}
	if _, ok := c.FindLesson("nope"); ok {
		t.Error("FindLesson(nope) found something")
	}
}

func TestModuleProgress(t *testing.T) {
	tr, ok := Curriculum().FindTrack("track-jr")
	if !ok {
		t.Fatal("track-jr missing")
	}
	m := &tr.Modules[0]
	done, total := ModuleProgress(m, map[string]bool{"les-0-1": true})
	if done != 1 || total != 2 {
		t.Errorf("progress = %d/%d, want 1/2", done, total)
	}
}
