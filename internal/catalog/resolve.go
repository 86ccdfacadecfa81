package catalog

// Step is the recommended next unit of work: the first lesson, in declared
// track/module/lesson order, that the learner has not completed yet.
type Step struct {
	Track  *Track
	Module *Module
	Lesson *Lesson
}

// Resolve walks the catalog in declared order and returns the first lesson
// whose id is not in completed. It returns nil when every lesson is done.
// Completion of practice challenges never affects the result.
func Resolve(c *Catalog, completed map[string]bool) *Step {
	for ti := range c.Tracks {
		t := &c.Tracks[ti]
		for mi := range t.Modules {
			m := &t.Modules[mi]
			for li := range m.Lessons {
				l := &m.Lessons[li]
				if !completed[l.ID] {
					return &Step{Track: t, Module: m, Lesson: l}
				}
			}
		}
	}
	return nil
}

// Lessons returns every catalog lesson in declared order. Challenges are not
// included; they only become lessons through ChallengeLesson.
func (c *Catalog) Lessons() []Lesson {
	var out []Lesson
	for _, t := range c.Tracks {
		for _, m := range t.Modules {
			out = append(out, m.Lessons...)
		}
	}
	return out
}

// TotalXP is the sum of XP over all catalog lessons.
func (c *Catalog) TotalXP() int {
	total := 0
	for _, l := range c.Lessons() {
		total += l.XP
	}
	return total
}

// FindLesson looks a catalog lesson up by id. It checks tracks first, then
// falls back to converting a matching challenge.
func (c *Catalog) FindLesson(id string) (Lesson, bool) {
	for _, t := range c.Tracks {
		for _, m := range t.Modules {
			for _, l := range m.Lessons {
				if l.ID == id {
					return l, true
				}
			}
		}
	}
	for _, ch := range c.Challenges {
		if ch.ID == id {
			return ChallengeLesson(ch), true
		}
	}
	return Lesson{}, false
}

// FindTrack looks a track up by id.
func (c *Catalog) FindTrack(id string) (*Track, bool) {
	for i := range c.Tracks {
		if c.Tracks[i].ID == id {
			return &c.Tracks[i], true
		}
	}
	return nil, false
}

// ModuleProgress reports how many of the module's lessons are completed.
func ModuleProgress(m *Module, completed map[string]bool) (done, total int) {
	for _, l := range m.Lessons {
		if completed[l.ID] {
			done++
		}
	}
	return done, len(m.Lessons)
}
