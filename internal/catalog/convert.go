package catalog

import (
	"fmt"
	"strings"
)

// ChallengeLesson converts a practice challenge into a code lesson so the
// lesson session can run it unchanged. The derived body is deterministic:
// same challenge in, same markdown out.
func ChallengeLesson(c Challenge) Lesson {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	fmt.Fprintf(&b, "### Misión:\n%s\n\n", c.Task)
	fmt.Fprintf(&b, "### Descripción:\n%s\n\n", c.Description)
	fmt.Fprintf(&b, "```python\n%s\n```", c.InitialCode)

	return Lesson{
		ID:     c.ID,
		Title:  c.Title,
		Type:   TypeCode,
		XP:     c.XP,
		Origin: OriginPractice,
		Body:   b.String(),
	}
}
