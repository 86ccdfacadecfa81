package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/odootrail/internal/badges"
	"github.com/abhisek/odootrail/internal/catalog"
	"github.com/abhisek/odootrail/internal/ui/components"
	"github.com/abhisek/odootrail/internal/ui/theme"
)

func (d *DashboardScreen) View(width, height int) string {
	cur := d.prog.Current()
	completed := cur.Completed()

	var lines []string
	selectedLine := 0

	// Hero line: the next unfinished step, or the course-complete note.
	if step := catalog.Resolve(catalog.Curriculum(), completed); step != nil {
		hero := fmt.Sprintf("Siguiente paso: %s  ·  %s", step.Lesson.Title, step.Module.Title)
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(hero), "")
	} else {
		lines = append(lines, "  "+theme.Correct.Render("¡Curso completado! 🎉"), "")
	}

	var lastTrack, lastModule string
	for i, r := range d.rows {
		if r.track.ID != lastTrack {
			lastTrack = r.track.ID
			lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render(fmt.Sprintf("%s %s", r.track.Icon, r.track.Title))+
				theme.Hint.Render("  "+r.track.Level.String()))
		}
		if r.module.ID != lastModule {
			lastModule = r.module.ID
			done, total := catalog.ModuleProgress(r.module, completed)
			bar := components.NewProgressBar("", float64(done)/float64(total), false, 20)
			lines = append(lines, "    "+theme.Body.Bold(true).Render(r.module.Title)+
				"  "+bar.View()+theme.Hint.Render(fmt.Sprintf(" %d/%d", done, total)))
		}

		marker := "  "
		style := theme.Unselected
		if i == d.selected {
			marker = "▸ "
			style = theme.Selected
			selectedLine = len(lines)
		}

		status := "·"
		if completed[r.lesson.ID] {
			status = theme.Correct.Render("✓")
		}
		label := fmt.Sprintf("%s%s %s", marker, status, r.lesson.Title)
		xp := theme.Hint.Render(fmt.Sprintf(" %d XP", r.lesson.XP))
		lines = append(lines, "      "+style.Render(label)+xp)
	}

	lines = append(lines, "", "  "+d.renderBadges(cur.UnlockedBadges))

	// Keep the cursor inside the visible window.
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	if selectedLine < d.offset {
		d.offset = selectedLine
	}
	if selectedLine >= d.offset+visible {
		d.offset = selectedLine - visible + 1
	}
	end := d.offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[d.offset:end], "\n")
}

func (d *DashboardScreen) renderBadges(unlockedIDs []string) string {
	unlocked := make(map[string]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	var parts []string
	for _, b := range badges.All {
		if unlocked[b.ID] {
			parts = append(parts, b.Icon+" "+b.Title)
		} else {
			parts = append(parts, theme.Hint.Render("🔒 "+b.Title))
		}
	}
	return theme.Hint.Render("Insignias:  ") + strings.Join(parts, "   ")
}
