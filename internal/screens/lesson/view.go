package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/odootrail/internal/catalog"
	"github.com/abhisek/odootrail/internal/content"
	sess "github.com/abhisek/odootrail/internal/session"
	"github.com/abhisek/odootrail/internal/tutor"
	"github.com/abhisek/odootrail/internal/ui/theme"
)

func (l *LessonScreen) View(width, height int) string {
	if l.finished != nil {
		return l.renderFinished(width, height)
	}
	if l.snippetMenu {
		return l.renderSnippetMenu(width, height)
	}

	var b strings.Builder
	b.WriteString(l.renderTabBar(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	body := height - 3
	switch l.session.Tab() {
	case sess.TabPractice:
		b.WriteString(l.renderPractice(width, body))
	case sess.TabChat:
		b.WriteString(l.renderChat(width, body))
	default:
		b.WriteString(l.renderTheory(width, body))
	}
	return b.String()
}

func (l *LessonScreen) renderTabBar(width int) string {
	tabs := []struct {
		tab   sess.Tab
		label string
	}{
		{sess.TabTheory, "Teoría"},
		{sess.TabPractice, "Práctica"},
		{sess.TabChat, "OdooBot"},
	}

	var parts []string
	for _, t := range tabs {
		if t.tab == sess.TabPractice && l.session.Lesson().Type != catalog.TypeCode {
			continue
		}
		if t.tab == l.session.Tab() {
			parts = append(parts, theme.TabActive.Render(t.label))
		} else {
			parts = append(parts, theme.TabInactive.Render(t.label))
		}
	}

	bar := "  " + strings.Join(parts, " ")
	if l.session.Solved() {
		done := theme.Correct.Render("✓ listo para completar")
		pad := width - lipgloss.Width(bar) - lipgloss.Width(done) - 4
		if pad > 0 {
			bar += strings.Repeat(" ", pad) + done
		}
	}
	return bar
}

// renderTheory shows the lesson body as styled blocks, or the flashcard and
// quiz interactions for those lesson types.
func (l *LessonScreen) renderTheory(width, height int) string {
	switch l.session.Lesson().Type {
	case catalog.TypeFlashcard:
		return l.renderFlashcards(width, height)
	case catalog.TypeQuiz:
		return l.renderQuiz(width, height)
	}

	blocks := content.Segment(l.session.Lesson().Body)
	lines := renderBlocks(blocks, width-6)

	// Cheap scroll window over the rendered lines.
	if l.scroll > len(lines)-1 {
		l.scroll = max(len(lines)-1, 0)
	}
	end := l.scroll + max(height-1, 1)
	if end > len(lines) {
		end = len(lines)
	}
	return "  " + strings.Join(lines[l.scroll:end], "\n  ")
}

func renderBlocks(blocks []content.Block, width int) []string {
	if width < 20 {
		width = 20
	}
	var lines []string
	for _, blk := range blocks {
		switch blk.Kind {
		case content.KindHeading:
			lines = append(lines, theme.Title.Align(lipgloss.Left).Render(blk.Text), "")
		case content.KindSection:
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(blk.Text), "")
		case content.KindCallout:
			rendered := theme.Callout.Width(width).Render(blk.Label + " " + blk.Text)
			lines = append(lines, strings.Split(rendered, "\n")...)
			lines = append(lines, "")
		case content.KindList:
			for _, item := range strings.Split(blk.Text, "\n") {
				wrapped := lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render("• " + item)
				lines = append(lines, strings.Split(wrapped, "\n")...)
			}
			lines = append(lines, "")
		case content.KindCode:
			box := theme.CodeBlock.Width(width).Render(blk.Text)
			lines = append(lines, theme.Hint.Render(blk.Language))
			lines = append(lines, strings.Split(box, "\n")...)
			lines = append(lines, "")
		default:
			wrapped := theme.Body.Width(width).Render(blk.Text)
			lines = append(lines, strings.Split(wrapped, "\n")...)
			lines = append(lines, "")
		}
	}
	return lines
}

func (l *LessonScreen) renderFlashcards(width, height int) string {
	if l.session.DeckDone() {
		msg := theme.Correct.Render("¡Mazo completado!") + "\n\n" +
			theme.Body.Render("Pulsa Enter para finalizar o R para repasar de nuevo.")
		return lipgloss.NewStyle().Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).Render(msg)
	}

	card := l.session.Card()
	face := card.Question
	faceLabel := "Pregunta"
	if l.session.Flipped() {
		face = card.Answer
		faceLabel = "Respuesta"
	}

	counter := theme.Hint.Render(fmt.Sprintf("Tarjeta %d / %d", l.session.CardIndex()+1, l.session.DeckSize()))
	cardBox := theme.Card.Width(min(width-8, 60)).Render(
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(faceLabel) + "\n\n" +
			theme.Body.Render(face))

	return lipgloss.NewStyle().Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(counter + "\n\n" + cardBox)
}

func (l *LessonScreen) renderQuiz(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Height(height).Align(lipgloss.Center, lipgloss.Center)

	if l.session.QuizPending() {
		return center.Render(theme.Hint.Render("Generando pregunta..."))
	}
	if l.session.QuizFailed() {
		return center.Render(theme.Incorrect.Render("No se pudo generar la pregunta.") + "\n" +
			theme.Hint.Render("Vuelve a abrir la lección para reintentar."))
	}
	q := l.session.Quiz()
	if q == nil {
		return center.Render(theme.Hint.Render("Generando pregunta..."))
	}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Width(width - 8).Render(q.Question))
	b.WriteString("\n\n")

	answered := l.session.QuizAnswered()
	for i, opt := range q.Options {
		label := fmt.Sprintf("%c)  %s", 'A'+i, opt)
		switch {
		case answered && i == q.CorrectIndex:
			b.WriteString(theme.Correct.Render("  " + label))
		case answered && i == l.session.SelectedOption():
			b.WriteString(theme.Incorrect.Render("  " + label))
		case !answered && i == l.quizCursor:
			b.WriteString(theme.Selected.Render("▸ " + label))
		default:
			b.WriteString(theme.Unselected.Render("  " + label))
		}
		b.WriteString("\n")
	}

	if fb := l.session.QuizFeedback(); fb != "" {
		b.WriteString("\n")
		style := theme.Incorrect
		if l.session.Solved() {
			style = theme.Correct
		}
		b.WriteString(style.Render(fb))
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (l *LessonScreen) renderPractice(width, height int) string {
	var b strings.Builder

	b.WriteString("  " + theme.Hint.Render("Ctrl+R ejecuta tu código contra el validador de OdooBot") + "\n")
	b.WriteString(l.editor.View())
	b.WriteString("\n")

	consoleTitle := theme.Hint.Render("  Consola")
	if l.session.Executing() {
		consoleTitle += theme.Hint.Render("  (ejecutando...)")
	}
	b.WriteString(consoleTitle + "\n")

	console := l.session.Console()
	if console == "" {
		console = "(sin salida)"
	}
	b.WriteString(theme.Console.Width(max(width-6, 20)).Render(strings.TrimRight(console, "\n")))

	if v := l.session.Validation(); v != nil {
		b.WriteString("\n")
		if v.Valid {
			b.WriteString(theme.Correct.Render("  ✓ " + v.Feedback))
		} else {
			b.WriteString(theme.Incorrect.Render("  ✗ " + v.Feedback))
		}
	}
	return b.String()
}

func (l *LessonScreen) renderChat(width, height int) string {
	var b strings.Builder

	transcript := l.session.Transcript()
	bubbleWidth := min(width-10, 70)
	userStyle := lipgloss.NewStyle().Foreground(theme.Text).Background(theme.Primary).Padding(0, 1).Width(bubbleWidth)
	botStyle := lipgloss.NewStyle().Foreground(theme.Text).Background(theme.BgCard).Padding(0, 1).Width(bubbleWidth)

	// Show the tail of the conversation that fits.
	maxTurns := max((height-4)/3, 1)
	start := 0
	if len(transcript) > maxTurns {
		start = len(transcript) - maxTurns
	}
	for _, turn := range transcript[start:] {
		if turn.Role == tutor.RoleUser {
			b.WriteString("  " + theme.Hint.Render("Tú") + "\n")
			b.WriteString("  " + userStyle.Render(turn.Text) + "\n")
		} else {
			b.WriteString("  " + theme.Hint.Render("OdooBot") + "\n")
			b.WriteString("  " + botStyle.Render(turn.Text) + "\n")
		}
	}

	if l.session.ChatPending() {
		b.WriteString("  " + theme.Hint.Render("OdooBot está escribiendo...") + "\n")
	}

	b.WriteString("\n  " + l.chatInput.View())
	return b.String()
}

func (l *LessonScreen) renderSnippetMenu(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Align(lipgloss.Left).Render("  Snippets") + "\n\n")

	var category catalog.SnippetCategory
	for i, sn := range catalog.Snippets {
		if sn.Category != category {
			category = sn.Category
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  "+string(category)) + "\n")
		}
		if i == l.snippetSel {
			b.WriteString(theme.Selected.Render("  ▸ "+sn.Label) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+sn.Label) + "\n")
		}
	}

	b.WriteString("\n" + theme.CodeBlock.Width(max(width-8, 20)).Render(catalog.Snippets[l.snippetSel].Code))
	return b.String()
}

func (l *LessonScreen) renderFinished(width, height int) string {
	var b strings.Builder

	if l.finished.Err != nil {
		b.WriteString(theme.Incorrect.Render("No se pudo guardar tu progreso.") + "\n")
		b.WriteString(theme.Hint.Render(l.finished.Err.Error()))
		return lipgloss.NewStyle().Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).Render(b.String())
	}

	res := l.finished.Result
	b.WriteString(theme.Correct.Render("¡Lección completada!") + "\n\n")
	if res.AlreadyDone {
		b.WriteString(theme.Hint.Render("Ya habías completado esta lección.") + "\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("+%d XP", res.XPAwarded)) + "\n")
	}
	for _, badge := range res.NewBadges {
		b.WriteString("\n" + theme.Body.Render(fmt.Sprintf("%s  Insignia desbloqueada: %s", badge.Icon, badge.Title)))
	}

	return lipgloss.NewStyle().Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).Render(b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
