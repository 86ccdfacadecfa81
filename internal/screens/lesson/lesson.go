package lesson

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/odootrail/internal/catalog"
	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/router"
	"github.com/abhisek/odootrail/internal/screen"
	sess "github.com/abhisek/odootrail/internal/session"
	"github.com/abhisek/odootrail/internal/tutor"
	"github.com/abhisek/odootrail/internal/ui/components"
	"github.com/abhisek/odootrail/internal/ui/layout"
)

// LessonScreen drives one lesson. All transition rules live in the session
// state machine; this screen translates keys and async results into session
// calls and renders the outcome.
type LessonScreen struct {
	session *sess.Session
	prog    *progress.Store
	tut     *tutor.Service

	editor    components.CodeEditor
	chatInput components.TextInput

	scroll      int
	quizCursor  int
	snippetMenu bool
	snippetSel  int
	finished    *completeDoneMsg
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen for the given catalog lesson.
func New(l catalog.Lesson, moduleTitle string, prog *progress.Store, tut *tutor.Service) *LessonScreen {
	s := sess.New(l, moduleTitle)
	ls := &LessonScreen{
		session:   s,
		prog:      prog,
		tut:       tut,
		editor:    components.NewCodeEditor(s.CodeBuffer(), 72, 14),
		chatInput: components.NewTextInput("Pregúntale a OdooBot...", false, 200),
	}
	return ls
}

func (l *LessonScreen) Init() tea.Cmd {
	var cmds []tea.Cmd
	if l.session.NeedsQuiz() {
		gen := l.session.BeginQuiz()
		cmds = append(cmds, l.generateQuiz(gen))
	}
	if l.session.Tab() == sess.TabPractice {
		cmds = append(cmds, l.editor.Focus())
	}
	return tea.Batch(cmds...)
}

func (l *LessonScreen) Title() string {
	return l.session.Lesson().Title
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	if l.finished != nil {
		return []layout.KeyHint{{Key: "any key", Description: "Continuar"}}
	}
	if l.snippetMenu {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Elegir"},
			{Key: "Enter", Description: "Insertar"},
			{Key: "Esc", Description: "Cerrar"},
		}
	}

	hints := []layout.KeyHint{{Key: "Tab", Description: "Cambiar panel"}}
	switch l.session.Tab() {
	case sess.TabPractice:
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+R", Description: "Ejecutar"},
			layout.KeyHint{Key: "Ctrl+E", Description: "Reiniciar"},
			layout.KeyHint{Key: "Ctrl+O", Description: "Snippets"},
		)
	case sess.TabChat:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Enviar"})
	default:
		switch l.session.Lesson().Type {
		case catalog.TypeFlashcard:
			hints = append(hints,
				layout.KeyHint{Key: "Space", Description: "Voltear"},
				layout.KeyHint{Key: "←→", Description: "Tarjetas"},
			)
		case catalog.TypeQuiz:
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Opción"},
				layout.KeyHint{Key: "Enter", Description: "Responder"},
			)
		default:
			hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Desplazar"})
		}
	}
	if l.session.Solved() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+D", Description: "Completar"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Volver"})
	return hints
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		l.session.ResolveQuiz(msg.Gen, msg.Quiz)
		return l, nil

	case runDoneMsg:
		l.session.FinishRun(msg.Gen, msg.Result)
		return l, nil

	case chatReplyMsg:
		l.session.ResolveChat(msg.Gen, msg.Reply)
		return l, nil

	case completeDoneMsg:
		l.finished = &msg
		return l, nil

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	return l.forwardToFocused(msg)
}

func (l *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// A completed lesson waits for one key, then leaves toward its origin.
	if l.finished != nil {
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if l.snippetMenu {
		return l.handleSnippetKey(msg)
	}

	switch msg.String() {
	case "esc":
		return l, func() tea.Msg { return router.PopScreenMsg{} }

	case "tab":
		l.cycleTab()
		if l.session.Tab() == sess.TabPractice {
			return l, l.editor.Focus()
		}
		l.editor.Blur()
		return l, nil

	case "ctrl+d":
		if _, ok := l.session.Complete(); ok {
			return l, l.recordCompletion()
		}
		return l, nil
	}

	switch l.session.Tab() {
	case sess.TabPractice:
		return l.handlePracticeKey(msg)
	case sess.TabChat:
		return l.handleChatKey(msg)
	default:
		return l.handleTheoryKey(msg)
	}
}

func (l *LessonScreen) handleTheoryKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch l.session.Lesson().Type {
	case catalog.TypeFlashcard:
		switch msg.String() {
		case " ", "space", "enter":
			if l.session.DeckDone() {
				if _, ok := l.session.Complete(); ok {
					return l, l.recordCompletion()
				}
				return l, nil
			}
			l.session.Flip()
		case "right", "l":
			l.session.NextCard()
		case "left", "h":
			l.session.PrevCard()
		case "r":
			l.session.ReviewAgain()
		}
		return l, nil

	case catalog.TypeQuiz:
		switch msg.String() {
		case "up", "k":
			l.moveQuizCursor(-1)
		case "down", "j":
			l.moveQuizCursor(1)
		case "enter":
			if !l.session.QuizAnswered() {
				l.session.SelectOption(l.quizCursor)
			}
		}
		return l, nil

	default:
		switch msg.String() {
		case "up", "k":
			if l.scroll > 0 {
				l.scroll--
			}
		case "down", "j":
			l.scroll++
		}
		return l, nil
	}
}

// moveQuizCursor shifts the highlighted option. Submission locks the cursor,
// the session's recorded selection takes over from there.
func (l *LessonScreen) moveQuizCursor(delta int) {
	q := l.session.Quiz()
	if q == nil || l.session.QuizAnswered() {
		return
	}
	next := l.quizCursor + delta
	if next >= 0 && next < len(q.Options) {
		l.quizCursor = next
	}
}

func (l *LessonScreen) handlePracticeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		l.session.SetCodeBuffer(l.editor.Value())
		gen, ok := l.session.BeginRun()
		if !ok {
			return l, nil
		}
		return l, l.runCode(gen, l.editor.Value())

	case "ctrl+e":
		l.session.ResetCode()
		l.editor.SetValue(l.session.CodeBuffer())
		return l, nil

	case "ctrl+o":
		l.snippetMenu = true
		l.snippetSel = 0
		return l, nil
	}

	var cmd tea.Cmd
	l.editor, cmd = l.editor.Update(msg)
	l.session.SetCodeBuffer(l.editor.Value())
	return l, cmd
}

func (l *LessonScreen) handleSnippetKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+o":
		l.snippetMenu = false
	case "up", "k":
		if l.snippetSel > 0 {
			l.snippetSel--
		}
	case "down", "j":
		if l.snippetSel < len(catalog.Snippets)-1 {
			l.snippetSel++
		}
	case "enter":
		l.session.InsertSnippet(catalog.Snippets[l.snippetSel].Code)
		l.editor.SetValue(l.session.CodeBuffer())
		l.snippetMenu = false
	}
	return l, nil
}

func (l *LessonScreen) handleChatKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		text := l.chatInput.Value()
		gen, history, ok := l.session.SendChat(text)
		if !ok {
			return l, nil
		}
		l.chatInput.Model.SetValue("")
		return l, l.sendChat(gen, text, history)
	}

	var cmd tea.Cmd
	l.chatInput, cmd = l.chatInput.Update(msg)
	return l, cmd
}

func (l *LessonScreen) forwardToFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch l.session.Tab() {
	case sess.TabPractice:
		l.editor, cmd = l.editor.Update(msg)
	case sess.TabChat:
		l.chatInput, cmd = l.chatInput.Update(msg)
	}
	return l, cmd
}

func (l *LessonScreen) cycleTab() {
	switch l.session.Tab() {
	case sess.TabTheory:
		if l.session.Lesson().Type == catalog.TypeCode {
			l.session.SelectTab(sess.TabPractice)
		} else {
			l.session.SelectTab(sess.TabChat)
		}
	case sess.TabPractice:
		l.session.SelectTab(sess.TabChat)
	case sess.TabChat:
		l.session.SelectTab(sess.TabTheory)
	}
}

func (l *LessonScreen) generateQuiz(gen int) tea.Cmd {
	content := l.session.Lesson().Body
	return func() tea.Msg {
		return quizReadyMsg{Gen: gen, Quiz: l.tut.GenerateQuiz(context.Background(), content)}
	}
}

func (l *LessonScreen) runCode(gen int, code string) tea.Cmd {
	task := l.session.RunTask()
	return func() tea.Msg {
		return runDoneMsg{Gen: gen, Result: l.tut.ValidateCode(context.Background(), task, code)}
	}
}

func (l *LessonScreen) sendChat(gen int, message string, history []tutor.Turn) tea.Cmd {
	lessonCtx := l.session.ChatContext()
	return func() tea.Msg {
		return chatReplyMsg{Gen: gen, Reply: l.tut.Chat(context.Background(), message, lessonCtx, history)}
	}
}

func (l *LessonScreen) recordCompletion() tea.Cmd {
	lesson := l.session.Lesson()
	return func() tea.Msg {
		result, err := l.prog.Complete(context.Background(), lesson)
		return completeDoneMsg{Result: result, Err: err}
	}
}
