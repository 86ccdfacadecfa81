package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/odootrail/internal/ui/theme"
)

// CodeEditor wraps bubbles/textarea for the lesson code panel.
type CodeEditor struct {
	Model textarea.Model
}

// NewCodeEditor creates an editor seeded with the given source.
func NewCodeEditor(code string, width, height int) CodeEditor {
	ta := textarea.New()
	ta.Prompt = "│ "
	ta.ShowLineNumbers = true
	ta.SetValue(code)
	ta.SetWidth(width)
	ta.SetHeight(height)
	return CodeEditor{Model: ta}
}

// Init returns the initial command.
func (c CodeEditor) Init() tea.Cmd {
	return textarea.Blink
}

// Focus gives the editor keyboard focus.
func (c *CodeEditor) Focus() tea.Cmd {
	return c.Model.Focus()
}

// Blur removes keyboard focus.
func (c *CodeEditor) Blur() {
	c.Model.Blur()
}

// Focused reports whether the editor has keyboard focus.
func (c CodeEditor) Focused() bool {
	return c.Model.Focused()
}

// Update handles messages.
func (c CodeEditor) Update(msg tea.Msg) (CodeEditor, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the editor inside a code box.
func (c CodeEditor) View() string {
	return theme.CodeBlock.Render(c.Model.View())
}

// Value returns the buffer contents.
func (c CodeEditor) Value() string {
	return c.Model.Value()
}

// SetValue replaces the buffer contents.
func (c *CodeEditor) SetValue(code string) {
	c.Model.SetValue(code)
}

// SetSize resizes the editor viewport.
func (c *CodeEditor) SetSize(width, height int) {
	c.Model.SetWidth(width)
	c.Model.SetHeight(height)
}
