package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// Editor wraps bubbles/textarea for code entry.
type Editor struct {
	Model textarea.Model
}

// NewEditor creates a code editor prefilled with the given starter code.
func NewEditor(starter string, width, height int) Editor {
	ta := textarea.New()
	ta.Placeholder = "Write your solution here..."
	ta.SetValue(starter)
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()

	return Editor{Model: ta}
}

// Init returns the initial command.
func (e Editor) Init() tea.Cmd {
	return e.Model.Focus()
}

// Update handles messages.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e Editor) View() string {
	return e.Model.View()
}

// Value returns the current code.
func (e Editor) Value() string {
	return e.Model.Value()
}

// Resize adjusts the editor dimensions.
func (e *Editor) Resize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// SetCode replaces the editor contents.
func (e *Editor) SetCode(code string) {
	e.Model.SetValue(code)
}
