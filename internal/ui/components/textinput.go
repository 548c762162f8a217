package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a single-line form field. The underlying bubbles model
// stays exported so screens can move focus between fields directly.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput builds a focused field with the given placeholder and
// character limit.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "❯ "
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return TextInput{Model: ti}
}

// NewSecretInput builds a field that masks what is typed, for
// passwords. It starts blurred since it is never the first field in
// a form.
func NewSecretInput(placeholder string, limit int) TextInput {
	t := NewTextInput(placeholder, limit)
	t.Model.EchoMode = textinput.EchoPassword
	t.Model.Blur()
	return t
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
