package register

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/router"
	"github.com/nbhznb/learnify/internal/screen"
	"github.com/nbhznb/learnify/internal/ui/components"
	"github.com/nbhznb/learnify/internal/ui/layout"
	"github.com/nbhznb/learnify/internal/ui/theme"
)

const fieldCount = 4

// registerDoneMsg is sent when the registration attempt completes.
type registerDoneMsg struct {
	Err error
}

// RegisterScreen is the account creation form. A successful
// registration signs the new user straight in.
type RegisterScreen struct {
	deps    *screen.Deps
	fields  [fieldCount]components.TextInput
	focused int
	busy    bool
	errMsg  string
}

var _ screen.Screen = (*RegisterScreen)(nil)
var _ screen.KeyHintProvider = (*RegisterScreen)(nil)

var fieldNames = [fieldCount]string{"Username", "Email", "Password", "Confirm password"}

// New creates a new RegisterScreen.
func New(deps *screen.Deps) *RegisterScreen {
	r := &RegisterScreen{deps: deps}
	placeholders := [fieldCount]string{"username", "you@example.com", "password", "repeat password"}
	for i := range r.fields {
		if i >= 2 {
			r.fields[i] = components.NewSecretInput(placeholders[i], 60)
			continue
		}
		r.fields[i] = components.NewTextInput(placeholders[i], 60)
		if i > 0 {
			r.fields[i].Model.Blur()
		}
	}
	return r
}

func (r *RegisterScreen) Init() tea.Cmd {
	return r.fields[0].Init()
}

func (r *RegisterScreen) Title() string {
	return "Create Account"
}

func (r *RegisterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create account"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *RegisterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		r.busy = false
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
			return r, nil
		}
		return r, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		if r.busy {
			return r, nil
		}
		switch msg.String() {
		case "tab", "down":
			return r, r.focusField((r.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return r, r.focusField((r.focused + fieldCount - 1) % fieldCount)
		case "enter":
			return r.submit()
		}
	}

	var cmd tea.Cmd
	r.fields[r.focused], cmd = r.fields[r.focused].Update(msg)
	return r, cmd
}

func (r *RegisterScreen) focusField(i int) tea.Cmd {
	r.fields[r.focused].Model.Blur()
	r.focused = i
	return r.fields[i].Model.Focus()
}

func (r *RegisterScreen) submit() (screen.Screen, tea.Cmd) {
	r.errMsg = ""
	r.busy = true

	svc := r.deps.Auth
	username := r.fields[0].Value()
	email := r.fields[1].Value()
	password := r.fields[2].Value()
	confirm := r.fields[3].Value()

	return r, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return registerDoneMsg{Err: svc.Register(ctx, username, email, password, confirm)}
	}
}

func (r *RegisterScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("CREATE ACCOUNT")

	rows := make([]string, fieldCount)
	for i := range r.fields {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fieldNames[i])
		if i == r.focused {
			label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fieldNames[i])
		}
		rows[i] = label + "\n" + r.fields[i].View()
	}

	sections := []string{title, components.Card(strings.Join(rows, "\n\n"), cw)}

	if r.busy {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render("Creating account..."))
	}
	if r.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(cw).
			Align(lipgloss.Center).
			Render(r.errMsg))
	}

	return components.CenterFrame(strings.Join(sections, "\n\n"), width, height)
}
