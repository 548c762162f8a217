package login

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/router"
	"github.com/nbhznb/learnify/internal/screen"
	"github.com/nbhznb/learnify/internal/screens/register"
	"github.com/nbhznb/learnify/internal/ui/components"
	"github.com/nbhznb/learnify/internal/ui/layout"
	"github.com/nbhznb/learnify/internal/ui/theme"
)

const fieldCount = 2

// loginDoneMsg is sent when the sign-in attempt completes.
type loginDoneMsg struct {
	Err error
}

// LoginScreen is the sign-in form.
type LoginScreen struct {
	deps     *screen.Deps
	username components.TextInput
	password components.TextInput
	focused  int
	busy     bool
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a new LoginScreen.
func New(deps *screen.Deps) *LoginScreen {
	username := components.NewTextInput("username", 40)
	password := components.NewSecretInput("password", 40)

	return &LoginScreen{
		deps:     deps,
		username: username,
		password: password,
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.username.Init()
}

func (l *LoginScreen) Title() string {
	return "Sign In"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+R", Description: "Create account"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		l.busy = false
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		return l, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "down", "up":
			return l, l.cycleFocus()
		case "enter":
			return l.submit()
		case "ctrl+r":
			return l, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: register.New(l.deps)}
			}
		}
	}

	var cmd tea.Cmd
	if l.focused == 0 {
		l.username, cmd = l.username.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) cycleFocus() tea.Cmd {
	l.focused = (l.focused + 1) % fieldCount
	if l.focused == 0 {
		l.password.Model.Blur()
		return l.username.Model.Focus()
	}
	l.username.Model.Blur()
	return l.password.Model.Focus()
}

func (l *LoginScreen) submit() (screen.Screen, tea.Cmd) {
	l.errMsg = ""
	l.busy = true

	svc := l.deps.Auth
	username := l.username.Value()
	password := l.password.Value()

	return l, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return loginDoneMsg{Err: svc.Login(ctx, username, password)}
	}
}

func (l *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("SIGN IN")

	form := strings.Join([]string{
		fieldLabel("Username", l.focused == 0) + "\n" + l.username.View(),
		fieldLabel("Password", l.focused == 1) + "\n" + l.password.View(),
	}, "\n\n")

	sections := []string{title, components.Card(form, cw)}

	if l.busy {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render("Signing in..."))
	}
	if l.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(cw).
			Align(lipgloss.Center).
			Render(l.errMsg))
	}

	return components.CenterFrame(strings.Join(sections, "\n\n"), width, height)
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(name)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(name)
}
