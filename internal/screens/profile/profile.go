package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/api"
	"github.com/nbhznb/learnify/internal/router"
	"github.com/nbhznb/learnify/internal/screen"
	"github.com/nbhznb/learnify/internal/ui/components"
	"github.com/nbhznb/learnify/internal/ui/layout"
	"github.com/nbhznb/learnify/internal/ui/theme"
)

const fieldCount = 3

// updateDoneMsg is sent when a profile save completes.
type updateDoneMsg struct {
	Err error
}

// deleteDoneMsg is sent when account deletion completes.
type deleteDoneMsg struct {
	Err error
}

// ProfileScreen shows and edits the signed-in account. Empty fields
// keep their current server-side values.
type ProfileScreen struct {
	deps           *screen.Deps
	fields         [fieldCount]components.TextInput
	focused        int
	busy           bool
	confirmDelete  bool
	statusMsg      string
	errMsg         string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

var fieldNames = [fieldCount]string{"Username", "Email", "New password"}

// New creates a new ProfileScreen pre-filled from the session.
func New(deps *screen.Deps) *ProfileScreen {
	p := &ProfileScreen{deps: deps}
	user := deps.Auth.Session().User

	p.fields[0] = components.NewTextInput(user.Username, 60)
	p.fields[1] = components.NewTextInput(user.Email, 60)
	p.fields[2] = components.NewSecretInput("leave empty to keep current", 60)
	p.fields[1].Model.Blur()
	return p
}

func (p *ProfileScreen) Init() tea.Cmd {
	return p.fields[0].Init()
}

func (p *ProfileScreen) Title() string {
	return "Account"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.confirmDelete {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete account"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Ctrl+L", Description: "Log out"},
		{Key: "Ctrl+X", Description: "Delete account"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case updateDoneMsg:
		p.busy = false
		if msg.Err != nil {
			if errors.Is(msg.Err, api.ErrUnauthorized) {
				// Session was torn down; back to home, which offers sign-in.
				return p, func() tea.Msg { return router.PopToRootMsg{} }
			}
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.statusMsg = "Profile updated"
		return p, nil

	case deleteDoneMsg:
		p.busy = false
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		return p, func() tea.Msg { return router.PopToRootMsg{} }

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	var cmd tea.Cmd
	p.fields[p.focused], cmd = p.fields[p.focused].Update(msg)
	return p, cmd
}

func (p *ProfileScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.busy {
		return p, nil
	}

	key := msg.String()

	if p.confirmDelete {
		switch key {
		case "y", "Y":
			p.confirmDelete = false
			return p.deleteAccount()
		case "n", "N", "esc":
			p.confirmDelete = false
		}
		return p, nil
	}

	switch key {
	case "tab", "down":
		return p, p.focusField((p.focused + 1) % fieldCount)
	case "shift+tab", "up":
		return p, p.focusField((p.focused + fieldCount - 1) % fieldCount)
	case "ctrl+s", "enter":
		return p.save()
	case "ctrl+l":
		p.deps.Auth.Logout()
		return p, func() tea.Msg { return router.PopToRootMsg{} }
	case "ctrl+x":
		p.confirmDelete = true
		return p, nil
	}

	var cmd tea.Cmd
	p.fields[p.focused], cmd = p.fields[p.focused].Update(msg)
	return p, cmd
}

func (p *ProfileScreen) focusField(i int) tea.Cmd {
	p.fields[p.focused].Model.Blur()
	p.focused = i
	return p.fields[i].Model.Focus()
}

func (p *ProfileScreen) save() (screen.Screen, tea.Cmd) {
	update := api.ProfileUpdate{
		Username: p.fields[0].Value(),
		Email:    p.fields[1].Value(),
		Password: p.fields[2].Value(),
	}
	if update == (api.ProfileUpdate{}) {
		p.statusMsg = "Nothing to save"
		return p, nil
	}

	p.errMsg = ""
	p.statusMsg = ""
	p.busy = true
	svc := p.deps.Auth

	return p, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return updateDoneMsg{Err: svc.UpdateProfile(ctx, update)}
	}
}

func (p *ProfileScreen) deleteAccount() (screen.Screen, tea.Cmd) {
	p.busy = true
	svc := p.deps.Auth

	return p, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return deleteDoneMsg{Err: svc.DeleteAccount(ctx)}
	}
}

func (p *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	user := p.deps.Auth.Session().User

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("ACCOUNT")

	if p.confirmDelete {
		warning := components.Card(strings.Join([]string{
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Delete this account?"),
			"",
			"All server-side data for " + user.Username + " will be removed.",
			"This cannot be undone.",
		}, "\n"), cw)
		return components.CenterFrame(title+"\n\n"+warning, width, height)
	}

	current := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("Signed in as " + user.Username + " <" + user.Email + ">")

	rows := make([]string, fieldCount)
	for i := range p.fields {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fieldNames[i])
		if i == p.focused {
			label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fieldNames[i])
		}
		rows[i] = label + "\n" + p.fields[i].View()
	}

	sections := []string{title, current, components.Card(strings.Join(rows, "\n\n"), cw)}

	if p.busy {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).Width(cw).Align(lipgloss.Center).Render("Working..."))
	}
	if p.statusMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Success).Width(cw).Align(lipgloss.Center).Render(p.statusMsg))
	}
	if p.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).Width(cw).Align(lipgloss.Center).Render(p.errMsg))
	}

	return components.CenterFrame(strings.Join(sections, "\n\n"), width, height)
}
