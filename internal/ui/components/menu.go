package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/ui/theme"
)

// MenuItem is one selectable row. Disabled rows render dimmed and are
// skipped when moving the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with a single cursor. Navigation wraps at
// both ends.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if len(items) > 0 && items[0].Disabled {
		m.move(1)
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// move steps the cursor by dir until it lands on an enabled item,
// wrapping around the ends. A menu with no enabled items keeps the
// cursor in place.
func (m *Menu) move(dir int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		item := m.Items[m.Selected]
		if item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}

	return m, nil
}

var (
	menuCursor   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	menuRow      = lipgloss.NewStyle().Foreground(theme.Text)
	menuDisabled = lipgloss.NewStyle().Foreground(theme.TextDim)
)

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(menuCursor.Render("  ▸ " + item.Label))
		case item.Disabled:
			b.WriteString(menuDisabled.Render("    " + item.Label))
		default:
			b.WriteString(menuRow.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
