package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/quiz"
	"github.com/nbhznb/learnify/internal/router"
	"github.com/nbhznb/learnify/internal/screen"
	"github.com/nbhznb/learnify/internal/screens/history"
	"github.com/nbhznb/learnify/internal/screens/login"
	"github.com/nbhznb/learnify/internal/screens/profile"
	"github.com/nbhznb/learnify/internal/screens/stylepick"
	"github.com/nbhznb/learnify/internal/ui/components"
	"github.com/nbhznb/learnify/internal/ui/theme"
)

// HomeScreen is the subject picker and main entry point.
type HomeScreen struct {
	deps       *screen.Deps
	menu       components.Menu
	categories []quiz.Category
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps *screen.Deps) *HomeScreen {
	categories := quiz.Categories()

	items := make([]components.MenuItem, 0, len(categories)+3)
	for _, cat := range categories {
		cat := cat
		items = append(items, components.MenuItem{
			Label: cat.DisplayName(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					if !deps.Auth.Session().Authenticated() {
						return router.PushScreenMsg{Screen: login.New(deps)}
					}
					deps.State.SetCategory(cat)
					if !deps.State.ReadyForStyle() {
						return nil
					}
					return router.PushScreenMsg{Screen: stylepick.New(deps)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "Account", Action: func() tea.Cmd {
			return func() tea.Msg {
				if !deps.Auth.Session().Authenticated() {
					return router.PushScreenMsg{Screen: login.New(deps)}
				}
				return router.PushScreenMsg{Screen: profile.New(deps)}
			}
		}},
		components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps)}
			}
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		categories: categories,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("LEARNIFY")

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("Pick a subject to practise")

	// Show the highlighted subject's blurb under the menu.
	blurb := ""
	if h.menu.Selected < len(h.categories) {
		blurb = h.categories[h.menu.Selected].Description()
	}
	blurbBox := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Italic(true).
		Render(blurb)

	sections := []string{
		title,
		subtitle,
		components.Card(h.menu.View(), cw),
		blurbBox,
	}
	content := strings.Join(sections, "\n\n")

	return components.CenterFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
