package stylepick

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/quiz"
	"github.com/nbhznb/learnify/internal/router"
	"github.com/nbhznb/learnify/internal/screen"
	"github.com/nbhznb/learnify/internal/screens/quizrun"
	"github.com/nbhznb/learnify/internal/ui/components"
	"github.com/nbhznb/learnify/internal/ui/theme"
)

// StylePickScreen chooses the pacing style for the selected subject.
type StylePickScreen struct {
	deps   *screen.Deps
	menu   components.Menu
	styles []quiz.Style
}

var _ screen.Screen = (*StylePickScreen)(nil)

// New creates a new StylePickScreen.
func New(deps *screen.Deps) *StylePickScreen {
	styles := quiz.Styles()

	items := make([]components.MenuItem, 0, len(styles))
	for _, style := range styles {
		style := style
		items = append(items, components.MenuItem{
			Label: string(style),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					deps.State.SetStyle(style)
					if !deps.State.ReadyForQuiz() {
						return nil
					}
					return router.PushScreenMsg{Screen: quizrun.New(deps)}
				}
			},
		})
	}

	return &StylePickScreen{
		deps:   deps,
		menu:   components.NewMenu(items),
		styles: styles,
	}
}

func (s *StylePickScreen) Init() tea.Cmd {
	return nil
}

func (s *StylePickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *StylePickScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s — choose your pace", s.deps.State.Category.DisplayName()))

	// Blurb and limits for the highlighted style.
	var detail string
	if s.menu.Selected < len(s.styles) {
		style := s.styles[s.menu.Selected]
		detail = style.Description() + "\n" + limitLine(style)
	}
	detailBox := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(detail)

	sections := []string{
		title,
		components.Card(s.menu.View(), cw),
		detailBox,
	}
	content := strings.Join(sections, "\n\n")

	return components.CenterFrame(content, width, height)
}

func limitLine(style quiz.Style) string {
	timer := "untimed"
	if style.Timed() {
		timer = fmt.Sprintf("%ds per question", style.Seconds())
	}
	count := "unlimited questions"
	if style.Limit() != quiz.Unbounded {
		count = fmt.Sprintf("%d questions", style.Limit())
	}
	return timer + " · " + count
}

func (s *StylePickScreen) Title() string {
	return "Quiz Style"
}
