package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/screen"
	"github.com/nbhznb/learnify/internal/store"
	"github.com/nbhznb/learnify/internal/ui/layout"
	"github.com/nbhznb/learnify/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Results []store.Result
	Err     error
}

// HistoryScreen displays past quiz results, newest first.
type HistoryScreen struct {
	deps     *screen.Deps
	results  []store.Result
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(deps *screen.Deps) *HistoryScreen {
	return &HistoryScreen{deps: deps}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.deps.Results
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		results, err := repo.Recent(context.Background(), historyLimit)
		return historyLoadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nLoading history...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nCould not load history: " + s.errMsg)
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo quizzes taken yet. Finish one and it will show up here.")
	}

	var b strings.Builder
	b.WriteString("\n")

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	for i := start; i < len(s.results) && i < start+visible; i++ {
		res := s.results[i]

		pctStyle := lipgloss.NewStyle().Foreground(theme.Error)
		if res.Percent() >= 50 {
			pctStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		marker := "  "
		if i == s.selected {
			marker = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ ")
		}

		line := fmt.Sprintf("%s%s  %-22s %-10s %s  %s",
			marker,
			res.TakenAt.Local().Format("2006-01-02 15:04"),
			res.Category.DisplayName(),
			res.Style,
			pctStyle.Render(fmt.Sprintf("%3d%%", res.Percent())),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("(%d/%d)", res.Correct, res.Total())),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
