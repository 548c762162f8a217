package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/quiz"
	"github.com/nbhznb/learnify/internal/router"
	"github.com/nbhznb/learnify/internal/screen"
	"github.com/nbhznb/learnify/internal/ui/components"
	"github.com/nbhznb/learnify/internal/ui/theme"
)

// savedMsg confirms the result row was written and carries the best
// stored percentage for this category/style, including the new row.
type savedMsg struct {
	Best int
	Err  error
}

// ResultsScreen shows the outcome of a finished run and persists it.
type ResultsScreen struct {
	deps    *screen.Deps
	summary quiz.Summary
	menu    components.Menu
	best    int
	saveErr string
}

var _ screen.Screen = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a finished run.
func New(deps *screen.Deps, summary quiz.Summary) *ResultsScreen {
	items := []components.MenuItem{
		{Label: "Try Another Quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				deps.State.Reset()
				return router.PopToRootMsg{}
			}
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &ResultsScreen{
		deps:    deps,
		summary: summary,
		menu:    components.NewMenu(items),
		best:    -1,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	repo := r.deps.Results
	summary := r.summary
	return func() tea.Msg {
		if repo == nil {
			return savedMsg{Best: -1}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := repo.Append(ctx, summary); err != nil {
			return savedMsg{Best: -1, Err: err}
		}
		best, err := repo.Best(ctx, summary.Category, summary.Style)
		return savedMsg{Best: best, Err: err}
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			r.saveErr = msg.Err.Error()
		}
		r.best = msg.Best
		return r, nil
	}

	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	pct := r.summary.Percent()

	verdictStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	verdict := "Keep practising!"
	switch {
	case pct >= 80:
		verdictStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		verdict = "Outstanding!"
	case pct >= 50:
		verdictStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		verdict = "Good effort!"
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("QUIZ COMPLETE")

	scoreCard := components.Card(strings.Join([]string{
		verdictStyle.Render(verdict),
		"",
		components.Gauge(float64(pct)/100, cw-8),
		"",
		fmt.Sprintf("%s · %s%s", r.summary.Category.DisplayName(), r.summary.Style, r.bestLine(pct)),
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d correct", r.summary.Correct)) +
			"   " +
			lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("✗ %d wrong", r.summary.Wrong)),
	}, "\n"), cw)

	sections := []string{title, scoreCard, components.Card(r.menu.View(), cw)}

	if r.saveErr != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render("Result not saved: "+r.saveErr))
	}

	return components.CenterFrame(strings.Join(sections, "\n\n"), width, height)
}

// bestLine annotates the score with the stored best for this
// category/style once the save round-trip completes.
func (r *ResultsScreen) bestLine(pct int) string {
	if r.best < 0 {
		return ""
	}
	if pct >= r.best {
		return "  ·  New best!"
	}
	return fmt.Sprintf("  ·  Best: %d%%", r.best)
}

func (r *ResultsScreen) Title() string {
	return "Results"
}
