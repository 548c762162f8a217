package quizrun

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/quiz"
	"github.com/nbhznb/learnify/internal/ui/components"
	"github.com/nbhznb/learnify/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.phase {
	case phaseError:
		return s.renderError(width)
	case phaseLoading:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n" + s.spin.View())
	case phaseFeedback:
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderError(width int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Could not load questions")
	detail := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(s.errMsg)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + msg + "\n\n" + detail)
}

// renderInfoLine draws the status bar above the question: progress,
// score and the countdown.
func (s *QuizScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.run.Category.DisplayName() + " · " + string(s.run.Style))

	progress := fmt.Sprintf("Q %d", s.run.Answered+1)
	if limit := s.run.Style.Limit(); limit != quiz.Unbounded {
		progress = fmt.Sprintf("Q %d/%d", s.run.Answered+1, limit)
	}

	timer := ""
	if s.run.Style.Timed() {
		if s.timerPaused() {
			timer = "  ⏸ untimed"
		} else {
			timer = fmt.Sprintf("  ⏱ %ds", s.secondsLeft)
		}
	}

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  ✓ %d  ✗ %d%s", progress, s.run.Correct, s.run.Wrong, timer))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	q := s.run.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	switch {
	case q.Type == quiz.TypeMCQ:
		b.WriteString(s.renderChoices(width, q))
	case q.Type.IsEssay():
		b.WriteString(s.renderEssay(width))
	case q.Type == quiz.TypeChart:
		b.WriteString(s.renderChart(width, q))
		b.WriteString(s.renderAnswerLine(width))
	case q.Type == quiz.TypeDiagram:
		b.WriteString(s.renderDiagram(width))
		b.WriteString(s.renderAnswerLine(width))
	default:
		b.WriteString(s.renderAnswerLine(width))
	}

	return b.String()
}

func (s *QuizScreen) renderChoices(width int, q *quiz.Question) string {
	var b strings.Builder
	for i, choice := range s.choices {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "▸ "
		}
		label := choice
		if q.ImagePath != "" {
			// Image answers are referenced by position, not filename.
			label = fmt.Sprintf("Option %d", i+1)
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, label)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.mcSelected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(style.Render(line)))
		b.WriteString("\n")
	}

	if q.ImagePath != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Image: " + q.ImagePath))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect with number keys or arrows + Enter"))
	return b.String()
}

func (s *QuizScreen) renderEssay(width int) string {
	editor := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.area.View())

	counter := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n%d words · Ctrl+D to submit", s.area.WordCount()))

	return editor + counter
}

func (s *QuizScreen) renderChart(width int, q *quiz.Question) string {
	chart := components.NewChart(q.ChartKind, q.ChartData, components.ContentWidth(width)).View()
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(chart) + "\n"
}

func (s *QuizScreen) renderDiagram(width int) string {
	var body string
	switch {
	case s.diagramErr != "":
		body = lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Diagram unavailable: " + s.diagramErr)
	case s.diagramURL != "":
		body = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Diagram: " + s.diagramURL)
	default:
		body = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Rendering diagram...")
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(body) + "\n\n"
}

func (s *QuizScreen) renderAnswerLine(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
}

func (s *QuizScreen) renderFeedback(width int) string {
	q := s.run.Current()

	var lines []string
	switch s.feedback {
	case feedbackCorrect:
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("✓ Correct!"))

	case feedbackIncorrect:
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("✗ Incorrect"))
		if q != nil {
			answer := q.CorrectAnswer
			if q.ImagePath != "" && s.correctPos > 0 {
				answer = fmt.Sprintf("option %d", s.correctPos)
			}
			lines = append(lines, "", lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("The correct answer was "+answer))
			if q.Explanation != "" {
				lines = append(lines, "", lipgloss.NewStyle().
					Foreground(theme.TextDim).
					Render(q.Explanation))
			}
		}
		lines = append(lines, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Press any key for the next question"))

	case feedbackEssay:
		tierStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		if s.essayResult.Correct() {
			tierStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		}
		lines = append(lines,
			tierStyle.Render(string(s.essayResult.Tier)),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(fmt.Sprintf("Score: %d/100", s.essayResult.Score)),
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(s.essayResult.Feedback),
		)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + strings.Join(lines, "\n"))
}
