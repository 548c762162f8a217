package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/quiz"
	"github.com/nbhznb/learnify/internal/ui/theme"
)

// Chart renders question chart data as text. Bar and line kinds draw
// scaled horizontal bars, pie shows share of the total, and table (the
// fallback) lists label/value pairs.
type Chart struct {
	Kind   quiz.ChartKind
	Points []quiz.ChartPoint
	Width  int
}

func NewChart(kind quiz.ChartKind, points []quiz.ChartPoint, width int) Chart {
	return Chart{Kind: kind, Points: points, Width: width}
}

// View renders the chart.
func (c Chart) View() string {
	if len(c.Points) == 0 {
		return ""
	}

	switch c.Kind {
	case quiz.ChartBar, quiz.ChartLine:
		return c.renderBars()
	case quiz.ChartPie:
		return c.renderShares()
	default:
		return c.renderTable()
	}
}

func (c Chart) labelWidth() int {
	w := 0
	for _, p := range c.Points {
		if len(p.Label) > w {
			w = len(p.Label)
		}
	}
	return w
}

func (c Chart) renderBars() string {
	max := 0.0
	for _, p := range c.Points {
		if p.Value > max {
			max = p.Value
		}
	}
	if max == 0 {
		max = 1
	}

	labelW := c.labelWidth()
	barSpace := c.Width - labelW - 12
	if barSpace < 8 {
		barSpace = 8
	}

	var b strings.Builder
	for _, p := range c.Points {
		n := int(p.Value / max * float64(barSpace))
		if n < 1 && p.Value > 0 {
			n = 1
		}
		bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", n))
		fmt.Fprintf(&b, "%-*s  %s %s\n", labelW, p.Label, bar, formatValue(p.Value))
	}
	return b.String()
}

func (c Chart) renderShares() string {
	total := 0.0
	for _, p := range c.Points {
		total += p.Value
	}
	if total == 0 {
		return c.renderTable()
	}

	labelW := c.labelWidth()
	var b strings.Builder
	for _, p := range c.Points {
		pct := p.Value / total * 100
		bar := lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Repeat("█", int(pct/5)))
		fmt.Fprintf(&b, "%-*s  %5.1f%% %s\n", labelW, p.Label, pct, bar)
	}
	return b.String()
}

func (c Chart) renderTable() string {
	labelW := c.labelWidth()
	var b strings.Builder
	for _, p := range c.Points {
		fmt.Fprintf(&b, "%-*s │ %s\n", labelW, p.Label, formatValue(p.Value))
	}
	return b.String()
}

func formatValue(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.2f", v)
}
