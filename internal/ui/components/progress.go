package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nbhznb/learnify/internal/ui/theme"
)

// Gauge renders a horizontal score bar with the percentage appended.
// The fill color follows the score band: green from 70%, amber from
// 50%, rose below.
func Gauge(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}

	barWidth := width - 6 // room for "  100%"
	if barWidth < 4 {
		barWidth = 4
	}
	filled := int(float64(barWidth)*percent + 0.5)

	color := theme.Error
	switch {
	case percent >= 0.7:
		color = theme.Success
	case percent >= 0.5:
		color = theme.Accent
	}

	bar := lipgloss.NewStyle().Foreground(color).
		Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).
			Render(strings.Repeat("░", barWidth-filled))

	pct := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", int(percent*100+0.5)))

	return bar + pct
}
