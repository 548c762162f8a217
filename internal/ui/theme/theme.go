// Package theme holds the shared color palette. Screens compose their
// own lipgloss styles from these so the palette stays in one place.
package theme

import (
	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#7C3AED") // violet, headings and selection
	Secondary = lipgloss.Color("#0EA5E9") // sky blue, timers and progress
	Accent    = lipgloss.Color("#FBBF24") // amber, streaks and bests
	Success   = lipgloss.Color("#4ADE80")
	Error     = lipgloss.Color("#FB7185")

	Text    = lipgloss.Color("#E2E8F0")
	TextDim = lipgloss.Color("#64748B")

	BgCard = lipgloss.Color("#1E1B2E")
	Border = lipgloss.Color("#3F3A5A")
)
