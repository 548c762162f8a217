package quiz

import "strings"

// Style is a quiz pacing configuration. It fixes the per-question
// countdown and the total question count for a run and cannot change
// mid-run.
type Style string

const (
	StyleFlash    Style = "Flash"
	StyleBolt     Style = "Bolt"
	StyleSpartan  Style = "Spartan"
	StyleMarathon Style = "Marathon"
)

// Unbounded marks a style with no question limit.
const Unbounded = 0

// Styles lists all pacing styles in picker order.
func Styles() []Style {
	return []Style{StyleFlash, StyleBolt, StyleSpartan, StyleMarathon}
}

// Seconds returns the countdown per question. Zero means untimed.
func (s Style) Seconds() int {
	switch s {
	case StyleSpartan:
		return 60
	case StyleMarathon:
		return 0
	default:
		// Flash and Bolt share the 30 second clock.
		return 30
	}
}

// Limit returns the total question count for the style, or Unbounded.
func (s Style) Limit() int {
	switch s {
	case StyleFlash:
		return 10
	case StyleBolt:
		return 100
	case StyleSpartan:
		return 300
	case StyleMarathon:
		return Unbounded
	default:
		return 10
	}
}

// Timed reports whether the style runs a per-question countdown.
func (s Style) Timed() bool {
	return s != StyleMarathon
}

// Description returns the blurb shown on the style picker.
func (s Style) Description() string {
	switch s {
	case StyleFlash:
		return "Quick 10-question sprint with 30 seconds per question. Perfect for a quick practice session."
	case StyleBolt:
		return "100 questions with 30 seconds each. A substantial challenge that tests your speed and accuracy."
	case StyleSpartan:
		return "300 questions, 1 minute each. The ultimate endurance test for serious preparation."
	case StyleMarathon:
		return "No time limit, infinite questions. Practice at your own pace until you're ready."
	}
	return ""
}

// ParseStyle maps a user-supplied name to a Style, ignoring case.
func ParseStyle(s string) (Style, bool) {
	for _, st := range Styles() {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}
