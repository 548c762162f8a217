package quiz

import "math"

// Summary is the results payload emitted when a run terminates.
type Summary struct {
	Category Category
	Style    Style
	Correct  int
	Wrong    int
}

// Total returns the number of questions answered during the run.
func (s Summary) Total() int {
	return s.Correct + s.Wrong
}

// Percent returns the rounded correct-answer percentage, 0 for an
// empty run.
func (s Summary) Percent() int {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(total) * 100))
}
