package quiz

// State is the selection state shared across screens: which subject and
// pacing style the learner has picked. It is owned by the composition
// root and passed by reference; screens mutate it only through the
// action methods below.
type State struct {
	Category Category
	Style    Style
}

// SetCategory records the chosen subject and clears any style picked
// for a previous subject.
func (s *State) SetCategory(c Category) {
	s.Category = c
	s.Style = ""
}

// SetStyle records the chosen pacing style.
func (s *State) SetStyle(st Style) {
	s.Style = st
}

// Reset returns the state to its initial empty value, as when
// navigating back home after a run.
func (s *State) Reset() {
	s.Category = ""
	s.Style = ""
}

// ReadyForStyle reports whether the style picker precondition holds.
func (s *State) ReadyForStyle() bool {
	return s.Category != ""
}

// ReadyForQuiz reports whether the quiz runner precondition holds.
func (s *State) ReadyForQuiz() bool {
	return s.Category != "" && s.Style != ""
}
