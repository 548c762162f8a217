package quiz

import (
	"regexp"
	"strings"
)

// Outcome is the result of an advance-style transition on a Run.
type Outcome int

const (
	// OutcomeIgnored means the transition was dropped because a fetch
	// for the next question is already in flight.
	OutcomeIgnored Outcome = iota

	// OutcomeNext means the run moved to the next already-loaded
	// question; per-question UI state should be reset.
	OutcomeNext

	// OutcomeFetch means the caller must fetch exactly one new question
	// before input can be re-enabled. The in-flight guard is set until
	// SetQuestions is called.
	OutcomeFetch

	// OutcomeFinished means the run terminated; Summary carries the
	// accumulated counters.
	OutcomeFinished
)

// Run tracks one quiz attempt: the fetched question sequence, the
// current position, and the run-scoped counters. Counters exist only
// for the duration of the run and are handed off once via Summary.
type Run struct {
	Category Category
	Style    Style

	Questions []Question
	Index     int

	Answered int
	Correct  int
	Wrong    int

	// FetchInFlight serializes sequential-category advances: while a
	// one-question fetch is pending, timer expiry and manual skips are
	// ignored rather than stacking duplicate fetches.
	FetchInFlight bool

	Finished bool
}

// NewRun creates a run for the chosen category and pacing style.
func NewRun(category Category, style Style) *Run {
	return &Run{Category: category, Style: style}
}

// Current returns the displayed question, or nil when none is loaded.
func (r *Run) Current() *Question {
	if r.Index < 0 || r.Index >= len(r.Questions) {
		return nil
	}
	return &r.Questions[r.Index]
}

// SetQuestions installs a freshly fetched question sequence and clears
// the in-flight guard. Used for the initial load and for each
// sequential-category refresh.
func (r *Run) SetQuestions(qs []Question) {
	r.Questions = qs
	r.Index = 0
	r.FetchInFlight = false
}

// FetchFailed clears the in-flight guard after a failed refresh so the
// learner can retry.
func (r *Run) FetchFailed() {
	r.FetchInFlight = false
}

// Advance records one answered question and moves the run forward.
// Shared by the correct, incorrect, skip and essay paths.
func (r *Run) Advance(correct bool) Outcome {
	if r.FetchInFlight {
		return OutcomeIgnored
	}

	r.Answered++
	if correct {
		r.Correct++
	} else {
		r.Wrong++
	}

	if limit := r.Style.Limit(); limit != Unbounded && r.Answered >= limit {
		r.Finished = true
		return OutcomeFinished
	}

	if r.Category.Sequential() {
		r.FetchInFlight = true
		return OutcomeFetch
	}

	if r.Index < len(r.Questions)-1 {
		r.Index++
		return OutcomeNext
	}

	r.Finished = true
	return OutcomeFinished
}

// Skip counts the current question as wrong and advances. The in-flight
// guard applies: a skip issued while a fetch is pending is ignored.
func (r *Run) Skip() Outcome {
	return r.Advance(false)
}

// End terminates the run immediately, regardless of remaining
// questions, using whatever counters have accumulated.
func (r *Run) End() Summary {
	r.Finished = true
	return r.Summary()
}

// Summary builds the results payload for this run.
func (r *Run) Summary() Summary {
	return Summary{
		Category: r.Category,
		Style:    r.Style,
		Correct:  r.Correct,
		Wrong:    r.Wrong,
	}
}

// unitSuffix matches area/volume unit markers that diagram answers may
// carry (e.g. "24 cm²").
var unitSuffix = regexp.MustCompile(`\s*cm[²³]\s*`)

// GradeAnswer compares a submitted value against the question's correct
// answer. Diagram answers are normalized by stripping unit-suffix
// artifacts from both sides first; correctness is exact string equality
// after normalization.
func GradeAnswer(q *Question, submitted string) bool {
	correct := q.CorrectAnswer
	if q.Type == TypeDiagram {
		correct = strings.TrimSpace(unitSuffix.ReplaceAllString(correct, ""))
		submitted = strings.TrimSpace(unitSuffix.ReplaceAllString(submitted, ""))
	}
	return submitted == correct
}

// CorrectPosition returns the 1-indexed position of the correct answer
// within a shuffled answer set, or 0 if absent. Image-choice feedback
// refers to positions rather than raw image identifiers.
func CorrectPosition(q *Question, shuffled []string) int {
	for i, a := range shuffled {
		if a == q.CorrectAnswer {
			return i + 1
		}
	}
	return 0
}
