package quizrun

import (
	"time"

	"github.com/nbhznb/learnify/internal/quiz"
)

// questionsLoadedMsg is sent when a question fetch completes. Seq ties
// the response to the request that started it; responses from
// superseded fetches are dropped.
type questionsLoadedMsg struct {
	Seq       int
	Questions []quiz.Question
	Err       error
}

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// feedbackDoneMsg ends the feedback overlay and advances the run.
type feedbackDoneMsg struct{}

// diagramReadyMsg is sent when a diagram render request completes.
type diagramReadyMsg struct {
	Seq int
	URL string
	Err error
}

// endQuizMsg terminates the run and moves to results.
type endQuizMsg struct{}
