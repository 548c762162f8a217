package quizrun

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nbhznb/learnify/internal/essay"
	"github.com/nbhznb/learnify/internal/quiz"
	"github.com/nbhznb/learnify/internal/router"
	"github.com/nbhznb/learnify/internal/screen"
	"github.com/nbhznb/learnify/internal/screens/results"
	"github.com/nbhznb/learnify/internal/ui/components"
	"github.com/nbhznb/learnify/internal/ui/layout"
)

const (
	fetchTimeout   = 30 * time.Second
	diagramTimeout = 10 * time.Second

	// Correct answers flash briefly before moving on; essay feedback
	// lingers a little longer so the score can be read.
	correctAdvanceDelay = 2 * time.Second
	essayAdvanceDelay   = 3 * time.Second
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseFeedback
	phaseError
)

type feedbackKind int

const (
	feedbackCorrect feedbackKind = iota
	feedbackIncorrect
	feedbackEssay
)

// QuizScreen runs one quiz attempt for the category and style currently
// held in the shared selection state.
type QuizScreen struct {
	deps *screen.Deps
	run  *quiz.Run

	phase  phase
	errMsg string

	// fetchSeq guards against stale fetch responses: only the newest
	// request's reply is honored.
	fetchSeq int

	secondsLeft int
	timerFired  bool

	choices    []string
	correctPos int
	mcSelected int

	input components.TextInput
	area  components.TextArea
	spin  components.Spinner

	feedback    feedbackKind
	lastCorrect bool
	essayResult essay.Result

	diagramSeq int
	diagramURL string
	diagramErr string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the selected category and style.
func New(deps *screen.Deps) *QuizScreen {
	return &QuizScreen{
		deps: deps,
		run:  quiz.NewRun(deps.State.Category, deps.State.Style),
		spin: components.NewSpinner("Fetching questions..."),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.spin.Init(), s.fetchQuestions()}
	if s.run.Style.Timed() {
		cmds = append(cmds, tickCmd())
	}
	return tea.Batch(cmds...)
}

func (s *QuizScreen) Title() string {
	return s.run.Category.DisplayName()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Leave"},
		}
	case phaseFeedback:
		if s.feedback == feedbackIncorrect {
			return []layout.KeyHint{{Key: "any key", Description: "Next question"}}
		}
		return nil
	case phaseAnswering:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
		if q := s.run.Current(); q != nil && q.Type.IsEssay() {
			hints = []layout.KeyHint{{Key: "Ctrl+D", Description: "Submit essay"}}
		}
		return append(hints,
			layout.KeyHint{Key: "Ctrl+K", Description: "Skip"},
			layout.KeyHint{Key: "Ctrl+E", Description: "End quiz"},
		)
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return s.handleQuestionsLoaded(msg)
	case timerTickMsg:
		return s.handleTimerTick()
	case feedbackDoneMsg:
		return s.handleFeedbackDone()
	case diagramReadyMsg:
		return s.handleDiagramReady(msg)
	case endQuizMsg:
		return s, s.finish(s.run.End())
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseLoading {
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	}
	if s.phase == phaseAnswering {
		return s.forwardToInput(msg)
	}
	return s, nil
}

// fetchQuestions starts an asynchronous question load and bumps the
// sequence number so any earlier in-flight load is orphaned.
func (s *QuizScreen) fetchQuestions() tea.Cmd {
	s.fetchSeq++
	seq := s.fetchSeq
	supplier := s.deps.Supplier
	category := s.run.Category
	limit := s.run.Style.Limit()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		qs, err := supplier.Fetch(ctx, category, limit)
		return questionsLoadedMsg{Seq: seq, Questions: qs, Err: err}
	}
}

func (s *QuizScreen) handleQuestionsLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.fetchSeq {
		return s, nil
	}
	if msg.Err != nil {
		s.run.FetchFailed()
		s.phase = phaseError
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.run.SetQuestions(msg.Questions)
	return s.showCurrentQuestion()
}

// showCurrentQuestion resets per-question UI state for the run's
// current question and arms whatever input it needs.
func (s *QuizScreen) showCurrentQuestion() (screen.Screen, tea.Cmd) {
	q := s.run.Current()
	if q == nil {
		return s, s.finish(s.run.End())
	}

	s.phase = phaseAnswering
	s.timerFired = false
	s.secondsLeft = s.run.Style.Seconds()
	s.mcSelected = 0
	s.choices = nil
	s.correctPos = 0
	s.diagramURL = ""
	s.diagramErr = ""

	var cmds []tea.Cmd
	switch {
	case q.Type == quiz.TypeMCQ:
		s.choices = s.deps.Supplier.ShuffledChoices(q)
		s.correctPos = quiz.CorrectPosition(q, s.choices)
	case q.Type.IsEssay():
		s.area = components.NewTextArea("Write your answer here...", 70, 12)
		cmds = append(cmds, s.area.Init())
	default:
		s.input = components.NewTextInput("Type your answer...", 60)
		cmds = append(cmds, s.input.Init())
	}

	if q.Type == quiz.TypeDiagram {
		cmds = append(cmds, s.fetchDiagram(q))
	}

	return s, tea.Batch(cmds...)
}

// fetchDiagram requests the rendered figure with its own timeout so a
// stuck render shows an error instead of waiting forever.
func (s *QuizScreen) fetchDiagram(q *quiz.Question) tea.Cmd {
	s.diagramSeq++
	seq := s.diagramSeq
	client := s.deps.Client
	question := *q

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), diagramTimeout)
		defer cancel()
		url, err := client.Diagram(ctx, &question)
		return diagramReadyMsg{Seq: seq, URL: url, Err: err}
	}
}

func (s *QuizScreen) handleDiagramReady(msg diagramReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.diagramSeq {
		return s, nil
	}
	if msg.Err != nil {
		s.diagramErr = msg.Err.Error()
		return s, nil
	}
	s.diagramURL = msg.URL
	return s, nil
}

func (s *QuizScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.run.Finished {
		return s, nil
	}

	if s.phase == phaseAnswering && s.run.Style.Timed() && !s.timerPaused() && !s.run.FetchInFlight {
		if s.secondsLeft > 0 {
			s.secondsLeft--
		}
		if s.secondsLeft == 0 && !s.timerFired {
			s.timerFired = true
			outcome := s.run.Skip()
			_, cmd := s.applyOutcome(outcome)
			return s, tea.Batch(cmd, tickCmd())
		}
	}

	return s, tickCmd()
}

// timerPaused reports whether the countdown is suspended. Long-form
// writing is untimed even inside a timed style.
func (s *QuizScreen) timerPaused() bool {
	q := s.run.Current()
	return q != nil && q.Type == quiz.TypeWritingPrompt
}

func (s *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.phase != phaseFeedback {
		return s, nil
	}
	outcome := s.run.Advance(s.lastCorrect)
	return s.applyOutcome(outcome)
}

func (s *QuizScreen) applyOutcome(outcome quiz.Outcome) (screen.Screen, tea.Cmd) {
	switch outcome {
	case quiz.OutcomeNext:
		return s.showCurrentQuestion()
	case quiz.OutcomeFetch:
		s.phase = phaseLoading
		s.spin = components.NewSpinner("Fetching next question...")
		return s, tea.Batch(s.spin.Init(), s.fetchQuestions())
	case quiz.OutcomeFinished:
		return s, s.finish(s.run.Summary())
	}
	return s, nil
}

func (s *QuizScreen) finish(summary quiz.Summary) tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(deps, summary)}
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseError:
		switch key {
		case "r", "R":
			s.phase = phaseLoading
			s.errMsg = ""
			s.spin = components.NewSpinner("Retrying...")
			return s, tea.Batch(s.spin.Init(), s.fetchQuestions())
		default:
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case phaseFeedback:
		// Correct and essay overlays dismiss themselves on a timer;
		// only the incorrect overlay waits for a key.
		if s.feedback == feedbackIncorrect {
			return s.handleFeedbackDone()
		}
		return s, nil

	case phaseAnswering:
		switch key {
		case "ctrl+e":
			return s, func() tea.Msg { return endQuizMsg{} }
		case "ctrl+k":
			outcome := s.run.Skip()
			return s.applyOutcome(outcome)
		}

		q := s.run.Current()
		if q == nil {
			return s, nil
		}

		if q.Type == quiz.TypeMCQ {
			return s.handleChoiceKey(key)
		}
		if q.Type.IsEssay() {
			if key == "ctrl+d" {
				return s.submitEssay(q)
			}
			var cmd tea.Cmd
			s.area, cmd = s.area.Update(msg)
			return s, cmd
		}
		if key == "enter" {
			return s.submitText(q)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) handleChoiceKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.mcSelected > 0 {
			s.mcSelected--
		}
	case "down", "j":
		if s.mcSelected < len(s.choices)-1 {
			s.mcSelected++
		}
	case "1", "2", "3", "4", "5", "6":
		idx := int(key[0] - '1')
		if idx < len(s.choices) {
			s.mcSelected = idx
			return s.gradeSubmission(s.run.Current(), s.choices[idx])
		}
	case "enter":
		if s.mcSelected < len(s.choices) {
			return s.gradeSubmission(s.run.Current(), s.choices[s.mcSelected])
		}
	}
	return s, nil
}

func (s *QuizScreen) submitText(q *quiz.Question) (screen.Screen, tea.Cmd) {
	value := s.input.Value()
	if value == "" {
		return s, nil
	}
	return s.gradeSubmission(q, value)
}

func (s *QuizScreen) gradeSubmission(q *quiz.Question, answer string) (screen.Screen, tea.Cmd) {
	correct := quiz.GradeAnswer(q, answer)
	s.lastCorrect = correct
	s.phase = phaseFeedback

	if correct {
		s.feedback = feedbackCorrect
		return s, delayCmd(correctAdvanceDelay)
	}
	s.feedback = feedbackIncorrect
	return s, nil
}

// submitEssay grades whatever is in the editor, including empty text:
// submitting nothing is a real answer and scores accordingly.
func (s *QuizScreen) submitEssay(q *quiz.Question) (screen.Screen, tea.Cmd) {
	text := s.area.Value()
	criteria := essay.Classify(q.Text)
	s.essayResult = essay.Grade(text, criteria)
	s.lastCorrect = s.essayResult.Correct()
	s.feedback = feedbackEssay
	s.phase = phaseFeedback
	return s, delayCmd(essayAdvanceDelay)
}

func (s *QuizScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	q := s.run.Current()
	if q == nil {
		return s, nil
	}
	var cmd tea.Cmd
	if q.Type.IsEssay() {
		s.area, cmd = s.area.Update(msg)
	} else if q.Type != quiz.TypeMCQ {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// delayCmd dismisses the feedback overlay after d.
func delayCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}
