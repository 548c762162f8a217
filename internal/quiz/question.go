package quiz

// QuestionType identifies how a question is presented and answered.
type QuestionType string

const (
	// TypeMCQ is a multiple-choice question with one correct answer
	// and a set of distractors.
	TypeMCQ QuestionType = "mcq"

	// TypeText is answered by typing a free-form value that must match
	// the correct answer exactly.
	TypeText QuestionType = "text"

	// TypeWritingPrompt is a long-form writing task graded by the essay
	// heuristic. No fixed answer exists.
	TypeWritingPrompt QuestionType = "writing-prompt"

	// TypeTextAnalysis is a comprehension task, also graded by the essay
	// heuristic.
	TypeTextAnalysis QuestionType = "text-analysis"

	// TypeChart presents a data set the learner must read before
	// answering.
	TypeChart QuestionType = "chart"

	// TypeDiagram presents a server-rendered figure. Answers may carry
	// unit suffixes that are stripped before comparison.
	TypeDiagram QuestionType = "diagram"
)

// IsEssay reports whether answers to this type are graded by the essay
// heuristic rather than by exact match.
func (t QuestionType) IsEssay() bool {
	return t == TypeWritingPrompt || t == TypeTextAnalysis
}

// ChartKind selects the rendering for a chart question's data.
type ChartKind string

const (
	ChartTable ChartKind = "table"
	ChartBar   ChartKind = "bar"
	ChartLine  ChartKind = "line"
	ChartPie   ChartKind = "pie"
)

// ChartPoint is one labelled value in a chart question's data set.
type ChartPoint struct {
	Label string
	Value float64
}

// Question is the uniform record every server payload is normalized
// into. Immutable once fetched within a run.
type Question struct {
	Text string
	Type QuestionType

	// ImagePath is the server-relative path of the question image for
	// image-based (sequential) categories. Empty otherwise.
	ImagePath string

	// CorrectAnswer and WrongAnswers apply to objective types only.
	CorrectAnswer string
	WrongAnswers  []string
	Explanation   string

	// Chart payload, populated when Type is TypeChart.
	ChartKind ChartKind
	ChartData []ChartPoint
}

// Choices returns the full unshuffled answer set for an objective
// question: distractors plus the correct answer.
func (q *Question) Choices() []string {
	out := make([]string, 0, len(q.WrongAnswers)+1)
	out = append(out, q.WrongAnswers...)
	out = append(out, q.CorrectAnswer)
	return out
}
