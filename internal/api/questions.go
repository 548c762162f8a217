package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nbhznb/learnify/internal/quiz"
)

// questionPayload is the server's question record. Batch and sequential
// categories use different field names for the same concepts, so both
// sets are declared and normalization picks the right ones.
type questionPayload struct {
	Text        string          `json:"text"`
	Type        string          `json:"type"`
	Question    string          `json:"question"` // image path (sequential categories)
	Answer      string          `json:"answer"`   // sequential field name
	Correct     string          `json:"correctAnswer"`
	Wrong       []string        `json:"wrongAnswers"`
	Distractors []string        `json:"distractors"` // sequential field name
	Explanation string          `json:"explanation"`
	ChartType   string          `json:"chartType"`
	ChartData   json.RawMessage `json:"chartData"`
}

type questionsResponse struct {
	Categories []struct {
		Name      string            `json:"name"`
		Questions []questionPayload `json:"questions"`
	} `json:"categories"`
	Questions []questionPayload `json:"questions"`
}

// QuestionPool fetches and normalizes questions for a category. Batch
// categories yield every sub-category pool flattened into one sequence;
// sequential categories yield a single remapped mcq question.
func (c *Client) QuestionPool(ctx context.Context, category quiz.Category) ([]quiz.Question, error) {
	data, err := c.do(ctx, http.MethodGet, "/questions/"+category.Slug(), "", nil)
	if err != nil {
		return nil, err
	}

	if err := validateQuestionsPayload(data); err != nil {
		return nil, err
	}

	var resp questionsResponse
	if err := decode(data, &resp); err != nil {
		return nil, err
	}

	if category.Sequential() {
		if len(resp.Questions) == 0 {
			return nil, nil
		}
		q := normalizeSequential(resp.Questions[0])
		return []quiz.Question{q}, nil
	}

	var pool []quiz.Question
	for _, group := range resp.Categories {
		for _, p := range group.Questions {
			pool = append(pool, normalizeBatch(p))
		}
	}
	return pool, nil
}

// normalizeSequential remaps a one-per-round-trip question into the
// common shape: the type is fixed to mcq and distractors become the
// wrong-answer set.
func normalizeSequential(p questionPayload) quiz.Question {
	return quiz.Question{
		Text:          p.Text,
		Type:          quiz.TypeMCQ,
		ImagePath:     p.Question,
		CorrectAnswer: p.Answer,
		WrongAnswers:  p.Distractors,
		Explanation:   p.Explanation,
	}
}

func normalizeBatch(p questionPayload) quiz.Question {
	q := quiz.Question{
		Text:          p.Text,
		Type:          quiz.QuestionType(p.Type),
		CorrectAnswer: p.Correct,
		WrongAnswers:  p.Wrong,
		Explanation:   p.Explanation,
	}
	if q.Type == quiz.TypeChart {
		q.ChartKind = quiz.ChartKind(p.ChartType)
		q.ChartData = normalizeChartData(p.ChartData)
	}
	return q
}

// normalizeChartData reshapes the two chart payload forms into labelled
// points: a bare numeric array becomes day-indexed values, and an array
// of objects takes its label from the first string field and its value
// from the first numeric field.
func normalizeChartData(raw json.RawMessage) []quiz.ChartPoint {
	if len(raw) == 0 {
		return nil
	}

	var daily []float64
	if err := json.Unmarshal(raw, &daily); err == nil {
		points := make([]quiz.ChartPoint, len(daily))
		for i, v := range daily {
			points[i] = quiz.ChartPoint{Label: fmt.Sprintf("Day %d", i+1), Value: v}
		}
		return points
	}

	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil
	}
	points := make([]quiz.ChartPoint, 0, len(rows))
	for _, row := range rows {
		var point quiz.ChartPoint
		for _, v := range row {
			switch val := v.(type) {
			case float64:
				point.Value = val
			case string:
				if point.Label == "" {
					point.Label = val
				}
			}
		}
		points = append(points, point)
	}
	return points
}

// Diagram requests a rendered figure for a diagram question and returns
// its image URL.
func (c *Client) Diagram(ctx context.Context, q *quiz.Question) (string, error) {
	body := map[string]any{
		"text":          q.Text,
		"type":          string(q.Type),
		"correctAnswer": q.CorrectAnswer,
	}

	data, err := c.do(ctx, http.MethodPost, "/diagram", "", body)
	if err != nil {
		return "", err
	}

	var resp struct {
		ImageURL string `json:"image_url"`
	}
	if err := decode(data, &resp); err != nil {
		return "", err
	}
	if resp.ImageURL == "" {
		return "", fmt.Errorf("diagram response missing image_url")
	}
	return resp.ImageURL, nil
}
