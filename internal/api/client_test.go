package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nbhznb/learnify/internal/quiz"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL)
}

func TestQuestionPool_BatchFlattensCategories(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/questions/maths" {
			t.Errorf("path = %q, want /questions/maths", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"categories": []map[string]any{
				{
					"name": "Arithmetic",
					"questions": []map[string]any{
						{"text": "2+3?", "type": "mcq", "correctAnswer": "5", "wrongAnswers": []string{"4", "6"}},
						{"text": "7-2?", "type": "mcq", "correctAnswer": "5", "wrongAnswers": []string{"9", "3"}},
					},
				},
				{
					"name": "Geometry",
					"questions": []map[string]any{
						{"text": "Sides of a square?", "type": "text", "correctAnswer": "4", "explanation": "A square has four equal sides."},
					},
				},
			},
		})
	}

	c := newTestClient(t, handler)
	pool, err := c.QuestionPool(context.Background(), quiz.CategoryMaths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pool) != 3 {
		t.Fatalf("pool size = %d, want 3 (flattened across sub-categories)", len(pool))
	}
	if pool[2].Explanation != "A square has four equal sides." {
		t.Errorf("explanation not carried through: %q", pool[2].Explanation)
	}
}

func TestQuestionPool_SequentialRemapsFields(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/questions/nvr" {
			t.Errorf("path = %q, want /questions/nvr", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"questions": []map[string]any{
				{
					"text":        "Which shape completes the sequence?",
					"question":    "/images/nvr/42.png",
					"answer":      "C",
					"distractors": []string{"A", "B", "D"},
					"explanation": "The pattern rotates clockwise.",
				},
			},
		})
	}

	c := newTestClient(t, handler)
	pool, err := c.QuestionPool(context.Background(), quiz.CategoryNVR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pool) != 1 {
		t.Fatalf("pool size = %d, want 1", len(pool))
	}
	q := pool[0]
	if q.Type != quiz.TypeMCQ {
		t.Errorf("type = %q, want mcq", q.Type)
	}
	if q.ImagePath != "/images/nvr/42.png" {
		t.Errorf("image path = %q", q.ImagePath)
	}
	if q.CorrectAnswer != "C" || len(q.WrongAnswers) != 3 {
		t.Errorf("answers not remapped: %+v", q)
	}
}

func TestQuestionPool_EssayQuestionsNeedNoAnswer(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"categories": []map[string]any{
				{
					"name": "Writing",
					"questions": []map[string]any{
						{"text": "Describe your favourite place.", "type": "writing-prompt"},
						{"text": "Analyse the opening paragraph.", "type": "text-analysis"},
					},
				},
				{
					"name": "Comprehension",
					"questions": []map[string]any{
						{"text": "Synonym of rapid?", "type": "mcq", "correctAnswer": "quick", "wrongAnswers": []string{"slow", "late"}},
					},
				},
			},
		})
	}

	c := newTestClient(t, handler)
	pool, err := c.QuestionPool(context.Background(), quiz.CategoryEnglish)
	if err != nil {
		t.Fatalf("essay questions without correctAnswer must validate: %v", err)
	}
	if len(pool) != 3 {
		t.Fatalf("pool size = %d, want 3", len(pool))
	}
	if pool[0].Type != quiz.TypeWritingPrompt || pool[0].CorrectAnswer != "" {
		t.Errorf("writing prompt not carried through: %+v", pool[0])
	}
}

func TestQuestionPool_ObjectiveQuestionStillNeedsAnswer(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"categories": []map[string]any{
				{
					"questions": []map[string]any{
						{"text": "2+3?", "type": "mcq"},
					},
				},
			},
		})
	}

	c := newTestClient(t, handler)
	_, err := c.QuestionPool(context.Background(), quiz.CategoryMaths)
	if err == nil {
		t.Fatal("expected a validation error for an mcq without correctAnswer")
	}
}

func TestQuestionPool_RejectsMalformedPayload(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// A sequential question with no answer field.
		w.Write([]byte(`{"questions": [{"text": "incomplete"}]}`))
	}

	c := newTestClient(t, handler)
	_, err := c.QuestionPool(context.Background(), quiz.CategorySpatial)
	if err == nil {
		t.Fatal("expected a validation error for a payload missing required fields")
	}
}

func TestQuestionPool_ChartDataNumericArray(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"categories": []map[string]any{
				{
					"questions": []map[string]any{
						{
							"text":          "Highest temperature?",
							"type":          "chart",
							"correctAnswer": "Day 3",
							"chartType":     "bar",
							"chartData":     []float64{12, 14, 19, 11},
						},
					},
				},
			},
		})
	}

	c := newTestClient(t, handler)
	pool, err := c.QuestionPool(context.Background(), quiz.CategoryMaths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	points := pool[0].ChartData
	if len(points) != 4 {
		t.Fatalf("points = %d, want 4", len(points))
	}
	if points[2].Label != "Day 3" || points[2].Value != 19 {
		t.Errorf("point[2] = %+v, want Day 3 / 19", points[2])
	}
}

func TestQuestionPool_ChartDataLabelledObjects(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"categories": []map[string]any{
				{
					"questions": []map[string]any{
						{
							"text":          "Most popular fruit?",
							"type":          "chart",
							"correctAnswer": "Apples",
							"chartType":     "pie",
							"chartData": []map[string]any{
								{"fruit": "Apples", "votes": 9},
								{"fruit": "Pears", "votes": 4},
							},
						},
					},
				},
			},
		})
	}

	c := newTestClient(t, handler)
	pool, err := c.QuestionPool(context.Background(), quiz.CategoryMaths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	points := pool[0].ChartData
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2", len(points))
	}
	if points[0].Label != "Apples" || points[0].Value != 9 {
		t.Errorf("point[0] = %+v, want Apples / 9", points[0])
	}
}

func TestLogin_DecodesTokenAndNumericID(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/user/login" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "ada" || body["password"] != "hunter2" {
			t.Errorf("credentials not forwarded: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user": 17, "access_token": "tok-abc"}`))
	}

	c := newTestClient(t, handler)
	result, err := c.Login(context.Background(), "ada", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UserID != "17" || result.Token != "tok-abc" {
		t.Errorf("result = %+v", result)
	}
}

func TestProfile_SendsBearerToken(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "17", "username": "ada", "email": "ada@example.com"}`))
	}

	c := newTestClient(t, handler)
	user, err := c.Profile(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "ada" || user.ID != "17" {
		t.Errorf("user = %+v", user)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "token expired"}`))
	}

	c := newTestClient(t, handler)
	_, err := c.Profile(context.Background(), "stale")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
}

func TestServerErrorCarriesMessage(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "database offline"}`))
	}

	c := newTestClient(t, handler)
	_, err := c.Login(context.Background(), "ada", "pw")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.Message != "database offline" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestDiagram_ReturnsImageURL(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/diagram" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"image_url": "https://cdn.example.com/fig.png"}`))
	}

	c := newTestClient(t, handler)
	q := &quiz.Question{Text: "Area of the shaded region?", Type: quiz.TypeDiagram, CorrectAnswer: "12"}
	url, err := c.Diagram(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://cdn.example.com/fig.png" {
		t.Errorf("url = %q", url)
	}
}

func TestDeleteAccount_UsesDeleteVerb(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/user/profile" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}

	c := newTestClient(t, handler)
	if err := c.DeleteAccount(context.Background(), "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
