package quiz

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
)

func testPool(n int) []Question {
	pool := make([]Question, n)
	for i := range pool {
		pool[i] = Question{
			Text:          string(rune('A' + i)),
			Type:          TypeMCQ,
			CorrectAnswer: "right",
			WrongAnswers:  []string{"w1", "w2", "w3"},
		}
	}
	return pool
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func countByText(qs []Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range qs {
		counts[q.Text]++
	}
	return counts
}

func TestBuildSet_ExactCount(t *testing.T) {
	cases := []struct {
		name     string
		poolSize int
		limit    int
	}{
		{"pool larger than limit", 30, 10},
		{"pool equals limit", 10, 10},
		{"pool smaller than limit", 3, 7},
		{"single question long quiz", 1, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := BuildSet(testPool(tc.poolSize), tc.limit, testRNG())
			if len(out) != tc.limit {
				t.Errorf("len = %d, want %d", len(out), tc.limit)
			}
		})
	}
}

func TestBuildSet_NoForeignElements(t *testing.T) {
	pool := testPool(5)
	out := BuildSet(pool, 12, testRNG())

	valid := countByText(pool)
	for _, q := range out {
		if valid[q.Text] == 0 {
			t.Errorf("output contains %q, not in pool", q.Text)
		}
	}
}

func TestBuildSet_MultiplicityBounds(t *testing.T) {
	// Pool of 3, limit 7: padding repeats the pool three times (9
	// items) then truncates, so no question can appear more than 3
	// times.
	pool := testPool(3)
	out := BuildSet(pool, 7, testRNG())

	for text, n := range countByText(out) {
		if n > 3 {
			t.Errorf("question %q appears %d times, max 3 allowed", text, n)
		}
	}
}

func TestBuildSet_UnboundedIsPermutation(t *testing.T) {
	pool := testPool(20)
	out := BuildSet(pool, Unbounded, testRNG())

	if len(out) != len(pool) {
		t.Fatalf("len = %d, want %d (no duplication for unbounded)", len(out), len(pool))
	}
	counts := countByText(out)
	for _, q := range pool {
		if counts[q.Text] != 1 {
			t.Errorf("question %q appears %d times, want exactly 1", q.Text, counts[q.Text])
		}
	}
}

func TestBuildSet_DoesNotMutatePool(t *testing.T) {
	pool := testPool(8)
	original := make([]Question, len(pool))
	copy(original, pool)

	BuildSet(pool, Unbounded, testRNG())
	BuildSet(pool, 20, testRNG())

	for i := range pool {
		if pool[i].Text != original[i].Text {
			t.Fatalf("pool mutated at index %d", i)
		}
	}
}

func TestShuffleAnswers_ContainsAllChoices(t *testing.T) {
	q := &Question{
		Type:          TypeMCQ,
		CorrectAnswer: "right",
		WrongAnswers:  []string{"a", "b", "c"},
	}

	out := ShuffleAnswers(q, testRNG())
	if len(out) != 4 {
		t.Fatalf("len = %d, want 4", len(out))
	}

	seen := make(map[string]bool)
	for _, a := range out {
		seen[a] = true
	}
	for _, want := range []string{"right", "a", "b", "c"} {
		if !seen[want] {
			t.Errorf("missing choice %q", want)
		}
	}
}

type stubFetcher struct {
	pool []Question
	err  error
}

func (s *stubFetcher) QuestionPool(ctx context.Context, category Category) ([]Question, error) {
	return s.pool, s.err
}

func TestSupplier_EmptyPool(t *testing.T) {
	s := NewSupplier(&stubFetcher{}, testRNG())

	_, err := s.Fetch(context.Background(), CategoryMaths, 10)
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestSupplier_SequentialReturnsSingle(t *testing.T) {
	s := NewSupplier(&stubFetcher{pool: testPool(1)}, testRNG())

	out, err := s.Fetch(context.Background(), CategoryNVR, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("len = %d, want 1 (sequential ignores limit)", len(out))
	}
}

func TestSupplier_PropagatesFetchError(t *testing.T) {
	fetchErr := errors.New("connection refused")
	s := NewSupplier(&stubFetcher{err: fetchErr}, testRNG())

	_, err := s.Fetch(context.Background(), CategoryEnglish, 10)
	if !errors.Is(err, fetchErr) {
		t.Errorf("err = %v, want wrapped %v", err, fetchErr)
	}
}
