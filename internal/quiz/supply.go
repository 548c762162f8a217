package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrNoQuestions is returned when the server has no questions for the
// requested category.
var ErrNoQuestions = errors.New("no questions found for this category")

// Fetcher retrieves the raw normalized pool for a category. Batch
// categories return every question in one call; sequential categories
// return exactly one.
type Fetcher interface {
	QuestionPool(ctx context.Context, category Category) ([]Question, error)
}

// Supplier turns raw category pools into the ordered question set a run
// consumes, applying the style-dependent selection rules.
type Supplier struct {
	fetcher Fetcher
	rng     *rand.Rand
}

// NewSupplier creates a Supplier. A nil rng falls back to the shared
// global source.
func NewSupplier(fetcher Fetcher, rng *rand.Rand) *Supplier {
	return &Supplier{fetcher: fetcher, rng: rng}
}

// Fetch returns the question sequence for one load. For sequential
// categories the limit is ignored and a single question is returned.
// For batch categories the pool is padded, shuffled and truncated per
// BuildSet. limit <= Unbounded means the full pool as a permutation.
func (s *Supplier) Fetch(ctx context.Context, category Category, limit int) ([]Question, error) {
	pool, err := s.fetcher.QuestionPool(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("fetch %s questions: %w", category, err)
	}
	if len(pool) == 0 {
		return nil, ErrNoQuestions
	}

	if category.Sequential() {
		return pool[:1], nil
	}

	return BuildSet(pool, limit, s.rng), nil
}

// BuildSet applies the selection rules to a non-empty pool:
//
//   - limit <= Unbounded: the full pool, shuffled, no duplication.
//   - pool shorter than limit: the pool is concatenated with itself
//     until it reaches the limit, so short pools can still fill a long
//     quiz, then shuffled and truncated to exactly limit.
//   - otherwise: shuffled and truncated to exactly limit.
//
// Shuffling is an unbiased permutation (Fisher-Yates via rand.Shuffle);
// sorting by a random comparator would not be uniform.
func BuildSet(pool []Question, limit int, rng *rand.Rand) []Question {
	if limit <= Unbounded {
		out := make([]Question, len(pool))
		copy(out, pool)
		shuffle(out, rng)
		return out
	}

	out := make([]Question, 0, max(len(pool), limit))
	out = append(out, pool...)
	for len(out) < limit {
		out = append(out, pool...)
	}

	shuffle(out, rng)
	return out[:limit]
}

func shuffle(qs []Question, rng *rand.Rand) {
	swap := func(i, j int) { qs[i], qs[j] = qs[j], qs[i] }
	if rng != nil {
		rng.Shuffle(len(qs), swap)
		return
	}
	rand.Shuffle(len(qs), swap)
}

// ShuffledChoices returns the answer permutation for a displayed
// question using the supplier's random source.
func (s *Supplier) ShuffledChoices(q *Question) []string {
	return ShuffleAnswers(q, s.rng)
}

// ShuffleAnswers returns a random permutation of the question's answer
// set (distractors plus the correct answer). Recomputed whenever the
// displayed question changes.
func ShuffleAnswers(q *Question, rng *rand.Rand) []string {
	out := q.Choices()
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if rng != nil {
		rng.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}
	return out
}
