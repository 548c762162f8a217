package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nbhznb/learnify/internal/quiz"
)

// Result is one finished quiz run as stored on disk.
type Result struct {
	ID       string
	Category quiz.Category
	Style    quiz.Style
	Correct  int
	Wrong    int
	TakenAt  time.Time
}

// Total returns how many questions were answered.
func (r Result) Total() int {
	return r.Correct + r.Wrong
}

// Percent mirrors the results-screen percentage for stored rows.
func (r Result) Percent() int {
	s := quiz.Summary{Category: r.Category, Style: r.Style, Correct: r.Correct, Wrong: r.Wrong}
	return s.Percent()
}

// ResultRepo reads and writes quiz result history.
type ResultRepo struct {
	db *sql.DB
}

// Append records a finished run with a fresh id and timestamp, and
// returns the stored row.
func (r *ResultRepo) Append(ctx context.Context, summary quiz.Summary) (Result, error) {
	result := Result{
		ID:       uuid.NewString(),
		Category: summary.Category,
		Style:    summary.Style,
		Correct:  summary.Correct,
		Wrong:    summary.Wrong,
		TakenAt:  time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_results (id, category, style, correct, wrong, taken_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.ID, string(result.Category), string(result.Style),
		result.Correct, result.Wrong, result.TakenAt,
	)
	if err != nil {
		return Result{}, fmt.Errorf("insert result: %w", err)
	}
	return result, nil
}

// Best returns the highest stored percentage for a category/style pair,
// or -1 when nothing is stored yet. Percent is computed in Go because
// rows with different totals are not comparable by raw counts.
func (r *ResultRepo) Best(ctx context.Context, category quiz.Category, style quiz.Style) (int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT correct, wrong FROM quiz_results WHERE category = ? AND style = ?`,
		string(category), string(style))
	if err != nil {
		return -1, fmt.Errorf("query best: %w", err)
	}
	defer rows.Close()

	best := -1
	for rows.Next() {
		var res Result
		if err := rows.Scan(&res.Correct, &res.Wrong); err != nil {
			return -1, fmt.Errorf("scan best: %w", err)
		}
		if p := res.Percent(); p > best {
			best = p
		}
	}
	return best, rows.Err()
}

// Recent returns up to limit results, newest first.
func (r *ResultRepo) Recent(ctx context.Context, limit int) ([]Result, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category, style, correct, wrong, taken_at
		 FROM quiz_results ORDER BY taken_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var res Result
		var category, style string
		if err := rows.Scan(&res.ID, &category, &style, &res.Correct, &res.Wrong, &res.TakenAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		res.Category = quiz.Category(category)
		res.Style = quiz.Style(style)
		results = append(results, res)
	}
	return results, rows.Err()
}
