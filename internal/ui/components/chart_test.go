package components

import (
	"strings"
	"testing"

	"github.com/nbhznb/learnify/internal/quiz"
)

func chartPoints() []quiz.ChartPoint {
	return []quiz.ChartPoint{
		{Label: "Mon", Value: 10},
		{Label: "Tue", Value: 20},
		{Label: "Wed", Value: 5},
	}
}

func TestChartBarShowsEveryLabel(t *testing.T) {
	out := NewChart(quiz.ChartBar, chartPoints(), 60).View()
	for _, label := range []string{"Mon", "Tue", "Wed"} {
		if !strings.Contains(out, label) {
			t.Errorf("bar chart missing label %q:\n%s", label, out)
		}
	}
}

func TestChartBarScalesToMax(t *testing.T) {
	out := NewChart(quiz.ChartBar, chartPoints(), 60).View()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	count := func(s string) int { return strings.Count(s, "█") }
	if count(lines[1]) <= count(lines[0]) || count(lines[0]) <= count(lines[2]) {
		t.Errorf("bar lengths not ordered by value:\n%s", out)
	}
}

func TestChartPieSumsToHundred(t *testing.T) {
	out := NewChart(quiz.ChartPie, []quiz.ChartPoint{
		{Label: "A", Value: 1},
		{Label: "B", Value: 3},
	}, 60).View()
	if !strings.Contains(out, "25.0%") || !strings.Contains(out, "75.0%") {
		t.Errorf("pie chart shares wrong:\n%s", out)
	}
}

func TestChartTableFallback(t *testing.T) {
	out := NewChart(quiz.ChartTable, chartPoints(), 60).View()
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "10") {
		t.Errorf("table missing data:\n%s", out)
	}
}

func TestChartEmptyData(t *testing.T) {
	if out := NewChart(quiz.ChartBar, nil, 60).View(); out != "" {
		t.Errorf("empty chart rendered %q", out)
	}
}
