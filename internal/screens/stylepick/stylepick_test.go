package stylepick

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nbhznb/learnify/internal/quiz"
	"github.com/nbhznb/learnify/internal/router"
	"github.com/nbhznb/learnify/internal/screen"
)

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestSelectStylePushesQuizRunner(t *testing.T) {
	deps := &screen.Deps{State: &quiz.State{Category: quiz.CategoryMaths}}
	s := New(deps)

	_, cmd := s.Update(enterKey())
	if cmd == nil {
		t.Fatal("selecting a style produced no command")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("msg = %T, want a screen push", msg)
	}
	if deps.State.Style == "" {
		t.Error("style not recorded in the shared state")
	}
}

func TestSelectStyleWithoutCategoryDoesNotPush(t *testing.T) {
	deps := &screen.Deps{State: &quiz.State{}}
	s := New(deps)

	_, cmd := s.Update(enterKey())
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("msg = %T, quiz must not start without a category", msg)
	}
}
