package learn

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asengupta/quizdeck/internal/question"
	"github.com/asengupta/quizdeck/internal/screen"
	sess "github.com/asengupta/quizdeck/internal/session"
	"github.com/asengupta/quizdeck/internal/store"
	"github.com/asengupta/quizdeck/internal/ui/components"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	examEvents    []store.ExamEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendExamEvent(_ context.Context, data store.ExamEventData) error {
	m.examEvents = append(m.examEvents, data)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func learnQuestions(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:      fmt.Sprintf("q%d", i),
			Text:    fmt.Sprintf("Question %d", i),
			Kind:    question.SingleChoice,
			Options: []string{"right", "wrong-1", "wrong-2"},
			Correct: question.Answer{Single: "right"},
		}
	}
	return qs
}

// testLearnScreen builds a screen with its session already initialized,
// using a fixed rng so tests stay deterministic.
func testLearnScreen(t *testing.T, n int, cfg sess.Config) (*LearnScreen, *mockEventRepo) {
	t.Helper()
	repo := &mockEventRepo{}
	l := New(learnQuestions(n), cfg, repo)

	state, err := sess.New("test-session", l.questions, cfg, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("build session: %v", err)
	}
	l.state = state
	l.setupWidget(state.ActiveIndex())
	return l, repo
}

// selectOption moves the choice cursor to the option with the given text.
func selectOption(t *testing.T, l *LearnScreen, text string) {
	t.Helper()
	i := l.state.ActiveIndex()
	for idx, opt := range l.state.Questions[i].Options {
		if opt == text {
			l.choice = components.Choice{Options: l.state.Questions[i].Options, Cursor: idx}
			return
		}
	}
	t.Fatalf("option %q not found", text)
}

func TestLearnScreen_Title(t *testing.T) {
	l, _ := testLearnScreen(t, 2, sess.DefaultConfig())
	if l.Title() != "Learning" {
		t.Errorf("Title = %q, want %q", l.Title(), "Learning")
	}
}

func TestLearnScreen_View_NotEmpty(t *testing.T) {
	l, _ := testLearnScreen(t, 2, sess.DefaultConfig())
	if l.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}

func TestLearnScreen_QuitConfirm(t *testing.T) {
	l, _ := testLearnScreen(t, 2, sess.DefaultConfig())

	var scr screen.Screen = l
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ls := scr.(*LearnScreen)
	if !ls.quitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = ls.Update(keyPress('n'))
	ls = scr.(*LearnScreen)
	if ls.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}

	scr, _ = ls.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestLearnScreen_SubmitCorrect(t *testing.T) {
	l, repo := testLearnScreen(t, 2, sess.DefaultConfig())
	selectOption(t, l, "right")

	var scr screen.Screen = l
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ls := scr.(*LearnScreen)

	if ls.feedback == nil {
		t.Fatal("expected feedback after submit")
	}
	if !ls.feedback.Verdict {
		t.Error("expected correct verdict")
	}
	if ls.feedback.RetryOffered {
		t.Error("retry must not be offered for a correct answer")
	}
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	if !repo.answerEvents[0].Correct {
		t.Error("answer event should record correct=true")
	}
}

func TestLearnScreen_RetryFlow(t *testing.T) {
	l, _ := testLearnScreen(t, 2, sess.DefaultConfig())
	selectOption(t, l, "wrong-1")

	var scr screen.Screen = l
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ls := scr.(*LearnScreen)

	if ls.feedback == nil || ls.feedback.Verdict {
		t.Fatal("expected incorrect feedback")
	}
	if !ls.feedback.RetryOffered {
		t.Fatal("expected retry offer")
	}
	retryIdx := ls.feedback.QuestionIndex

	scr, _ = ls.Update(keyPress('r'))
	ls = scr.(*LearnScreen)
	if ls.feedback != nil {
		t.Error("expected feedback cleared after retry")
	}
	if got := ls.state.ActiveIndex(); got != retryIdx {
		t.Errorf("active index = %d, want %d after retry", got, retryIdx)
	}
}

func TestLearnScreen_FeedbackDismissAdvances(t *testing.T) {
	l, _ := testLearnScreen(t, 2, sess.DefaultConfig())
	first := l.state.ActiveIndex()
	selectOption(t, l, "right")

	var scr screen.Screen = l
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	ls := scr.(*LearnScreen)

	if ls.feedback != nil {
		t.Error("expected feedback dismissed")
	}
	if got := ls.state.ActiveIndex(); got == first {
		t.Error("expected the next card to be active")
	}
}

func TestLearnScreen_CompletionEmitsEndCommand(t *testing.T) {
	l, repo := testLearnScreen(t, 1, sess.DefaultConfig())
	selectOption(t, l, "right")

	var scr screen.Screen = l
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ls := scr.(*LearnScreen)
	if !ls.feedback.SessionComplete {
		t.Fatal("expected session complete after the only question")
	}

	_, cmd := ls.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected session end command")
	}

	// Run the end flow and check the completion event.
	msg := cmd()
	if _, ok := msg.(sessionEndMsg); !ok {
		t.Fatalf("expected sessionEndMsg, got %T", msg)
	}
	_, cmd = ls.Update(msg)
	if cmd == nil {
		t.Fatal("expected summary replace command")
	}
	cmd()

	found := false
	for _, ev := range repo.sessionEvents {
		if ev.Action == "complete" && ev.Score == 1 && ev.Total == 1 {
			found = true
		}
	}
	if !found {
		t.Error("expected a complete session event with score 1/1")
	}
}

func TestLearnScreen_SuppressedFeedbackAdvancesSilently(t *testing.T) {
	cfg := sess.DefaultConfig()
	cfg.ShowImmediate = false
	l, _ := testLearnScreen(t, 2, cfg)
	first := l.state.ActiveIndex()
	selectOption(t, l, "right")

	var scr screen.Screen = l
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ls := scr.(*LearnScreen)

	if ls.feedback != nil {
		t.Error("feedback must be suppressed when ShowImmediate is off")
	}
	if ls.state.ActiveIndex() == first {
		t.Error("expected silent advance to the next card")
	}
}
