package exam

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/asengupta/quizdeck/internal/judge"
	"github.com/asengupta/quizdeck/internal/question"
)

func examQuestions(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:      string(rune('a' + i)),
			Text:    "Pick the right one",
			Kind:    question.SingleChoice,
			Options: []string{"right", "wrong-1", "wrong-2"},
			Correct: question.Answer{Single: "right"},
		}
	}
	return qs
}

func newTestSession(t *testing.T, n, seconds int) *Session {
	t.Helper()
	s, err := New("test-exam", examQuestions(n), seconds, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew_Validation(t *testing.T) {
	if _, err := New("e", nil, 60, nil); !errors.Is(err, question.ErrNoValidQuestions) {
		t.Errorf("empty list: err = %v, want ErrNoValidQuestions", err)
	}
	if _, err := New("e", examQuestions(1), 0, nil); err == nil {
		t.Error("zero duration should be rejected")
	}
}

func TestNavigate(t *testing.T) {
	s := newTestSession(t, 5, 60)

	if err := s.Navigate(3); err != nil {
		t.Fatalf("Navigate(3): %v", err)
	}
	if s.Current() != 3 {
		t.Errorf("Current = %d, want 3", s.Current())
	}

	for _, i := range []int{-1, 5, 100} {
		if err := s.Navigate(i); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("Navigate(%d): err = %v, want ErrInvalidIndex", i, err)
		}
	}
}

func TestNavigate_NeverMutates(t *testing.T) {
	s := newTestSession(t, 5, 60)

	if err := s.Answer(1, judge.Text("right")); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := s.ToggleBookmark(2); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := s.Navigate(i); err != nil {
			t.Fatalf("Navigate(%d): %v", i, err)
		}
	}

	if s.AnsweredCount() != 1 {
		t.Errorf("answers mutated by navigation: count = %d", s.AnsweredCount())
	}
	if !s.Bookmarked(2) || s.Bookmarked(1) {
		t.Error("bookmarks mutated by navigation")
	}
}

func TestAnswer_LastWriteWins(t *testing.T) {
	s := newTestSession(t, 2, 60)

	if err := s.Answer(0, judge.Letter("B")); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := s.Answer(0, judge.Letter("A")); err != nil {
		t.Fatalf("Answer overwrite: %v", err)
	}

	a, ok := s.AnswerAt(0)
	if !ok {
		t.Fatal("answer missing")
	}
	if a.String() != "A" {
		t.Errorf("answer = %s, want the latest write", a)
	}
	if s.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount = %d, want 1", s.AnsweredCount())
	}
}

func TestClearAndBookmark(t *testing.T) {
	s := newTestSession(t, 3, 60)

	if err := s.Answer(0, judge.Text("right")); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := s.Clear(0); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := s.AnswerAt(0); ok {
		t.Error("answer should be cleared")
	}

	// Bookmark toggling is symmetric and independent of answers.
	if err := s.ToggleBookmark(0); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	if !s.Bookmarked(0) {
		t.Error("bookmark not set")
	}
	if err := s.ToggleBookmark(0); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	if s.Bookmarked(0) {
		t.Error("bookmark not removed")
	}
}

func TestSubmit_Results(t *testing.T) {
	s := newTestSession(t, 4, 120)

	// 2 correct, 1 wrong, 1 unanswered.
	mustAnswer(t, s, 0, judge.Text("right"))
	mustAnswer(t, s, 1, judge.Letter("Z")) // resolves nowhere, wrong
	mustAnswer(t, s, 2, judge.Text("right"))

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4", res.TotalQuestions)
	}
	if res.TotalAnswered != 3 {
		t.Errorf("TotalAnswered = %d, want 3", res.TotalAnswered)
	}
	if res.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", res.CorrectCount)
	}
	if res.Percentage != 50 {
		t.Errorf("Percentage = %v, want 50", res.Percentage)
	}
	if !s.Completed() {
		t.Error("session should be completed")
	}
}

func TestSubmit_OneShot(t *testing.T) {
	s := newTestSession(t, 2, 60)

	if _, err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := s.Submit(); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("second Submit: err = %v, want ErrAlreadySubmitted", err)
	}

	// A completed session rejects every mutation.
	if err := s.Answer(0, judge.Text("right")); !errors.Is(err, ErrCompleted) {
		t.Errorf("Answer after submit: err = %v, want ErrCompleted", err)
	}
	if err := s.Clear(0); !errors.Is(err, ErrCompleted) {
		t.Errorf("Clear after submit: err = %v, want ErrCompleted", err)
	}
	if err := s.ToggleBookmark(0); !errors.Is(err, ErrCompleted) {
		t.Errorf("ToggleBookmark after submit: err = %v, want ErrCompleted", err)
	}
}

func TestTick_CountdownAndTimeUp(t *testing.T) {
	// Scenario C: time runs out with 2 of 5 unanswered.
	s := newTestSession(t, 5, 3)

	mustAnswer(t, s, 0, judge.Text("right"))
	mustAnswer(t, s, 1, judge.Text("wrong-1"))
	mustAnswer(t, s, 4, judge.Text("right"))

	if s.Tick() {
		t.Fatal("time up after 1 of 3 seconds")
	}
	if s.Tick() {
		t.Fatal("time up after 2 of 3 seconds")
	}
	if !s.Tick() {
		t.Fatal("expected time up on the final tick")
	}

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("auto-submit: %v", err)
	}
	if res.TotalAnswered != 3 {
		t.Errorf("TotalAnswered = %d, want 3", res.TotalAnswered)
	}
	if !s.Completed() {
		t.Error("session should be completed after time-up submit")
	}

	// A dangling tick after completion mutates nothing.
	remaining := s.Remaining()
	if s.Tick() {
		t.Error("tick after completion reported time up")
	}
	if s.Remaining() != remaining {
		t.Error("tick after completion mutated the countdown")
	}
}

func TestBreakdown_ReusesJudge(t *testing.T) {
	s := newTestSession(t, 3, 60)

	mustAnswer(t, s, 0, judge.Text("RIGHT")) // case-insensitive, correct
	mustAnswer(t, s, 1, judge.Text("wrong-1"))
	if err := s.ToggleBookmark(2); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	rows := s.Breakdown()
	if len(rows) != 3 {
		t.Fatalf("breakdown rows = %d, want 3", len(rows))
	}
	if !rows[0].Correct || !rows[0].Answered {
		t.Error("row 0 should be answered and correct")
	}
	if rows[1].Correct || !rows[1].Answered {
		t.Error("row 1 should be answered and incorrect")
	}
	if rows[2].Answered || rows[2].Correct {
		t.Error("row 2 should be unanswered and incorrect")
	}
	if !rows[2].Bookmarked {
		t.Error("row 2 should be bookmarked")
	}

	// The breakdown must agree with the aggregate it accompanies.
	correct := 0
	for _, r := range rows {
		if r.Correct {
			correct++
		}
	}
	if correct != res.CorrectCount {
		t.Errorf("breakdown correct = %d, Results.CorrectCount = %d", correct, res.CorrectCount)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := newTestSession(t, 3, 90)

	mustAnswer(t, s, 0, judge.Letter("A"))
	mustAnswer(t, s, 2, judge.TextSet([]string{"A", "B"}))
	if err := s.ToggleBookmark(1); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	s.Tick()
	s.Tick()

	snap := s.Snapshot()
	b, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	var back SnapshotData
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	restored := newTestSession(t, 3, 90)
	if err := restored.Restore(back); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.AnsweredCount() != 2 {
		t.Errorf("restored answers = %d, want 2", restored.AnsweredCount())
	}
	if !restored.Bookmarked(1) {
		t.Error("restored bookmark missing")
	}
	if restored.Remaining() != 88 {
		t.Errorf("restored remaining = %d, want 88", restored.Remaining())
	}
}

func TestRestore_RejectsOutOfRange(t *testing.T) {
	s := newTestSession(t, 2, 60)
	err := s.Restore(SnapshotData{
		Answers: map[int]judge.RawAnswer{7: judge.Letter("A")},
	})
	if !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("err = %v, want ErrInvalidIndex", err)
	}
}

func mustAnswer(t *testing.T, s *Session, i int, a judge.RawAnswer) {
	t.Helper()
	if err := s.Answer(i, a); err != nil {
		t.Fatalf("Answer(%d): %v", i, err)
	}
}
