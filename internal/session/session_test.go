package session

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/asengupta/quizdeck/internal/judge"
	"github.com/asengupta/quizdeck/internal/question"
)

// fixedQuestions builds n single-choice questions whose correct answer is
// always the option text "right", so tests can submit by text without
// caring how options were shuffled.
func fixedQuestions(n int) []question.Question {
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

func newTestState(t *testing.T, n int, cfg Config) *State {
	t.Helper()
	s, err := New("test-session", fixedQuestions(n), cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// assertOneActive checks the progression invariant: exactly one Active
// card unless the session is complete, in which case zero.
func assertOneActive(t *testing.T, s *State) {
	t.Helper()
	active := 0
	for _, c := range s.Cards {
		if c == Active {
			active++
		}
	}
	if s.Complete {
		if active != 0 {
			t.Fatalf("complete session has %d active cards, want 0", active)
		}
		return
	}
	if active != 1 {
		t.Fatalf("session has %d active cards, want 1", active)
	}
}

func TestNew_EmptyList(t *testing.T) {
	_, err := New("s", nil, DefaultConfig(), nil)
	if !errors.Is(err, question.ErrNoValidQuestions) {
		t.Fatalf("err = %v, want ErrNoValidQuestions", err)
	}
}

func TestNew_InitialCardStates(t *testing.T) {
	s := newTestState(t, 3, DefaultConfig())
	if s.Cards[0] != Active {
		t.Error("question 0 should start Active")
	}
	for i := 1; i < 3; i++ {
		if s.Cards[i] != Disabled {
			t.Errorf("question %d should start Disabled", i)
		}
	}
	assertOneActive(t, s)
}

func TestNew_OwnsQuestions(t *testing.T) {
	src := fixedQuestions(2)
	s, err := New("s", src, DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Questions[0].Options[0] = "mutated"
	for _, q := range src {
		for _, o := range q.Options {
			if o == "mutated" {
				t.Fatal("session must deep-copy the source questions")
			}
		}
	}
}

func TestSubmit_SequentialProgression(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowRetry = false
	s := newTestState(t, 3, cfg)

	// Scenario A: [correct, wrong, correct] with retry disabled.
	answers := []string{"right", "wrong-1", "right"}
	for i, a := range answers {
		res, err := Submit(s, i, judge.Text(a))
		if err != nil {
			t.Fatalf("Submit(%d): %v", i, err)
		}
		if res.QuestionIndex != i {
			t.Errorf("QuestionIndex = %d, want %d", res.QuestionIndex, i)
		}
		if s.Cards[i] != Locked {
			t.Errorf("card %d not Locked after submit", i)
		}
		assertOneActive(t, s)
	}

	if !s.Complete {
		t.Fatal("session should be Complete after the last submit")
	}
	if got := s.Score(); got != 2 {
		t.Errorf("Score = %d, want 2", got)
	}
	if len(s.Ledger) != 3 {
		t.Errorf("ledger has %d entries, want 3", len(s.Ledger))
	}
}

func TestSubmit_OnLockedIsRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowRetry = false
	s := newTestState(t, 2, cfg)

	if _, err := Submit(s, 0, judge.Text("wrong-1")); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	entry := s.Ledger[0]
	score := s.Score()

	// Repeated submit on the locked, non-retryable card changes nothing.
	_, err := Submit(s, 0, judge.Text("right"))
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if !reflect.DeepEqual(s.Ledger[0], entry) {
		t.Error("ledger entry mutated by rejected submit")
	}
	if s.Score() != score {
		t.Error("score mutated by rejected submit")
	}
}

func TestSubmit_OnDisabledIsRejected(t *testing.T) {
	s := newTestState(t, 3, DefaultConfig())
	if _, err := Submit(s, 2, judge.Text("right")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if s.Answered(2) {
		t.Error("rejected submit must not write the ledger")
	}
}

func TestSubmit_VerdictAndRetryOffer(t *testing.T) {
	s := newTestState(t, 2, DefaultConfig())

	res, err := Submit(s, 0, judge.Text("wrong-1"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Verdict {
		t.Error("wrong answer judged correct")
	}
	if !res.RetryOffered {
		t.Error("retry should be offered for a wrong answer with AllowRetry")
	}
	if !s.RetryOffered(0) {
		t.Error("RetryOffered(0) should be true")
	}
}

func TestRetry_Workflow(t *testing.T) {
	s := newTestState(t, 2, DefaultConfig())

	if _, err := Submit(s, 0, judge.Text("wrong-1")); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := Retry(s, 0); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if s.Cards[0] != Active {
		t.Error("retried card should be Active")
	}
	assertOneActive(t, s)

	// The retried submit can now succeed and award the point.
	res, err := Submit(s, 0, judge.Text("right"))
	if err != nil {
		t.Fatalf("Submit after retry: %v", err)
	}
	if !res.Verdict {
		t.Error("correct retry judged wrong")
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
	assertOneActive(t, s)
	if s.ActiveIndex() != 1 {
		t.Errorf("ActiveIndex = %d, want 1", s.ActiveIndex())
	}
}

func TestRetry_NeverOnCorrect(t *testing.T) {
	s := newTestState(t, 2, DefaultConfig())

	if _, err := Submit(s, 0, judge.Text("right")); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := Retry(s, 0); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("retry on correct entry: err = %v, want ErrInvalidTransition", err)
	}
}

func TestRetry_RequiresConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowRetry = false
	s := newTestState(t, 2, cfg)

	if _, err := Submit(s, 0, judge.Text("wrong-1")); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := Retry(s, 0); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestRetry_UnboundedUntilCorrect(t *testing.T) {
	s := newTestState(t, 1, DefaultConfig())

	// Scoring invariant: correct transitions false -> true at most once
	// and is never reset within the session.
	for attempt := 0; attempt < 4; attempt++ {
		if _, err := Submit(s, 0, judge.Text("wrong-1")); err != nil {
			t.Fatalf("Submit attempt %d: %v", attempt, err)
		}
		if s.Ledger[0].Correct {
			t.Fatal("wrong answer recorded as correct")
		}
		if err := Retry(s, 0); err != nil {
			t.Fatalf("Retry attempt %d: %v", attempt, err)
		}
	}

	if _, err := Submit(s, 0, judge.Text("right")); err != nil {
		t.Fatalf("final Submit: %v", err)
	}
	if !s.Ledger[0].Correct {
		t.Fatal("correct answer not recorded")
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
	if !s.Complete {
		t.Error("single-question session should be Complete")
	}
}

func TestRetry_OutOfOrderKeepsOneActive(t *testing.T) {
	s := newTestState(t, 4, DefaultConfig())

	if _, err := Submit(s, 0, judge.Text("wrong-1")); err != nil {
		t.Fatalf("Submit(0): %v", err)
	}
	if _, err := Submit(s, 1, judge.Text("wrong-2")); err != nil {
		t.Fatalf("Submit(1): %v", err)
	}

	// Retry question 0 while question 2 is the active frontier, then
	// retry question 1 as well. The invariant must hold throughout.
	if err := Retry(s, 0); err != nil {
		t.Fatalf("Retry(0): %v", err)
	}
	assertOneActive(t, s)
	if err := Retry(s, 1); err != nil {
		t.Fatalf("Retry(1): %v", err)
	}
	assertOneActive(t, s)

	// Resubmitting 1 locks it and re-activates the next non-Locked card;
	// later cards stay disabled.
	if _, err := Submit(s, 1, judge.Text("right")); err != nil {
		t.Fatalf("Submit(1) after retry: %v", err)
	}
	assertOneActive(t, s)
	if s.Cards[3] != Disabled {
		t.Error("card 3 should remain Disabled")
	}
}

func TestScore_MatchesLedgerAlways(t *testing.T) {
	s := newTestState(t, 3, DefaultConfig())

	steps := []struct {
		idx    int
		answer string
		retry  bool // retry idx before submitting
	}{
		{0, "wrong-1", false},
		{0, "right", true},
		{1, "wrong-2", false},
		{2, "right", false},
	}

	for _, st := range steps {
		if st.retry {
			if err := Retry(s, st.idx); err != nil {
				t.Fatalf("Retry(%d): %v", st.idx, err)
			}
		}
		if _, err := Submit(s, st.idx, judge.Text(st.answer)); err != nil {
			t.Fatalf("Submit(%d): %v", st.idx, err)
		}

		want := 0
		for _, e := range s.Ledger {
			if e.Correct {
				want++
			}
		}
		if got := s.Score(); got != want {
			t.Fatalf("Score = %d, ledger count = %d", got, want)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowRetry = false
	cfg.ShowImmediate = false // visibility off, computation still happens
	s := newTestState(t, 2, cfg)

	if _, err := Submit(s, 0, judge.Text("right")); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := Submit(s, 1, judge.Text("wrong-1")); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	sum := BuildSummary(s)
	if sum.Score != 1 || sum.Total != 2 {
		t.Errorf("Summary = %d/%d, want 1/2", sum.Score, sum.Total)
	}
	if len(sum.Ledger) != 2 {
		t.Errorf("ledger has %d entries, want 2 (populated despite suppressed feedback)", len(sum.Ledger))
	}
}
