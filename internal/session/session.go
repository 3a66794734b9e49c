// Package session implements the sequential learning-mode engine: one
// question answerable at a time, immediate judging into a per-question
// ledger, and an unbounded retry workflow for incorrect answers.
package session

import (
	"errors"
	"fmt"

	"github.com/asengupta/quizdeck/internal/judge"
	"github.com/asengupta/quizdeck/internal/question"
)

// ErrInvalidTransition guards submissions and retries that the state
// machine should make unreachable: submitting a Locked or Disabled card,
// retrying a correct or unanswered one. Callers log and ignore it; it is
// never surfaced as a user-facing failure.
var ErrInvalidTransition = errors.New("invalid state transition")

// SubmitResult is the per-answer event handed to the renderer.
type SubmitResult struct {
	QuestionIndex   int
	Verdict         bool
	UserAnswer      judge.RawAnswer
	RetryOffered    bool
	SessionComplete bool
}

// Summary is the session-complete event: the final score read from the
// ledger, the total, and the ledger itself for the terminal reveal pass.
type Summary struct {
	Score  int
	Total  int
	Ledger map[int]LedgerEntry
}

// Submit judges the answer for question i and advances the state machine.
// It is accepted only while card i is Active; the verdict and raw answer
// are written to the ledger regardless of the feedback-visibility config.
// Card i locks and the next non-Locked card activates; everything beyond
// it is re-disabled so an out-of-order retry cannot leave later cards
// enabled. When no card remains to activate, the session is Complete.
func Submit(s *State, i int, ans judge.RawAnswer) (*SubmitResult, error) {
	if i < 0 || i >= len(s.Cards) {
		return nil, fmt.Errorf("%w: submit index %d out of range", ErrInvalidTransition, i)
	}
	if s.Cards[i] != Active {
		return nil, fmt.Errorf("%w: submit on %s question %d", ErrInvalidTransition, cardStateName(s.Cards[i]), i)
	}

	verdict := judge.Judge(&s.Questions[i], ans)

	prev, had := s.Ledger[i]
	s.Ledger[i] = LedgerEntry{Correct: verdict, Answer: ans}
	if verdict && (!had || !prev.Correct) {
		s.score++
	}

	s.Cards[i] = Locked
	s.advanceFrom(i)

	return &SubmitResult{
		QuestionIndex:   i,
		Verdict:         verdict,
		UserAnswer:      ans,
		RetryOffered:    !verdict && s.Config.AllowRetry,
		SessionComplete: s.Complete,
	}, nil
}

// Retry re-opens question i for exactly one more submit cycle. It is
// offered only for answered-and-incorrect questions under AllowRetry;
// a correct entry never retries, so its point cannot be lost. The
// question's options are reshuffled and card i becomes Active again;
// any other enabled card is demoted so the one-Active invariant holds.
// There is no bound on retry invocations.
func Retry(s *State, i int) error {
	if !s.Config.AllowRetry {
		return fmt.Errorf("%w: retry disabled by config", ErrInvalidTransition)
	}
	if i < 0 || i >= len(s.Cards) {
		return fmt.Errorf("%w: retry index %d out of range", ErrInvalidTransition, i)
	}
	entry, ok := s.Ledger[i]
	if !ok {
		return fmt.Errorf("%w: retry on unanswered question %d", ErrInvalidTransition, i)
	}
	if entry.Correct {
		return fmt.Errorf("%w: retry on correct question %d", ErrInvalidTransition, i)
	}

	question.ShuffleOptions(&s.Questions[i], s.rng)

	for j := range s.Cards {
		if s.Cards[j] == Active {
			s.Cards[j] = Disabled
		}
	}
	s.Cards[i] = Active
	s.Complete = false
	return nil
}

// advanceFrom activates the first non-Locked card after i and disables
// everything beyond it. With nothing left to activate the session
// completes.
func (s *State) advanceFrom(i int) {
	next := -1
	for j := i + 1; j < len(s.Cards); j++ {
		if s.Cards[j] != Locked {
			next = j
			break
		}
	}
	if next == -1 {
		s.Complete = true
		return
	}
	s.Cards[next] = Active
	for j := next + 1; j < len(s.Cards); j++ {
		if s.Cards[j] != Locked {
			s.Cards[j] = Disabled
		}
	}
}

// Score returns the true correct count, recounted from the ledger. The
// incremental counter is reconciled here rather than trusted, so drift is
// impossible to observe.
func (s *State) Score() int {
	n := 0
	for _, e := range s.Ledger {
		if e.Correct {
			n++
		}
	}
	s.score = n
	return n
}

// RetryOffered reports whether question i currently qualifies for retry.
func (s *State) RetryOffered(i int) bool {
	if !s.Config.AllowRetry {
		return false
	}
	e, ok := s.Ledger[i]
	return ok && !e.Correct
}

// BuildSummary assembles the session-complete event. The ledger was
// populated at submission time whether or not immediate feedback was
// shown; the reveal pass only re-reads it.
func BuildSummary(s *State) Summary {
	return Summary{
		Score:  s.Score(),
		Total:  s.Total(),
		Ledger: s.Ledger,
	}
}

func cardStateName(c CardState) string {
	switch c {
	case Disabled:
		return "disabled"
	case Active:
		return "active"
	case Locked:
		return "locked"
	}
	return "unknown"
}
