package session

import (
	"math/rand"
	"time"

	"github.com/asengupta/quizdeck/internal/judge"
	"github.com/asengupta/quizdeck/internal/question"
)

// CardState is the presentation state of one question card. Sequential
// mode keeps exactly one card Active at a time until the session
// completes.
type CardState int

const (
	Disabled CardState = iota // not yet reachable
	Active                    // accepting a submission
	Locked                    // submitted, no longer answerable
)

// ExplanationMode gates whether explanation/reference/correct-answer text
// is ever shown. It affects visibility only, never ledger computation.
type ExplanationMode string

const (
	ExplainOnlyWrong ExplanationMode = "only_wrong"
	ExplainBoth      ExplanationMode = "both"
	ExplainNone      ExplanationMode = "none"
)

// Config carries the caller-supplied session policy, immutable for the
// session's lifetime.
type Config struct {
	ExplanationMode   ExplanationMode
	AllowRetry        bool
	ShowImmediate     bool
	ShowCorrectAnswer bool
	ShowTopicSubtopic bool
}

// DefaultConfig returns the learning-mode defaults.
func DefaultConfig() Config {
	return Config{
		ExplanationMode:   ExplainOnlyWrong,
		AllowRetry:        true,
		ShowImmediate:     true,
		ShowCorrectAnswer: true,
		ShowTopicSubtopic: true,
	}
}

// LedgerEntry records the latest judged submission for one question.
type LedgerEntry struct {
	Correct bool
	Answer  judge.RawAnswer
}

// State is a learning-mode session: the owned, shuffled question list,
// the per-question card states, and the outcome ledger. It is created
// once per "start test" action and discarded afterwards; no ambient
// global carries state between sessions.
type State struct {
	SessionID string
	Questions []question.Question
	Cards     []CardState
	Ledger    map[int]LedgerEntry
	Config    Config
	Complete  bool
	StartTime time.Time

	// score mirrors the ledger's correct count incrementally. It is an
	// optimization only; Score() recounts from the ledger and the two
	// must always agree.
	score int

	rng *rand.Rand
}

// New builds a session over an already-validated question list. The list
// is deep-copied and shuffled; each question's options are reshuffled
// independently. Question 0 starts Active, all others Disabled.
func New(sessionID string, questions []question.Question, cfg Config, rng *rand.Rand) (*State, error) {
	if len(questions) == 0 {
		return nil, question.ErrNoValidQuestions
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	owned := question.CloneAll(questions)
	question.Shuffle(owned, rng)
	for i := range owned {
		question.ShuffleOptions(&owned[i], rng)
	}

	cards := make([]CardState, len(owned))
	cards[0] = Active

	return &State{
		SessionID: sessionID,
		Questions: owned,
		Cards:     cards,
		Ledger:    make(map[int]LedgerEntry, len(owned)),
		Config:    cfg,
		StartTime: time.Now(),
		rng:       rng,
	}, nil
}

// Total returns the number of questions in the session.
func (s *State) Total() int {
	return len(s.Questions)
}

// Answered reports whether question i has a ledger entry.
func (s *State) Answered(i int) bool {
	_, ok := s.Ledger[i]
	return ok
}

// ActiveIndex returns the index of the Active card, or -1 when none is
// (the session is complete).
func (s *State) ActiveIndex() int {
	for i, c := range s.Cards {
		if c == Active {
			return i
		}
	}
	return -1
}
