// Package exam implements the timed exam controller: free navigation over
// a fixed question order, overwritable answers, a bookmark set, a
// one-second countdown, autosave snapshots, and a single end-of-session
// judging pass. Unlike learning mode there is no card locking — only
// answered vs. unanswered, with bookmarks orthogonal to both.
package exam

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/asengupta/quizdeck/internal/judge"
	"github.com/asengupta/quizdeck/internal/question"
)

var (
	// ErrInvalidIndex guards out-of-range navigation and answer writes.
	// The screens make these unreachable; callers log and ignore.
	ErrInvalidIndex = errors.New("question index out of range")

	// ErrAlreadySubmitted guards the one-shot submission.
	ErrAlreadySubmitted = errors.New("exam already submitted")

	// ErrCompleted rejects mutations after submission or time-up.
	ErrCompleted = errors.New("exam is completed")
)

// Session is one timed exam run. The question order is fixed at
// construction; only the latest answer per index is retained.
type Session struct {
	ExamID    string
	Questions []question.Question

	answers   map[int]judge.RawAnswer
	bookmarks map[int]bool

	current   int
	remaining int // seconds
	duration  int // seconds, as configured
	completed bool
	startedAt time.Time
}

// New builds an exam session over an already-validated question list.
// Options are shuffled once per question; the question order itself is
// kept stable so navigation indices stay meaningful for the whole run.
func New(examID string, questions []question.Question, durationSeconds int, rng *rand.Rand) (*Session, error) {
	if len(questions) == 0 {
		return nil, question.ErrNoValidQuestions
	}
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("exam duration must be positive, got %d", durationSeconds)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	owned := question.CloneAll(questions)
	for i := range owned {
		question.ShuffleOptions(&owned[i], rng)
	}

	return &Session{
		ExamID:    examID,
		Questions: owned,
		answers:   make(map[int]judge.RawAnswer),
		bookmarks: make(map[int]bool),
		remaining: durationSeconds,
		duration:  durationSeconds,
		startedAt: time.Now(),
	}, nil
}

// Navigate moves the cursor to question i. Always permitted within range;
// it never touches answers or bookmarks.
func (s *Session) Navigate(i int) error {
	if i < 0 || i >= len(s.Questions) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	s.current = i
	return nil
}

// Current returns the cursor index.
func (s *Session) Current() int {
	return s.current
}

// Answer records the latest answer for question i, overwriting any prior
// one. Correctness is not computed here; all judging is deferred to the
// single Submit pass.
func (s *Session) Answer(i int, ans judge.RawAnswer) error {
	if s.completed {
		return ErrCompleted
	}
	if i < 0 || i >= len(s.Questions) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	s.answers[i] = ans
	return nil
}

// Clear removes the answer for question i.
func (s *Session) Clear(i int) error {
	if s.completed {
		return ErrCompleted
	}
	if i < 0 || i >= len(s.Questions) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	delete(s.answers, i)
	return nil
}

// ToggleBookmark flips the bookmark for question i.
func (s *Session) ToggleBookmark(i int) error {
	if s.completed {
		return ErrCompleted
	}
	if i < 0 || i >= len(s.Questions) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	if s.bookmarks[i] {
		delete(s.bookmarks, i)
	} else {
		s.bookmarks[i] = true
	}
	return nil
}

// AnswerAt returns the recorded answer for i and whether one exists.
func (s *Session) AnswerAt(i int) (judge.RawAnswer, bool) {
	a, ok := s.answers[i]
	return a, ok
}

// Bookmarked reports whether question i is bookmarked.
func (s *Session) Bookmarked(i int) bool {
	return s.bookmarks[i]
}

// AnsweredCount returns how many questions currently have an answer.
func (s *Session) AnsweredCount() int {
	return len(s.answers)
}

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() int {
	return s.remaining
}

// Completed reports whether the session has been submitted (or timed out).
func (s *Session) Completed() bool {
	return s.completed
}

// Total returns the number of questions.
func (s *Session) Total() int {
	return len(s.Questions)
}

// Tick decrements the countdown by one second and reports whether time
// just ran out, in which case the caller must auto-submit. A tick that
// arrives after completion is a dangling timer and mutates nothing.
func (s *Session) Tick() bool {
	if s.completed || s.remaining <= 0 {
		return false
	}
	s.remaining--
	return s.remaining == 0
}

// Submit finishes the exam. It is one-shot: the countdown stops, the
// session flips to completed exactly once, and every recorded answer is
// judged in a single pass. Unanswered questions count as unattempted and
// incorrect.
func (s *Session) Submit() (*Results, error) {
	if s.completed {
		return nil, ErrAlreadySubmitted
	}
	s.completed = true

	correct := 0
	for i := range s.Questions {
		ans, ok := s.answers[i]
		if !ok {
			continue
		}
		if judge.Judge(&s.Questions[i], ans) {
			correct++
		}
	}

	total := len(s.Questions)
	res := &Results{
		TotalQuestions:   total,
		TotalAnswered:    len(s.answers),
		CorrectCount:     correct,
		TimeSpentSeconds: s.duration - s.remaining,
	}
	if total > 0 {
		res.Percentage = float64(correct) / float64(total) * 100
	}
	return res, nil
}
