package exam

import (
	"fmt"

	"github.com/asengupta/quizdeck/internal/judge"
)

// SnapshotData is the autosave payload: everything needed to recognize an
// interrupted exam. Restoring is always an explicit caller action; the
// snapshot is never applied automatically on construction.
type SnapshotData struct {
	ExamID           string                  `json:"exam_id"`
	Answers          map[int]judge.RawAnswer `json:"answers"`
	Bookmarks        []int                   `json:"bookmarks"`
	RemainingSeconds int                     `json:"remaining_seconds"`
}

// Snapshot captures the in-progress state for autosave.
func (s *Session) Snapshot() SnapshotData {
	answers := make(map[int]judge.RawAnswer, len(s.answers))
	for i, a := range s.answers {
		answers[i] = a
	}
	bookmarks := make([]int, 0, len(s.bookmarks))
	for i := range s.bookmarks {
		bookmarks = append(bookmarks, i)
	}
	return SnapshotData{
		ExamID:           s.ExamID,
		Answers:          answers,
		Bookmarks:        bookmarks,
		RemainingSeconds: s.remaining,
	}
}

// Restore applies a previously saved snapshot onto a fresh session built
// from the same question list. Indices outside the question range are
// rejected rather than silently dropped.
func (s *Session) Restore(data SnapshotData) error {
	if s.completed {
		return ErrCompleted
	}
	for i := range data.Answers {
		if i < 0 || i >= len(s.Questions) {
			return fmt.Errorf("%w: snapshot answer index %d", ErrInvalidIndex, i)
		}
	}
	for _, i := range data.Bookmarks {
		if i < 0 || i >= len(s.Questions) {
			return fmt.Errorf("%w: snapshot bookmark index %d", ErrInvalidIndex, i)
		}
	}

	s.answers = make(map[int]judge.RawAnswer, len(data.Answers))
	for i, a := range data.Answers {
		s.answers[i] = a
	}
	s.bookmarks = make(map[int]bool, len(data.Bookmarks))
	for _, i := range data.Bookmarks {
		s.bookmarks[i] = true
	}
	if data.RemainingSeconds >= 0 && data.RemainingSeconds <= s.duration {
		s.remaining = data.RemainingSeconds
	}
	return nil
}
