package store

import (
	"context"
	"time"

	"github.com/asengupta/quizdeck/internal/exam"
)

// Snapshot is one persisted autosave capture of an in-progress exam.
type Snapshot struct {
	ID        int
	Timestamp time.Time
	Data      exam.SnapshotData
}

// SnapshotRepo manages exam autosave snapshots. Autosave is best-effort:
// callers log Save failures and move on; a failed save must never
// interrupt the exam timer.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Clear deletes every snapshot. Called when an exam completes or an
	// interrupted session is discarded.
	Clear(ctx context.Context) error

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures one judged submission.
type AnswerEventData struct {
	SessionID  string
	Mode       string // "learning" or "exam"
	QuestionID string
	Kind       string
	Topic      string
	UserAnswer string
	Correct    bool
	Retried    bool
}

// SessionEventData captures a learning-session lifecycle transition.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "complete"
	Score        int
	Total        int
	DurationSecs int
}

// ExamEventData captures an exam lifecycle transition.
type ExamEventData struct {
	ExamID         string
	Action         string // "start", "submit", or "time_up"
	TotalQuestions int
	TotalAnswered  int
	CorrectCount   int
	Percentage     float64
	TimeSpentSecs  int
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendExamEvent(ctx context.Context, data ExamEventData) error
}
