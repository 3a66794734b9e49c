package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/asengupta/quizdeck/internal/exam"
	"github.com/asengupta/quizdeck/internal/judge"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
	require.NotNil(t, s.DB())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		require.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func testSnapshotData(examID string) exam.SnapshotData {
	return exam.SnapshotData{
		ExamID: examID,
		Answers: map[int]judge.RawAnswer{
			0: judge.Letter("B"),
			2: judge.TextSet([]string{"A", "C"}),
		},
		Bookmarks:        []int{1},
		RemainingSeconds: 540,
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Nil(t, snap)

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{Timestamp: now, Data: testSnapshotData("exam-1")})
	require.NoError(t, err)

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "exam-1", got.Data.ExamID)
	require.Equal(t, 540, got.Data.RemainingSeconds)
	require.Equal(t, []int{1}, got.Data.Bookmarks)
	require.Len(t, got.Data.Answers, 2)
}

func TestSnapshotLatestPicksNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"old", "mid", "new"} {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      exam.SnapshotData{ExamID: id, RemainingSeconds: i},
		})
		require.NoError(t, err)
	}

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", got.Data.ExamID)
}

func TestSnapshotClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Snapshot{Timestamp: time.Now(), Data: testSnapshotData("exam-1")})
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSnapshotPrune_KeepsMostRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      exam.SnapshotData{ExamID: fmt.Sprintf("exam-%d", i), RemainingSeconds: i},
		})
		require.NoError(t, err)
	}

	require.NoError(t, repo.Prune(ctx, 2))

	n, err := s.Client().ExamSnapshot.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// The survivors are the newest two; Latest still resolves.
	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, "exam-4", got.Data.ExamID)
}

func TestSnapshotPrune_FewerThanKeepIsNoop(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Snapshot{Timestamp: time.Now(), Data: testSnapshotData("exam-1")})
	require.NoError(t, err)

	require.NoError(t, repo.Prune(ctx, 3))

	n, err := s.Client().ExamSnapshot.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestEventAppends(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", Total: 10,
	})
	require.NoError(t, err)

	err = repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", Mode: "learning", QuestionID: "q1",
		Kind: "single_choice", Topic: "Geography",
		UserAnswer: "Paris", Correct: true,
	})
	require.NoError(t, err)

	err = repo.AppendExamEvent(ctx, ExamEventData{
		ExamID: "e1", Action: "time_up",
		TotalQuestions: 5, TotalAnswered: 3, CorrectCount: 2,
		Percentage: 40, TimeSpentSecs: 600,
	})
	require.NoError(t, err)
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		require.NoError(t, err)
		require.Greater(t, seq, prev, "sequence must increase")
		prev = seq
	}
}
