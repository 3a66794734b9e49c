package exam

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asengupta/quizdeck/internal/question"
	"github.com/asengupta/quizdeck/internal/screen"
	"github.com/asengupta/quizdeck/internal/store"
	"github.com/asengupta/quizdeck/internal/ui/components"
)

type mockEventRepo struct {
	examEvents []store.ExamEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendExamEvent(_ context.Context, data store.ExamEventData) error {
	m.examEvents = append(m.examEvents, data)
	return nil
}

type mockSnapshotRepo struct {
	saved   []*store.Snapshot
	cleared int
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, snap)
	return nil
}

func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *mockSnapshotRepo) Clear(_ context.Context) error {
	m.cleared++
	m.saved = nil
	return nil
}

func (m *mockSnapshotRepo) Prune(_ context.Context, keep int) error {
	if keep < len(m.saved) {
		m.saved = m.saved[len(m.saved)-keep:]
	}
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func examQuestions(n int) []question.Question {
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

func testExamScreen(t *testing.T, n, durationSec int) (*ExamScreen, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	s := New(examQuestions(n), durationSec, 30, events, snaps)
	if s.errMsg != "" {
		t.Fatalf("exam screen failed to initialize: %s", s.errMsg)
	}
	return s, events, snaps
}

// pickOption points the choice widget at the option with the given text.
func pickOption(t *testing.T, s *ExamScreen, text string) {
	t.Helper()
	i := s.run.Current()
	for idx, opt := range s.run.Questions[i].Options {
		if opt == text {
			s.choice = components.Choice{Options: s.run.Questions[i].Options, Cursor: idx}
			return
		}
	}
	t.Fatalf("option %q not found", text)
}

func TestExamScreen_InitEmitsStartEvent(t *testing.T) {
	s, events, _ := testExamScreen(t, 3, 60)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected timer commands from Init")
	}
	if len(events.examEvents) != 1 {
		t.Fatalf("exam events = %d, want 1", len(events.examEvents))
	}
	if events.examEvents[0].Action != "start" {
		t.Errorf("action = %q, want %q", events.examEvents[0].Action, "start")
	}
	if events.examEvents[0].TotalQuestions != 3 {
		t.Errorf("total questions = %d, want 3", events.examEvents[0].TotalQuestions)
	}
}

func TestExamScreen_Navigation(t *testing.T) {
	s, _, _ := testExamScreen(t, 3, 60)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('n'))
	es := scr.(*ExamScreen)
	if es.run.Current() != 1 {
		t.Errorf("current = %d, want 1 after next", es.run.Current())
	}

	scr, _ = es.Update(keyPress('p'))
	es = scr.(*ExamScreen)
	if es.run.Current() != 0 {
		t.Errorf("current = %d, want 0 after prev", es.run.Current())
	}

	// Prev at the first question stays put.
	scr, _ = es.Update(keyPress('p'))
	es = scr.(*ExamScreen)
	if es.run.Current() != 0 {
		t.Errorf("current = %d, want 0 at the left edge", es.run.Current())
	}
}

func TestExamScreen_JumpToQuestion(t *testing.T) {
	s, _, _ := testExamScreen(t, 5, 60)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('g'))
	es := scr.(*ExamScreen)
	if !es.jumpActive {
		t.Fatal("expected the jump prompt")
	}

	scr, _ = es.Update(keyPress('4'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es = scr.(*ExamScreen)
	if es.jumpActive {
		t.Error("expected the jump prompt closed")
	}
	if es.run.Current() != 3 {
		t.Errorf("current = %d, want 3 after jumping to question 4", es.run.Current())
	}

	// Out-of-range input is ignored.
	scr, _ = es.Update(keyPress('g'))
	scr, _ = scr.Update(keyPress('9'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es = scr.(*ExamScreen)
	if es.run.Current() != 3 {
		t.Errorf("current = %d, want 3 after an out-of-range jump", es.run.Current())
	}
}

func TestExamScreen_RecordAndOverwriteAnswer(t *testing.T) {
	s, _, _ := testExamScreen(t, 2, 60)

	pickOption(t, s, "right")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)

	first, ok := es.run.AnswerAt(0)
	if !ok {
		t.Fatal("expected an answer recorded for question 0")
	}

	pickOption(t, es, "wrong-1")
	scr, _ = es.Update(specialKey(tea.KeyEnter))
	es = scr.(*ExamScreen)

	second, ok := es.run.AnswerAt(0)
	if !ok {
		t.Fatal("expected the answer to still exist")
	}
	if first.String() == second.String() {
		t.Error("expected the second record to overwrite the first")
	}
	if es.run.AnsweredCount() != 1 {
		t.Errorf("answered count = %d, want 1 after overwrite", es.run.AnsweredCount())
	}
}

func TestExamScreen_ClearAnswer(t *testing.T) {
	s, _, _ := testExamScreen(t, 2, 60)

	pickOption(t, s, "right")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('c'))
	es := scr.(*ExamScreen)

	if _, ok := es.run.AnswerAt(0); ok {
		t.Error("expected the answer cleared")
	}
}

func TestExamScreen_BookmarkToggle(t *testing.T) {
	s, _, _ := testExamScreen(t, 2, 60)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('b'))
	es := scr.(*ExamScreen)
	if !es.run.Bookmarked(0) {
		t.Error("expected question 0 bookmarked")
	}

	scr, _ = es.Update(keyPress('b'))
	es = scr.(*ExamScreen)
	if es.run.Bookmarked(0) {
		t.Error("expected the bookmark toggled off")
	}
}

func TestExamScreen_SubmitConfirmFlow(t *testing.T) {
	s, events, snaps := testExamScreen(t, 2, 60)
	pickOption(t, s, "right")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('s'))
	es := scr.(*ExamScreen)
	if !es.submitConfirm {
		t.Fatal("expected submit confirmation dialog")
	}

	// Back out first.
	scr, _ = es.Update(keyPress('n'))
	es = scr.(*ExamScreen)
	if es.submitConfirm {
		t.Fatal("expected submit confirmation dismissed")
	}
	if es.run.Completed() {
		t.Fatal("backing out must not submit")
	}

	scr, _ = es.Update(keyPress('s'))
	scr, cmd := scr.Update(keyPress('y'))
	es = scr.(*ExamScreen)
	if !es.run.Completed() {
		t.Fatal("expected the run submitted")
	}
	if es.results == nil {
		t.Fatal("expected results after submit")
	}
	if es.results.CorrectCount != 1 || es.results.TotalAnswered != 1 {
		t.Errorf("results = %d correct / %d answered, want 1/1",
			es.results.CorrectCount, es.results.TotalAnswered)
	}
	if cmd == nil {
		t.Fatal("expected a submitted command")
	}
	if _, ok := cmd().(submittedMsg); !ok {
		t.Fatal("expected submittedMsg")
	}

	found := false
	for _, ev := range events.examEvents {
		if ev.Action == "submit" && ev.CorrectCount == 1 {
			found = true
		}
	}
	if !found {
		t.Error("expected a submit exam event")
	}
	if snaps.cleared == 0 {
		t.Error("expected the autosave cleared on submit")
	}
}

func TestExamScreen_SubmitIsOneShot(t *testing.T) {
	s, events, _ := testExamScreen(t, 1, 60)

	s.finish("submit")
	before := len(events.examEvents)
	s.finish("submit")

	if len(events.examEvents) != before {
		t.Error("a second finish must not emit another event")
	}
}

func TestExamScreen_TimeUpAutoSubmits(t *testing.T) {
	s, events, _ := testExamScreen(t, 2, 2)

	var scr screen.Screen = s
	scr, cmd := scr.Update(timerTickMsg{})
	if cmd == nil {
		t.Fatal("expected the timer rescheduled at 1s left")
	}
	scr, cmd = scr.Update(timerTickMsg{})
	es := scr.(*ExamScreen)

	if !es.run.Completed() {
		t.Fatal("expected auto-submit at zero")
	}
	if !es.timeUpBanner {
		t.Fatal("expected the time-up banner")
	}
	if cmd != nil {
		t.Error("the timer must stop once time is up")
	}

	found := false
	for _, ev := range events.examEvents {
		if ev.Action == "time_up" {
			found = true
		}
	}
	if !found {
		t.Error("expected a time_up exam event")
	}

	// Any key moves on to the results.
	_, cmd = es.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a command from the banner keypress")
	}
	if _, ok := cmd().(submittedMsg); !ok {
		t.Fatal("expected submittedMsg from the banner")
	}
}

func TestExamScreen_DanglingTickAfterCompletion(t *testing.T) {
	s, _, _ := testExamScreen(t, 1, 60)
	s.finish("submit")

	_, cmd := s.Update(timerTickMsg{})
	if cmd != nil {
		t.Error("a tick after completion must not reschedule")
	}
	if s.run.Remaining() != 60 {
		t.Errorf("remaining = %d, want 60 (tick must not decrement)", s.run.Remaining())
	}
}

func TestExamScreen_AutosaveTickSavesSnapshot(t *testing.T) {
	s, _, snaps := testExamScreen(t, 2, 60)
	pickOption(t, s, "right")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.Update(autosaveTickMsg{})

	if len(snaps.saved) != 1 {
		t.Fatalf("snapshots saved = %d, want 1", len(snaps.saved))
	}
	snap := snaps.saved[0]
	if len(snap.Data.Answers) != 1 {
		t.Errorf("snapshot answers = %d, want 1", len(snap.Data.Answers))
	}
	if snap.Data.RemainingSeconds != 60 {
		t.Errorf("snapshot remaining = %d, want 60", snap.Data.RemainingSeconds)
	}
	if cmd == nil {
		t.Error("expected the autosave rescheduled while the run is live")
	}
}

func TestExamScreen_AutosaveStopsAfterCompletion(t *testing.T) {
	s, _, snaps := testExamScreen(t, 1, 60)
	s.finish("submit")

	_, cmd := s.Update(autosaveTickMsg{})
	if cmd != nil {
		t.Error("autosave must stop after completion")
	}
	if len(snaps.saved) != 0 {
		t.Error("no snapshot expected after completion")
	}
}

func TestExamScreen_ExitLeavesSnapshotInPlace(t *testing.T) {
	s, _, snaps := testExamScreen(t, 2, 60)

	var scr screen.Screen = s
	scr, _ = scr.Update(autosaveTickMsg{})
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	es := scr.(*ExamScreen)
	if !es.exitConfirm {
		t.Fatal("expected exit confirmation dialog")
	}

	_, cmd := es.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a pop command on exit")
	}
	if snaps.cleared != 0 {
		t.Error("exit must leave the autosave for the next launch to surface")
	}
	if len(snaps.saved) != 1 {
		t.Errorf("snapshots = %d, want the autosave kept", len(snaps.saved))
	}
}
