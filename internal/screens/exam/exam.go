// Package exam is the timed exam screen: free navigation, overwritable
// answers, bookmarks, a countdown, periodic autosave, and a one-shot
// submit that hands off to the report.
package exam

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	exm "github.com/asengupta/quizdeck/internal/exam"
	"github.com/asengupta/quizdeck/internal/judge"
	"github.com/asengupta/quizdeck/internal/question"
	"github.com/asengupta/quizdeck/internal/router"
	"github.com/asengupta/quizdeck/internal/screen"
	"github.com/asengupta/quizdeck/internal/screens/report"
	"github.com/asengupta/quizdeck/internal/store"
	"github.com/asengupta/quizdeck/internal/ui/components"
	"github.com/asengupta/quizdeck/internal/ui/layout"
)

type widgetKind int

const (
	widgetChoice widgetKind = iota
	widgetMulti
	widgetMatch
)

// ExamScreen implements screen.Screen for a timed exam run.
type ExamScreen struct {
	run         *exm.Session
	eventRepo   store.EventRepo
	snapRepo    store.SnapshotRepo
	autosaveSec int

	widget   widgetKind
	choice   components.Choice
	multi    components.MultiSelect
	match    components.MatchPairs
	mcSingle bool

	jumpActive bool
	jump       components.TextInput

	results       *exm.Results
	timeUpBanner  bool
	submitConfirm bool
	exitConfirm   bool
	errMsg        string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.StatusProvider = (*ExamScreen)(nil)

// New creates an exam screen over an already-validated question list.
func New(questions []question.Question, durationSec, autosaveSec int, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *ExamScreen {
	s := &ExamScreen{
		eventRepo:   eventRepo,
		snapRepo:    snapRepo,
		autosaveSec: autosaveSec,
	}

	run, err := exm.New(uuid.New().String(), questions, durationSec, nil)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.run = run
	s.setupWidget(0)
	return s
}

func (s *ExamScreen) Init() tea.Cmd {
	if s.run == nil {
		return nil
	}
	if s.eventRepo != nil {
		_ = s.eventRepo.AppendExamEvent(context.Background(), store.ExamEventData{
			ExamID:         s.run.ExamID,
			Action:         "start",
			TotalQuestions: s.run.Total(),
		})
	}
	return tea.Batch(timerTick(), s.autosaveTick())
}

func (s *ExamScreen) Title() string {
	return "Exam"
}

func (s *ExamScreen) HeaderStatus() string {
	if s.run == nil {
		return ""
	}
	rem := s.run.Remaining()
	return fmt.Sprintf("⏱ %d:%02d   %d/%d answered",
		rem/60, rem%60, s.run.AnsweredCount(), s.run.Total())
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.timeUpBanner:
		return []layout.KeyHint{{Key: "any key", Description: "See results"}}
	case s.jumpActive:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	case s.submitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Back"},
		}
	case s.exitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave exam"},
			{Key: "N", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "N/P", Description: "Next/Prev"},
		{Key: "Enter", Description: "Record answer"},
		{Key: "B", Description: "Bookmark"},
		{Key: "G", Description: "Go to"},
		{Key: "C", Description: "Clear"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Exit"},
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()
	case autosaveTickMsg:
		return s.handleAutosaveTick()
	case submittedMsg:
		return s.handleSubmitted()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ExamScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.run == nil || s.run.Completed() {
		return s, nil
	}
	if s.run.Tick() {
		// Time just ran out: submit now, banner until a keypress.
		s.finish("time_up")
		s.timeUpBanner = true
		return s, nil
	}
	return s, timerTick()
}

func (s *ExamScreen) handleAutosaveTick() (screen.Screen, tea.Cmd) {
	if s.run == nil || s.run.Completed() {
		return s, nil
	}
	s.saveSnapshot()
	return s, s.autosaveTick()
}

func (s *ExamScreen) handleSubmitted() (screen.Screen, tea.Cmd) {
	if s.results == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	results := s.results
	rows := s.run.Breakdown()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: report.New(results, rows)}
	}
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.run == nil {
		return s, nil
	}

	if s.timeUpBanner {
		return s, func() tea.Msg { return submittedMsg{} }
	}

	if s.submitConfirm {
		switch key {
		case "y", "Y":
			s.submitConfirm = false
			s.finish("submit")
			return s, func() tea.Msg { return submittedMsg{} }
		case "n", "N", "esc":
			s.submitConfirm = false
		}
		return s, nil
	}

	if s.jumpActive {
		switch key {
		case "esc":
			s.jumpActive = false
		case "enter":
			s.jumpActive = false
			if n, err := strconv.Atoi(strings.TrimSpace(s.jump.Value())); err == nil {
				s.navigate(n - 1)
			}
		default:
			s.jump, _ = s.jump.Update(msg)
		}
		return s, nil
	}

	if s.exitConfirm {
		switch key {
		case "y", "Y":
			// The autosave snapshot stays; the next launch surfaces and
			// discards it.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.exitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.exitConfirm = true
		return s, nil
	case "s", "S":
		s.submitConfirm = true
		return s, nil
	case "n", "tab":
		s.navigate(s.run.Current() + 1)
		return s, nil
	case "p", "shift+tab":
		s.navigate(s.run.Current() - 1)
		return s, nil
	case "b", "B":
		s.mutating(s.run.ToggleBookmark(s.run.Current()))
		return s, nil
	case "g", "G":
		s.jumpActive = true
		s.jump = components.NewTextInput("question #", 3)
		return s, nil
	case "c", "C":
		s.mutating(s.run.Clear(s.run.Current()))
		return s, nil
	case "enter":
		s.recordAnswer()
		return s, nil
	}

	// Choice widgets leave left/right free; reuse them for navigation.
	if s.widget != widgetMatch {
		switch key {
		case "right":
			s.navigate(s.run.Current() + 1)
			return s, nil
		case "left":
			s.navigate(s.run.Current() - 1)
			return s, nil
		}
	}

	switch s.widget {
	case widgetChoice:
		s.choice, _ = s.choice.Update(msg)
	case widgetMulti:
		s.multi, _ = s.multi.Update(msg)
	case widgetMatch:
		s.match, _ = s.match.Update(msg)
	}
	return s, nil
}

func (s *ExamScreen) navigate(i int) {
	if i < 0 || i >= s.run.Total() {
		return
	}
	if err := s.run.Navigate(i); err != nil {
		fmt.Fprintf(os.Stderr, "warning: navigate rejected: %v\n", err)
		return
	}
	s.setupWidget(i)
}

func (s *ExamScreen) setupWidget(i int) {
	q := s.run.Questions[i]
	s.mcSingle = false

	switch q.Kind {
	case question.MultipleChoice:
		if len(q.Correct.Set) == 1 {
			s.mcSingle = true
			s.widget = widgetChoice
			s.choice = components.NewChoice(q.Options)
			return
		}
		s.widget = widgetMulti
		s.multi = components.NewMultiSelect(q.Options)
	case question.Match:
		s.widget = widgetMatch
		s.match = components.NewMatchPairs(q.LeftItems(), q.RightItems())
	default:
		s.widget = widgetChoice
		s.choice = components.NewChoice(q.Options)
	}
}

// recordAnswer stores the widget value for the current question. No
// judging happens here; that is the submit pass's job.
func (s *ExamScreen) recordAnswer() {
	i := s.run.Current()

	var ans judge.RawAnswer
	switch s.widget {
	case widgetChoice:
		if s.mcSingle {
			ans = judge.TextSet([]string{s.choice.Letter()})
		} else {
			ans = judge.Letter(s.choice.Letter())
		}
	case widgetMulti:
		if !s.multi.Any() {
			return
		}
		ans = judge.TextSet(s.multi.Letters())
	case widgetMatch:
		if !s.match.Complete() {
			return
		}
		ans = judge.PairMap(s.match.Pairs())
	}

	s.mutating(s.run.Answer(i, ans))
}

// finish performs the one-shot submit and records the exam event.
func (s *ExamScreen) finish(action string) {
	results, err := s.run.Submit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: submit rejected: %v\n", err)
		return
	}
	s.results = results

	ctx := context.Background()
	if s.eventRepo != nil {
		_ = s.eventRepo.AppendExamEvent(ctx, store.ExamEventData{
			ExamID:         s.run.ExamID,
			Action:         action,
			TotalQuestions: results.TotalQuestions,
			TotalAnswered:  results.TotalAnswered,
			CorrectCount:   results.CorrectCount,
			Percentage:     results.Percentage,
			TimeSpentSecs:  results.TimeSpentSeconds,
		})
	}
	if s.snapRepo != nil {
		if err := s.snapRepo.Clear(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: clear autosave: %v\n", err)
		}
	}
}

// saveSnapshot persists the autosave snapshot, best-effort.
func (s *ExamScreen) saveSnapshot() {
	if s.snapRepo == nil {
		return
	}
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data:      s.run.Snapshot(),
	}
	if err := s.snapRepo.Save(context.Background(), snap); err != nil {
		fmt.Fprintf(os.Stderr, "warning: autosave failed: %v\n", err)
	}
}

// mutating logs engine guard errors; the screens make them unreachable.
func (s *ExamScreen) mutating(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *ExamScreen) autosaveTick() tea.Cmd {
	interval := time.Duration(s.autosaveSec) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return autosaveTickMsg(t)
	})
}
