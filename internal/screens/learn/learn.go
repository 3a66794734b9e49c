// Package learn is the learning-mode screen: one active card at a time,
// immediate judged feedback, and the retry workflow for wrong answers.
package learn

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/asengupta/quizdeck/internal/judge"
	"github.com/asengupta/quizdeck/internal/question"
	"github.com/asengupta/quizdeck/internal/router"
	"github.com/asengupta/quizdeck/internal/screen"
	"github.com/asengupta/quizdeck/internal/screens/summary"
	sess "github.com/asengupta/quizdeck/internal/session"
	"github.com/asengupta/quizdeck/internal/store"
	"github.com/asengupta/quizdeck/internal/ui/components"
	"github.com/asengupta/quizdeck/internal/ui/layout"
)

// widgetKind selects which input widget drives the active card.
type widgetKind int

const (
	widgetChoice widgetKind = iota
	widgetMulti
	widgetMatch
)

// LearnScreen implements screen.Screen for a learning session.
type LearnScreen struct {
	questions []question.Question
	cfg       sess.Config
	eventRepo store.EventRepo

	state *sess.State

	widget widgetKind
	choice components.Choice
	multi  components.MultiSelect
	match  components.MatchPairs
	// mcSingle marks a multiple-choice question with a one-element
	// canonical set: it renders as single-select but submits a set.
	mcSingle bool

	feedback    *sess.SubmitResult
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.StatusProvider = (*LearnScreen)(nil)

// New creates a learning screen over an already-validated question list.
func New(questions []question.Question, cfg sess.Config, eventRepo store.EventRepo) *LearnScreen {
	return &LearnScreen{
		questions: questions,
		cfg:       cfg,
		eventRepo: eventRepo,
	}
}

func (l *LearnScreen) Init() tea.Cmd {
	return l.initSession()
}

func (l *LearnScreen) Title() string {
	return "Learning"
}

func (l *LearnScreen) HeaderStatus() string {
	if l.state == nil {
		return ""
	}
	return fmt.Sprintf("Score %d/%d", l.state.Score(), l.state.Total())
}

func (l *LearnScreen) KeyHints() []layout.KeyHint {
	if l.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if l.feedback != nil {
		hints := []layout.KeyHint{{Key: "any key", Description: "Continue"}}
		if l.feedback.RetryOffered {
			hints = append([]layout.KeyHint{{Key: "R", Description: "Retry"}}, hints...)
		}
		return hints
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return l.handleInit(msg)
	case sessionEndMsg:
		return l.handleSessionEnd()
	case tea.KeyMsg:
		return l.handleKey(msg)
	}
	return l, nil
}

// initSession builds the session state and records the start event.
func (l *LearnScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		sessionID := uuid.New().String()
		state, err := sess.New(sessionID, l.questions, l.cfg, nil)
		if err != nil {
			return sessionInitMsg{Err: err}
		}

		if l.eventRepo != nil {
			_ = l.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID: sessionID,
				Action:    "start",
				Total:     state.Total(),
			})
		}
		return sessionInitMsg{State: state}
	}
}

func (l *LearnScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		l.errMsg = msg.Err.Error()
		return l, nil
	}
	l.state = msg.State
	l.setupWidget(l.state.ActiveIndex())
	return l, nil
}

// setupWidget rebuilds the input widget for question i.
func (l *LearnScreen) setupWidget(i int) {
	if i < 0 || i >= l.state.Total() {
		return
	}
	q := l.state.Questions[i]
	l.mcSingle = false

	switch q.Kind {
	case question.MultipleChoice:
		if len(q.Correct.Set) == 1 {
			// One canonical answer: single-select is the honest UI.
			l.mcSingle = true
			l.widget = widgetChoice
			l.choice = components.NewChoice(q.Options)
			return
		}
		l.widget = widgetMulti
		l.multi = components.NewMultiSelect(q.Options)
	case question.Match:
		l.widget = widgetMatch
		l.match = components.NewMatchPairs(q.LeftItems(), q.RightItems())
	default: // SingleChoice, AssertionReason
		l.widget = widgetChoice
		l.choice = components.NewChoice(q.Options)
	}
}

func (l *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if l.errMsg != "" {
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if l.state == nil {
		return l, nil
	}

	if l.quitConfirm {
		switch key {
		case "y", "Y":
			l.quitConfirm = false
			return l, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			l.quitConfirm = false
		}
		return l, nil
	}

	if l.feedback != nil {
		return l.handleFeedbackKey(key)
	}

	switch key {
	case "esc":
		l.quitConfirm = true
		return l, nil
	case "enter":
		return l.submitAnswer()
	}

	switch l.widget {
	case widgetChoice:
		l.choice, _ = l.choice.Update(msg)
	case widgetMulti:
		l.multi, _ = l.multi.Update(msg)
	case widgetMatch:
		l.match, _ = l.match.Update(msg)
	}
	return l, nil
}

func (l *LearnScreen) handleFeedbackKey(key string) (screen.Screen, tea.Cmd) {
	if (key == "r" || key == "R") && l.feedback.RetryOffered {
		i := l.feedback.QuestionIndex
		if err := sess.Retry(l.state, i); err != nil {
			fmt.Fprintf(os.Stderr, "warning: retry rejected: %v\n", err)
			return l, nil
		}
		l.feedback = nil
		l.setupWidget(i)
		return l, nil
	}

	complete := l.feedback.SessionComplete
	l.feedback = nil
	if complete {
		return l, func() tea.Msg { return sessionEndMsg{} }
	}
	l.setupWidget(l.state.ActiveIndex())
	return l, nil
}

// submitAnswer collects the widget value, judges it, and records the
// answer event. Incomplete multi/match input is a no-op, not an error.
func (l *LearnScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	i := l.state.ActiveIndex()
	if i < 0 {
		return l, nil
	}

	var ans judge.RawAnswer
	switch l.widget {
	case widgetChoice:
		if l.mcSingle {
			ans = judge.TextSet([]string{l.choice.Letter()})
		} else {
			ans = judge.Letter(l.choice.Letter())
		}
	case widgetMulti:
		if !l.multi.Any() {
			return l, nil
		}
		ans = judge.TextSet(l.multi.Letters())
	case widgetMatch:
		if !l.match.Complete() {
			return l, nil
		}
		ans = judge.PairMap(l.match.Pairs())
	}

	retried := l.state.Answered(i)
	res, err := sess.Submit(l.state, i, ans)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: submit rejected: %v\n", err)
		return l, nil
	}

	if l.eventRepo != nil {
		q := l.state.Questions[i]
		_ = l.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:  l.state.SessionID,
			Mode:       "learning",
			QuestionID: q.ID,
			Kind:       string(q.Kind),
			Topic:      q.Topic,
			UserAnswer: ans.String(),
			Correct:    res.Verdict,
			Retried:    retried,
		})
	}

	if l.cfg.ShowImmediate {
		l.feedback = res
		return l, nil
	}

	// Feedback suppressed: advance silently, reveal comes in the summary.
	if res.SessionComplete {
		return l, func() tea.Msg { return sessionEndMsg{} }
	}
	l.setupWidget(l.state.ActiveIndex())
	return l, nil
}

func (l *LearnScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if l.state == nil {
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if l.eventRepo != nil {
		_ = l.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:    l.state.SessionID,
			Action:       "complete",
			Score:        l.state.Score(),
			Total:        l.state.Total(),
			DurationSecs: int(time.Since(l.state.StartTime).Seconds()),
		})
	}

	sum := sess.BuildSummary(l.state)
	questions := l.state.Questions
	cfg := l.cfg

	return l, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(sum, questions, cfg),
		}
	}
}
