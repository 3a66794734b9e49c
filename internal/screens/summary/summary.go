// Package summary renders the learning-mode completion screen: the final
// score and a reveal pass over the ledger. The reveal reads answers that
// were judged at submission time, so a session played with feedback
// hidden still gets its full accounting here.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/quizdeck/internal/question"
	"github.com/asengupta/quizdeck/internal/router"
	"github.com/asengupta/quizdeck/internal/screen"
	sess "github.com/asengupta/quizdeck/internal/session"
	"github.com/asengupta/quizdeck/internal/ui/layout"
	"github.com/asengupta/quizdeck/internal/ui/theme"
)

// SummaryScreen displays the session summary and ledger reveal.
type SummaryScreen struct {
	summary   sess.Summary
	questions []question.Question
	cfg       sess.Config
	offset    int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary sess.Summary, questions []question.Question, cfg sess.Config) *SummaryScreen {
	return &SummaryScreen{summary: summary, questions: questions, cfg: cfg}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < len(s.questions)-1 {
			s.offset++
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n\n")

	pct := 0.0
	if s.summary.Total > 0 {
		pct = float64(s.summary.Score) / float64(s.summary.Total) * 100
	}
	b.WriteString(center.Foreground(theme.Text).Render(
		fmt.Sprintf("Score: %d / %d   (%.0f%%)", s.summary.Score, s.summary.Total, pct)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Reveal pass, scrolled by offset.
	rows := height - 8
	if rows < 1 {
		rows = 1
	}
	shown := 0
	for i := s.offset; i < len(s.questions) && shown < rows; i++ {
		b.WriteString(s.renderRow(i, width))
		shown++
	}

	return b.String()
}

func (s *SummaryScreen) renderRow(i, width int) string {
	q := s.questions[i]
	entry, answered := s.summary.Ledger[i]

	mark := lipgloss.NewStyle().Foreground(theme.TextDim).Render("–")
	if answered {
		if entry.Correct {
			mark = theme.Correct.Render("✓")
		} else {
			mark = theme.Incorrect.Render("✗")
		}
	}

	text := q.Text
	if maxLen := width - 12; maxLen > 3 {
		if runes := []rune(text); len(runes) > maxLen {
			text = string(runes[:maxLen-3]) + "..."
		}
	}

	line := fmt.Sprintf("  %s  %2d. %s", mark, i+1, text)
	out := lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"

	if answered {
		detail := fmt.Sprintf("        your answer: %s", entry.Answer.String())
		out += lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail) + "\n"

		if !entry.Correct && s.cfg.ShowCorrectAnswer {
			if ca := q.Correct.String(); ca != "" {
				out += lipgloss.NewStyle().Foreground(theme.Secondary).
					Render("        correct: "+ca) + "\n"
			}
		}
		if showExplanation(s.cfg.ExplanationMode, entry.Correct) && q.Explanation != "" {
			out += lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("        "+q.Explanation) + "\n"
		}
	}
	return out
}

func showExplanation(mode sess.ExplanationMode, correct bool) bool {
	switch mode {
	case sess.ExplainBoth:
		return true
	case sess.ExplainOnlyWrong:
		return !correct
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
