// Package report renders the exam results screen: the aggregate header
// plus the per-question breakdown rows produced by the engine.
package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	exm "github.com/asengupta/quizdeck/internal/exam"
	"github.com/asengupta/quizdeck/internal/router"
	"github.com/asengupta/quizdeck/internal/screen"
	"github.com/asengupta/quizdeck/internal/ui/layout"
	"github.com/asengupta/quizdeck/internal/ui/theme"
)

// ReportScreen displays exam results and the detailed breakdown.
type ReportScreen struct {
	results *exm.Results
	rows    []exm.QuestionResult
	offset  int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a new ReportScreen.
func New(results *exm.Results, rows []exm.QuestionResult) *ReportScreen {
	return &ReportScreen{results: results, rows: rows}
}

func (r *ReportScreen) Init() tea.Cmd {
	return nil
}

func (r *ReportScreen) Title() string {
	return "Exam Report"
}

func (r *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Home"},
	}
}

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "enter", "esc", "q":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		if r.offset < len(r.rows)-1 {
			r.offset++
		}
	}
	return r, nil
}

func (r *ReportScreen) View(width, height int) string {
	res := r.results
	if res == nil {
		return ""
	}

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Exam Results"))
	b.WriteString("\n\n")

	mins := res.TimeSpentSeconds / 60
	secs := res.TimeSpentSeconds % 60
	b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf(
		"Correct: %d / %d   Answered: %d   Score: %.1f%%   Time: %d:%02d",
		res.CorrectCount, res.TotalQuestions, res.TotalAnswered, res.Percentage, mins, secs)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	lines := height - 8
	if lines < 1 {
		lines = 1
	}
	shown := 0
	for i := r.offset; i < len(r.rows) && shown < lines; i++ {
		b.WriteString(r.renderRow(r.rows[i], width))
		shown++
	}

	return b.String()
}

func (r *ReportScreen) renderRow(row exm.QuestionResult, width int) string {
	var mark string
	switch {
	case !row.Answered:
		mark = lipgloss.NewStyle().Foreground(theme.TextDim).Render("–")
	case row.Correct:
		mark = theme.Correct.Render("✓")
	default:
		mark = theme.Incorrect.Render("✗")
	}

	flag := " "
	if row.Bookmarked {
		flag = theme.Bookmarked.Render("◆")
	}

	text := row.Question.Text
	if maxLen := width - 14; maxLen > 3 {
		if runes := []rune(text); len(runes) > maxLen {
			text = string(runes[:maxLen-3]) + "..."
		}
	}

	line := fmt.Sprintf("  %s %s %2d. %s", mark, flag, row.Index+1, text)
	out := lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"

	if row.Answered {
		out += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("         your answer: %s", row.UserAnswer.String())) + "\n"
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
