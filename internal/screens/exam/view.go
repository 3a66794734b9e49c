package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/asengupta/quizdeck/internal/ui/theme"
)

func (s *ExamScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if s.run == nil {
		return ""
	}
	if s.timeUpBanner {
		return renderTimeUp(width)
	}
	if s.submitConfirm {
		return s.renderSubmitConfirm(width)
	}
	if s.exitConfirm {
		return renderExitConfirm(width)
	}
	return s.renderQuestion(width)
}

// renderStrip draws one marker per question: answered, bookmarked, both,
// or blank, with the cursor highlighted.
func (s *ExamScreen) renderStrip(width int) string {
	var parts []string
	for i := 0; i < s.run.Total(); i++ {
		_, answered := s.run.AnswerAt(i)
		bookmarked := s.run.Bookmarked(i)

		mark := "·"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case answered && bookmarked:
			mark = "◆"
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		case answered:
			mark = "●"
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		case bookmarked:
			mark = "◇"
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		if i == s.run.Current() {
			style = style.Bold(true).Underline(true)
		}
		parts = append(parts, style.Render(mark))
	}
	strip := "  " + strings.Join(parts, " ")
	if lipgloss.Width(strip) > width {
		strip = strip[:width]
	}
	return strip
}

func (s *ExamScreen) renderQuestion(width int) string {
	i := s.run.Current()
	q := s.run.Questions[i]

	var b strings.Builder

	b.WriteString(s.renderStrip(width))
	b.WriteString("\n")

	header := fmt.Sprintf("  Question %d of %d", i+1, s.run.Total())
	if s.run.Bookmarked(i) {
		header += theme.Bookmarked.Render("  ◆ bookmarked")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render("  " + q.Text))
	b.WriteString("\n\n")

	switch s.widget {
	case widgetChoice:
		b.WriteString(s.choice.View())
	case widgetMulti:
		b.WriteString(s.multi.View())
	case widgetMatch:
		b.WriteString(s.match.View())
	}
	b.WriteString("\n")

	if ans, ok := s.run.AnswerAt(i); ok {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("  Recorded: %s", ans.String())))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  No answer recorded yet"))
	}

	if s.jumpActive {
		b.WriteString("\n\n  Go to: " + s.jump.View())
	}

	return b.String()
}

func (s *ExamScreen) renderSubmitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	unanswered := s.run.Total() - s.run.AnsweredCount()

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Submit the exam?"))
	b.WriteString("\n")
	if unanswered > 0 {
		b.WriteString(center.Foreground(theme.Warning).
			Render(fmt.Sprintf("%d question(s) are still unanswered.", unanswered)))
		b.WriteString("\n")
	}
	b.WriteString(center.Foreground(theme.TextDim).Render("Submission is final."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, submit"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, go back"))
	return b.String()
}

func renderExitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Leave the exam?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("The run will not be scored."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

func renderTimeUp(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Error).Bold(true).Render("⏰ Time is up!"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).Render("Your answers have been submitted."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to see your results..."))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
