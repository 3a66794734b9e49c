package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/asengupta/quizdeck/internal/session"
	"github.com/asengupta/quizdeck/internal/ui/components"
	"github.com/asengupta/quizdeck/internal/ui/theme"
)

func (l *LearnScreen) View(width, height int) string {
	if l.errMsg != "" {
		return renderError(width, l.errMsg)
	}
	if l.state == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing your session...")
	}
	if l.quitConfirm {
		return renderQuitConfirm(width)
	}
	if l.feedback != nil {
		return l.renderFeedback(width)
	}
	return l.renderQuestion(width)
}

func (l *LearnScreen) renderQuestion(width int) string {
	i := l.state.ActiveIndex()
	if i < 0 {
		return ""
	}
	q := l.state.Questions[i]

	var b strings.Builder

	// Progress line.
	bar := components.NewProgressBar(
		fmt.Sprintf("  Question %d of %d", i+1, l.state.Total()),
		float64(len(l.state.Ledger))/float64(l.state.Total()),
		false, width-8)
	b.WriteString(bar.View())
	b.WriteString("\n")

	if l.cfg.ShowTopicSubtopic {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("  %s · %s", q.Topic, q.Subtopic)))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render("  " + q.Text))
	b.WriteString("\n\n")

	switch l.widget {
	case widgetChoice:
		b.WriteString(l.choice.View())
	case widgetMulti:
		b.WriteString(l.multi.View())
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"  Space toggles, Enter submits the set"))
	case widgetMatch:
		b.WriteString(l.match.View())
	}

	return b.String()
}

func (l *LearnScreen) renderFeedback(width int) string {
	res := l.feedback
	q := l.state.Questions[res.QuestionIndex]

	var b strings.Builder
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if res.Verdict {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Correct!"))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
		if l.cfg.ShowCorrectAnswer {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct answer: %s", q.Correct.String())))
		}
	}
	b.WriteString("\n\n")

	if showExplanation(l.cfg.ExplanationMode, res.Verdict) && q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
		if q.Reference != "" {
			b.WriteString(center.Foreground(theme.TextDim).Render("Ref: " + q.Reference))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if res.RetryOffered {
		b.WriteString(center.Foreground(theme.Accent).Render("[R] Try this one again"))
		b.WriteString("\n")
	}
	b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to continue..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("End this session early?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Answers so far are kept in the session log."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
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

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
