// Package home is the entry screen: mode selection plus the one-time
// notice about an interrupted exam autosave, which is surfaced and then
// discarded rather than resumed.
package home

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/quizdeck/internal/config"
	"github.com/asengupta/quizdeck/internal/question"
	"github.com/asengupta/quizdeck/internal/router"
	"github.com/asengupta/quizdeck/internal/screen"
	examscreen "github.com/asengupta/quizdeck/internal/screens/exam"
	learnscreen "github.com/asengupta/quizdeck/internal/screens/learn"
	"github.com/asengupta/quizdeck/internal/store"
	"github.com/asengupta/quizdeck/internal/ui/components"
	"github.com/asengupta/quizdeck/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu          components.Menu
	discardNotice string
	questionCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. An interrupted exam autosave, if present,
// is reported in a notice and cleared here: a stale countdown is not
// resumable, so the run is forfeited rather than silently continued.
func New(questions []question.Question, cfg config.Config, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *HomeScreen {
	h := &HomeScreen{questionCount: len(questions)}

	if snapRepo != nil {
		ctx := context.Background()
		if snap, err := snapRepo.Latest(ctx); err == nil && snap != nil {
			h.discardNotice = fmt.Sprintf(
				"An interrupted exam (%d/%d answered, %d:%02d left) was found and discarded.",
				len(snap.Data.Answers), len(questions),
				snap.Data.RemainingSeconds/60, snap.Data.RemainingSeconds%60)
			if err := snapRepo.Clear(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "warning: discard autosave: %v\n", err)
			}
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "warning: read autosave: %v\n", err)
		}
	}

	items := []components.MenuItem{
		{Label: "LEARNING MODE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: learnscreen.New(questions, cfg.SessionConfig(), eventRepo),
				}
			}
		}},
		{Label: "EXAM MODE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: examscreen.New(questions, cfg.ExamDurationSeconds(),
						cfg.Exam.AutosaveIntervalSec, eventRepo, snapRepo),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("QuizDeck"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d questions loaded", h.questionCount)))
	b.WriteString("\n\n")

	if h.discardNotice != "" {
		b.WriteString(center.Foreground(theme.Warning).Render(h.discardNotice))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
