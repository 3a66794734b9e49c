package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/quizdeck/internal/config"
	"github.com/asengupta/quizdeck/internal/question"
	"github.com/asengupta/quizdeck/internal/router"
	"github.com/asengupta/quizdeck/internal/screen"
	"github.com/asengupta/quizdeck/internal/screens/exam"
	"github.com/asengupta/quizdeck/internal/screens/home"
	"github.com/asengupta/quizdeck/internal/screens/learn"
	"github.com/asengupta/quizdeck/internal/store"
	"github.com/asengupta/quizdeck/internal/ui/layout"
)

// StartMode selects the screen pushed on top of home at launch.
type StartMode string

const (
	StartHome  StartMode = ""
	StartLearn StartMode = "learn"
	StartExam  StartMode = "exam"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Questions    []question.Question
	Config       config.Config
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	StartMode    StartMode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	startCmd tea.Cmd
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen at the bottom
// of the stack; a start mode pushes its screen on top so backing out
// still lands on the menu.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Questions, opts.Config, opts.EventRepo, opts.SnapshotRepo)
	m := AppModel{router: router.New(homeScreen)}

	switch opts.StartMode {
	case StartLearn:
		m.startCmd = m.router.Push(learn.New(
			opts.Questions, opts.Config.SessionConfig(), opts.EventRepo))
	case StartExam:
		m.startCmd = m.router.Push(exam.New(
			opts.Questions, opts.Config.ExamDurationSeconds(),
			opts.Config.Exam.AutosaveIntervalSec, opts.EventRepo, opts.SnapshotRepo))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.startCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.HeaderStatus()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
