package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/quizdeck/internal/ui/theme"
)

// MatchPairs pairs each left item with one of the right options. The
// cursor moves over left items; left/right arrows cycle the assignment
// for the current row.
type MatchPairs struct {
	Lefts  []string
	Rights []string
	Cursor int

	// assigned[i] is the index into Rights for Lefts[i], or -1.
	assigned []int
}

// NewMatchPairs creates a pairing widget with nothing assigned.
func NewMatchPairs(lefts, rights []string) MatchPairs {
	assigned := make([]int, len(lefts))
	for i := range assigned {
		assigned[i] = -1
	}
	return MatchPairs{
		Lefts:    lefts,
		Rights:   rights,
		assigned: assigned,
	}
}

// Init returns nil.
func (m MatchPairs) Init() tea.Cmd {
	return nil
}

// Update handles navigation and assignment cycling.
func (m MatchPairs) Update(msg tea.Msg) (MatchPairs, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if len(m.Lefts) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Lefts)-1 {
			m.Cursor++
		}
	case "right", "l":
		m.assigned[m.Cursor] = (m.assigned[m.Cursor] + 1) % len(m.Rights)
	case "left", "h":
		cur := m.assigned[m.Cursor]
		if cur < 0 {
			cur = 0
		}
		m.assigned[m.Cursor] = (cur - 1 + len(m.Rights)) % len(m.Rights)
	case "backspace":
		m.assigned[m.Cursor] = -1
	}

	return m, nil
}

// Pairs returns the assigned left→right mapping, skipping unassigned rows.
func (m MatchPairs) Pairs() map[string]string {
	pairs := make(map[string]string)
	for i, left := range m.Lefts {
		if m.assigned[i] >= 0 && m.assigned[i] < len(m.Rights) {
			pairs[left] = m.Rights[m.assigned[i]]
		}
	}
	return pairs
}

// Complete reports whether every left item has an assignment.
func (m MatchPairs) Complete() bool {
	for _, a := range m.assigned {
		if a < 0 {
			return false
		}
	}
	return len(m.Lefts) > 0
}

// View renders the pairing rows.
func (m MatchPairs) View() string {
	var s string
	for i, left := range m.Lefts {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		right := "—"
		if m.assigned[i] >= 0 && m.assigned[i] < len(m.Rights) {
			right = m.Rights[m.assigned[i]]
		}
		line := fmt.Sprintf("%s%-24s ←→  %s", prefix, left, right)
		if i == m.Cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	s += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		"  ↑↓ pick item   ←→ cycle match   Backspace clear")
	return s
}
