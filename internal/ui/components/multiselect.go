package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/quizdeck/internal/ui/theme"
)

// MultiSelect is a toggle-set picker over lettered options.
type MultiSelect struct {
	Options []string
	Cursor  int
	chosen  map[int]bool
}

// NewMultiSelect creates a multi-select picker with nothing chosen.
func NewMultiSelect(options []string) MultiSelect {
	return MultiSelect{
		Options: options,
		chosen:  make(map[int]bool),
	}
}

// Init returns nil.
func (m MultiSelect) Init() tea.Cmd {
	return nil
}

// Update handles navigation and toggling. Space toggles the cursor row;
// letter keys toggle the matching option directly.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		m.chosen[m.Cursor] = !m.chosen[m.Cursor]
	default:
		if len(key) == 1 {
			if i := letterIndex(key[0]); i >= 0 && i < len(m.Options) {
				m.chosen[i] = !m.chosen[i]
			}
		}
	}

	return m, nil
}

// Letters returns the letter labels of the chosen options in index order.
func (m MultiSelect) Letters() []string {
	var out []string
	for i := range m.Options {
		if m.chosen[i] {
			out = append(out, OptionLabel(i))
		}
	}
	return out
}

// Any reports whether at least one option is chosen.
func (m MultiSelect) Any() bool {
	for _, on := range m.chosen {
		if on {
			return true
		}
	}
	return false
}

// View renders the options with checkboxes and the cursor highlighted.
func (m MultiSelect) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		box := "[ ]"
		if m.chosen[i] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, box, OptionLabel(i), opt)
		switch {
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case m.chosen[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
