package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/quizdeck/internal/ui/theme"
)

// OptionLabel returns the display letter for option index i (A, B, C...).
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

// Choice is a single-select picker over a list of lettered options.
// It carries no notion of correctness; the screen judges the selection.
type Choice struct {
	Options []string
	Cursor  int
}

// NewChoice creates a single-select picker.
func NewChoice(options []string) Choice {
	return Choice{Options: options}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Letter keys jump directly to the
// matching option.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	default:
		if len(key) == 1 {
			if i := letterIndex(key[0]); i >= 0 && i < len(c.Options) {
				c.Cursor = i
			}
		}
	}

	return c, nil
}

// Letter returns the letter label of the option under the cursor.
func (c Choice) Letter() string {
	return OptionLabel(c.Cursor)
}

// Value returns the option text under the cursor.
func (c Choice) Value() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ""
	}
	return c.Options[c.Cursor]
}

// View renders the options with the cursor highlighted.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, OptionLabel(i), opt)
		if i == c.Cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

func letterIndex(b byte) int {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a')
	case b >= 'A' && b <= 'Z':
		return int(b - 'A')
	default:
		return -1
	}
}
