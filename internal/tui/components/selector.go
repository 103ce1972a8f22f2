package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Choice is one selectable entry: what the user sees and the value the
// caller gets back.
type Choice struct {
	Label       string
	Description string
	Value       string
}

var (
	selTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1)
	selActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	selIdleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4)
	selHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Selector is a single-pick list model. Arrow and vim keys move the
// cursor, enter submits, esc/q/ctrl+c cancels.
type Selector struct {
	title     string
	choices   []Choice
	cursor    int
	submitted bool
	cancelled bool
}

// NewSelector creates a selector over the given choices.
func NewSelector(title string, choices []Choice) Selector {
	return Selector{title: title, choices: choices}
}

// WithInitial moves the cursor to the choice with the given value.
// Unknown values leave the cursor on the first choice.
func (s Selector) WithInitial(value string) Selector {
	for i, c := range s.choices {
		if c.Value == value {
			s.cursor = i
		}
	}
	return s
}

func (s Selector) Init() tea.Cmd {
	return nil
}

func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.choices)-1 {
			s.cursor++
		}
	case "enter":
		s.submitted = true
		return s, tea.Quit
	case "esc", "q", "ctrl+c":
		s.cancelled = true
		return s, tea.Quit
	}
	return s, nil
}

func (s Selector) View() string {
	var b strings.Builder

	b.WriteString(selTitleStyle.Render(s.title))
	b.WriteString("\n\n")

	for i, c := range s.choices {
		line := "  " + selIdleStyle.Render("○ "+c.Label)
		if i == s.cursor {
			line = selActiveStyle.Render("● " + c.Label)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if c.Description != "" {
			b.WriteString(selDescStyle.Render(c.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString(selHelpStyle.Render("\n↑/↓ navigate • enter select • q quit"))
	return b.String()
}

// Submitted reports whether the user confirmed a choice.
func (s Selector) Submitted() bool { return s.submitted }

// Cancelled reports whether the user backed out.
func (s Selector) Cancelled() bool { return s.cancelled }

// Value returns the submitted choice's value, or "" before submission.
func (s Selector) Value() string {
	if !s.submitted || s.cursor >= len(s.choices) {
		return ""
	}
	return s.choices[s.cursor].Value
}
