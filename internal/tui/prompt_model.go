package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/timeclock/internal/parser"
)

// PromptModel asks for an employee id
type PromptModel struct {
	title         string
	input         textinput.Model
	width         int
	validationErr string

	value     string
	submitted bool
	cancelled bool
}

// NewPromptModel creates a focused employee id prompt
func NewPromptModel(title string) PromptModel {
	input := textinput.New()
	input.Width = 40
	input.CharLimit = parser.MaxEmployeeIDLength
	input.Placeholder = "Employee id, e.g. E1042"
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	input.Focus()

	return PromptModel{title: title, input: input}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			id, err := parser.NormalizeEmployeeID(m.input.Value())
			if err != nil {
				m.validationErr = err.Error()
				return m, nil
			}
			m.value = id
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.validationErr = ""
	}
	return m, cmd
}

// Value returns the submitted employee id
func (m PromptModel) Value() string {
	return m.value
}

func (m PromptModel) Cancelled() bool {
	return m.cancelled || !m.submitted
}

func (m PromptModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render("⏱️  " + m.title)
	b.WriteString(title + "\n\n")
	b.WriteString(m.input.View() + "\n")

	if m.validationErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("✗ "+m.validationErr) + "\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("enter confirm · esc cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String()) + "\n"
}
