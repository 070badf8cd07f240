package regex

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cheerioskun/regexninja/internal/messages"
)

// Styling constants
var (
	primaryColor   = lipgloss.Color("205")
	secondaryColor = lipgloss.Color("240")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	activeInputStyle = inputStyle.
				BorderForeground(primaryColor)
)

// Field identifies one of the editor's inputs
type Field int

const (
	PatternField Field = iota
	SubjectField
)

// Model is the pattern editor: a pattern input and a test string input
type Model struct {
	pattern textinput.Model
	subject textinput.Model
	active  Field

	focused bool
	width   int
	height  int
}

// NewModel creates a new editor model
func NewModel() *Model {
	pattern := textinput.New()
	pattern.Placeholder = "Enter regex pattern..."
	pattern.CharLimit = 512
	pattern.Prompt = "/ "

	subject := textinput.New()
	subject.Placeholder = "Enter test string..."
	subject.CharLimit = 1024
	subject.Prompt = "> "

	return &Model{
		pattern: pattern,
		subject: subject,
		active:  PatternField,
		width:   40,
		height:  10,
	}
}

// Update handles messages for the editor
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd

	if !m.focused {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return m, m.submitCmd()
		case "up", "down":
			m.toggleField()
			return m, nil
		case "esc":
			m.activeInput().SetValue("")
			return m, nil
		}
	}

	if m.active == PatternField {
		m.pattern, cmd = m.pattern.Update(msg)
	} else {
		m.subject, cmd = m.subject.Update(msg)
	}
	return m, cmd
}

// View renders the editor
func (m *Model) View() string {
	title := "🔍 Pattern"
	header := headerStyle.Foreground(primaryColor).Render(title)
	if m.focused {
		header = headerStyle.
			Foreground(primaryColor).
			Background(lipgloss.Color("235")).
			Render(title + " *")
	}

	inputWidth := m.width - 6
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.pattern.Width = inputWidth
	m.subject.Width = inputWidth

	patternBox := inputStyle.Width(m.width - 2).Render(m.pattern.View())
	subjectBox := inputStyle.Width(m.width - 2).Render(m.subject.View())
	if m.focused && m.active == PatternField {
		patternBox = activeInputStyle.Width(m.width - 2).Render(m.pattern.View())
	} else if m.focused {
		subjectBox = activeInputStyle.Width(m.width - 2).Render(m.subject.View())
	}

	parts := []string{
		header,
		labelStyle.Render("Regex"),
		patternBox,
		labelStyle.Render("Test string"),
		subjectBox,
	}
	if m.focused {
		helpItems := []string{
			"Enter: Test",
			"↑/↓: Switch input",
			"Esc: Clear",
		}
		parts = append(parts, helpStyle.Render(strings.Join(helpItems, " • ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Component interface methods

func (m *Model) Focus() {
	m.focused = true
	m.focusActive()
}

func (m *Model) Blur() {
	m.focused = false
	m.pattern.Blur()
	m.subject.Blur()
}

func (m *Model) IsFocused() bool {
	return m.focused
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Data methods

// Pattern returns the current pattern text
func (m *Model) Pattern() string {
	return m.pattern.Value()
}

// Subject returns the current test string
func (m *Model) Subject() string {
	return m.subject.Value()
}

// ActiveField reports which input receives keystrokes
func (m *Model) ActiveField() Field {
	return m.active
}

// SetPattern replaces the pattern text, e.g. when recalling history
func (m *Model) SetPattern(pattern string) {
	m.pattern.SetValue(pattern)
	m.pattern.CursorEnd()
}

// SetSubject replaces the test string
func (m *Model) SetSubject(subject string) {
	m.subject.SetValue(subject)
	m.subject.CursorEnd()
}

func (m *Model) activeInput() *textinput.Model {
	if m.active == PatternField {
		return &m.pattern
	}
	return &m.subject
}

func (m *Model) toggleField() {
	if m.active == PatternField {
		m.active = SubjectField
	} else {
		m.active = PatternField
	}
	m.focusActive()
}

func (m *Model) focusActive() {
	if m.active == PatternField {
		m.subject.Blur()
		m.pattern.Focus()
	} else {
		m.pattern.Blur()
		m.subject.Focus()
	}
}

// submitCmd asks the app to run the current pattern and subject
func (m *Model) submitCmd() tea.Cmd {
	pattern, subject := m.Pattern(), m.Subject()
	return func() tea.Msg {
		return messages.TestRequestedMsg{
			Pattern: pattern,
			Subject: subject,
		}
	}
}
