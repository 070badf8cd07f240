package history

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/lipgloss"

	"github.com/cheerioskun/regexninja/internal/messages"
)

var (
	secondaryColor = lipgloss.Color("240")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Margin(0, 0, 1, 0)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("205")).
				Foreground(lipgloss.Color("0")).
				Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)
)

// Model lists the distinct valid patterns tested in this session
type Model struct {
	patterns []string
	cursor   int

	focused bool
	width   int
	height  int
}

// NewModel creates a new history model
func NewModel() *Model {
	return &Model{
		patterns: make([]string, 0),
		width:    40,
		height:   10,
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.HistoryChangedMsg:
		m.patterns = append(m.patterns[:0], msg.Patterns...)
		if m.cursor >= len(m.patterns) {
			m.cursor = max(len(m.patterns)-1, 0)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			m.moveCursorUp()
		case "down", "j":
			m.moveCursorDown()
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.patterns)-1, 0)
		case "enter":
			if m.hasPatternAtCursor() {
				pattern := m.patterns[m.cursor]
				return m, func() tea.Msg { return messages.HistorySelectedMsg{Pattern: pattern} }
			}
		case "c":
			if len(m.patterns) > 0 {
				return m, func() tea.Msg { return messages.HistoryClearRequestedMsg{} }
			}
		}
	}
	return m, nil
}

// View renders the component
func (m *Model) View() string {
	title := fmt.Sprintf("🕘 History (%d)", len(m.patterns))
	if m.focused {
		title += " *"
	}
	header := titleStyle.Render(title)

	content := m.renderPatterns()

	help := ""
	if m.focused {
		help = helpStyle.Render("↑/↓: Navigate • Enter: Recall • c: Clear")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, help)
}

func (m *Model) renderPatterns() string {
	if len(m.patterns) == 0 {
		return emptyStyle.Render("No patterns tested yet")
	}

	maxHeight := m.height - 4 // title and help
	visibleStart, visibleEnd := 0, len(m.patterns)
	if maxHeight > 0 && len(m.patterns) > maxHeight {
		if m.cursor >= maxHeight {
			visibleStart = m.cursor - maxHeight + 1
		}
		visibleEnd = visibleStart + maxHeight
	}

	maxWidth := m.width - 6
	if maxWidth < 10 {
		maxWidth = 10
	}

	var lines []string
	if visibleStart > 0 {
		lines = append(lines, emptyStyle.Render("↑ ..."))
	}
	for i := visibleStart; i < visibleEnd; i++ {
		text := fmt.Sprintf("%d. %s", i+1, m.patterns[i])
		text = ansi.Truncate(text, maxWidth, "...")
		if m.focused && i == m.cursor {
			lines = append(lines, selectedItemStyle.Render(text))
		} else {
			lines = append(lines, itemStyle.Render(text))
		}
	}
	if visibleEnd < len(m.patterns) {
		lines = append(lines, emptyStyle.Render("↓ ..."))
	}

	return strings.Join(lines, "\n")
}

// Patterns returns the displayed history
func (m *Model) Patterns() []string {
	return m.patterns
}

// Cursor returns the index of the highlighted entry
func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) hasPatternAtCursor() bool {
	return m.cursor >= 0 && m.cursor < len(m.patterns)
}

func (m *Model) moveCursorUp() {
	if m.cursor > 0 {
		m.cursor--
	} else if len(m.patterns) > 0 {
		m.cursor = len(m.patterns) - 1
	}
}

func (m *Model) moveCursorDown() {
	if len(m.patterns) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < len(m.patterns)-1 {
		m.cursor++
	} else {
		m.cursor = 0
	}
}

// Component interface methods

func (m *Model) Focus() {
	m.focused = true
}

func (m *Model) Blur() {
	m.focused = false
}

func (m *Model) IsFocused() bool {
	return m.focused
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
