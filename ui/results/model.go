package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cheerioskun/regexninja/internal/messages"
	"github.com/cheerioskun/regexninja/internal/models"
)

// Model shows the outcome of the latest test in a scrollable viewport
type Model struct {
	result *models.Result

	focused  bool
	width    int
	height   int
	viewport viewport.Model

	titleStyle   lipgloss.Style
	labelStyle   lipgloss.Style
	matchStyle   lipgloss.Style
	noMatchStyle lipgloss.Style
	warnStyle    lipgloss.Style
	emptyStyle   lipgloss.Style
	linkStyle    lipgloss.Style
}

// NewModel creates a new results model
func NewModel() *Model {
	vp := viewport.New(40, 6) // Resized in SetSize

	return &Model{
		width:    40,
		height:   10,
		viewport: vp,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Margin(0, 0, 1, 0),

		labelStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),

		matchStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),

		noMatchStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),

		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),

		linkStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Underline(true),
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case messages.PatternTestedMsg:
		res := msg.Result
		m.result = &res
		m.updateViewportContent()
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch msg.String() {
		case "j", "down":
			m.viewport.LineDown(1)
		case "k", "up":
			m.viewport.LineUp(1)
		case "pgdown", " ":
			m.viewport.ViewDown()
		case "pgup":
			m.viewport.ViewUp()
		case "home", "g":
			m.viewport.GotoTop()
		case "end", "G":
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the component
func (m *Model) View() string {
	title := "📋 Result"
	if m.focused {
		title += " *"
	}
	header := m.titleStyle.Render(title)

	var content string
	if m.result == nil {
		content = m.emptyStyle.Render("Enter a pattern and press Enter to test it")
	} else {
		content = m.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}

// Result returns the displayed result, or nil before the first test
func (m *Model) Result() *models.Result {
	return m.result
}

func (m *Model) updateViewportContent() {
	if m.result == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.renderResult(*m.result))
}

func (m *Model) renderResult(res models.Result) string {
	var lines []string

	if !res.Valid {
		lines = append(lines, m.warnStyle.Render(res.Explanation))
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("%s %s", m.labelStyle.Render("Example:"), res.Example))
		return strings.Join(lines, "\n")
	}

	status := m.matchStyle.Render(res.Status)
	if !res.Matched {
		status = m.noMatchStyle.Render(res.Status)
	}
	lines = append(lines, status)
	lines = append(lines, "")
	lines = append(lines, res.Explanation)
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s %s", m.labelStyle.Render("Example:"), res.Example))
	lines = append(lines, fmt.Sprintf("%s %s", m.labelStyle.Render("Engine:"), res.Engine))
	if res.VisualizationURL != "" {
		lines = append(lines, m.labelStyle.Render("Diagram:"))
		lines = append(lines, m.linkStyle.Render(res.VisualizationURL))
	}

	return strings.Join(lines, "\n")
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

	// Title takes 2 lines
	viewportHeight := height - 2
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = viewportHeight

	m.updateViewportContent()
}
