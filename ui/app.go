package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/cheerioskun/regexninja/internal/export"
	"github.com/cheerioskun/regexninja/internal/messages"
	"github.com/cheerioskun/regexninja/internal/models"
	"github.com/cheerioskun/regexninja/internal/session"
	"github.com/cheerioskun/regexninja/internal/utils"
	exportmodal "github.com/cheerioskun/regexninja/ui/export"
	"github.com/cheerioskun/regexninja/ui/history"
	"github.com/cheerioskun/regexninja/ui/regex"
	"github.com/cheerioskun/regexninja/ui/results"
)

// FocusedPanel represents which panel is currently focused
type FocusedPanel int

const (
	EditorPanel FocusedPanel = iota
	ResultsPanel
	HistoryPanel
)

// AppModel represents the main application model
type AppModel struct {
	// Core state
	session *session.Session

	// Components
	editor      *regex.Model
	results     *results.Model
	history     *history.Model
	exportModal *exportmodal.Model

	// UI state
	focused      FocusedPanel
	width        int
	height       int
	panels       []FocusedPanel
	currentPanel int

	// Status
	status   string
	quitting bool
}

// NewAppModel creates a new application model
func NewAppModel(s *session.Session, fs afero.Fs) *AppModel {
	m := &AppModel{
		session:      s,
		editor:       regex.NewModel(),
		results:      results.NewModel(),
		history:      history.NewModel(),
		exportModal:  exportmodal.NewModel(export.NewService(fs)),
		focused:      EditorPanel,
		width:        80,
		height:       24,
		panels:       []FocusedPanel{EditorPanel, ResultsPanel, HistoryPanel},
		currentPanel: 0,
		status:       "Ready",
	}
	m.editor.Focus()
	m.history.Update(messages.HistoryChangedMsg{Patterns: s.History()})
	m.layout()
	return m
}

// Init implements tea.Model
func (m *AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// The modal swallows input while open
	if m.exportModal.IsVisible() {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			m.exportModal, cmd = m.exportModal.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			// q is text while typing in the editor
			if m.focused != EditorPanel {
				m.quitting = true
				return m, tea.Quit
			}

		case "tab":
			m.nextPanel()
			return m, nil

		case "shift+tab":
			m.prevPanel()
			return m, nil

		case "ctrl+s":
			m.status = "Export history"
			return m, m.exportModal.Show(m.session.History())

		case "?":
			if m.focused != EditorPanel {
				m.status = "Help: Tab/Shift+Tab to navigate, Enter to test, Ctrl+S to export history, q to quit"
				return m, nil
			}
		}
		return m, m.updateFocused(msg)

	case messages.TestRequestedMsg:
		res := m.session.Test(msg.Pattern, msg.Subject)
		m.results.Update(messages.PatternTestedMsg{Result: res, SourceComponent: "editor"})
		m.history.Update(messages.HistoryChangedMsg{Patterns: m.session.History()})
		m.status = statusFor(res)
		return m, nil

	case messages.HistorySelectedMsg:
		m.editor.SetPattern(msg.Pattern)
		m.focusPanel(EditorPanel)
		m.status = "Recalled pattern from history"
		return m, nil

	case messages.HistoryClearRequestedMsg:
		m.session.ClearHistory()
		m.history.Update(messages.HistoryChangedMsg{Patterns: m.session.History()})
		m.status = "History cleared"
		return m, nil

	case exportmodal.ExportModalCompletedMsg:
		m.status = "History exported to " + msg.Summary.DestinationPath
		return m, nil

	case exportmodal.ExportModalCancelledMsg:
		m.status = "Ready"
		return m, nil
	}

	// Non-key messages (cursor blink etc.) go to the editor
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *AppModel) View() string {
	if m.quitting {
		return "Thanks for using RegexNinja!\n"
	}

	if m.exportModal.IsVisible() {
		return m.exportModal.View()
	}

	return m.renderLayout()
}

// Status returns the status bar text
func (m *AppModel) Status() string {
	return m.status
}

// Focused returns the focused panel
func (m *AppModel) Focused() FocusedPanel {
	return m.focused
}

func statusFor(res models.Result) string {
	if !res.Valid {
		return models.InvalidPatternNotice
	}
	return res.Status
}

// updateFocused routes a key to the focused component
func (m *AppModel) updateFocused(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focused {
	case EditorPanel:
		m.editor, cmd = m.editor.Update(msg)
	case ResultsPanel:
		m.results, cmd = m.results.Update(msg)
	case HistoryPanel:
		m.history, cmd = m.history.Update(msg)
	}
	return cmd
}

// Layout: editor on top, results and history side by side below

func (m *AppModel) dimensions() (editorHeight, bottomHeight, leftWidth, rightWidth int) {
	headerHeight := 2
	statusHeight := 3
	contentHeight := m.height - headerHeight - statusHeight

	editorHeight = 11
	if editorHeight > contentHeight/2 {
		editorHeight = contentHeight / 2
	}
	bottomHeight = contentHeight - editorHeight
	leftWidth = m.width * 3 / 5
	rightWidth = m.width - leftWidth
	return
}

func (m *AppModel) layout() {
	editorHeight, bottomHeight, leftWidth, rightWidth := m.dimensions()
	// Panel borders and padding take 4 columns and 2 rows
	m.editor.SetSize(m.width-4, editorHeight-2)
	m.results.SetSize(leftWidth-4, bottomHeight-2)
	m.history.SetSize(rightWidth-4, bottomHeight-2)
	m.exportModal.SetSize(m.width, m.height)
}

// renderLayout creates the main application layout
func (m *AppModel) renderLayout() string {
	editorHeight, bottomHeight, leftWidth, rightWidth := m.dimensions()

	header := m.renderHeader()
	editor := m.getPanelStyle(EditorPanel, m.width, editorHeight).Render(m.editor.View())
	res := m.getPanelStyle(ResultsPanel, leftWidth, bottomHeight).Render(m.results.View())
	hist := m.getPanelStyle(HistoryPanel, rightWidth, bottomHeight).Render(m.history.View())
	status := m.renderStatusPanel(m.width, 3)

	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top, res, hist)
	return lipgloss.JoinVertical(lipgloss.Left, header, editor, bottomRow, status)
}

// renderHeader creates the application header
func (m *AppModel) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Render("RegexNinja - Regular Expression Tester")

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render("Tab: Navigate | Ctrl+S: Export history | ?: Help | Ctrl+C: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, help)
}

// renderStatusPanel renders the status panel
func (m *AppModel) renderStatusPanel(width, height int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(width-2).
		Height(height-2).
		Padding(0, 1)

	parts := []string{
		"Engine: " + m.session.Analyzer().Engine().Name(),
		fmt.Sprintf("History: %d", len(m.history.Patterns())),
		"Status: " + m.status,
	}
	if m.session.Sanitizing() {
		parts = append(parts, "Sanitizing")
	}

	return style.Render(strings.Join(parts, " | "))
}

// Helper methods

func (m *AppModel) getPanelStyle(panel FocusedPanel, width, height int) lipgloss.Style {
	borderColor := lipgloss.Color("240")
	if panel == m.focused {
		borderColor = lipgloss.Color("205")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width-2).
		Height(height-2).
		Padding(0, 1)
}

func (m *AppModel) nextPanel() {
	m.focusPanel(m.panels[(m.currentPanel+1)%len(m.panels)])
}

func (m *AppModel) prevPanel() {
	m.focusPanel(m.panels[(m.currentPanel-1+len(m.panels))%len(m.panels)])
}

func (m *AppModel) focusPanel(panel FocusedPanel) {
	for i, p := range m.panels {
		if p == panel {
			m.currentPanel = i
		}
	}
	m.focused = panel

	m.editor.Blur()
	m.results.Blur()
	m.history.Blur()
	switch panel {
	case EditorPanel:
		m.editor.Focus()
	case ResultsPanel:
		m.results.Focus()
	case HistoryPanel:
		m.history.Focus()
	}
	utils.Debug("focus: panel %d", panel)
}
