package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cheerioskun/regexninja/internal/export"
	"github.com/cheerioskun/regexninja/internal/utils"
)

// Styling
var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Align(lipgloss.Center)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Margin(1, 0)

	previewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Margin(1, 0)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Align(lipgloss.Center).
			Margin(1, 0)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Margin(1, 0)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true).
			Margin(1, 0)
)

// State represents the modal's current state
type State int

const (
	StateInput State = iota
	StateExporting
	StateSuccess
	StateError
)

// Model is the modal that saves the session history as a batch case file
type Model struct {
	textInput textinput.Model

	state   State
	visible bool
	width   int
	height  int

	history        []string
	exportService  *export.Service
	exportSummary  *export.ExportSummary
	overwrite      bool
	errorMessage   string
	successMessage string
}

// ExportModalCancelledMsg is sent when user cancels export
type ExportModalCancelledMsg struct{}

// ExportModalCompletedMsg is sent when the modal closes after an export
type ExportModalCompletedMsg struct {
	Success bool
	Error   error
	Summary *export.ExportSummary
}

// exportDoneMsg carries the outcome of the write back into the modal
type exportDoneMsg struct {
	err  error
	path string
}

// NewModel creates a new export modal
func NewModel(exportService *export.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter case file path..."
	ti.CharLimit = 256
	ti.Width = 50

	return &Model{
		textInput:     ti,
		state:         StateInput,
		exportService: exportService,
	}
}

// Show displays the modal for the given history snapshot
func (m *Model) Show(history []string) tea.Cmd {
	m.visible = true
	m.state = StateInput
	m.history = append([]string(nil), history...)
	m.overwrite = false
	m.errorMessage = ""
	m.successMessage = ""

	defaultPath, err := export.GetDefaultExportPath("regexninja-history", export.FormatYAML)
	if err != nil {
		defaultPath = "./regexninja-history.yaml"
	}

	m.textInput.SetValue(defaultPath)
	m.textInput.CursorEnd()
	m.updateSummary()
	return m.textInput.Focus()
}

// Hide hides the modal
func (m *Model) Hide() {
	m.visible = false
	m.textInput.Blur()
	m.state = StateInput
}

// IsVisible returns true if the modal is visible
func (m *Model) IsVisible() bool {
	return m.visible
}

// State returns the modal's current state
func (m *Model) State() State {
	return m.state
}

// SetSize sets the modal size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the export modal
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case StateInput:
			switch msg.String() {
			case "enter":
				return m.confirmExport()
			case "esc":
				m.Hide()
				return m, func() tea.Msg { return ExportModalCancelledMsg{} }
			case "ctrl+o":
				m.overwrite = !m.overwrite
				return m, nil
			default:
				m.textInput, cmd = m.textInput.Update(msg)
				m.updateSummary()
				return m, cmd
			}
		case StateExporting:
			// Don't handle input while exporting
			return m, nil
		case StateSuccess, StateError:
			// Any key closes the modal after success/error
			wasSuccess := m.state == StateSuccess
			summary := m.exportSummary
			m.Hide()
			if wasSuccess {
				return m, func() tea.Msg {
					return ExportModalCompletedMsg{Success: true, Summary: summary}
				}
			}
			return m, func() tea.Msg { return ExportModalCancelledMsg{} }
		}

	case exportDoneMsg:
		if msg.err != nil {
			m.state = StateError
			m.errorMessage = fmt.Sprintf("Export failed: %v", msg.err)
			utils.Warning("history export to %s failed: %v", msg.path, msg.err)
			return m, nil
		}
		m.state = StateSuccess
		m.successMessage = fmt.Sprintf("Saved %d patterns to %s", len(m.history), msg.path)
		utils.Debug("history exported to %s", msg.path)
		return m, nil

	default:
		if m.state == StateInput {
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the export modal
func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	var content string
	switch m.state {
	case StateInput:
		content = m.renderInputState()
	case StateExporting:
		content = m.renderExportingState()
	case StateSuccess:
		content = m.renderResultState("Export Complete", successStyle.Render(m.successMessage))
	case StateError:
		content = m.renderResultState("Export Failed", errorStyle.Render(m.errorMessage))
	}

	styledContent := modalStyle.
		Width(60).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, styledContent)
}

func (m *Model) renderInputState() string {
	var parts []string

	parts = append(parts, titleStyle.Render("Export History as Case File"))

	if m.exportSummary != nil {
		overwrite := "no"
		if m.overwrite {
			overwrite = "yes"
		}
		preview := fmt.Sprintf("Patterns to export: %d\nOverwrite existing: %s",
			m.exportSummary.CaseCount, overwrite)
		parts = append(parts, previewStyle.Render(preview))
	}

	parts = append(parts, "Destination Path:")
	parts = append(parts, inputStyle.Render(m.textInput.View()))

	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}

	parts = append(parts, helpStyle.Render("Enter: Export • Ctrl+O: Toggle overwrite • Esc: Cancel"))

	return strings.Join(parts, "\n")
}

func (m *Model) renderExportingState() string {
	var parts []string

	parts = append(parts, titleStyle.Render("Exporting..."))
	parts = append(parts, previewStyle.Render("Writing case file..."))

	return strings.Join(parts, "\n")
}

func (m *Model) renderResultState(title, message string) string {
	var parts []string

	parts = append(parts, titleStyle.Render(title))
	parts = append(parts, message)
	parts = append(parts, helpStyle.Render("Press any key to close"))

	return strings.Join(parts, "\n")
}

// confirmExport validates the path and starts the write
func (m *Model) confirmExport() (*Model, tea.Cmd) {
	destPath := strings.TrimSpace(m.textInput.Value())

	if err := export.ValidateExportPath(destPath); err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}
	if len(m.history) == 0 {
		m.errorMessage = "No patterns to export"
		return m, nil
	}

	m.errorMessage = ""
	m.state = StateExporting
	return m, m.exportCmd(destPath)
}

func (m *Model) updateSummary() {
	destPath := strings.TrimSpace(m.textInput.Value())
	m.exportSummary = m.exportService.GetExportSummary(m.history, destPath)
}

// exportCmd writes the case file off the update loop
func (m *Model) exportCmd(destPath string) tea.Cmd {
	service := m.exportService
	history := m.history
	opts := export.ExportOptions{
		DestinationPath: destPath,
		Format:          export.FormatYAML,
		Overwrite:       m.overwrite,
	}
	return func() tea.Msg {
		return exportDoneMsg{
			err:  service.ExportHistory(history, opts),
			path: destPath,
		}
	}
}
