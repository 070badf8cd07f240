package export

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheerioskun/regexninja/internal/batch"
	"github.com/cheerioskun/regexninja/internal/export"
)

// run executes cmd and feeds its message back into the modal
func run(m *Model, cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	m.Update(msg)
	return msg
}

func TestModal_ExportsHistory(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := NewModel(export.NewService(fs))

	m.Show([]string{`\d+`, "[a-z]+"})
	require.True(t, m.IsVisible())
	m.textInput.SetValue("/out/history.yaml")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateExporting, m.State())
	run(m, cmd)
	require.Equal(t, StateSuccess, m.State(), m.errorMessage)

	cf, err := batch.NewLoader(fs).Load("/out/history.yaml")
	require.NoError(t, err)
	assert.Len(t, cf.Cases, 2)

	// Any key closes after success
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.False(t, m.IsVisible())
	require.NotNil(t, cmd)
	done, ok := cmd().(ExportModalCompletedMsg)
	require.True(t, ok)
	assert.True(t, done.Success)
	assert.Equal(t, 2, done.Summary.CaseCount)
}

func TestModal_OverwriteToggle(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/h.yaml", []byte("old"), 0644))
	m := NewModel(export.NewService(fs))

	m.Show([]string{"a"})
	m.textInput.SetValue("/h.yaml")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(m, cmd)
	assert.Equal(t, StateError, m.State())
	assert.Contains(t, m.errorMessage, "overwrite is disabled")

	m.Show([]string{"a"})
	m.textInput.SetValue("/h.yaml")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(m, cmd)
	assert.Equal(t, StateSuccess, m.State())
}

func TestModal_EmptyHistory(t *testing.T) {
	m := NewModel(export.NewService(afero.NewMemMapFs()))
	m.Show(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, StateInput, m.State())
	assert.Equal(t, "No patterns to export", m.errorMessage)
}

func TestModal_Cancel(t *testing.T) {
	m := NewModel(export.NewService(afero.NewMemMapFs()))
	m.Show([]string{"a"})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.IsVisible())
	require.NotNil(t, cmd)
	assert.IsType(t, ExportModalCancelledMsg{}, cmd())
}
