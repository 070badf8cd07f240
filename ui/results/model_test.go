package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheerioskun/regexninja/internal/messages"
	"github.com/cheerioskun/regexninja/internal/models"
)

func TestResults_ShowsLatest(t *testing.T) {
	m := NewModel()
	m.SetSize(80, 30)
	assert.Contains(t, m.View(), "press Enter to test")

	m.Update(messages.PatternTestedMsg{Result: models.Result{
		Pattern:          `\d+`,
		Valid:            true,
		Matched:          true,
		Status:           models.StatusMatch,
		Explanation:      "Pattern Explanation:\n- + : One or more times",
		Example:          "42",
		VisualizationURL: "https://regexper.com/#%5Cd%2B",
		Engine:           "go",
	}})

	require.NotNil(t, m.Result())
	view := m.View()
	assert.Contains(t, view, models.StatusMatch)
	assert.Contains(t, view, "- + : One or more times")
	assert.Contains(t, view, "42")
	assert.Contains(t, view, "https://regexper.com/#%5Cd%2B")
}

func TestResults_Invalid(t *testing.T) {
	m := NewModel()
	m.SetSize(80, 30)
	m.Update(messages.PatternTestedMsg{Result: models.InvalidResult("(", "", "go", "Invalid regex")})

	view := m.View()
	assert.Contains(t, view, models.InvalidPatternNotice)
	assert.Contains(t, view, "Invalid regex")
	assert.NotContains(t, view, "Diagram")
}
