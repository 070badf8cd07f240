package session_test

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheerioskun/regexninja/internal/analyzer"
	"github.com/cheerioskun/regexninja/internal/history"
	"github.com/cheerioskun/regexninja/internal/models"
	"github.com/cheerioskun/regexninja/internal/session"
	"github.com/cheerioskun/regexninja/internal/utils"
)

func newSession(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()
	logger, err := utils.NewLogger(filepath.Join(t.TempDir(), "test.log"), logrus.DebugLevel)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	a := analyzer.New(analyzer.WithRandSource(rand.NewPCG(3, 4)))
	opts = append([]session.Option{session.WithLogger(logger)}, opts...)
	return session.New(a, opts...)
}

func TestTest_EmailEndToEnd(t *testing.T) {
	s := newSession(t)
	pattern := `^[a-z]+@[a-z]+\.com$`

	res := s.Test(pattern, "user@example.com")

	assert.True(t, res.Valid)
	assert.True(t, res.Matched)
	assert.Equal(t, models.StatusMatch, res.Status)
	assert.Contains(t, res.Explanation, "- ^ : Start of string")
	assert.Contains(t, res.Explanation, "- $ : End of string")
	assert.Contains(t, res.Explanation, "- @ : At symbol (used in emails)")
	assert.Contains(t, res.Explanation, `- \. : Dot (.) character`)
	assert.Equal(t, "go", res.Engine)
	assert.Equal(t, "https://regexper.com/#%5E%5Ba-z%5D%2B%40%5Ba-z%5D%2B%5C.com%24", res.VisualizationURL)

	require.NotEqual(t, analyzer.InvalidExample, res.Example)
	assert.True(t, s.Analyzer().Match(pattern, res.Example))

	assert.Equal(t, []string{pattern}, s.History())
}

func TestTest_NoMatch(t *testing.T) {
	s := newSession(t)

	res := s.Test(`\d+`, "abc")
	assert.True(t, res.Valid)
	assert.False(t, res.Matched)
	assert.Equal(t, models.StatusNoMatch, res.Status)
	assert.Len(t, s.History(), 1)
}

func TestTest_InvalidPatternLeavesHistoryUntouched(t *testing.T) {
	s := newSession(t)
	s.Test("a", "a")

	res := s.Test("(", "anything")

	assert.False(t, res.Valid)
	assert.False(t, res.Matched)
	assert.Empty(t, res.Status)
	assert.Equal(t, models.InvalidPatternNotice, res.Explanation)
	assert.Equal(t, analyzer.InvalidExample, res.Example)
	assert.Empty(t, res.VisualizationURL)
	assert.Equal(t, []string{"a"}, s.History())
}

func TestTest_HistoryDeduplicates(t *testing.T) {
	s := newSession(t)

	s.Test("a", "x")
	s.Test("b", "x")
	s.Test("a", "y")

	assert.Equal(t, []string{"a", "b"}, s.History())

	s.ClearHistory()
	assert.Empty(t, s.History())
}

func TestTest_Sanitize(t *testing.T) {
	s := newSession(t, session.WithSanitize(true))
	require.True(t, s.Sanitizing())

	res := s.Test("a b!c", "<b>abc</b>")
	assert.Equal(t, "abc", res.Pattern)
	assert.Equal(t, "abc", res.Subject)
	assert.True(t, res.Matched)
}

func TestTest_SharedHistory(t *testing.T) {
	tracker := history.NewTracker()
	s1 := newSession(t, session.WithHistory(tracker))
	s2 := newSession(t, session.WithHistory(tracker))

	s1.Test("x", "")
	s2.Test("x", "")
	s2.Test("y", "")

	assert.Equal(t, []string{"x", "y"}, tracker.Patterns())
}

func TestTest_ExplanationWithoutTokens(t *testing.T) {
	s := newSession(t)
	res := s.Test("xyz", "wxyz")
	assert.True(t, res.Matched)
	assert.Equal(t, analyzer.NoExplanation, res.Explanation)
}
