// Package session runs the tester's validate-and-test flow: it ties the
// analyzer to the session history and produces one Result per test.
package session

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cheerioskun/regexninja/internal/analyzer"
	"github.com/cheerioskun/regexninja/internal/history"
	"github.com/cheerioskun/regexninja/internal/models"
	"github.com/cheerioskun/regexninja/internal/utils"
)

// Session holds the analyzer and the history of one tester session
type Session struct {
	analyzer *analyzer.Analyzer
	history  *history.Tracker
	sanitize bool
	logger   *utils.Logger
}

// Option configures a Session
type Option func(*Session)

// WithSanitize strips disallowed pattern characters and HTML-like tags from
// the subject before testing.
func WithSanitize(enabled bool) Option {
	return func(s *Session) {
		s.sanitize = enabled
	}
}

// WithLogger sets the logger; defaults to utils.GetLogger()
func WithLogger(logger *utils.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithHistory shares an existing tracker
func WithHistory(tracker *history.Tracker) Option {
	return func(s *Session) {
		s.history = tracker
	}
}

// New creates a session around a; a nil analyzer uses analyzer.New()
func New(a *analyzer.Analyzer, opts ...Option) *Session {
	if a == nil {
		a = analyzer.New()
	}
	s := &Session{
		analyzer: a,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.history == nil {
		s.history = history.NewTracker()
	}
	if s.logger == nil {
		s.logger = utils.GetLogger()
	}
	return s
}

// Analyzer returns the session's analyzer
func (s *Session) Analyzer() *analyzer.Analyzer {
	return s.analyzer
}

// Sanitizing reports whether inputs are sanitized before testing
func (s *Session) Sanitizing() bool {
	return s.sanitize
}

// Test validates pattern, and when it compiles explains it, records it in the
// history, generates an example and tests subject against it. An invalid
// pattern leaves the history untouched.
func (s *Session) Test(pattern, subject string) models.Result {
	if s.sanitize {
		pattern = analyzer.SanitizePattern(pattern)
		subject = analyzer.SanitizeTestString(subject)
	}
	engine := s.analyzer.Engine().Name()

	if !s.analyzer.Validate(pattern) {
		s.logger.Entry(logrus.Fields{"pattern": pattern, "engine": engine}).Debug("invalid regex pattern")
		return models.InvalidResult(pattern, subject, engine, analyzer.InvalidExample)
	}

	explanation := s.analyzer.Explain(pattern)
	if s.history.Add(pattern) {
		s.logger.Debug("history: added pattern #%d", s.history.Len())
	}
	example := s.analyzer.GenerateExample(pattern)
	matched := s.analyzer.Match(pattern, subject)

	s.logger.Entry(logrus.Fields{
		"pattern": pattern,
		"engine":  engine,
		"matched": matched,
		"example": example,
	}).Debug("pattern tested")

	return models.Result{
		Pattern:          pattern,
		Subject:          subject,
		Valid:            true,
		Matched:          matched,
		Status:           models.MatchStatus(matched),
		Explanation:      explanation,
		Example:          example,
		VisualizationURL: s.analyzer.VisualizationURL(pattern),
		Engine:           engine,
		TestedAt:         time.Now(),
	}
}

// History returns a snapshot of the patterns tested so far
func (s *Session) History() []string {
	return s.history.Patterns()
}

// ClearHistory forgets all tested patterns
func (s *Session) ClearHistory() {
	s.history.Clear()
	s.logger.Debug("history cleared")
}
