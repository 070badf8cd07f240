// Package analyzer implements the pattern analysis behind the regex tester:
// validation, matching, keyword explanation, example generation and input
// sanitization. Every operation is total: a pattern that fails to compile is
// reported through a sentinel value, never as an error or panic.
package analyzer

import (
	"math/rand/v2"
	"net/url"
	"regexp/syntax"
	"strings"
)

const (
	// InvalidExample is returned by GenerateExample when no example can be produced
	InvalidExample = "Invalid regex"

	// VisualizerBaseURL is the third-party railroad-diagram site
	VisualizerBaseURL = "https://regexper.com/#"

	// DefaultMaxAttempts is how many candidates GenerateExample samples before giving up
	DefaultMaxAttempts = 8
)

// Option configures an Analyzer
type Option func(*config)

type config struct {
	engine      Engine
	src         rand.Source
	repeatLimit int
	maxAttempts int
}

// WithEngine selects the regex dialect used for validation and matching
func WithEngine(engine Engine) Option {
	return func(c *config) {
		c.engine = engine
	}
}

// WithRandSource makes example generation reproducible
func WithRandSource(src rand.Source) Option {
	return func(c *config) {
		c.src = src
	}
}

// WithRepeatLimit bounds unbounded quantifiers during example generation.
// Default: DefaultRepeatLimit.
func WithRepeatLimit(limit int) Option {
	return func(c *config) {
		c.repeatLimit = limit
	}
}

// WithMaxAttempts sets how many generated candidates are verified before
// GenerateExample returns InvalidExample. Default: DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		c.maxAttempts = n
	}
}

// Analyzer validates, matches, explains and generates examples for patterns.
// Analyzer holds no mutable state besides its random source and is safe for
// concurrent use.
type Analyzer struct {
	engine      Engine
	gen         *Generator
	maxAttempts int
}

// New creates an Analyzer. Without options it uses the Go engine.
func New(opts ...Option) *Analyzer {
	cfg := &config{
		engine:      GoEngine{},
		repeatLimit: DefaultRepeatLimit,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.engine == nil {
		cfg.engine = GoEngine{}
	}
	if cfg.maxAttempts <= 0 {
		cfg.maxAttempts = DefaultMaxAttempts
	}

	return &Analyzer{
		engine:      cfg.engine,
		gen:         NewGenerator(cfg.src, cfg.repeatLimit),
		maxAttempts: cfg.maxAttempts,
	}
}

// Engine returns the engine patterns are compiled with
func (a *Analyzer) Engine() Engine {
	return a.engine
}

// RepeatLimit returns the bound used for unbounded quantifiers
func (a *Analyzer) RepeatLimit() int {
	return a.gen.RepeatLimit()
}

// Validate reports whether pattern compiles under the analyzer's engine
func (a *Analyzer) Validate(pattern string) bool {
	_, err := a.engine.Compile(pattern)
	return err == nil
}

// Match reports whether text contains at least one match of pattern.
// An invalid pattern fails closed.
func (a *Analyzer) Match(pattern, text string) bool {
	m, err := a.engine.Compile(pattern)
	if err != nil {
		return false
	}
	return m.MatchString(text)
}

// Explain returns the keyword explanation of pattern
func (a *Analyzer) Explain(pattern string) string {
	return Explain(pattern)
}

// GenerateExample returns one string accepted by pattern, or InvalidExample.
// Every candidate is checked against the compiled pattern, so a non-sentinel
// result always matches.
func (a *Analyzer) GenerateExample(pattern string) string {
	m, err := a.engine.Compile(pattern)
	if err != nil {
		return InvalidExample
	}
	tree, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return InvalidExample
	}

	for i := 0; i < a.maxAttempts; i++ {
		candidate, err := a.gen.Generate(tree)
		if err != nil {
			return InvalidExample
		}
		if m.MatchString(candidate) {
			return candidate
		}
	}
	return InvalidExample
}

// VisualizationURL builds the regexper.com link for pattern
func (a *Analyzer) VisualizationURL(pattern string) string {
	return VisualizationURL(pattern)
}

// VisualizationURL builds the regexper.com link for pattern, escaping it the
// way browsers' encodeURIComponent does.
func VisualizationURL(pattern string) string {
	return VisualizerBaseURL + encodeURIComponent(pattern)
}

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( )
func encodeURIComponent(s string) string {
	// QueryEscape leaves only A-Z a-z 0-9 - _ . ~ alone and turns spaces into '+'
	escaped := url.QueryEscape(s)
	return componentReplacer.Replace(escaped)
}

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
