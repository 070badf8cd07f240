package models

import "time"

// User-facing status strings of a test run
const (
	StatusMatch          = "✅ Valid string of the regex pattern"
	StatusNoMatch        = "❌ Invalid string of the regex pattern"
	InvalidPatternNotice = "⚠️ Invalid regex pattern."
)

// Result is the outcome of testing one pattern against one subject
type Result struct {
	Pattern          string    `json:"pattern" yaml:"pattern"`                                         // Pattern as tested (after sanitization)
	Subject          string    `json:"subject" yaml:"subject"`                                         // Test string as tested
	Valid            bool      `json:"valid" yaml:"valid"`                                             // Pattern compiled
	Matched          bool      `json:"matched" yaml:"matched"`                                         // Subject contains a match
	Status           string    `json:"status" yaml:"status"`                                           // Match status line, empty when invalid
	Explanation      string    `json:"explanation" yaml:"explanation"`                                 // Keyword explanation or invalid notice
	Example          string    `json:"example" yaml:"example"`                                         // Generated example or sentinel
	VisualizationURL string    `json:"visualization_url,omitempty" yaml:"visualization_url,omitempty"` // regexper.com link
	Engine           string    `json:"engine" yaml:"engine"`                                           // Engine used
	TestedAt         time.Time `json:"tested_at" yaml:"tested_at"`                                     // When the test ran
}

// InvalidResult builds the result reported for a pattern that does not compile
func InvalidResult(pattern, subject, engine, example string) Result {
	return Result{
		Pattern:     pattern,
		Subject:     subject,
		Valid:       false,
		Matched:     false,
		Status:      "",
		Explanation: InvalidPatternNotice,
		Example:     example,
		Engine:      engine,
		TestedAt:    time.Now(),
	}
}

// MatchStatus returns the status line for a match outcome
func MatchStatus(matched bool) string {
	if matched {
		return StatusMatch
	}
	return StatusNoMatch
}
