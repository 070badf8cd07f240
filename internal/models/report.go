package models

import "time"

// CaseResult is the outcome of one batch case
type CaseResult struct {
	Name        string `json:"name" yaml:"name"`
	Result      Result `json:"result" yaml:"result"`
	ExpectMatch *bool  `json:"expect_match,omitempty" yaml:"expect_match,omitempty"` // nil when the case sets no expectation
	Passed      bool   `json:"passed" yaml:"passed"`
	Reason      string `json:"reason,omitempty" yaml:"reason,omitempty"` // Why the case failed
}

// Report summarizes a batch run
type Report struct {
	Source      string       `json:"source" yaml:"source"`
	Engine      string       `json:"engine" yaml:"engine"`
	Cases       []CaseResult `json:"cases" yaml:"cases"`
	Passed      int          `json:"passed" yaml:"passed"`
	Failed      int          `json:"failed" yaml:"failed"`
	History     []string     `json:"history" yaml:"history"` // Distinct valid patterns in first-tested order
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
}

// NewReport creates an empty report for source
func NewReport(source, engine string) *Report {
	return &Report{
		Source:      source,
		Engine:      engine,
		Cases:       make([]CaseResult, 0),
		History:     make([]string, 0),
		GeneratedAt: time.Now(),
	}
}

// AddCase records a case outcome and updates the counters
func (r *Report) AddCase(c CaseResult) {
	r.Cases = append(r.Cases, c)
	if c.Passed {
		r.Passed++
	} else {
		r.Failed++
	}
}

// OK reports whether every case passed
func (r *Report) OK() bool {
	return r.Failed == 0
}
