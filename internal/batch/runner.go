package batch

import (
	"context"
	"fmt"

	"github.com/cheerioskun/regexninja/internal/models"
	"github.com/cheerioskun/regexninja/internal/session"
	"github.com/cheerioskun/regexninja/internal/utils"
)

// Runner executes case files against a session
type Runner struct {
	session *session.Session
}

// NewRunner creates a runner that tests through s
func NewRunner(s *session.Session) *Runner {
	return &Runner{session: s}
}

// Run tests every case in order and returns the report. It stops early, with
// the partial report and ctx.Err(), when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, source string, cf *CaseFile) (*models.Report, error) {
	report := models.NewReport(source, r.session.Analyzer().Engine().Name())

	for _, c := range cf.Cases {
		if err := ctx.Err(); err != nil {
			report.History = r.session.History()
			return report, err
		}

		res := r.session.Test(c.Pattern, c.Subject)
		cr := Evaluate(c, res)
		if !cr.Passed {
			utils.Debug("case %q failed: %s", c.Name, cr.Reason)
		}
		report.AddCase(cr)
	}

	report.History = r.session.History()
	return report, nil
}

// Evaluate compares a result against the case's expectation. A pattern that
// does not compile always fails.
func Evaluate(c Case, res models.Result) models.CaseResult {
	cr := models.CaseResult{
		Name:        c.Name,
		Result:      res,
		ExpectMatch: c.ExpectMatch,
		Passed:      true,
	}

	switch {
	case !res.Valid:
		cr.Passed = false
		cr.Reason = "pattern does not compile"
	case c.ExpectMatch != nil && *c.ExpectMatch != res.Matched:
		cr.Passed = false
		cr.Reason = fmt.Sprintf("expected match=%t, got %t", *c.ExpectMatch, res.Matched)
	}
	return cr
}
