package batch

import "fmt"

// ValidationError is a file-level problem such as a bad version or no cases
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// CaseError is a problem with a single case
type CaseError struct {
	Index   int    // 0-based position in the file
	Name    string // may be empty when the name is missing
	Field   string
	Message string
	Cause   error
}

func (e *CaseError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("case %q: %s: %s", e.Name, e.Field, e.Message)
	}
	return fmt.Sprintf("case[%d]: %s: %s", e.Index, e.Field, e.Message)
}

func (e *CaseError) Unwrap() error {
	return e.Cause
}
