package messages

import "github.com/cheerioskun/regexninja/internal/models"

// TestRequestedMsg is sent when the user submits a pattern and subject
type TestRequestedMsg struct {
	Pattern string
	Subject string
}

// PatternTestedMsg is sent when a session test has produced a result
type PatternTestedMsg struct {
	Result          models.Result
	SourceComponent string // Which component requested the test
}

// HistoryChangedMsg is sent when the session history has been modified
type HistoryChangedMsg struct {
	Patterns []string // Distinct valid patterns in first-tested order
}

// HistorySelectedMsg is sent when a history entry is recalled into the editor
type HistorySelectedMsg struct {
	Pattern string
}

// HistoryClearRequestedMsg asks the app to forget the session history
type HistoryClearRequestedMsg struct{}

// RefreshComponentsMsg is sent to trigger component refreshes
type RefreshComponentsMsg struct {
	Reason string // Why the refresh was triggered
}
