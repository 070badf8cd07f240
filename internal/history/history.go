// Package history keeps the session's list of tested patterns.
package history

import "sync"

// Tracker is an insertion-ordered, duplicate-free list of patterns.
// It lives only as long as the process and is safe for concurrent use.
type Tracker struct {
	mu       sync.RWMutex
	patterns []string
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		patterns: make([]string, 0),
	}
}

// Add appends pattern unless an equal pattern is already recorded.
// Returns true if the pattern was appended.
func (t *Tracker) Add(pattern string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, p := range t.patterns {
		if p == pattern {
			return false
		}
	}
	t.patterns = append(t.patterns, pattern)
	return true
}

// Patterns returns a snapshot of the recorded patterns in insertion order.
// Modifying the returned slice does not affect the tracker.
func (t *Tracker) Patterns() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshot := make([]string, len(t.patterns))
	copy(snapshot, t.patterns)
	return snapshot
}

// Contains reports whether pattern has been recorded
func (t *Tracker) Contains(pattern string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, p := range t.patterns {
		if p == pattern {
			return true
		}
	}
	return false
}

// Len returns the number of recorded patterns
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.patterns)
}

// Clear removes all recorded patterns
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.patterns = make([]string, 0)
}
