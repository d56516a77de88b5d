package contract

import (
	"fmt"
	"sync"
)

// DefaultDebugLogCapacity bounds the fetch-call log to the most recent entries.
const DefaultDebugLogCapacity = 20

// DebugLog is a bounded ring buffer of fetch diagnostics. It is owned by the
// caller and handed to the API client as an observer; the pipeline itself
// stays logging-free so the transforms remain pure and testable. Once the
// buffer is full the oldest entry is evicted.
type DebugLog struct {
	mu       sync.Mutex
	capacity int
	entries  []string
}

// NewDebugLog creates a ring buffer holding up to capacity entries.
// A non-positive capacity falls back to DefaultDebugLogCapacity.
func NewDebugLog(capacity int) *DebugLog {
	if capacity <= 0 {
		capacity = DefaultDebugLogCapacity
	}
	return &DebugLog{capacity: capacity}
}

// Appendf records a formatted entry, evicting the oldest when full.
// A nil receiver is a no-op so callers can opt out of diagnostics entirely.
func (l *DebugLog) Appendf(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Entries returns a copy of the buffered entries, oldest first.
func (l *DebugLog) Entries() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear empties the buffer.
func (l *DebugLog) Clear() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
