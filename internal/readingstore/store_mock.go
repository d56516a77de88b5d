package readingstore

import (
	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/schema"
)

// MockStore is an in-memory ReadingStore for testing.
type MockStore struct {
	Reports []*schema.MonitorReport
	Cleared bool
	Closed  bool
}

var _ contract.ReadingStore = (*MockStore)(nil)

// RecordRun keeps the report in memory and returns a sequential ID.
func (m *MockStore) RecordRun(report *schema.MonitorReport) (int64, error) {
	m.Reports = append(m.Reports, report)
	return int64(len(m.Reports)), nil
}

// GetStatus reports the in-memory counts.
func (m *MockStore) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{Backend: schema.NoneBackend, Connected: true, Runs: len(m.Reports)}
	for _, r := range m.Reports {
		status.Points += len(r.Points)
		status.Events += len(r.DoorEvents)
	}
	return status, nil
}

// Clear drops the in-memory reports.
func (m *MockStore) Clear() error {
	m.Reports = nil
	m.Cleared = true
	return nil
}

// Close marks the store closed.
func (m *MockStore) Close() error {
	m.Closed = true
	return nil
}
