// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/jayarege/Samsarademo/schema"
)

// SensorClient defines the operations the pipeline needs from the vendor
// sensor API. The core logic only ever sees already-materialized RawSample
// slices, so tests can swap in a canned client without any HTTP.
type SensorClient interface {
	// TemperatureHistory fetches raw ambient temperature samples for the
	// range, one sample per minute step. Values are milli-Celsius.
	TemperatureHistory(ctx context.Context, start, end time.Time) ([]schema.RawSample, error)

	// DoorHistory fetches raw door-closed samples for the range.
	// Values are 1 (closed), 0 (open) or nil.
	DoorHistory(ctx context.Context, start, end time.Time) ([]schema.RawSample, error)

	// CurrentTemperature returns the latest reading in Fahrenheit, or nil
	// when the sensor reported nothing.
	CurrentTemperature(ctx context.Context) (*float64, error)

	// CurrentDoorClosed returns the latest door state, nil when unknown.
	CurrentDoorClosed(ctx context.Context) (*bool, error)
}

// ReadingStore defines the interface for persisting report runs.
// This allows mocking the store for testing.
type ReadingStore interface {
	// RecordRun stores a completed report (run row plus its points and
	// events) and returns the run's unique ID.
	RecordRun(report *schema.MonitorReport) (int64, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Clear removes all stored runs, points and events.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
