// Package schema has configs, models and shared types for all parts of samsarademo.
package schema

import "time"

// RawSample is one timestamped record from the vendor sensor history API,
// after boundary decoding but before cleaning. Either field may be absent:
// the API omits timeMs on some records and returns null series values during
// sensor dropout. All missing-field checks happen here, once, so the pipeline
// in core never re-inspects raw JSON.
type RawSample struct {
	TimeMs *int64   // Epoch milliseconds, nil when the record had no timestamp
	Value  *float64 // First series value, nil when the reading was null or absent
}

// TemperaturePoint is a cleaned temperature reading in the target time zone.
// Points are immutable once produced by the series builder.
type TemperaturePoint struct {
	Timestamp  time.Time `json:"timestamp"`
	Fahrenheit float64   `json:"fahrenheit"`
}

// DoorEvent records a door state change, not a raw reading. Sequences
// produced by the extractor never contain two consecutive events with the
// same IsOpen value; the first event carries the first observed state.
type DoorEvent struct {
	Timestamp time.Time `json:"timestamp"`
	IsOpen    bool      `json:"is_open"`
}

// OpenInterval is a derived span of time during which the door was
// continuously open. Intervals are always bounded: a trailing open run is
// either closed at the last known data timestamp or suppressed.
type OpenInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RangeSummary holds the threshold statistics for a temperature series.
// Min and Max are nil for an empty series so callers can render "N/A".
type RangeSummary struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`

	// OutOfRange counts samples strictly outside the threshold band. With the
	// fixed one-minute query step each sample stands for one minute, so the
	// count doubles as "minutes out of range".
	OutOfRange int `json:"out_of_range"`
}

// SensorSnapshot holds the latest live readings from the current-value
// endpoints. Pointers are nil when a sensor could not be read.
type SensorSnapshot struct {
	Fahrenheit *float64  `json:"fahrenheit"`
	DoorClosed *bool     `json:"door_closed"`
	Taken      time.Time `json:"taken"`
}
