package schema

import "time"

// MonitorReport is the full output of one pipeline run over a queried range.
// Its JSON form is the payload the charting layer consumes: Points is the
// line series, MinThreshold/MaxThreshold the two horizontal reference lines,
// and OpenIntervals the shaded time-axis bands.
type MonitorReport struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Points        []TemperaturePoint `json:"points"`
	DoorEvents    []DoorEvent        `json:"door_events"`
	OpenIntervals []OpenInterval     `json:"open_intervals"`
	Summary       RangeSummary       `json:"summary"`

	MinThreshold float64 `json:"min_threshold"`
	MaxThreshold float64 `json:"max_threshold"`
}

// LastPointTime returns the timestamp of the most recent temperature point,
// or the zero time for an empty series.
func (r *MonitorReport) LastPointTime() time.Time {
	if len(r.Points) == 0 {
		return time.Time{}
	}
	return r.Points[len(r.Points)-1].Timestamp
}

// DoorOpenAnywhere reports whether any event in the report opened the door.
// The chart layer uses this to decide whether a "Door Open" legend entry is
// worth drawing.
func (r *MonitorReport) DoorOpenAnywhere() bool {
	for _, e := range r.DoorEvents {
		if e.IsOpen {
			return true
		}
	}
	return false
}
