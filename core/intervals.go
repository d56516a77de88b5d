package core

import (
	"time"

	"github.com/jayarege/Samsarademo/schema"
)

// DeriveOpenIntervals scans an ordered transition list and produces the
// non-overlapping "door was open" spans used for chart shading. An open event
// outside a run starts a candidate interval; the next close event ends it. A
// run still open when the scan ends is closed at lastKnown (typically the
// timestamp of the most recent temperature point). When lastKnown is the zero
// time there is no end bound to draw, so the trailing interval is suppressed.
func DeriveOpenIntervals(events []schema.DoorEvent, lastKnown time.Time) []schema.OpenInterval {
	var intervals []schema.OpenInterval
	var openStart time.Time
	inRun := false

	for _, e := range events {
		switch {
		case e.IsOpen && !inRun:
			openStart = e.Timestamp
			inRun = true
		case !e.IsOpen && inRun:
			intervals = append(intervals, schema.OpenInterval{Start: openStart, End: e.Timestamp})
			inRun = false
		}
	}

	if inRun && !lastKnown.IsZero() {
		intervals = append(intervals, schema.OpenInterval{Start: openStart, End: lastKnown})
	}
	return intervals
}
