package core

import (
	"time"

	"github.com/jayarege/Samsarademo/schema"
)

// BuildReport runs the full pipeline over already-fetched raw samples:
// temperature cleaning, door transition collapse, threshold statistics and
// open-interval derivation. It is a pure transform over bounded inputs, so
// invoking it concurrently on independent inputs needs no coordination.
// Trailing open door runs are bounded by the last temperature point, matching
// how the chart shades "still open" up to the newest reading.
func BuildReport(tempSamples, doorSamples []schema.RawSample, zone *time.Location, start, end time.Time, minThreshold, maxThreshold float64) schema.MonitorReport {
	points := BuildTemperatureSeries(tempSamples, zone)
	events := ExtractDoorEvents(doorSamples, zone)

	report := schema.MonitorReport{
		Start:        start,
		End:          end,
		Points:       points,
		DoorEvents:   events,
		Summary:      AnalyzeRange(points, minThreshold, maxThreshold),
		MinThreshold: minThreshold,
		MaxThreshold: maxThreshold,
	}
	report.OpenIntervals = DeriveOpenIntervals(events, report.LastPointTime())
	return report
}
