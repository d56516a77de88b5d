package core

import (
	"time"

	"github.com/jayarege/Samsarademo/schema"
)

// BuildTemperatureSeries turns raw history samples into a cleaned temperature
// series in the target zone. Per sample, first match wins:
//
//  1. no timestamp  -> dropped (unusable)
//  2. nil or zero value -> dropped (0 milli-C is the vendor's "sensor off /
//     no data" sentinel, not a real reading)
//  3. otherwise the epoch-ms instant is reinterpreted in zone and the value
//     converted to Fahrenheit
//
// Output order mirrors input order; no sorting and no deduplication of equal
// timestamps. Malformed samples are routine sensor dropout, never an error,
// so the transform degrades sample-by-sample and an empty input yields an
// empty series.
func BuildTemperatureSeries(samples []schema.RawSample, zone *time.Location) []schema.TemperaturePoint {
	points := make([]schema.TemperaturePoint, 0, len(samples))
	for _, s := range samples {
		if s.TimeMs == nil {
			continue
		}
		if s.Value == nil || *s.Value == 0 {
			continue
		}
		points = append(points, schema.TemperaturePoint{
			Timestamp:  time.UnixMilli(*s.TimeMs).In(zone),
			Fahrenheit: ToFahrenheit(int64(*s.Value)),
		})
	}
	return points
}
