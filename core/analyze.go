package core

import "github.com/jayarege/Samsarademo/schema"

// AnalyzeRange computes summary statistics for a completed temperature
// series. Min and Max are nil when the series is empty, letting the caller
// render "N/A" instead of a fake zero. OutOfRange counts points strictly
// below minThreshold or strictly above maxThreshold; it is a count of
// samples, which the one-minute query step lets callers present as minutes.
func AnalyzeRange(points []schema.TemperaturePoint, minThreshold, maxThreshold float64) schema.RangeSummary {
	var summary schema.RangeSummary
	if len(points) == 0 {
		return summary
	}

	lo, hi := points[0].Fahrenheit, points[0].Fahrenheit
	for _, p := range points {
		lo = min(lo, p.Fahrenheit)
		hi = max(hi, p.Fahrenheit)
		if p.Fahrenheit < minThreshold || p.Fahrenheit > maxThreshold {
			summary.OutOfRange++
		}
	}
	summary.Min = &lo
	summary.Max = &hi
	return summary
}
