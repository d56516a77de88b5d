package core

import (
	"math"
	"testing"
	"time"

	"github.com/jayarege/Samsarademo/schema"
)

// FuzzToFahrenheit fuzzes the conversion with arbitrary milli-Celsius values.
func FuzzToFahrenheit(f *testing.F) {
	seeds := []int64{0, 21398, -40000, 100000, math.MaxInt64 / 2, math.MinInt64 / 2}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, milli int64) {
		result := ToFahrenheit(milli)
		if math.IsNaN(result) {
			t.Errorf("ToFahrenheit(%d) is NaN", milli)
		}
		// Tenths rounding is only checkable where floats still resolve tenths
		scaled := result * 10
		if math.Abs(result) < 1e9 && math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			t.Errorf("ToFahrenheit(%d) = %v is not rounded to tenths", milli, result)
		}
	})
}

// FuzzExtractDoorEvents fuzzes the extractor with arbitrary encoded sample
// streams and checks the alternation invariant holds.
func FuzzExtractDoorEvents(f *testing.F) {
	seeds := []string{"", "1", "10", "1001", "xx10", "111", "0_1"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, encoded string) {
		// Each rune becomes one sample: '1' closed, '0' open, '_' null value,
		// anything else a sample without a timestamp.
		var samples []schema.RawSample
		for i, r := range encoded {
			ts := int64(i) * 60000
			switch r {
			case '1':
				samples = append(samples, schema.RawSample{TimeMs: &ts, Value: f64Ptr(1)})
			case '0':
				samples = append(samples, schema.RawSample{TimeMs: &ts, Value: f64Ptr(0)})
			case '_':
				samples = append(samples, schema.RawSample{TimeMs: &ts, Value: nil})
			default:
				samples = append(samples, schema.RawSample{TimeMs: nil, Value: f64Ptr(1)})
			}
		}

		events := ExtractDoorEvents(samples, time.UTC)
		for i := 1; i < len(events); i++ {
			if events[i-1].IsOpen == events[i].IsOpen {
				t.Errorf("events %d and %d repeat state %v", i-1, i, events[i].IsOpen)
			}
		}
		if len(events) > len(samples) {
			t.Errorf("more events (%d) than samples (%d)", len(events), len(samples))
		}
	})
}
