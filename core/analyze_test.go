package core

import (
	"testing"
	"time"

	"github.com/jayarege/Samsarademo/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointsFrom(values ...float64) []schema.TemperaturePoint {
	points := make([]schema.TemperaturePoint, 0, len(values))
	for i, v := range values {
		points = append(points, schema.TemperaturePoint{
			Timestamp:  time.UnixMilli(int64(i) * 60000),
			Fahrenheit: v,
		})
	}
	return points
}

// TestAnalyzeRange tests summary statistics over a cleaned series.
func TestAnalyzeRange(t *testing.T) {
	tests := []struct {
		name          string
		values        []float64
		minThreshold  float64
		maxThreshold  float64
		expectedMin   *float64
		expectedMax   *float64
		expectedCount int
	}{
		{
			name:          "empty series has nil bounds",
			values:        nil,
			minThreshold:  35,
			maxThreshold:  75,
			expectedMin:   nil,
			expectedMax:   nil,
			expectedCount: 0,
		},
		{
			name:          "mixed series counts both tails",
			values:        []float64{30, 50, 80},
			minThreshold:  35,
			maxThreshold:  75,
			expectedMin:   f64Ptr(30),
			expectedMax:   f64Ptr(80),
			expectedCount: 2,
		},
		{
			name:          "boundary values are in range",
			values:        []float64{35, 75},
			minThreshold:  35,
			maxThreshold:  75,
			expectedMin:   f64Ptr(35),
			expectedMax:   f64Ptr(75),
			expectedCount: 0,
		},
		{
			name:          "single point",
			values:        []float64{70.5},
			minThreshold:  35,
			maxThreshold:  75,
			expectedMin:   f64Ptr(70.5),
			expectedMax:   f64Ptr(70.5),
			expectedCount: 0,
		},
		{
			name:          "all out of range",
			values:        []float64{10, 12, 90},
			minThreshold:  35,
			maxThreshold:  75,
			expectedMin:   f64Ptr(10),
			expectedMax:   f64Ptr(90),
			expectedCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := AnalyzeRange(pointsFrom(tt.values...), tt.minThreshold, tt.maxThreshold)

			if tt.expectedMin == nil {
				assert.Nil(t, summary.Min)
				assert.Nil(t, summary.Max)
			} else {
				require.NotNil(t, summary.Min)
				require.NotNil(t, summary.Max)
				assert.InDelta(t, *tt.expectedMin, *summary.Min, 0.0001)
				assert.InDelta(t, *tt.expectedMax, *summary.Max, 0.0001)
			}
			assert.Equal(t, tt.expectedCount, summary.OutOfRange)
		})
	}
}
