package core

import (
	"testing"
	"time"

	"github.com/jayarege/Samsarademo/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildReport runs the full pipeline over one realistic window.
func TestBuildReport(t *testing.T) {
	zone := mustZone(t)
	start := time.UnixMilli(0).In(zone)
	end := time.UnixMilli(600000).In(zone)

	tempSamples := []schema.RawSample{
		{TimeMs: i64Ptr(60000), Value: f64Ptr(21398)},  // 70.5 F
		{TimeMs: i64Ptr(120000), Value: f64Ptr(0)},     // sentinel, dropped
		{TimeMs: i64Ptr(180000), Value: f64Ptr(30000)}, // 86.0 F, above max
		{TimeMs: i64Ptr(240000), Value: nil},           // dropped
		{TimeMs: i64Ptr(300000), Value: f64Ptr(21398)}, // 70.5 F
	}
	doorSamples := []schema.RawSample{
		{TimeMs: i64Ptr(60000), Value: f64Ptr(1)},
		{TimeMs: i64Ptr(120000), Value: f64Ptr(0)},
		{TimeMs: i64Ptr(180000), Value: f64Ptr(0)},
		{TimeMs: i64Ptr(240000), Value: f64Ptr(1)},
	}

	report := BuildReport(tempSamples, doorSamples, zone, start, end, 35, 75)

	assert.Equal(t, start, report.Start)
	assert.Equal(t, end, report.End)

	require.Len(t, report.Points, 3)
	assert.InDelta(t, 70.5, report.Points[0].Fahrenheit, 0.0001)
	assert.InDelta(t, 86.0, report.Points[1].Fahrenheit, 0.0001)

	require.Len(t, report.DoorEvents, 3)
	assert.False(t, report.DoorEvents[0].IsOpen)
	assert.True(t, report.DoorEvents[1].IsOpen)
	assert.False(t, report.DoorEvents[2].IsOpen)

	require.Len(t, report.OpenIntervals, 1)
	assert.Equal(t, int64(120000), report.OpenIntervals[0].Start.UnixMilli())
	assert.Equal(t, int64(240000), report.OpenIntervals[0].End.UnixMilli())

	require.NotNil(t, report.Summary.Min)
	require.NotNil(t, report.Summary.Max)
	assert.InDelta(t, 70.5, *report.Summary.Min, 0.0001)
	assert.InDelta(t, 86.0, *report.Summary.Max, 0.0001)
	assert.Equal(t, 1, report.Summary.OutOfRange)
}

// TestBuildReportTrailingOpenRun verifies a trailing open run is bounded by
// the newest temperature point.
func TestBuildReportTrailingOpenRun(t *testing.T) {
	zone := mustZone(t)
	start := time.UnixMilli(0).In(zone)
	end := time.UnixMilli(600000).In(zone)

	tempSamples := []schema.RawSample{
		{TimeMs: i64Ptr(60000), Value: f64Ptr(21398)},
		{TimeMs: i64Ptr(300000), Value: f64Ptr(21398)},
	}
	doorSamples := []schema.RawSample{
		{TimeMs: i64Ptr(60000), Value: f64Ptr(1)},
		{TimeMs: i64Ptr(120000), Value: f64Ptr(0)},
	}

	report := BuildReport(tempSamples, doorSamples, zone, start, end, 35, 75)

	require.Len(t, report.OpenIntervals, 1)
	assert.Equal(t, int64(120000), report.OpenIntervals[0].Start.UnixMilli())
	assert.Equal(t, int64(300000), report.OpenIntervals[0].End.UnixMilli())
}

// TestBuildReportNoTemperaturePoints verifies a trailing open run is dropped
// when there is no temperature point to bound it.
func TestBuildReportNoTemperaturePoints(t *testing.T) {
	zone := mustZone(t)
	start := time.UnixMilli(0).In(zone)
	end := time.UnixMilli(600000).In(zone)

	doorSamples := []schema.RawSample{
		{TimeMs: i64Ptr(60000), Value: f64Ptr(0)},
	}

	report := BuildReport(nil, doorSamples, zone, start, end, 35, 75)

	assert.Empty(t, report.Points)
	assert.Nil(t, report.Summary.Min)
	assert.Nil(t, report.Summary.Max)
	require.Len(t, report.DoorEvents, 1)
	assert.Empty(t, report.OpenIntervals)
}
