package core

import (
	"testing"
	"time"

	"github.com/jayarege/Samsarademo/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeriveOpenIntervals tests open interval derivation from transitions.
func TestDeriveOpenIntervals(t *testing.T) {
	zone := mustZone(t)
	at := func(ms int64) time.Time { return time.UnixMilli(ms).In(zone) }

	tests := []struct {
		name      string
		events    []schema.DoorEvent
		lastKnown time.Time
		expected  []schema.OpenInterval
	}{
		{
			name:      "no events",
			events:    nil,
			lastKnown: at(300000),
			expected:  nil,
		},
		{
			name: "single bounded interval",
			events: []schema.DoorEvent{
				{Timestamp: at(0), IsOpen: false},
				{Timestamp: at(120000), IsOpen: true},
				{Timestamp: at(180000), IsOpen: false},
			},
			lastKnown: at(300000),
			expected: []schema.OpenInterval{
				{Start: at(120000), End: at(180000)},
			},
		},
		{
			name: "trailing open run closed at last known point",
			events: []schema.DoorEvent{
				{Timestamp: at(0), IsOpen: false},
				{Timestamp: at(120000), IsOpen: true},
			},
			lastKnown: at(240000),
			expected: []schema.OpenInterval{
				{Start: at(120000), End: at(240000)},
			},
		},
		{
			name: "trailing open run suppressed without bound",
			events: []schema.DoorEvent{
				{Timestamp: at(120000), IsOpen: true},
			},
			lastKnown: time.Time{},
			expected:  nil,
		},
		{
			name: "multiple intervals",
			events: []schema.DoorEvent{
				{Timestamp: at(60000), IsOpen: true},
				{Timestamp: at(120000), IsOpen: false},
				{Timestamp: at(180000), IsOpen: true},
				{Timestamp: at(240000), IsOpen: false},
			},
			lastKnown: at(600000),
			expected: []schema.OpenInterval{
				{Start: at(60000), End: at(120000)},
				{Start: at(180000), End: at(240000)},
			},
		},
		{
			name: "only closed events",
			events: []schema.DoorEvent{
				{Timestamp: at(60000), IsOpen: false},
			},
			lastKnown: at(600000),
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intervals := DeriveOpenIntervals(tt.events, tt.lastKnown)
			require.Len(t, intervals, len(tt.expected))
			for i, want := range tt.expected {
				assert.True(t, want.Start.Equal(intervals[i].Start), "interval %d start", i)
				assert.True(t, want.End.Equal(intervals[i].End), "interval %d end", i)
			}
		})
	}
}
