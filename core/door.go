package core

import (
	"time"

	"github.com/jayarege/Samsarademo/schema"
)

// doorFold is the accumulator for the door scan. Keeping the previous state
// explicit makes each step a pure function of (accumulator, sample) instead
// of a mutable closure variable.
type doorFold struct {
	prev   schema.DoorState
	events []schema.DoorEvent
}

// step consumes one sample and returns the updated accumulator. Samples that
// repeat the current state are consumed without emitting; this is an edge
// detector, not a verbatim log.
func (f doorFold) step(ts time.Time, isOpen bool) doorFold {
	state := schema.DoorClosed
	if isOpen {
		state = schema.DoorOpen
	}
	if state == f.prev {
		return f
	}
	f.events = append(f.events, schema.DoorEvent{Timestamp: ts, IsOpen: isOpen})
	f.prev = state
	return f
}

// ExtractDoorEvents collapses raw door-closed samples into a minimal ordered
// list of state transitions. Samples without a timestamp are dropped. A
// missing or null reading defaults to "closed": absent door data must never
// produce spurious open intervals downstream, so the extractor fails safe
// rather than alarming on sensor gaps. The wire encoding is 1 = closed,
// 0 = open.
//
// The first emitted event carries the first observed state; after that,
// consecutive events always alternate IsOpen.
func ExtractDoorEvents(samples []schema.RawSample, zone *time.Location) []schema.DoorEvent {
	acc := doorFold{prev: schema.DoorUnknown}
	for _, s := range samples {
		if s.TimeMs == nil {
			continue
		}
		isClosed := true
		if s.Value != nil {
			isClosed = *s.Value == 1
		}
		acc = acc.step(time.UnixMilli(*s.TimeMs).In(zone), !isClosed)
	}
	return acc.events
}
