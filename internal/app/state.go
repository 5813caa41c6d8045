package app

import (
	"fmt"
	"time"
)

// State is the capture bookkeeping carried from one frame to the next.
type State struct {
	// Counter is the sequence number of the next saved photo. Starts at 1.
	Counter int
	// LastCapture is when the last photo was saved. The zero time means never.
	LastCapture time.Time
	// Interval is the minimum time between saved photos.
	Interval time.Duration
}

// NewState returns the state at session start.
func NewState(interval time.Duration) State {
	return State{
		Counter:  1,
		Interval: interval,
	}
}

// Eligible reports whether a photo may be saved at now.
// The interval must have strictly elapsed since the last capture.
func (s State) Eligible(now time.Time) bool {
	if s.LastCapture.IsZero() {
		return true
	}
	return now.Sub(s.LastCapture) > s.Interval
}

// Advance returns the state after a qualifying frame was captured at now.
func (s State) Advance(now time.Time) State {
	s.Counter++
	s.LastCapture = now
	return s
}

// SnapshotName is the file name of the index-th face (1-based) saved under counter.
func SnapshotName(counter, index int) string {
	return fmt.Sprintf("face_%d_%d.png", counter, index)
}
