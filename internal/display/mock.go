package display

import "gocv.io/x/gocv"

// MockDisplay replays scripted key presses for testing.
// Poll n returns keys[n]; after the script runs out it returns NoKey.
type MockDisplay struct {
	keys   []int
	polls  int
	shown  int
	closes int
}

// NewMockDisplay creates a MockDisplay with the given key script.
func NewMockDisplay(keys ...int) *MockDisplay {
	return &MockDisplay{keys: keys}
}

func (m *MockDisplay) Show(frame *gocv.Mat) {
	m.shown++
}

func (m *MockDisplay) PollKey() int {
	i := m.polls
	m.polls++
	if i < len(m.keys) {
		return m.keys[i]
	}
	return NoKey
}

func (m *MockDisplay) Close() error {
	m.closes++
	return nil
}

// Shown returns the number of frames shown.
func (m *MockDisplay) Shown() int { return m.shown }

// Polls returns the number of key polls.
func (m *MockDisplay) Polls() int { return m.polls }

// Closes returns the number of times Close was called.
func (m *MockDisplay) Closes() int { return m.closes }

// QuitAfter returns a key script that presses q on poll n (1-based).
func QuitAfter(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = NoKey
	}
	keys[n-1] = KeyQ
	return keys
}
