package detector

import (
	"image"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	faces    []image.Rectangle
	sequence [][]image.Rectangle
	calls    int
	err      error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFaces sets the faces that will be returned by every call to Detect.
func (m *MockDetector) SetFaces(faces []image.Rectangle) {
	m.faces = faces
}

// SetSequence queues per-call results. Call n of Detect returns sequence[n];
// once the queue is exhausted Detect falls back to the faces set by SetFaces.
func (m *MockDetector) SetSequence(sequence [][]image.Rectangle) {
	m.sequence = sequence
	m.calls = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured faces or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]image.Rectangle, error) {
	call := m.calls
	m.calls++

	if m.err != nil {
		return nil, m.err
	}
	if call < len(m.sequence) {
		return m.sequence[call], nil
	}
	return m.faces, nil
}

// Calls returns the number of times Detect was called.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// TwoFaces returns two non-overlapping face rectangles that fit inside a
// 640x480 frame.
func TwoFaces() []image.Rectangle {
	return []image.Rectangle{
		image.Rect(50, 60, 150, 180),
		image.Rect(300, 100, 420, 240),
	}
}
