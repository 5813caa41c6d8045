package sink

import (
	"image"
	"path"

	"gocv.io/x/gocv"
)

// MockVideoSink counts written frames for testing.
// With keep set it also retains a clone of each frame; call Close to free them.
type MockVideoSink struct {
	keep   bool
	frames []gocv.Mat
	writes int
	closes int
	err    error
}

// NewMockVideoSink creates a MockVideoSink. keep controls whether frames are cloned and retained.
func NewMockVideoSink(keep bool) *MockVideoSink {
	return &MockVideoSink{keep: keep}
}

// SetError makes every subsequent Write fail with err.
func (m *MockVideoSink) SetError(err error) {
	m.err = err
}

func (m *MockVideoSink) Write(frame *gocv.Mat) error {
	if m.err != nil {
		return m.err
	}
	if m.closes > 0 {
		return ErrSinkClosed
	}
	m.writes++
	if m.keep {
		m.frames = append(m.frames, frame.Clone())
	}
	return nil
}

func (m *MockVideoSink) Close() error {
	m.closes++
	return nil
}

// Writes returns the number of frames written.
func (m *MockVideoSink) Writes() int { return m.writes }

// Closes returns the number of times Close was called.
func (m *MockVideoSink) Closes() int { return m.closes }

// Frames returns the retained frames. They stay valid until Release.
func (m *MockVideoSink) Frames() []gocv.Mat { return m.frames }

// Release frees retained frames.
func (m *MockVideoSink) Release() {
	for i := range m.frames {
		m.frames[i].Close()
	}
	m.frames = nil
}

// SavedSnapshot describes one call to MockSnapshots.Save.
type SavedSnapshot struct {
	Name string
	Size image.Point
}

// MockSnapshots records snapshot names and crop sizes without touching disk.
type MockSnapshots struct {
	dir   string
	saved []SavedSnapshot
	err   error
}

// NewMockSnapshots creates a MockSnapshots reporting paths under dir.
func NewMockSnapshots(dir string) *MockSnapshots {
	return &MockSnapshots{dir: dir}
}

// SetError makes every subsequent Save fail with err.
func (m *MockSnapshots) SetError(err error) {
	m.err = err
}

func (m *MockSnapshots) Save(name string, img gocv.Mat) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.saved = append(m.saved, SavedSnapshot{
		Name: name,
		Size: image.Pt(img.Cols(), img.Rows()),
	})
	return path.Join(m.dir, name), nil
}

// Saved returns every recorded snapshot in call order.
func (m *MockSnapshots) Saved() []SavedSnapshot { return m.saved }

// Names returns the recorded snapshot names in call order.
func (m *MockSnapshots) Names() []string {
	names := make([]string, len(m.saved))
	for i, s := range m.saved {
		names[i] = s.Name
	}
	return names
}
