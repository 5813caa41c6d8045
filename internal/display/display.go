// Package display shows annotated frames to the user and reports key presses.
package display

import (
	"sync"

	"gocv.io/x/gocv"
)

// Key codes
const (
	NoKey  = -1
	KeyEsc = 27
	KeyQ   = 'q'
)

// DefaultTitle is the preview window title.
const DefaultTitle = "Face Detection"

// Display is a preview surface polled once per frame.
type Display interface {
	Show(frame *gocv.Mat)
	// PollKey returns the key pressed since the last poll, or NoKey.
	PollKey() int
	Close() error
}

// IsQuitKey reports whether key ends the session: q or Escape.
func IsQuitKey(key int) bool {
	if key < 0 {
		return false
	}
	k := key & 0xFF
	return k == KeyQ || k == KeyEsc
}

// Window is an OpenCV HighGUI window.
type Window struct {
	window *gocv.Window
	mu     sync.Mutex
	closed bool
}

// NewWindow opens a preview window with the given title.
func NewWindow(title string) *Window {
	return &Window{window: gocv.NewWindow(title)}
}

// Show draws frame in the window.
func (w *Window) Show(frame *gocv.Mat) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.window.IMShow(*frame)
}

// PollKey waits 1ms for a key press, which also lets HighGUI refresh the window.
func (w *Window) PollKey() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return NoKey
	}
	return w.window.WaitKey(1)
}

// Close destroys the window. Calling Close more than once is safe.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.window.Close()
}

// Headless discards frames and never reports a key press.
type Headless struct{}

func (Headless) Show(*gocv.Mat) {}
func (Headless) PollKey() int   { return NoKey }
func (Headless) Close() error   { return nil }
