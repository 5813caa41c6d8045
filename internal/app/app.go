// Package app provides the capture loop of the facecap face snapshot recorder.
package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ayusman/facecap/internal/capture"
	"github.com/ayusman/facecap/internal/detector"
	"github.com/ayusman/facecap/internal/display"
	"github.com/ayusman/facecap/internal/sink"
	"github.com/google/uuid"
)

// Loop timing defaults.
const (
	// DefaultCaptureInterval is the minimum time between saved snapshots.
	DefaultCaptureInterval = 5 * time.Second
	// DefaultFrameDelay caps the loop near 30 iterations per second.
	DefaultFrameDelay = 30 * time.Millisecond
)

var (
	// ErrFrameUnavailable is returned by Run when the camera stops delivering frames.
	ErrFrameUnavailable = errors.New("failed to grab frame")
	// ErrAlreadyRan is returned when Run is called a second time.
	ErrAlreadyRan = errors.New("capture session already ran")
)

// VideoOpener creates the video sink once the camera frame size is known.
type VideoOpener func(width, height int) (sink.VideoSink, error)

// Config holds the collaborators and timing of a capture session.
type Config struct {
	Camera    capture.Camera
	Detector  detector.Detector
	Snapshots sink.SnapshotWriter
	Display   display.Display
	OpenVideo VideoOpener

	CaptureInterval time.Duration
	FrameDelay      time.Duration

	// SessionID tags the session's log lines. A random UUID is used when empty.
	SessionID string
}

// Stats summarizes a capture session.
type Stats struct {
	Frames     int // frames written to the video sink
	Detections int // faces detected across all frames
	Saved      int // snapshot files written
	Captures   int // frames that advanced the photo counter
}

// App runs a single capture session.
type App struct {
	config Config
	state  State
	stats  Stats
	ran    bool
	mu     sync.Mutex

	now   func() time.Time
	sleep func(time.Duration)
}

// New creates an App. Camera, Detector, Snapshots and OpenVideo are required;
// a nil Display runs headless.
func New(config Config) (*App, error) {
	switch {
	case config.Camera == nil:
		return nil, errors.New("camera is required")
	case config.Detector == nil:
		return nil, errors.New("detector is required")
	case config.Snapshots == nil:
		return nil, errors.New("snapshot writer is required")
	case config.OpenVideo == nil:
		return nil, errors.New("video opener is required")
	}

	if config.Display == nil {
		config.Display = display.Headless{}
	}
	if config.CaptureInterval <= 0 {
		config.CaptureInterval = DefaultCaptureInterval
	}
	if config.FrameDelay < 0 {
		config.FrameDelay = 0
	}
	if config.SessionID == "" {
		config.SessionID = uuid.NewString()
	}

	return &App{
		config: config,
		state:  NewState(config.CaptureInterval),
		now:    time.Now,
		sleep:  time.Sleep,
	}, nil
}

// SessionID returns the identifier used in this session's log lines.
func (a *App) SessionID() string {
	return a.config.SessionID
}

// State returns the capture state after the most recent frame.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Stats returns the session counters so far.
func (a *App) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// String formats the stats for the completion log line.
func (s Stats) String() string {
	return fmt.Sprintf("frames=%d detections=%d saved=%d captures=%d",
		s.Frames, s.Detections, s.Saved, s.Captures)
}
