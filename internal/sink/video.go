// Package sink provides destinations for annotated frames: the session video
// file and the directory of cropped face snapshots.
package sink

import (
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// Default video settings
const (
	DefaultCodec = "XVID"
	DefaultFPS   = 20.0
)

// ErrSinkClosed is returned when writing to a sink that has been closed.
var ErrSinkClosed = errors.New("sink is closed")

// VideoSink receives every processed frame in order.
type VideoSink interface {
	// Write appends a frame. The sink must not keep a reference to it.
	Write(frame *gocv.Mat) error
	Close() error
}

// VideoFile writes frames to a video container on disk using GoCV.
type VideoFile struct {
	path   string
	writer *gocv.VideoWriter
	mu     sync.Mutex
	closed bool
}

// OpenVideoFile creates the video file at path. width and height must match
// the frames that will be written.
func OpenVideoFile(path, codec string, fps float64, width, height int) (*VideoFile, error) {
	if len(codec) != 4 {
		return nil, fmt.Errorf("codec must be a four character code, got %q", codec)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be > 0, got %.2f", fps)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	writer, err := gocv.VideoWriterFile(path, codec, fps, width, height, true)
	if err != nil {
		return nil, fmt.Errorf("open video writer %s: %w", path, err)
	}

	if !writer.IsOpened() {
		writer.Close()
		return nil, fmt.Errorf("video writer %s could not be opened", path)
	}

	return &VideoFile{
		path:   path,
		writer: writer,
	}, nil
}

// Path returns the file the video is written to.
func (v *VideoFile) Path() string {
	return v.path
}

// Write appends a frame to the video.
func (v *VideoFile) Write(frame *gocv.Mat) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrSinkClosed
	}

	if err := v.writer.Write(*frame); err != nil {
		return fmt.Errorf("write frame to %s: %w", v.path, err)
	}
	return nil
}

// Close finalizes the video file. Calling Close more than once is safe.
func (v *VideoFile) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil
	}
	v.closed = true

	return v.writer.Close()
}
