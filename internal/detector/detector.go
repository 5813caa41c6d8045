// Package detector locates faces in video frames.
package detector

import (
	"image"

	"gocv.io/x/gocv"
)

// Detector defines the interface for face detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns the bounding rectangles of
	// detected faces in frame coordinates. The order of the rectangles carries
	// no meaning. Returns an empty slice if no faces are detected.
	Detect(frame *gocv.Mat) ([]image.Rectangle, error)

	// Close releases any resources held by the detector.
	Close() error
}

// DefaultCascadeFile is the frontal face Haar cascade shipped with OpenCV.
const DefaultCascadeFile = "haarcascade_frontalface_default.xml"

// Config holds configuration options for face detection.
type Config struct {
	// CascadePath is the path to the Haar cascade XML file.
	CascadePath string

	// ScaleFactor is how much the image is shrunk at each scale (must be > 1).
	ScaleFactor float64

	// MinNeighbors is how many neighboring candidates a rectangle needs to be kept.
	MinNeighbors int

	// MinSize is the smallest face considered. The zero value means no limit.
	MinSize image.Point
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		CascadePath:  DefaultCascadeFile,
		ScaleFactor:  1.1,
		MinNeighbors: 5,
	}
}
