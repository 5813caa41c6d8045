package detector

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"
)

// CascadeDetector implements Detector with an OpenCV Haar cascade classifier.
type CascadeDetector struct {
	config     Config
	classifier gocv.CascadeClassifier
	mu         sync.Mutex
	closed     bool
}

// NewCascadeDetector loads the cascade named by cfg.CascadePath.
func NewCascadeDetector(cfg Config) (*CascadeDetector, error) {
	if cfg.ScaleFactor <= 1 {
		return nil, fmt.Errorf("scale factor must be > 1, got %.2f", cfg.ScaleFactor)
	}
	if cfg.MinNeighbors < 0 {
		return nil, fmt.Errorf("min neighbors must be >= 0, got %d", cfg.MinNeighbors)
	}

	if _, err := os.Stat(cfg.CascadePath); err != nil {
		return nil, fmt.Errorf("cascade file %s: %w", cfg.CascadePath, err)
	}

	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cfg.CascadePath) {
		classifier.Close()
		return nil, fmt.Errorf("failed to load cascade file: %s", cfg.CascadePath)
	}

	return &CascadeDetector{
		config:     cfg,
		classifier: classifier,
	}, nil
}

// Detect converts the frame to grayscale and runs multi-scale detection on it.
func (d *CascadeDetector) Detect(frame *gocv.Mat) ([]image.Rectangle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, errors.New("detector is closed")
	}

	if frame == nil || frame.Empty() {
		return nil, nil
	}

	gray := gocv.NewMat()
	defer gray.Close()

	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	rects := d.classifier.DetectMultiScaleWithParams(
		gray,
		d.config.ScaleFactor,
		d.config.MinNeighbors,
		0,
		d.config.MinSize,
		image.Point{},
	)

	return rects, nil
}

// Close releases the classifier. Calling Close more than once is safe.
func (d *CascadeDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	return d.classifier.Close()
}
