// Package fixtures builds synthetic frames for tests.
package fixtures

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Frame size used by the fixtures, matching a typical webcam.
const (
	FrameWidth  = 640
	FrameHeight = 480
)

// SolidFrame returns a BGR frame filled with c.
func SolidFrame(c color.RGBA) *gocv.Mat {
	mat := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0),
		FrameHeight, FrameWidth, gocv.MatTypeCV8UC3,
	)
	return &mat
}

// PatchedFrame returns a black frame with each rect filled in gray, so crops
// of those regions are distinguishable from the background.
func PatchedFrame(rects ...image.Rectangle) *gocv.Mat {
	frame := SolidFrame(color.RGBA{})
	for _, r := range rects {
		gocv.Rectangle(frame, r, color.RGBA{R: 128, G: 128, B: 128}, -1)
	}
	return frame
}

// LoadSequence returns n copies of frame for playback through a mock camera.
// The caller must close the returned frames with CloseAll.
func LoadSequence(frame *gocv.Mat, n int) []*gocv.Mat {
	frames := make([]*gocv.Mat, n)
	for i := range frames {
		clone := frame.Clone()
		frames[i] = &clone
	}
	return frames
}

// CloseAll releases every frame.
func CloseAll(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
