// Package overlay draws annotations onto video frames.
package overlay

import (
	"image"
	"image/color"
	"time"

	"gocv.io/x/gocv"
)

// TimestampFormat renders wall-clock time as YYYY-MM-DD HH:MM:SS.
const TimestampFormat = "2006-01-02 15:04:05"

// Drawing parameters
const (
	BoxThickness       = 2
	TimestampScale     = 1.0
	TimestampThickness = 2
)

var (
	// BoxColor outlines detected faces (green).
	BoxColor = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	// TimestampColor is used for the clock text (yellow).
	TimestampColor = color.RGBA{R: 255, G: 255, B: 0, A: 0}
	// TimestampOrigin is the bottom-left corner of the clock text.
	TimestampOrigin = image.Pt(10, 30)
)

// DrawBox draws a bounding box around rect.
func DrawBox(img *gocv.Mat, rect image.Rectangle) {
	gocv.Rectangle(img, rect, BoxColor, BoxThickness)
}

// FormatTimestamp formats t with TimestampFormat.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampFormat)
}

// DrawTimestamp stamps t onto img at TimestampOrigin.
func DrawTimestamp(img *gocv.Mat, t time.Time) {
	gocv.PutText(img, FormatTimestamp(t), TimestampOrigin, gocv.FontHersheySimplex,
		TimestampScale, TimestampColor, TimestampThickness)
}
