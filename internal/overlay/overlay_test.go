package overlay

import (
	"image"
	"testing"
	"time"

	"gocv.io/x/gocv"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "afternoon",
			in:   time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC),
			want: "2024-03-09 14:05:07",
		},
		{
			name: "midnight drops sub-seconds",
			in:   time.Date(2023, 12, 31, 0, 0, 0, 999_000_000, time.UTC),
			want: "2023-12-31 00:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.in); got != tt.want {
				t.Errorf("FormatTimestamp() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawBox(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	DrawBox(&img, image.Rect(10, 10, 50, 50))

	// Top-left corner of the box is painted green (BGR order)
	v := img.GetVecbAt(10, 10)
	if v[0] != 0 || v[1] != 255 || v[2] != 0 {
		t.Errorf("pixel at box corner = %v, want [0 255 0]", v)
	}

	// Interior is left untouched
	v = img.GetVecbAt(30, 30)
	if v[0] != 0 || v[1] != 0 || v[2] != 0 {
		t.Errorf("pixel inside box = %v, want black", v)
	}
}

func TestDrawTimestamp(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer img.Close()

	DrawTimestamp(&img, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	// Text sits in the top-left band, the rest of the frame stays black
	top := gray.Region(image.Rect(0, 0, 640, 40))
	defer top.Close()
	if gocv.CountNonZero(top) == 0 {
		t.Error("expected timestamp pixels in the top band")
	}

	bottom := gray.Region(image.Rect(0, 100, 640, 480))
	defer bottom.Close()
	if n := gocv.CountNonZero(bottom); n != 0 {
		t.Errorf("expected no pixels below the timestamp, got %d", n)
	}
}
