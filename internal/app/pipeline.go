package app

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/ayusman/facecap/internal/display"
	"github.com/ayusman/facecap/internal/overlay"
	"gocv.io/x/gocv"
)

// Run opens the camera and video sink and processes frames until the user
// presses q or Escape, ctx is cancelled, or the camera stops delivering frames.
//
// Per iteration:
// 1. Read a frame; a failed read ends the session with ErrFrameUnavailable
// 2. Detect, box and possibly save faces (ProcessFrame)
// 3. Stamp the time (ProcessFrame)
// 4. Show the frame and append it to the video
// 5. Poll for the quit key, then sleep FrameDelay
//
// The camera, video sink and display are closed exactly once on every return path.
func (a *App) Run(ctx context.Context) error {
	a.mu.Lock()
	if a.ran {
		a.mu.Unlock()
		return ErrAlreadyRan
	}
	a.ran = true
	a.mu.Unlock()

	defer closeLogged("display", a.config.Display.Close)

	if err := a.config.Camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer closeLogged("camera", a.config.Camera.Close)

	width, height := a.config.Camera.FrameSize()
	video, err := a.config.OpenVideo(width, height)
	if err != nil {
		return fmt.Errorf("open video sink: %w", err)
	}
	defer closeLogged("video sink", video.Close)

	log.Printf("[INFO] Session %s: %dx%d, capture interval %v", a.config.SessionID, width, height, a.config.CaptureInterval)
	log.Println("[INFO] Starting webcam... Press 'q' or ESC to quit.")

	state := a.State()
	for {
		frame, err := a.config.Camera.ReadFrame()
		if err != nil {
			log.Println("[ERROR] Failed to grab frame.")
			return fmt.Errorf("%w: %w", ErrFrameUnavailable, err)
		}

		state, err = a.ProcessFrame(state, frame, a.now())
		if err != nil {
			frame.Close()
			return err
		}

		a.mu.Lock()
		a.state = state
		a.mu.Unlock()

		a.config.Display.Show(frame)
		err = video.Write(frame)
		frame.Close()
		if err != nil {
			return fmt.Errorf("write video frame: %w", err)
		}

		a.mu.Lock()
		a.stats.Frames++
		a.mu.Unlock()

		if display.IsQuitKey(a.config.Display.PollKey()) {
			log.Println("[INFO] Quit requested.")
			return nil
		}
		if ctx.Err() != nil {
			log.Printf("[INFO] Stopping: %v", ctx.Err())
			return nil
		}

		a.sleep(a.config.FrameDelay)
	}
}

// ProcessFrame detects faces in frame, boxes each one, saves crops when the
// capture interval has elapsed and stamps now onto the frame. It returns the
// state for the next frame.
//
// All faces in one frame share the same save decision, made once from now.
// The counter advances at most once per frame and only when something was saved.
func (a *App) ProcessFrame(state State, frame *gocv.Mat, now time.Time) (State, error) {
	faces, err := a.config.Detector.Detect(frame)
	if err != nil {
		return state, fmt.Errorf("detect faces: %w", err)
	}

	eligible := state.Eligible(now)
	bounds := image.Rect(0, 0, frame.Cols(), frame.Rows())

	saved := 0
	for i, rect := range faces {
		overlay.DrawBox(frame, rect)

		if !eligible {
			continue
		}

		crop := rect.Intersect(bounds)
		if crop.Empty() {
			log.Printf("[INFO] Skipping face %d outside frame: %v", i+1, rect)
			continue
		}

		name := SnapshotName(state.Counter, i+1)
		region := frame.Region(crop)
		path, err := a.config.Snapshots.Save(name, region)
		region.Close()
		if err != nil {
			return state, fmt.Errorf("save %s: %w", name, err)
		}
		saved++
		log.Printf("[INFO] Saved face to: %s", path)
	}

	captured := len(faces) > 0 && eligible
	if captured {
		state = state.Advance(now)
	}

	overlay.DrawTimestamp(frame, now)

	a.mu.Lock()
	a.stats.Detections += len(faces)
	a.stats.Saved += saved
	if captured {
		a.stats.Captures++
	}
	a.mu.Unlock()

	return state, nil
}

func closeLogged(name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Printf("Error closing %s: %v", name, err)
	}
}
