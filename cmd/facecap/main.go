package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ayusman/facecap/internal/app"
	"github.com/ayusman/facecap/internal/capture"
	"github.com/ayusman/facecap/internal/config"
	"github.com/ayusman/facecap/internal/detector"
	"github.com/ayusman/facecap/internal/display"
	"github.com/ayusman/facecap/internal/sink"
	"github.com/google/uuid"
)

// overrides holds command-line values that replace config settings.
type overrides struct {
	deviceID    int
	cascadePath string
	outputDir   string
	videoPath   string
	interval    time.Duration
	headless    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var ov overrides
	cfgPath := flag.String("config", "", "path to an optional YAML config file")
	flag.IntVar(&ov.deviceID, "device", capture.DefaultDeviceID, "video capture device index")
	flag.StringVar(&ov.cascadePath, "cascade", detector.DefaultCascadeFile, "path to the Haar cascade XML file")
	flag.StringVar(&ov.outputDir, "out-dir", sink.DefaultSnapshotDir, "directory for cropped face images")
	flag.StringVar(&ov.videoPath, "video", config.DefaultVideoPath, "output video file")
	flag.DurationVar(&ov.interval, "interval", config.DefaultCaptureIntervalMs*time.Millisecond, "minimum time between saved face images")
	flag.BoolVar(&ov.headless, "headless", false, "do not open a preview window")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath, ov, setFlags())
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	snapshots, err := sink.NewDirSnapshots(cfg.OutputDir)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return 1
	}

	det, err := detector.NewCascadeDetector(cfg.Detector())
	if err != nil {
		log.Printf("[ERROR] Failed to load face detector: %v", err)
		return 1
	}
	defer func() {
		if err := det.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}()

	var disp display.Display = display.Headless{}
	if !cfg.Headless {
		disp = display.NewWindow(cfg.WindowTitle)
	}

	session, err := app.New(app.Config{
		Camera:    capture.NewCamera(cfg.DeviceID),
		Detector:  det,
		Snapshots: snapshots,
		Display:   disp,
		OpenVideo: func(width, height int) (sink.VideoSink, error) {
			return sink.OpenVideoFile(cfg.VideoPath, cfg.VideoCodec, cfg.VideoFPS, width, height)
		},
		CaptureInterval: cfg.CaptureInterval(),
		FrameDelay:      cfg.FrameDelay(),
		SessionID:       uuid.NewString(),
	})
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return 1
	}

	err = session.Run(ctx)
	code := exitCode(err)
	if code != 0 {
		log.Printf("[ERROR] Session %s failed: %v", session.SessionID(), err)
	}

	log.Printf("[INFO] Session %s: %s", session.SessionID(), session.Stats())
	log.Println("[INFO] Finished.")
	return code
}

// exitCode maps the session result to a process status. A camera that stops
// delivering frames ends the session normally.
func exitCode(err error) int {
	if err == nil || errors.Is(err, app.ErrFrameUnavailable) {
		return 0
	}
	return 1
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// loadConfig reads the config file when one is given and applies the
// command-line values that were explicitly set.
func loadConfig(path string, ov overrides, set map[string]bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config failed: %w", err)
		}
		cfg = loaded
	}

	if set["device"] {
		cfg.DeviceID = ov.deviceID
	}
	if set["cascade"] {
		cfg.CascadePath = ov.cascadePath
	}
	if set["out-dir"] {
		cfg.OutputDir = ov.outputDir
	}
	if set["video"] {
		cfg.VideoPath = ov.videoPath
	}
	if set["interval"] {
		cfg.CaptureIntervalMs = int(ov.interval / time.Millisecond)
	}
	if set["headless"] {
		cfg.Headless = ov.headless
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
