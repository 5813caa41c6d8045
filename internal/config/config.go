// Package config holds the capture session settings and loads them from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ayusman/facecap/internal/capture"
	"github.com/ayusman/facecap/internal/detector"
	"github.com/ayusman/facecap/internal/display"
	"github.com/ayusman/facecap/internal/sink"
	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultVideoPath         = "output.avi"
	DefaultCaptureIntervalMs = 5000
	DefaultFrameDelayMs      = 30
)

// Config aggregates all capture session configuration.
type Config struct {
	DeviceID          int     `yaml:"device_id"`
	CascadePath       string  `yaml:"cascade_path"`
	OutputDir         string  `yaml:"output_dir"`
	VideoPath         string  `yaml:"video_path"`
	VideoCodec        string  `yaml:"video_codec"`
	VideoFPS          float64 `yaml:"video_fps"`
	CaptureIntervalMs int     `yaml:"capture_interval_ms"` // minimum time between saved snapshots
	FrameDelayMs      int     `yaml:"frame_delay_ms"`      // sleep at the end of every iteration
	ScaleFactor       float64 `yaml:"scale_factor"`
	MinNeighbors      int     `yaml:"min_neighbors"`
	WindowTitle       string  `yaml:"window_title"`
	Headless          bool    `yaml:"headless"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	det := detector.DefaultConfig()
	return &Config{
		DeviceID:          capture.DefaultDeviceID,
		CascadePath:       det.CascadePath,
		OutputDir:         sink.DefaultSnapshotDir,
		VideoPath:         DefaultVideoPath,
		VideoCodec:        sink.DefaultCodec,
		VideoFPS:          sink.DefaultFPS,
		CaptureIntervalMs: DefaultCaptureIntervalMs,
		FrameDelayMs:      DefaultFrameDelayMs,
		ScaleFactor:       det.ScaleFactor,
		MinNeighbors:      det.MinNeighbors,
		WindowTitle:       display.DefaultTitle,
	}
}

// Load reads a YAML file on top of Default and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.DeviceID < 0 {
		return fmt.Errorf("device_id must be >= 0, got %d", c.DeviceID)
	}
	if c.CascadePath == "" {
		return fmt.Errorf("cascade_path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.VideoPath == "" {
		return fmt.Errorf("video_path is required")
	}
	if len(c.VideoCodec) != 4 {
		return fmt.Errorf("video_codec must be a four character code, got %q", c.VideoCodec)
	}
	if c.VideoFPS <= 0 {
		return fmt.Errorf("video_fps must be > 0, got %.2f", c.VideoFPS)
	}
	if c.CaptureIntervalMs <= 0 {
		return fmt.Errorf("capture_interval_ms must be > 0, got %d", c.CaptureIntervalMs)
	}
	if c.FrameDelayMs < 0 {
		return fmt.Errorf("frame_delay_ms must be >= 0, got %d", c.FrameDelayMs)
	}
	if c.ScaleFactor <= 1 {
		return fmt.Errorf("scale_factor must be > 1, got %.2f", c.ScaleFactor)
	}
	if c.MinNeighbors < 0 {
		return fmt.Errorf("min_neighbors must be >= 0, got %d", c.MinNeighbors)
	}
	if c.WindowTitle == "" {
		c.WindowTitle = display.DefaultTitle
	}
	return nil
}

// CaptureInterval returns the minimum time between saved snapshots.
func (c *Config) CaptureInterval() time.Duration {
	return time.Duration(c.CaptureIntervalMs) * time.Millisecond
}

// FrameDelay returns the sleep at the end of every loop iteration.
func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}

// Detector returns the face detector settings.
func (c *Config) Detector() detector.Config {
	cfg := detector.DefaultConfig()
	cfg.CascadePath = c.CascadePath
	cfg.ScaleFactor = c.ScaleFactor
	cfg.MinNeighbors = c.MinNeighbors
	return cfg
}
