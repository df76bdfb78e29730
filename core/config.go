package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the sandbox configuration, normally read from sandbox.toml.
type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Batch  BatchConfig  `toml:"batch"`
	World  WorldConfig  `toml:"world"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Resizable  bool   `toml:"resizable"`
	VSync      bool   `toml:"vsync"`
	Fullscreen bool   `toml:"fullscreen"`
}

type CameraConfig struct {
	FOV       float32 `toml:"fov"`
	MoveSpeed float32 `toml:"move_speed"`
	LookSpeed float32 `toml:"look_speed"`
	StartX    float32 `toml:"start_x"`
	StartY    float32 `toml:"start_y"`
	StartZ    float32 `toml:"start_z"`
	EyeHeight float32 `toml:"eye_height"`
}

// BatchConfig sizes the per-frame geometry accumulator. Indices are 16-bit,
// so VertexCapacity must not exceed 65536.
type BatchConfig struct {
	IndexCapacity  int `toml:"index_capacity"`
	VertexCapacity int `toml:"vertex_capacity"`
}

type WorldConfig struct {
	Capacity int `toml:"capacity"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Title:      "Sandbox",
			Resizable:  true,
			VSync:      true,
			Fullscreen: false,
		},
		Camera: CameraConfig{
			FOV:       1.2,
			MoveSpeed: 4.0,
			LookSpeed: 0.003,
			StartY:    2.0,
			EyeHeight: 1.6,
		},
		Batch: BatchConfig{
			IndexCapacity:  1 << 14,
			VertexCapacity: 1 << 13,
		},
		World: WorldConfig{
			Capacity: 1 << 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a TOML file over the defaults. A missing file is not an
// error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the limits the core relies on.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Batch.IndexCapacity <= 0 || c.Batch.VertexCapacity <= 0:
		return errors.New("batch capacities must be positive")
	case c.Batch.VertexCapacity > 1<<16:
		return fmt.Errorf("batch vertex_capacity %d exceeds 16-bit index range", c.Batch.VertexCapacity)
	case c.World.Capacity <= 0:
		return errors.New("world capacity must be positive")
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 3.14:
		return fmt.Errorf("camera fov %v out of range", c.Camera.FOV)
	}
	return nil
}
