package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Time    TimeConfig    `toml:"time" yaml:"time"`
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Paths   PathsConfig   `toml:"paths" yaml:"paths"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Debug   DebugConfig   `toml:"debug" yaml:"debug"`
}

type TimeConfig struct {
	FixedDelta   float64       `toml:"fixed_delta" yaml:"fixed_delta"`       // seconds per fixed step
	MaxFrameTime time.Duration `toml:"max_frame_time" yaml:"max_frame_time"` // accumulator clamp per frame
}

type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

type PathsConfig struct {
	TextureDir string `toml:"texture_dir" yaml:"texture_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "text", "json" or "logfmt"
}

type DebugConfig struct {
	UI          bool `toml:"ui" yaml:"ui"`
	WatchAssets bool `toml:"watch_assets" yaml:"watch_assets"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return defaults()
}

// Load reads a TOML or YAML file, chosen by extension, over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := defaults()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// MinFixedDelta is the smallest accepted time.fixed_delta, in seconds.
const MinFixedDelta = 1e-4

// Validate reports settings the frame loop cannot run with.
func (c *Config) Validate() error {
	var errs []error
	switch {
	case c.Time.FixedDelta < 0:
		errs = append(errs, fmt.Errorf("time.fixed_delta must not be negative, got %v", c.Time.FixedDelta))
	case c.Time.FixedDelta > 0 && c.Time.FixedDelta < MinFixedDelta:
		errs = append(errs, fmt.Errorf("time.fixed_delta must be at least %v, got %v", MinFixedDelta, c.Time.FixedDelta))
	}
	if c.Time.MaxFrameTime < 0 {
		errs = append(errs, fmt.Errorf("time.max_frame_time must not be negative, got %v", c.Time.MaxFrameTime))
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

// FixedInterval returns the fixed step as a duration; zero means the engine default.
func (t TimeConfig) FixedInterval() time.Duration {
	if t.FixedDelta <= 0 {
		return 0
	}
	return time.Duration(t.FixedDelta * float64(time.Second))
}

func defaults() *Config {
	return &Config{
		Time: TimeConfig{
			FixedDelta:   1.0 / 60.0,
			MaxFrameTime: 250 * time.Millisecond,
		},
		Window: WindowConfig{
			Title:  "frameloop",
			Width:  1280,
			Height: 720,
		},
		Paths: PathsConfig{
			TextureDir: "assets/textures",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Debug: DebugConfig{
			UI:          false,
			WatchAssets: false,
		},
	}
}
