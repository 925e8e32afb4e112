package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/chaosgame/internal/chaos"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSketchSize     = 600.0
	DefaultAnimateSize    = 400.0
	DefaultMaxSliderValue = 10000
	DefaultSliderStep     = 100
	DefaultReplayMs       = 30
	DefaultTickMs         = 50
	DefaultMaxPoints      = 50000
	DefaultRefreshEvery   = 100
	DefaultTheme          = "mono"
)

type Config struct {
	Seed    int64         `yaml:"seed"`
	Theme   string        `yaml:"theme"`
	Sketch  SketchConfig  `yaml:"sketch"`
	Animate AnimateConfig `yaml:"animate"`
	Log     LogConfig     `yaml:"log"`
}

type SketchConfig struct {
	CanvasWidth      float64 `yaml:"canvas_width"`
	CanvasHeight     float64 `yaml:"canvas_height"`
	MaxSliderValue   int     `yaml:"max_slider_value"`
	SliderStep       int     `yaml:"slider_step"`
	ReplayIntervalMs int     `yaml:"replay_interval_ms"`
	Preset           string  `yaml:"preset"`
}

type AnimateConfig struct {
	CanvasWidth    float64       `yaml:"canvas_width"`
	CanvasHeight   float64       `yaml:"canvas_height"`
	TickIntervalMs int           `yaml:"tick_interval_ms"`
	MaxPoints      int           `yaml:"max_points"`
	RefreshEvery   int           `yaml:"refresh_every"`
	Vertices       []chaos.Point `yaml:"vertices"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: DefaultTheme,
		Sketch: SketchConfig{
			CanvasWidth:      DefaultSketchSize,
			CanvasHeight:     DefaultSketchSize,
			MaxSliderValue:   DefaultMaxSliderValue,
			SliderStep:       DefaultSliderStep,
			ReplayIntervalMs: DefaultReplayMs,
		},
		Animate: AnimateConfig{
			CanvasWidth:    DefaultAnimateSize,
			CanvasHeight:   DefaultAnimateSize,
			TickIntervalMs: DefaultTickMs,
			MaxPoints:      DefaultMaxPoints,
			RefreshEvery:   DefaultRefreshEvery,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Sketch.CanvasWidth <= 0 || c.Sketch.CanvasHeight <= 0 {
		errs = append(errs, errors.New("sketch canvas size must be positive"))
	}
	if c.Sketch.MaxSliderValue < 0 {
		errs = append(errs, errors.New("sketch max_slider_value must not be negative"))
	}
	if c.Sketch.SliderStep <= 0 {
		errs = append(errs, errors.New("sketch slider_step must be positive"))
	}
	if c.Sketch.Preset != "" && !HasPreset(c.Sketch.Preset) {
		errs = append(errs, fmt.Errorf("unknown preset: %s", c.Sketch.Preset))
	}
	if c.Animate.CanvasWidth <= 0 || c.Animate.CanvasHeight <= 0 {
		errs = append(errs, errors.New("animate canvas size must be positive"))
	}
	if c.Animate.TickIntervalMs <= 0 {
		errs = append(errs, errors.New("animate tick_interval_ms must be positive"))
	}
	if c.Animate.MaxPoints < 0 {
		errs = append(errs, errors.New("animate max_points must not be negative"))
	}
	if c.Animate.RefreshEvery <= 0 {
		errs = append(errs, errors.New("animate refresh_every must be positive"))
	}
	if n := len(c.Animate.Vertices); n != 0 && n != 3 {
		errs = append(errs, fmt.Errorf("animate vertices: expected 3, got %d", n))
	}
	return errors.Join(errs...)
}

func (a AnimateConfig) TickInterval() time.Duration {
	return time.Duration(a.TickIntervalMs) * time.Millisecond
}

// Triangle returns the configured animation vertices, or a triangle inset
// into the animation canvas.
func (a AnimateConfig) Triangle() []chaos.Point {
	if len(a.Vertices) == 3 {
		out := make([]chaos.Point, 3)
		copy(out, a.Vertices)
		return out
	}
	return Preset("triangle", a.CanvasWidth, a.CanvasHeight)
}

func (s SketchConfig) ReplayInterval() time.Duration {
	return time.Duration(s.ReplayIntervalMs) * time.Millisecond
}
