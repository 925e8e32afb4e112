package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sketch.CanvasWidth != 600 || cfg.Sketch.CanvasHeight != 600 {
		t.Errorf("expected 600x600 sketch canvas, got %vx%v", cfg.Sketch.CanvasWidth, cfg.Sketch.CanvasHeight)
	}
	if cfg.Animate.CanvasWidth != 400 || cfg.Animate.CanvasHeight != 400 {
		t.Errorf("expected 400x400 animate canvas, got %vx%v", cfg.Animate.CanvasWidth, cfg.Animate.CanvasHeight)
	}
	if cfg.Sketch.MaxSliderValue != 10000 {
		t.Errorf("expected max slider 10000, got %d", cfg.Sketch.MaxSliderValue)
	}
	if cfg.Animate.TickInterval() != 50*time.Millisecond {
		t.Errorf("expected 50ms tick, got %v", cfg.Animate.TickInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chaos.yaml")
	data := "seed: 7\nanimate:\n  tick_interval_ms: 20\n  max_points: 1000\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Seed)
	}
	if cfg.Animate.TickIntervalMs != 20 || cfg.Animate.MaxPoints != 1000 {
		t.Errorf("overrides not applied: %+v", cfg.Animate)
	}
	if cfg.Animate.RefreshEvery != DefaultRefreshEvery {
		t.Errorf("expected default refresh_every, got %d", cfg.Animate.RefreshEvery)
	}
	if cfg.Sketch.CanvasWidth != DefaultSketchSize {
		t.Errorf("expected default sketch width, got %v", cfg.Sketch.CanvasWidth)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"zero tick", "animate:\n  tick_interval_ms: 0\n", "tick_interval_ms"},
		{"two vertices", "animate:\n  vertices: [{x: 0, y: 0}, {x: 1, y: 1}]\n", "expected 3"},
		{"bad preset", "sketch:\n  preset: hexagon\n", "unknown preset"},
		{"bad yaml", "sketch: [", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chaos.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chaos.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "amber"
	cfg.Sketch.Preset = "right"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Theme != "amber" || loaded.Sketch.Preset != "right" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestPreset(t *testing.T) {
	pts := Preset("triangle", 400, 400)
	if len(pts) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(pts))
	}
	if pts[0].X != 200 || pts[0].Y != 20 {
		t.Errorf("expected apex at (200, 20), got %v", pts[0])
	}

	demo := Preset("demo", 600, 600)
	if demo[0].X != 100 || demo[0].Y != 100 {
		t.Errorf("demo preset should not be scaled, got %v", demo[0])
	}

	if Preset("nonexistent", 1, 1) != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestTriangle_UsesConfiguredVertices(t *testing.T) {
	a := DefaultConfig().Animate
	if got := len(a.Triangle()); got != 3 {
		t.Fatalf("expected default triangle, got %d vertices", got)
	}
	a.Vertices = Preset("demo", 0, 0)
	if a.Triangle()[1].X != 0 {
		t.Errorf("expected configured vertices, got %v", a.Triangle())
	}
}
