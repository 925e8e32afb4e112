package config

import (
	"sort"

	"github.com/san-kum/chaosgame/internal/chaos"
)

// Presets holds vertex layouts in unit coordinates, scaled to the canvas on
// use. "demo" is in absolute canvas units.
var Presets = map[string][]chaos.Point{
	"triangle": {{X: 0.5, Y: 0.05}, {X: 0.05, Y: 0.95}, {X: 0.95, Y: 0.95}},
	"right":    {{X: 0.05, Y: 0.05}, {X: 0.05, Y: 0.95}, {X: 0.95, Y: 0.95}},
	"demo":     {{X: 100, Y: 100}, {X: 0, Y: 0}, {X: 200, Y: 0}},
}

var absolutePresets = map[string]bool{"demo": true}

func HasPreset(name string) bool {
	_, ok := Presets[name]
	return ok
}

// Preset returns the named layout scaled to a w x h canvas, or nil.
func Preset(name string, w, h float64) []chaos.Point {
	layout, ok := Presets[name]
	if !ok {
		return nil
	}
	out := make([]chaos.Point, len(layout))
	for i, p := range layout {
		if absolutePresets[name] {
			out[i] = p
			continue
		}
		out[i] = chaos.Point{X: p.X * w, Y: p.Y * h}
	}
	return out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
