package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/chaosgame/internal/chaos"
)

// Manifest describes how an exported image was produced. It is written
// next to the image as <name>.json.
type Manifest struct {
	ID        string        `json:"id"`
	Variant   string        `json:"variant"`
	Preset    string        `json:"preset,omitempty"`
	Seed      int64         `json:"seed"`
	Points    int           `json:"points"`
	Vertices  []chaos.Point `json:"vertices"`
	Dimension float64       `json:"dimension,omitempty"`
	Image     string        `json:"image"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewManifest stamps m with an ID of the form <variant>_<unix>.
func NewManifest(variant string, seed int64, points int, vertices []chaos.Point) Manifest {
	now := time.Now()
	return Manifest{
		ID:        fmt.Sprintf("%s_%d", variant, now.Unix()),
		Variant:   variant,
		Seed:      seed,
		Points:    points,
		Vertices:  vertices,
		Timestamp: now,
	}
}

// ManifestPath returns the sidecar path for an image path.
func ManifestPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".json"
}

// SaveManifest writes m beside m.Image and returns the manifest path.
func SaveManifest(m Manifest) (string, error) {
	if m.Image == "" {
		return "", fmt.Errorf("manifest %s: no image path", m.ID)
	}
	path := ManifestPath(m.Image)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0644)
}

// LoadManifest reads a manifest written by SaveManifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &m, nil
}
