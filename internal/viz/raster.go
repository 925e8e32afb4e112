package viz

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/san-kum/chaosgame/internal/render"
)

// drawer is what a model paints: app.Sketch or app.Animation.
type drawer interface {
	Draw(size render.Size) render.Geometry
	Cache() *render.Cache
}

// raster holds the painted canvas across View calls. The canvas is only
// repainted when the cache generation or the layout changes.
type raster struct {
	canvas *Canvas
	gen    uint64
}

func (r *raster) paint(l layout, d drawer) *Canvas {
	if r.canvas == nil || r.canvas.Width != l.cols || r.canvas.Height != l.rows {
		r.canvas = NewCanvas(l.cols, l.rows)
		r.gen = 0
	}
	g := d.Draw(l.pixelSize())
	if gen := d.Cache().Generation(); gen != r.gen {
		r.canvas.Paint(g)
		r.gen = gen
	}
	return r.canvas
}

func exportPath(dir, variant string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d.svg", variant, time.Now().Unix()))
}
