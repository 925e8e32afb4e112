// Package export writes render geometry to image files.
package export

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/san-kum/chaosgame/internal/render"
)

const background = "#0a0a0a"

// SVG writes g as a standalone SVG document.
func SVG(w io.Writer, g render.Geometry) error {
	if g.Size.Empty() {
		return fmt.Errorf("export: empty geometry size %vx%v", g.Size.W, g.Size.H)
	}

	canvas := svg.New(w)
	canvas.Start(g.Size.W, g.Size.H)
	canvas.Title("Chaos game")
	canvas.Rect(0, 0, g.Size.W, g.Size.H, "fill:"+background)

	for _, p := range g.Primitives {
		switch p.Kind {
		case render.StrokeRect:
			canvas.Rect(p.X, p.Y, p.W, p.H, fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", hex(p.Color)))
		case render.FillRect:
			canvas.Rect(p.X, p.Y, p.W, p.H, "stroke:none;fill:"+hex(p.Color))
		case render.FillCircle:
			canvas.Circle(p.X, p.Y, p.R, "stroke:none;fill:"+hex(p.Color))
		}
	}

	canvas.End()
	return nil
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
