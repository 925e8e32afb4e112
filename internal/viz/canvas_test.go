package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/chaosgame/internal/chaos"
	"github.com/san-kum/chaosgame/internal/render"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, LayerPoint)
	c.Set(3, 3, LayerVertex)
	c.Set(-1, 0, LayerPoint)
	c.Set(4, 0, LayerPoint)

	if got := c.Grid[0][0]; got != brailleBlank+0x1 {
		t.Errorf("cell 0 = %U, want %U", got, brailleBlank+0x1)
	}
	if got := c.Grid[0][1]; got != brailleBlank+0x80 {
		t.Errorf("cell 1 = %U, want %U", got, brailleBlank+0x80)
	}
	if c.Layers[0][1] != LayerVertex {
		t.Errorf("layer = %d, want vertex", c.Layers[0][1])
	}
}

func TestCanvasLayerPriority(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(0, 0, LayerVertex)
	c.Set(1, 0, LayerBorder)
	if c.Layers[0][0] != LayerVertex {
		t.Errorf("lower layer overwrote vertex: %d", c.Layers[0][0])
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0, LayerBorder)
	for i, r := range c.Grid[0] {
		if r != brailleBlank+0x1+0x8 {
			t.Errorf("cell %d = %U, want top row lit", i, r)
		}
	}
}

func TestCanvasPaint(t *testing.T) {
	c := NewCanvas(20, 10)
	bounds := render.Size{W: 40, H: 40}
	verts := []chaos.Point{{X: 20, Y: 20}}
	pts := []chaos.Point{{X: 10, Y: 10}}
	c.Paint(render.Build(bounds, c.PixelSize(), render.SketchStyle, pts, verts))

	if c.Layers[0][0] != LayerBorder {
		t.Errorf("corner layer = %d, want border", c.Layers[0][0])
	}
	// vertex disc is centered on sub-pixel (20, 20), cell (10, 5)
	if c.Layers[5][10] != LayerVertex {
		t.Errorf("center layer = %d, want vertex", c.Layers[5][10])
	}
	// point at logical (10,10) is sub-pixel (10, 10), cell (5, 2)
	if c.Layers[2][5] != LayerPoint {
		t.Errorf("point layer = %d, want point", c.Layers[2][5])
	}

	c.Paint(render.Geometry{})
	if strings.Trim(c.String(), string(rune(brailleBlank))+"\n") != "" {
		t.Error("paint with empty geometry should clear the canvas")
	}
}

func TestCanvasRenderLines(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.Render(ThemeMono)
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("rendered %d newlines, want 1", n)
	}
}
