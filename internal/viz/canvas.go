package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/chaosgame/internal/render"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Layer tags decide the color of a cell. Higher layers win.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerBorder
	LayerPoint
	LayerVertex
)

// Canvas is a braille dot grid of Width x Height cells, i.e.
// (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Layers        [][]Layer
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Layers: make([][]Layer, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Layers[i] = make([]Layer, w)
	}
	c.Clear()
	return c
}

// PixelSize is the canvas size in sub-pixels.
func (c *Canvas) PixelSize() render.Size {
	return render.Size{W: float64(c.Width * 2), H: float64(c.Height * 4)}
}

// Set lights the sub-pixel (x, y) on the given layer.
func (c *Canvas) Set(x, y int, layer Layer) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if layer > c.Layers[row][col] {
		c.Layers[row][col] = layer
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Layers[i][j] = LayerNone
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, layer Layer) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, layer)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) fillRect(x0, y0, x1, y1 int, layer Layer) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y, layer)
		}
	}
}

func (c *Canvas) fillCircle(cx, cy, r float64, layer Layer) {
	r = math.Max(r, 1)
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				c.Set(x, y, layer)
			}
		}
	}
}

// Paint clears the canvas and rasterizes g. g is expected in sub-pixel
// coordinates, see PixelSize.
func (c *Canvas) Paint(g render.Geometry) {
	c.Clear()
	for i, p := range g.Primitives {
		layer := LayerPoint
		if i == 0 { // render.Build emits the border first
			layer = LayerBorder
		}
		switch p.Kind {
		case render.StrokeRect:
			x0, y0 := int(p.X), int(p.Y)
			if p.W <= 1.5 && p.H <= 1.5 {
				c.Set(x0, y0, layer)
				continue
			}
			x1, y1 := int(math.Ceil(p.X+p.W))-1, int(math.Ceil(p.Y+p.H))-1
			c.DrawLine(x0, y0, x1, y0, layer)
			c.DrawLine(x1, y0, x1, y1, layer)
			c.DrawLine(x1, y1, x0, y1, layer)
			c.DrawLine(x0, y1, x0, y0, layer)
		case render.FillRect:
			x1, y1 := int(math.Ceil(p.X+p.W))-1, int(math.Ceil(p.Y+p.H))-1
			c.fillRect(int(p.X), int(p.Y), max(x1, int(p.X)), max(y1, int(p.Y)), LayerVertex)
		case render.FillCircle:
			c.fillCircle(p.X, p.Y, p.R, LayerVertex)
		}
	}
}

// String returns the plain braille text.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas colored by layer, grouping runs of equal layers
// into one styled segment.
func (c *Canvas) Render(theme Theme) string {
	styles := [...]lipgloss.Style{
		LayerNone:   lipgloss.NewStyle(),
		LayerBorder: lipgloss.NewStyle().Foreground(theme.Border),
		LayerPoint:  lipgloss.NewStyle().Foreground(theme.Point),
		LayerVertex: lipgloss.NewStyle().Foreground(theme.Vertex).Bold(true),
	}

	var b strings.Builder
	for r, row := range c.Grid {
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && c.Layers[r][i] == c.Layers[r][start] {
				continue
			}
			b.WriteString(styles[c.Layers[r][start]].Render(string(row[start:i])))
			start = i
		}
		if r < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
