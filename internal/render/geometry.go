// Package render turns the chaos-game state into vector primitives and
// caches the result between paint passes.
package render

import (
	"image/color"

	"github.com/san-kum/chaosgame/internal/chaos"
)

type Size struct {
	W, H float64
}

func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

type Kind int

const (
	StrokeRect Kind = iota
	FillRect
	FillCircle
)

func (k Kind) String() string {
	switch k {
	case StrokeRect:
		return "stroke-rect"
	case FillRect:
		return "fill-rect"
	case FillCircle:
		return "fill-circle"
	}
	return "unknown"
}

// Primitive is one drawing command in target space. Rects use X, Y, W, H;
// circles use X, Y as center and R.
type Primitive struct {
	Kind    Kind
	X, Y    float64
	W, H, R float64
	Color   color.RGBA
}

// Geometry is the full set of primitives for one paint pass.
type Geometry struct {
	Size       Size
	Primitives []Primitive
}

type VertexShape int

const (
	Circle VertexShape = iota
	Square
)

// Style controls how points and vertices are drawn, in logical units.
type Style struct {
	PointSize   float64
	VertexShape VertexShape
	VertexSize  float64 // radius for circles, side for squares
	Border      color.RGBA
	Point       color.RGBA
	Vertex      color.RGBA
}

var (
	// SketchStyle matches the click-to-place variant: 1x1 point squares and
	// blue vertex discs.
	SketchStyle = Style{
		PointSize:   1,
		VertexShape: Circle,
		VertexSize:  5,
		Border:      color.RGBA{0xc0, 0xc0, 0xc0, 0xff},
		Point:       color.RGBA{0xff, 0xff, 0xff, 0xff},
		Vertex:      color.RGBA{0x12, 0x93, 0xd8, 0xff},
	}

	AnimateStyle = Style{
		PointSize:   2,
		VertexShape: Square,
		VertexSize:  6,
		Border:      color.RGBA{0xc0, 0xc0, 0xc0, 0xff},
		Point:       color.RGBA{0xff, 0xff, 0xff, 0xff},
		Vertex:      color.RGBA{0xff, 0x44, 0x44, 0xff},
	}
)

// Build lays out the border, one marker per visible point and one marker
// per vertex. Coordinates are scaled from bounds (logical canvas) to size.
func Build(bounds, size Size, style Style, visible, vertices []chaos.Point) Geometry {
	sx, sy := 1.0, 1.0
	if !bounds.Empty() {
		sx, sy = size.W/bounds.W, size.H/bounds.H
	}

	prims := make([]Primitive, 0, 1+len(visible)+len(vertices))
	prims = append(prims, Primitive{Kind: StrokeRect, W: size.W, H: size.H, Color: style.Border})

	pw, ph := style.PointSize*sx, style.PointSize*sy
	for _, p := range visible {
		prims = append(prims, Primitive{
			Kind:  StrokeRect,
			X:     p.X * sx,
			Y:     p.Y * sy,
			W:     pw,
			H:     ph,
			Color: style.Point,
		})
	}

	for _, v := range vertices {
		x, y := v.X*sx, v.Y*sy
		switch style.VertexShape {
		case Square:
			side := style.VertexSize * sx
			prims = append(prims, Primitive{Kind: FillRect, X: x - side/2, Y: y - side/2, W: side, H: side, Color: style.Vertex})
		default:
			prims = append(prims, Primitive{Kind: FillCircle, X: x, Y: y, R: style.VertexSize * min(sx, sy), Color: style.Vertex})
		}
	}

	return Geometry{Size: size, Primitives: prims}
}

// Count returns how many primitives of kind k the geometry holds.
func (g Geometry) Count(k Kind) int {
	n := 0
	for _, p := range g.Primitives {
		if p.Kind == k {
			n++
		}
	}
	return n
}
