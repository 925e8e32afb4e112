package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/san-kum/chaosgame/internal/render"
)

// Raster paints g into a new RGBA image of the geometry's size.
func Raster(g render.Geometry) (*image.RGBA, error) {
	if g.Size.Empty() {
		return nil, fmt.Errorf("export: empty geometry size %vx%v", g.Size.W, g.Size.H)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(g.Size.W)), int(math.Ceil(g.Size.H))))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{0x0a, 0x0a, 0x0a, 0xff}}, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineWidth(1)
	for _, p := range g.Primitives {
		switch p.Kind {
		case render.StrokeRect:
			gc.SetStrokeColor(p.Color)
			draw2dkit.Rectangle(gc, p.X, p.Y, p.X+p.W, p.Y+p.H)
			gc.Stroke()
		case render.FillRect:
			gc.SetFillColor(p.Color)
			draw2dkit.Rectangle(gc, p.X, p.Y, p.X+p.W, p.Y+p.H)
			gc.Fill()
		case render.FillCircle:
			gc.SetFillColor(p.Color)
			draw2dkit.Circle(gc, p.X, p.Y, p.R)
			gc.Fill()
		}
	}
	return img, nil
}

// PNG rasterizes g and saves it to path.
func PNG(path string, g render.Geometry) error {
	img, err := Raster(g)
	if err != nil {
		return err
	}
	return draw2dimg.SaveToPngFile(path, img)
}
