package viz

import (
	"github.com/san-kum/chaosgame/internal/chaos"
	"github.com/san-kum/chaosgame/internal/render"
)

const (
	padX         = 2
	headerRows   = 2
	defaultTermW = 100
	defaultTermH = 40
	minCells     = 4
)

// layout pins down where things land on screen so mouse hits can be mapped
// back onto the canvas and sliders. All values are in terminal cells.
type layout struct {
	canvasX, canvasY int
	cols, rows       int
	sliderY          [2]int
	barX, barW       int
}

// computeLayout fits a canvas with the aspect ratio of bounds into the
// terminal, leaving sideW columns on the right and footerRows below.
// Braille sub-pixels are roughly square, so a cell spans 2x4 of them.
func computeLayout(termW, termH int, bounds render.Size, sideW, footerRows int) layout {
	if termW <= 0 || termH <= 0 {
		termW, termH = defaultTermW, defaultTermH
	}
	availW := max(termW-2*padX-sideW, minCells)
	availH := max(termH-headerRows-footerRows, minCells)

	aspect := 1.0
	if !bounds.Empty() {
		aspect = bounds.W / bounds.H
	}
	rows := availH
	cols := int(float64(rows) * 2 * aspect)
	if cols > availW {
		cols = availW
		rows = int(float64(cols) / (2 * aspect))
	}
	cols, rows = max(cols, minCells), max(rows, minCells)

	l := layout{
		canvasX: padX,
		canvasY: headerRows,
		cols:    cols,
		rows:    rows,
		barX:    padX + sliderLabelWidth,
		barW:    max(cols-sliderLabelWidth, 10),
	}
	l.sliderY = [2]int{l.canvasY + rows, l.canvasY + rows + 1}
	return l
}

// pixelSize is the canvas size in braille sub-pixels.
func (l layout) pixelSize() render.Size {
	return render.Size{W: float64(l.cols * 2), H: float64(l.rows * 4)}
}

// toLogical maps the center of terminal cell (x, y) onto logical canvas
// coordinates. Cells outside the canvas map outside bounds.
func (l layout) toLogical(x, y int, bounds render.Size) chaos.Point {
	px := float64((x-l.canvasX)*2) + 1
	py := float64((y-l.canvasY)*4) + 2
	ps := l.pixelSize()
	return chaos.Point{X: px * bounds.W / ps.W, Y: py * bounds.H / ps.H}
}

// sliderAt returns which slider row y hits, or -1.
func (l layout) sliderAt(x, y int) int {
	if x < l.barX || x >= l.barX+l.barW {
		return -1
	}
	for i, sy := range l.sliderY {
		if y == sy {
			return i
		}
	}
	return -1
}

// sliderValue maps column x on a slider bar to a value in [0, max].
func (l layout) sliderValue(x, maxValue int) int {
	if l.barW <= 1 {
		return 0
	}
	ratio := float64(x-l.barX) / float64(l.barW-1)
	ratio = min(max(ratio, 0), 1)
	return int(ratio*float64(maxValue) + 0.5)
}
