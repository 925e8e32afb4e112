package analysis

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/san-kum/chaosgame/internal/chaos"
)

func TestDimension_Reference(t *testing.T) {
	var plane, line []chaos.Point
	for i := 0; i < 64; i++ {
		line = append(line, chaos.Point{X: float64(i) + 0.5, Y: 0.5})
		for j := 0; j < 64; j++ {
			plane = append(plane, chaos.Point{X: float64(i) + 0.5, Y: float64(j) + 0.5})
		}
	}

	tests := []struct {
		name     string
		points   []chaos.Point
		expected float64
	}{
		{"filled square", plane, 2.0},
		{"horizontal line", line, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := BoxCount(tt.points, 64, 64, []int{2, 4, 8, 16, 32})
			d, ok := Dimension(samples)
			if !ok {
				t.Fatal("expected a fit")
			}
			if math.Abs(d-tt.expected) > 1e-9 {
				t.Errorf("expected dimension %v, got %v", tt.expected, d)
			}
		})
	}
}

func TestDimension_Sierpinski(t *testing.T) {
	st := chaos.NewStore(chaos.NewGenerator(rand.New(rand.NewPCG(3, 5))), 0)
	st.AddVertex(chaos.Point{X: 256, Y: 0})
	st.AddVertex(chaos.Point{X: 0, Y: 511})
	st.AddVertex(chaos.Point{X: 511, Y: 511})
	if err := st.GrowTo(100000); err != nil {
		t.Fatal(err)
	}

	d, ok := Dimension(BoxCount(st.Points(), 512, 512, []int{4, 8, 16, 32, 64}))
	if !ok {
		t.Fatal("expected a fit")
	}
	if want := math.Log2(3); math.Abs(d-want) > 0.15 {
		t.Errorf("expected dimension near %.3f, got %.3f", want, d)
	}
}

func TestBoxCount_Empty(t *testing.T) {
	if got := BoxCount(nil, 10, 10, DefaultScales); got != nil {
		t.Errorf("expected nil samples, got %v", got)
	}
	if _, ok := Dimension(nil); ok {
		t.Error("expected no fit for empty samples")
	}
	one := []Sample{{Divisions: 2, Eps: 5, Count: 3}}
	if _, ok := Dimension(one); ok {
		t.Error("expected no fit for a single sample")
	}
}

func TestBoxCount_SkipsOutside(t *testing.T) {
	pts := []chaos.Point{{X: -1, Y: 1}, {X: 1, Y: 1}, {X: 11, Y: 1}}
	samples := BoxCount(pts, 10, 10, []int{1})
	if samples[0].Count != 1 {
		t.Errorf("expected 1 occupied box, got %d", samples[0].Count)
	}
}
