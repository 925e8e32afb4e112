package analysis

import (
	"math"

	"github.com/san-kum/chaosgame/internal/chaos"
)

// DefaultScales are grid divisions per side used for box counting.
var DefaultScales = []int{2, 4, 8, 16, 32, 64}

// Sample is one box-counting measurement.
type Sample struct {
	Divisions int
	Eps       float64 // box side in canvas units
	Count     int     // boxes containing at least one point
}

// LogInvEps returns log(1/ε).
func (s Sample) LogInvEps() float64 { return -math.Log(s.Eps) }

// LogCount returns log N(ε).
func (s Sample) LogCount() float64 { return math.Log(float64(s.Count)) }

// BoxCount overlays square grids on a w x h canvas and counts occupied boxes
// at each resolution. Points outside the canvas are skipped.
func BoxCount(points []chaos.Point, w, h float64, scales []int) []Sample {
	side := math.Max(w, h)
	if side <= 0 || len(points) == 0 {
		return nil
	}

	samples := make([]Sample, 0, len(scales))
	for _, k := range scales {
		if k <= 0 {
			continue
		}
		eps := side / float64(k)
		occupied := make(map[[2]int]struct{})
		for _, p := range points {
			if p.X < 0 || p.Y < 0 || p.X >= side || p.Y >= side {
				continue
			}
			occupied[[2]int{int(p.X / eps), int(p.Y / eps)}] = struct{}{}
		}
		samples = append(samples, Sample{Divisions: k, Eps: eps, Count: len(occupied)})
	}
	return samples
}

// Dimension fits log N(ε) = D·log(1/ε) + c and returns D. ok is false with
// fewer than two usable samples.
func Dimension(samples []Sample) (float64, bool) {
	var xs, ys []float64
	for _, s := range samples {
		if s.Count == 0 || s.Eps <= 0 {
			continue
		}
		xs = append(xs, s.LogInvEps())
		ys = append(ys, s.LogCount())
	}
	n := float64(len(xs))
	if n < 2 {
		return 0, false
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, false
	}
	return (n*sumXY - sumX*sumY) / denom, true
}
