// Package analysis estimates the fractal dimension of a chaos-game point
// cloud.
//
//   - [BoxCount]: occupied-box counts over a range of grid resolutions
//   - [Dimension]: least-squares slope of log N(ε) against log(1/ε)
//
// # Sierpinski triangle
//
// The attractor of the three-vertex game has dimension log2(3) ≈ 1.585:
//
//	samples := analysis.BoxCount(points, 400, 400, analysis.DefaultScales)
//	d, ok := analysis.Dimension(samples)
package analysis
