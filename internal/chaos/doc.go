// Package chaos implements the chaos game point generator and the store
// that owns the fixed vertices and the generated orbit.
//
//   - [Point]: canvas-space coordinate pair
//   - [Generator]: one chaos-game iteration (midpoint toward a random vertex)
//   - [Sequence]: append-only point buffer with optional ring capacity
//   - [Store]: vertex set + generated sequence with the reset invariant
//
// # Example
//
//	gen := chaos.NewGenerator(rand.New(rand.NewPCG(1, 2)))
//	st := chaos.NewStore(gen, 0)
//	st.AddVertex(chaos.Point{X: 100, Y: 100})
//	st.AddVertex(chaos.Point{X: 0, Y: 0})
//	st.AddVertex(chaos.Point{X: 200, Y: 0})
//	_ = st.GrowTo(5000)
//
// # Thread Safety
//
// Store and Generator are NOT thread-safe. They are driven from a single
// event loop.
package chaos
