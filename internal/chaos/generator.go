package chaos

// Source is the random capability the generator draws vertex indices from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type Generator struct {
	src Source
}

func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Generate performs one chaos-game iteration: it picks a vertex uniformly at
// random and returns the midpoint between it and prev. A nil prev means the
// orbit has not started yet and the first vertex is used as the seed point.
func (g *Generator) Generate(vertices []Point, prev *Point) (Point, error) {
	if len(vertices) == 0 {
		return Point{}, ErrInvalidState
	}
	target := vertices[g.src.IntN(len(vertices))]
	base := vertices[0]
	if prev != nil {
		base = *prev
	}
	return Midpoint(base, target), nil
}
