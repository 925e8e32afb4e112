package chaos

import "fmt"

// Store owns the fixed vertex set and the generated point sequence.
// Any change to the vertex set clears the sequence: an orbit only makes
// sense relative to the vertices it was generated from.
type Store struct {
	gen      *Generator
	vertices []Point
	points   *Sequence
	revision uint64
}

// NewStore creates an empty store. capacity bounds the generated sequence;
// zero means unbounded.
func NewStore(gen *Generator, capacity int) *Store {
	return &Store{
		gen:    gen,
		points: NewSequence(capacity),
	}
}

func (s *Store) AddVertex(p Point) {
	s.vertices = append(s.vertices, p)
	s.points.Reset()
	s.revision++
}

// RemoveVertex drops the most recently added vertex. On an empty vertex set
// it returns ErrEmptyCollection and leaves the store untouched.
func (s *Store) RemoveVertex() error {
	if len(s.vertices) == 0 {
		return ErrEmptyCollection
	}
	s.vertices = s.vertices[:len(s.vertices)-1]
	s.points.Reset()
	s.revision++
	return nil
}

// GrowTo generates points until the sequence holds target points. It never
// removes points and is a no-op when target is already met. A bounded store
// clamps target to its capacity.
func (s *Store) GrowTo(target int) error {
	if c := s.points.Cap(); c > 0 && target > c {
		target = c
	}
	if s.points.Len() >= target {
		return nil
	}
	if len(s.vertices) == 0 {
		return fmt.Errorf("grow to %d: %w", target, ErrInvalidState)
	}
	for s.points.Len() < target {
		if err := s.step(); err != nil {
			return err
		}
	}
	return nil
}

// AppendOne adds exactly one point. When the sequence is full the oldest
// point is evicted.
func (s *Store) AppendOne() error {
	if len(s.vertices) == 0 {
		return fmt.Errorf("append: %w", ErrInvalidState)
	}
	return s.step()
}

func (s *Store) step() error {
	p, err := s.gen.Generate(s.vertices, s.points.Last())
	if err != nil {
		return err
	}
	s.points.Append(p)
	s.revision++
	return nil
}

// Vertices returns a copy of the fixed vertex set.
func (s *Store) Vertices() []Point {
	out := make([]Point, len(s.vertices))
	copy(out, s.vertices)
	return out
}

func (s *Store) VertexCount() int { return len(s.vertices) }

func (s *Store) Len() int { return s.points.Len() }

func (s *Store) Last() *Point { return s.points.Last() }

// Points returns a copy of every generated point, oldest first.
func (s *Store) Points() []Point { return s.points.Slice(0, s.points.Len()) }

// Window returns generated points [lo, hi).
func (s *Store) Window(lo, hi int) []Point { return s.points.Slice(lo, hi) }

// Revision increments on every mutation.
func (s *Store) Revision() uint64 { return s.revision }
