package chaos

// Sequence is an ordered point buffer. With a positive capacity it behaves as
// a ring: once full, each append evicts the oldest point.
type Sequence struct {
	buf      []Point
	head     int // index of the oldest point when full
	capacity int
}

func NewSequence(capacity int) *Sequence {
	if capacity < 0 {
		capacity = 0
	}
	return &Sequence{capacity: capacity}
}

func (s *Sequence) Len() int { return len(s.buf) }

func (s *Sequence) Cap() int { return s.capacity }

// Full reports whether the next append will evict a point.
func (s *Sequence) Full() bool {
	return s.capacity > 0 && len(s.buf) == s.capacity
}

func (s *Sequence) Append(p Point) {
	if !s.Full() {
		s.buf = append(s.buf, p)
		return
	}
	s.buf[s.head] = p
	s.head = (s.head + 1) % s.capacity
}

// At returns the i-th oldest point.
func (s *Sequence) At(i int) Point {
	if s.head == 0 {
		return s.buf[i]
	}
	return s.buf[(s.head+i)%len(s.buf)]
}

// Last returns the newest point, or nil when empty.
func (s *Sequence) Last() *Point {
	if len(s.buf) == 0 {
		return nil
	}
	p := s.At(len(s.buf) - 1)
	return &p
}

// Slice copies points [lo, hi) in insertion order. Bounds are clamped.
func (s *Sequence) Slice(lo, hi int) []Point {
	lo = max(lo, 0)
	hi = min(hi, len(s.buf))
	if lo >= hi {
		return nil
	}
	out := make([]Point, hi-lo)
	for i := range out {
		out[i] = s.At(lo + i)
	}
	return out
}

func (s *Sequence) Reset() {
	s.buf = s.buf[:0]
	s.head = 0
}
