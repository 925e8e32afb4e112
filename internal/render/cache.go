package render

import "github.com/san-kum/chaosgame/internal/chaos"

// Policy decides when recorded mutations invalidate the cache.
type Policy struct {
	every int
}

// EveryMutation invalidates on each recorded mutation.
var EveryMutation = Policy{every: 1}

// Batched invalidates once every n recorded mutations. n < 1 behaves like
// EveryMutation.
func Batched(n int) Policy {
	if n < 1 {
		n = 1
	}
	return Policy{every: n}
}

func (p Policy) Every() int {
	if p.every < 1 {
		return 1
	}
	return p.every
}

// Cache memoizes the geometry of the last paint pass. It is rebuilt lazily
// on the next Draw after invalidation or when the target size changes.
type Cache struct {
	bounds  Size
	style   Style
	policy  Policy
	dirty   bool
	pending int
	size    Size
	geom    Geometry
	gen     uint64
}

func NewCache(bounds Size, style Style, policy Policy) *Cache {
	return &Cache{bounds: bounds, style: style, policy: policy, dirty: true}
}

func (c *Cache) Invalidate() {
	c.dirty = true
	c.pending = 0
}

// Notify records one mutation and invalidates according to the policy.
func (c *Cache) Notify() {
	c.pending++
	if c.pending >= c.policy.Every() {
		c.Invalidate()
	}
}

func (c *Cache) Dirty() bool { return c.dirty }

// Pending returns mutations recorded since the last invalidation.
func (c *Cache) Pending() int { return c.pending }

// Generation increments every time the geometry is rebuilt.
func (c *Cache) Generation() uint64 { return c.gen }

func (c *Cache) Bounds() Size { return c.bounds }

// Stale reports whether the next Draw at size will rebuild.
func (c *Cache) Stale(size Size) bool {
	return c.dirty || size != c.size
}

func (c *Cache) Draw(size Size, visible, vertices []chaos.Point) Geometry {
	if !c.Stale(size) {
		return c.geom
	}
	c.geom = Build(c.bounds, size, c.style, visible, vertices)
	c.size = size
	c.dirty = false
	c.gen++
	return c.geom
}
