package app

import (
	"fmt"

	"github.com/san-kum/chaosgame/internal/analysis"
	"github.com/san-kum/chaosgame/internal/chaos"
	"github.com/san-kum/chaosgame/internal/config"
	"github.com/san-kum/chaosgame/internal/render"
)

const dimensionHistory = 120

// Animation grows a fixed triangle by one point per tick. The cache is
// refreshed once every RefreshEvery appends; the store is capped at
// MaxPoints by evicting the oldest points.
type Animation struct {
	cfg       config.AnimateConfig
	store     *chaos.Store
	cache     *render.Cache
	ticks     int
	dimension []float64
}

func NewAnimation(cfg config.AnimateConfig, gen *chaos.Generator) *Animation {
	bounds := render.Size{W: cfg.CanvasWidth, H: cfg.CanvasHeight}
	a := &Animation{
		cfg:       cfg,
		store:     chaos.NewStore(gen, cfg.MaxPoints),
		cache:     render.NewCache(bounds, render.AnimateStyle, render.Batched(cfg.RefreshEvery)),
		dimension: make([]float64, 0, dimensionHistory),
	}
	for _, v := range cfg.Triangle() {
		a.store.AddVertex(v)
	}
	return a
}

// Tick appends exactly one point.
func (a *Animation) Tick() error {
	if err := a.store.AppendOne(); err != nil {
		return fmt.Errorf("tick %d: %w", a.ticks+1, err)
	}
	a.ticks++
	a.cache.Notify()
	if a.cache.Pending() == 0 {
		a.sampleDimension()
	}
	return nil
}

// sampleDimension records a box-counting estimate at each refresh.
func (a *Animation) sampleDimension() {
	bounds := render.Size{W: a.cfg.CanvasWidth, H: a.cfg.CanvasHeight}
	samples := analysis.BoxCount(a.store.Points(), bounds.W, bounds.H, analysis.DefaultScales)
	d, ok := analysis.Dimension(samples)
	if !ok {
		return
	}
	a.dimension = append(a.dimension, d)
	if len(a.dimension) > dimensionHistory {
		a.dimension = a.dimension[1:]
	}
}

func (a *Animation) Ticks() int { return a.ticks }

func (a *Animation) Len() int { return a.store.Len() }

func (a *Animation) Capacity() int { return a.cfg.MaxPoints }

func (a *Animation) Vertices() []chaos.Point { return a.store.Vertices() }

func (a *Animation) Points() []chaos.Point { return a.store.Points() }

// DimensionHistory returns recent box-counting estimates, oldest first.
func (a *Animation) DimensionHistory() []float64 {
	out := make([]float64, len(a.dimension))
	copy(out, a.dimension)
	return out
}

func (a *Animation) Bounds() render.Size { return a.cache.Bounds() }

func (a *Animation) Cache() *render.Cache { return a.cache }

func (a *Animation) Draw(size render.Size) render.Geometry {
	if !a.cache.Stale(size) {
		return a.cache.Draw(size, nil, nil)
	}
	return a.cache.Draw(size, a.store.Points(), a.store.Vertices())
}

// Snapshot builds the current picture at logical size without touching
// the cache.
func (a *Animation) Snapshot() render.Geometry {
	b := a.Bounds()
	return render.Build(b, b, render.AnimateStyle, a.store.Points(), a.store.Vertices())
}
