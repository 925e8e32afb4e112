package app

import (
	"errors"
	"fmt"

	"github.com/san-kum/chaosgame/internal/chaos"
	"github.com/san-kum/chaosgame/internal/config"
	"github.com/san-kum/chaosgame/internal/log"
	"github.com/san-kum/chaosgame/internal/render"
	"go.uber.org/zap"
)

// Sketch is the click-to-place view. Invariant: 0 <= curIter <= maxIter.
type Sketch struct {
	cfg     config.SketchConfig
	store   *chaos.Store
	cache   *render.Cache
	maxIter int
	curIter int
}

func NewSketch(cfg config.SketchConfig, gen *chaos.Generator) *Sketch {
	bounds := render.Size{W: cfg.CanvasWidth, H: cfg.CanvasHeight}
	return &Sketch{
		cfg:   cfg,
		store: chaos.NewStore(gen, 0),
		cache: render.NewCache(bounds, render.SketchStyle, render.EveryMutation),
	}
}

// Update applies one message. Every message that changes state
// invalidates the cache.
func (s *Sketch) Update(msg Msg) error {
	switch msg := msg.(type) {
	case Click:
		if !s.InBounds(msg.P) {
			return nil
		}
		switch msg.Button {
		case ButtonLeft:
			return s.Update(AddVertex{P: msg.P})
		case ButtonRight:
			return s.Update(RemoveVertex{})
		}
	case AddVertex:
		s.store.AddVertex(msg.P)
		s.resetWindow()
		s.cache.Notify()
		log.Debug("vertex added", zap.Stringer("point", msg.P), zap.Int("vertices", s.store.VertexCount()))
	case RemoveVertex:
		if err := s.store.RemoveVertex(); err != nil {
			if errors.Is(err, chaos.ErrEmptyCollection) {
				log.Debug("remove ignored: no vertices")
				return nil
			}
			return err
		}
		s.resetWindow()
		s.cache.Notify()
		log.Debug("vertex removed", zap.Int("vertices", s.store.VertexCount()))
	case SetMaxIter:
		if !s.ControlsVisible() {
			return nil
		}
		m := clamp(msg.N, 0, s.cfg.MaxSliderValue)
		if err := s.store.GrowTo(m); err != nil {
			return fmt.Errorf("set max iter: %w", err)
		}
		s.maxIter = m
		s.setCurIter(s.curIter)
	case SetCurIter:
		if !s.ControlsVisible() {
			return nil
		}
		s.setCurIter(msg.N)
	case DrawCurIter:
		s.setCurIter(msg.N)
	default:
		return fmt.Errorf("sketch: unhandled message %T", msg)
	}
	return nil
}

func (s *Sketch) setCurIter(n int) {
	s.curIter = clamp(n, 0, s.maxIter)
	s.cache.Notify()
}

func (s *Sketch) resetWindow() {
	s.maxIter, s.curIter = 0, 0
}

// LoadVertices replaces the vertex set.
func (s *Sketch) LoadVertices(pts []chaos.Point) error {
	for s.store.VertexCount() > 0 {
		if err := s.Update(RemoveVertex{}); err != nil {
			return err
		}
	}
	for _, p := range pts {
		if err := s.Update(AddVertex{P: p}); err != nil {
			return err
		}
	}
	return nil
}

// InBounds reports whether p lies on the canvas.
func (s *Sketch) InBounds(p chaos.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.cfg.CanvasWidth && p.Y < s.cfg.CanvasHeight
}

// ControlsVisible is false until at least one vertex exists.
func (s *Sketch) ControlsVisible() bool { return s.store.VertexCount() > 0 }

func (s *Sketch) MaxIter() int { return s.maxIter }

func (s *Sketch) CurIter() int { return s.curIter }

func (s *Sketch) SliderMax() int { return s.cfg.MaxSliderValue }

func (s *Sketch) SliderStep() int { return s.cfg.SliderStep }

func (s *Sketch) Vertices() []chaos.Point { return s.store.Vertices() }

// Generated returns how many points exist, which may exceed maxIter after
// the slider was lowered.
func (s *Sketch) Generated() int { return s.store.Len() }

// Visible returns the drawn points [0, curIter).
func (s *Sketch) Visible() []chaos.Point { return s.store.Window(0, s.curIter) }

func (s *Sketch) Bounds() render.Size { return s.cache.Bounds() }

func (s *Sketch) Cache() *render.Cache { return s.cache }

// Draw returns the geometry for a paint pass at size.
func (s *Sketch) Draw(size render.Size) render.Geometry {
	if !s.cache.Stale(size) {
		return s.cache.Draw(size, nil, nil)
	}
	return s.cache.Draw(size, s.Visible(), s.store.Vertices())
}

// Snapshot builds the current picture at logical size without touching
// the cache.
func (s *Sketch) Snapshot() render.Geometry {
	b := s.Bounds()
	return render.Build(b, b, render.SketchStyle, s.Visible(), s.store.Vertices())
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
