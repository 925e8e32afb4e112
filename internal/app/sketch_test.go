package app_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/chaosgame/internal/app"
	"github.com/san-kum/chaosgame/internal/chaos"
	"github.com/san-kum/chaosgame/internal/config"
	"github.com/san-kum/chaosgame/internal/render"
)

var _ = Describe("Sketch", func() {
	var (
		s   *app.Sketch
		cfg config.SketchConfig
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig().Sketch
		s = app.NewSketch(cfg, chaos.NewGenerator(rand.New(rand.NewPCG(1, 1))))
	})

	addTriangle := func() {
		for _, p := range config.Preset("demo", 0, 0) {
			Expect(s.Update(app.AddVertex{P: p})).To(Succeed())
		}
	}

	Context("with no vertices", func() {
		It("hides the controls", func() {
			Expect(s.ControlsVisible()).To(BeFalse())
		})

		It("ignores slider messages", func() {
			Expect(s.Update(app.SetMaxIter{N: 500})).To(Succeed())
			Expect(s.MaxIter()).To(Equal(0))
			Expect(s.Generated()).To(Equal(0))
		})

		It("treats remove as a no-op", func() {
			Expect(s.Update(app.RemoveVertex{})).To(Succeed())
			Expect(s.Vertices()).To(BeEmpty())
			Expect(s.Generated()).To(Equal(0))
		})
	})

	Context("clicks", func() {
		It("adds a vertex on left click inside the canvas", func() {
			Expect(s.Update(app.Click{P: chaos.Point{X: 10, Y: 20}, Button: app.ButtonLeft})).To(Succeed())
			Expect(s.Vertices()).To(Equal([]chaos.Point{{X: 10, Y: 20}}))
			Expect(s.ControlsVisible()).To(BeTrue())
		})

		It("removes the last vertex on right click", func() {
			addTriangle()
			Expect(s.Update(app.Click{P: chaos.Point{X: 300, Y: 300}, Button: app.ButtonRight})).To(Succeed())
			Expect(s.Vertices()).To(HaveLen(2))
		})

		DescribeTable("ignores clicks outside the canvas",
			func(p chaos.Point) {
				Expect(s.Update(app.Click{P: p, Button: app.ButtonLeft})).To(Succeed())
				Expect(s.Vertices()).To(BeEmpty())
			},
			Entry("left of canvas", chaos.Point{X: -1, Y: 10}),
			Entry("above canvas", chaos.Point{X: 10, Y: -0.5}),
			Entry("right edge", chaos.Point{X: 600, Y: 10}),
			Entry("below canvas", chaos.Point{X: 10, Y: 900}),
		)

		It("ignores other buttons", func() {
			Expect(s.Update(app.Click{P: chaos.Point{X: 10, Y: 10}, Button: app.ButtonOther})).To(Succeed())
			Expect(s.Vertices()).To(BeEmpty())
		})
	})

	Context("iteration window", func() {
		BeforeEach(addTriangle)

		It("generates points when maxIter rises", func() {
			Expect(s.Update(app.SetMaxIter{N: 5})).To(Succeed())
			Expect(s.MaxIter()).To(Equal(5))
			Expect(s.Generated()).To(Equal(5))
			Expect(s.Visible()).To(BeEmpty())
		})

		It("clamps maxIter to the slider range", func() {
			Expect(s.Update(app.SetMaxIter{N: cfg.MaxSliderValue + 50})).To(Succeed())
			Expect(s.MaxIter()).To(Equal(cfg.MaxSliderValue))
			Expect(s.Update(app.SetMaxIter{N: -3})).To(Succeed())
			Expect(s.MaxIter()).To(Equal(0))
		})

		It("never lets curIter exceed maxIter", func() {
			Expect(s.Update(app.SetMaxIter{N: 100})).To(Succeed())
			for _, c := range []int{-10, 0, 42, 100, 101, 10000} {
				Expect(s.Update(app.SetCurIter{N: c})).To(Succeed())
				Expect(s.CurIter()).To(BeNumerically(">=", 0))
				Expect(s.CurIter()).To(BeNumerically("<=", s.MaxIter()))
			}
			Expect(s.CurIter()).To(Equal(100))
		})

		It("keeps points when the window shrinks", func() {
			Expect(s.Update(app.SetMaxIter{N: 100})).To(Succeed())
			Expect(s.Update(app.SetCurIter{N: 80})).To(Succeed())
			Expect(s.Update(app.SetMaxIter{N: 30})).To(Succeed())

			Expect(s.Generated()).To(Equal(100))
			Expect(s.CurIter()).To(Equal(30))
			Expect(s.Visible()).To(HaveLen(30))
		})

		It("replays through DrawCurIter within the window", func() {
			Expect(s.Update(app.SetMaxIter{N: 10})).To(Succeed())
			Expect(s.Update(app.DrawCurIter{N: 4})).To(Succeed())
			Expect(s.CurIter()).To(Equal(4))
			Expect(s.Update(app.DrawCurIter{N: 40})).To(Succeed())
			Expect(s.CurIter()).To(Equal(10))
		})

		DescribeTable("resets the orbit and counters on vertex changes",
			func(msg app.Msg) {
				Expect(s.Update(app.SetMaxIter{N: 200})).To(Succeed())
				Expect(s.Update(app.SetCurIter{N: 150})).To(Succeed())

				Expect(s.Update(msg)).To(Succeed())
				Expect(s.Generated()).To(Equal(0))
				Expect(s.MaxIter()).To(Equal(0))
				Expect(s.CurIter()).To(Equal(0))
			},
			Entry("add", app.AddVertex{P: chaos.Point{X: 50, Y: 50}}),
			Entry("remove", app.RemoveVertex{}),
		)
	})

	Context("drawing", func() {
		BeforeEach(addTriangle)

		It("draws only the visible window", func() {
			Expect(s.Update(app.SetMaxIter{N: 50})).To(Succeed())
			Expect(s.Update(app.SetCurIter{N: 20})).To(Succeed())

			g := s.Draw(s.Bounds())
			Expect(g.Count(render.StrokeRect)).To(Equal(1 + 20))
			Expect(g.Count(render.FillCircle)).To(Equal(3))
		})

		It("reuses the cached geometry until a message changes state", func() {
			g1 := s.Draw(s.Bounds())
			gen := s.Cache().Generation()
			g2 := s.Draw(s.Bounds())
			Expect(g2).To(Equal(g1))
			Expect(s.Cache().Generation()).To(Equal(gen))

			Expect(s.Update(app.SetMaxIter{N: 10})).To(Succeed())
			Expect(s.Cache().Dirty()).To(BeTrue())
			s.Draw(s.Bounds())
			Expect(s.Cache().Generation()).To(Equal(gen + 1))
		})

		It("does not invalidate for ignored clicks", func() {
			s.Draw(s.Bounds())
			Expect(s.Update(app.Click{P: chaos.Point{X: -5, Y: -5}, Button: app.ButtonLeft})).To(Succeed())
			Expect(s.Cache().Dirty()).To(BeFalse())
		})
	})

	It("snapshots at logical size without touching the cache", func() {
		addTriangle()
		Expect(s.Update(app.SetMaxIter{N: 20})).To(Succeed())
		Expect(s.Update(app.SetCurIter{N: 7})).To(Succeed())
		s.Draw(render.Size{W: 60, H: 40})
		gen := s.Cache().Generation()

		g := s.Snapshot()
		Expect(g.Size).To(Equal(s.Bounds()))
		Expect(g.Count(render.StrokeRect)).To(Equal(1 + 7))
		Expect(g.Count(render.FillCircle)).To(Equal(3))
		Expect(s.Cache().Generation()).To(Equal(gen))
	})

	It("loads a vertex layout over an existing one", func() {
		addTriangle()
		Expect(s.LoadVertices(config.Preset("right", 600, 600))).To(Succeed())
		Expect(s.Vertices()).To(Equal(config.Preset("right", 600, 600)))
		Expect(s.Generated()).To(Equal(0))
	})
})
