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

var _ = Describe("Animation", func() {
	var (
		a   *app.Animation
		cfg config.AnimateConfig
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig().Animate
		cfg.MaxPoints = 250
		cfg.RefreshEvery = 10
		a = app.NewAnimation(cfg, chaos.NewGenerator(rand.New(rand.NewPCG(9, 9))))
	})

	It("starts from a fixed triangle with no points", func() {
		Expect(a.Vertices()).To(HaveLen(3))
		Expect(a.Len()).To(Equal(0))
		Expect(a.Ticks()).To(Equal(0))
	})

	It("appends exactly one point per tick", func() {
		for i := 1; i <= 25; i++ {
			Expect(a.Tick()).To(Succeed())
			Expect(a.Len()).To(Equal(i))
		}
		Expect(a.Ticks()).To(Equal(25))
	})

	It("keeps every point inside the triangle's bounding box", func() {
		for i := 0; i < 200; i++ {
			Expect(a.Tick()).To(Succeed())
		}
		lo, hi, ok := chaos.Bounds(a.Vertices())
		Expect(ok).To(BeTrue())
		for _, p := range a.Points() {
			Expect(p.X).To(BeNumerically(">=", lo.X))
			Expect(p.X).To(BeNumerically("<=", hi.X))
			Expect(p.Y).To(BeNumerically(">=", lo.Y))
			Expect(p.Y).To(BeNumerically("<=", hi.Y))
		}
	})

	It("caps memory at max_points", func() {
		for i := 0; i < 400; i++ {
			Expect(a.Tick()).To(Succeed())
		}
		Expect(a.Len()).To(Equal(250))
		Expect(a.Ticks()).To(Equal(400))
	})

	It("refreshes the cache once per batch", func() {
		a.Draw(a.Bounds())
		for i := 0; i < 9; i++ {
			Expect(a.Tick()).To(Succeed())
		}
		Expect(a.Cache().Dirty()).To(BeFalse())
		Expect(a.Draw(a.Bounds()).Count(render.StrokeRect)).To(Equal(1))

		Expect(a.Tick()).To(Succeed())
		Expect(a.Cache().Dirty()).To(BeTrue())
		Expect(a.Draw(a.Bounds()).Count(render.StrokeRect)).To(Equal(1 + 10))
		Expect(a.Draw(a.Bounds()).Count(render.FillRect)).To(Equal(3))
	})

	It("samples the dimension estimate at each refresh", func() {
		for i := 0; i < 50; i++ {
			Expect(a.Tick()).To(Succeed())
		}
		Expect(a.DimensionHistory()).To(HaveLen(5))
		for _, d := range a.DimensionHistory() {
			Expect(d).To(BeNumerically(">", 0))
		}
	})
})
