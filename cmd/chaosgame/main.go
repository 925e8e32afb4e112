package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/chaosgame/internal/analysis"
	"github.com/san-kum/chaosgame/internal/app"
	"github.com/san-kum/chaosgame/internal/chaos"
	"github.com/san-kum/chaosgame/internal/config"
	"github.com/san-kum/chaosgame/internal/export"
	"github.com/san-kum/chaosgame/internal/log"
	"github.com/san-kum/chaosgame/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	seed       int64
	logFile    string
	logLevel   string
	theme      string
	exportDir  string

	sketchPreset string
	renderPreset string
	renderPoints int
	outPath      string
	variant      string
	dimPreset    string
	dimPoints    int

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "chaosgame",
		Short:             "chaos game playground for the sierpinski triangle",
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = log.Sync() },
		RunE:              runSketch,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	pf.StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.Flags().StringVar(&sketchPreset, "preset", "", "start with a vertex preset")
	rootCmd.Flags().StringVar(&exportDir, "export-dir", ".", "directory for exported images")

	sketchCmd := &cobra.Command{
		Use:   "sketch",
		Short: "place vertices with the mouse and scrub the iteration sliders",
		RunE:  runSketch,
	}
	sketchCmd.Flags().StringVar(&sketchPreset, "preset", "", "start with a vertex preset")
	sketchCmd.Flags().StringVar(&exportDir, "export-dir", ".", "directory for exported images")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "grow a fixed triangle one point per tick",
		RunE:  runAnimate,
	}
	animateCmd.Flags().StringVar(&exportDir, "export-dir", ".", "directory for exported images")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a point set to an svg or png file",
		RunE:  renderImage,
	}
	renderCmd.Flags().StringVar(&renderPreset, "preset", "triangle", "vertex preset")
	renderCmd.Flags().IntVar(&renderPoints, "points", 5000, "number of points")
	renderCmd.Flags().StringVar(&outPath, "out", "", "output file (.svg or .png)")
	renderCmd.Flags().StringVar(&variant, "variant", "sketch", "drawing style (sketch, animate)")

	dimensionCmd := &cobra.Command{
		Use:   "dimension",
		Short: "estimate the box-counting dimension of a point set",
		RunE:  estimateDimension,
	}
	dimensionCmd.Flags().StringVar(&dimPreset, "preset", "triangle", "vertex preset")
	dimensionCmd.Flags().IntVar(&dimPoints, "points", 50000, "number of points")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list vertex presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERTICES")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%v\n", name, config.Presets[name])
			}
			w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeDefaultConfig(args[0]); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(sketchCmd, animateCmd, renderCmd, dimensionCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config and applies flag overrides. Flags win only when
// set explicitly.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if cfg.Seed != 0 && !flags.Changed("seed") {
		seed = cfg.Seed
	}
	if flags.Changed("log-file") || cfg.Log.File == "" {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") || cfg.Log.Level == "" {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("theme") || cfg.Theme == "" {
		cfg.Theme = theme
	}
	if sketchPreset == "" {
		sketchPreset = cfg.Sketch.Preset
	}
	for _, p := range []string{sketchPreset, renderPreset, dimPreset} {
		if p != "" && !config.HasPreset(p) {
			return fmt.Errorf("unknown preset: %s (available: %v)", p, config.ListPresets())
		}
	}

	if _, err := log.Setup(cfg.Log.File, cfg.Log.Level); err != nil {
		return err
	}
	viz.SetTheme(cfg.Theme)
	log.Info("starting", zap.String("command", cmd.Name()), zap.Int64("seed", seed), zap.String("theme", cfg.Theme))
	return nil
}

// writeDefaultConfig saves the built-in defaults, ignoring any config file
// or flag overrides applied by setup.
func writeDefaultConfig(path string) error {
	return config.Save(path, config.DefaultConfig())
}

func newGenerator() *chaos.Generator {
	return chaos.NewGenerator(rand.New(rand.NewPCG(uint64(seed), uint64(seed>>32))))
}

func runSketch(cmd *cobra.Command, args []string) error {
	s := app.NewSketch(cfg.Sketch, newGenerator())
	if sketchPreset != "" {
		if err := s.LoadVertices(config.Preset(sketchPreset, cfg.Sketch.CanvasWidth, cfg.Sketch.CanvasHeight)); err != nil {
			return err
		}
	}
	return viz.Run(viz.NewSketchModel(s, cfg.Sketch.ReplayInterval(), exportDir))
}

func runAnimate(cmd *cobra.Command, args []string) error {
	a := app.NewAnimation(cfg.Animate, newGenerator())
	m := viz.NewAnimateModel(a, cfg.Animate.TickInterval(), cfg.Animate.RefreshEvery, exportDir)
	return viz.Run(m)
}

func renderImage(cmd *cobra.Command, args []string) error {
	if renderPoints < 0 {
		return fmt.Errorf("points must not be negative, got %d", renderPoints)
	}
	if outPath == "" {
		outPath = fmt.Sprintf("%s_%s_%d.svg", variant, renderPreset, time.Now().Unix())
	}

	var (
		snap     func() error
		vertices []chaos.Point
		pts      []chaos.Point
		bounds   [2]float64
	)
	switch variant {
	case "sketch":
		sc := cfg.Sketch
		sc.MaxSliderValue = max(sc.MaxSliderValue, renderPoints)
		s := app.NewSketch(sc, newGenerator())
		if err := s.LoadVertices(config.Preset(renderPreset, sc.CanvasWidth, sc.CanvasHeight)); err != nil {
			return err
		}
		if err := s.Update(app.SetMaxIter{N: renderPoints}); err != nil {
			return err
		}
		if err := s.Update(app.SetCurIter{N: renderPoints}); err != nil {
			return err
		}
		vertices, pts = s.Vertices(), s.Visible()
		bounds = [2]float64{sc.CanvasWidth, sc.CanvasHeight}
		snap = func() error { return export.WriteFile(outPath, s.Snapshot()) }
	case "animate":
		ac := cfg.Animate
		ac.MaxPoints = max(ac.MaxPoints, renderPoints)
		ac.Vertices = config.Preset(renderPreset, ac.CanvasWidth, ac.CanvasHeight)
		a := app.NewAnimation(ac, newGenerator())
		for range renderPoints {
			if err := a.Tick(); err != nil {
				return err
			}
		}
		vertices, pts = a.Vertices(), a.Points()
		bounds = [2]float64{ac.CanvasWidth, ac.CanvasHeight}
		snap = func() error { return export.WriteFile(outPath, a.Snapshot()) }
	default:
		return fmt.Errorf("unknown variant: %s (want sketch or animate)", variant)
	}

	start := time.Now()
	if err := snap(); err != nil {
		return fmt.Errorf("export %s: %w", outPath, err)
	}
	log.Info("rendered", zap.String("path", outPath), zap.Int("points", renderPoints), zap.Duration("took", time.Since(start)))

	m := export.NewManifest(variant, seed, renderPoints, vertices)
	m.Preset = renderPreset
	m.Image = outPath
	if d, ok := analysis.Dimension(analysis.BoxCount(pts, bounds[0], bounds[1], analysis.DefaultScales)); ok {
		m.Dimension = d
	}
	manifest, err := export.SaveManifest(m)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	fmt.Printf("wrote %s (%d points), manifest %s\n", outPath, renderPoints, manifest)
	return nil
}

func estimateDimension(cmd *cobra.Command, args []string) error {
	w, h := cfg.Sketch.CanvasWidth, cfg.Sketch.CanvasHeight
	store := chaos.NewStore(newGenerator(), 0)
	for _, v := range config.Preset(dimPreset, w, h) {
		store.AddVertex(v)
	}
	if err := store.GrowTo(dimPoints); err != nil {
		return err
	}

	samples := analysis.BoxCount(store.Points(), w, h, analysis.DefaultScales)
	d, ok := analysis.Dimension(samples)
	if !ok {
		return fmt.Errorf("not enough points for an estimate (%d)", store.Len())
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DIVISIONS\tEPS\tBOXES\tLOG(1/EPS)\tLOG(N)")
	data := make([]float64, len(samples))
	for i, s := range samples {
		fmt.Fprintf(tw, "%d\t%.4f\t%d\t%.3f\t%.3f\n", s.Divisions, s.Eps, s.Count, s.LogInvEps(), s.LogCount())
		data[i] = s.LogCount()
	}
	tw.Flush()

	fmt.Println()
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("log N per scale (coarse to fine)")))
	fmt.Printf("\npoints: %d  preset: %s  dimension: %.4f\n", store.Len(), dimPreset, d)
	return nil
}
