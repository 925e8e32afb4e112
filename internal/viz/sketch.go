package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/chaosgame/internal/app"
	"github.com/san-kum/chaosgame/internal/export"
	"github.com/san-kum/chaosgame/internal/log"
	"go.uber.org/zap"
)

const sketchChromeRows = 3 // two slider rows and a blank line above the help

type replayMsg time.Time

// SketchModel is the Bubble Tea front end of app.Sketch.
type SketchModel struct {
	sketch         *app.Sketch
	keys           sketchKeys
	help           help.Model
	maxSlider      slider
	curSlider      slider
	raster         *raster
	width, height  int
	replaying      bool
	replayInterval time.Duration
	dragging       int // slider index held by the mouse, -1 when none
	status         string
	exportDir      string
}

func NewSketchModel(s *app.Sketch, replayInterval time.Duration, exportDir string) SketchModel {
	return SketchModel{
		sketch:         s,
		keys:           newSketchKeys(),
		help:           help.New(),
		maxSlider:      newSlider("max iter"),
		curSlider:      newSlider("cur iter"),
		replayInterval: replayInterval,
		raster:         &raster{},
		dragging:       -1,
		status:         "left click: add vertex  right click: remove",
		exportDir:      exportDir,
	}
}

func (m SketchModel) Init() tea.Cmd { return nil }

// layout reserves room for the help as currently rendered, which grows
// when the full help is shown.
func (m SketchModel) layout() layout {
	footer := sketchChromeRows + lipgloss.Height(m.help.View(m.keys))
	return computeLayout(m.width, m.height, m.sketch.Bounds(), sideWidth, footer)
}

func (m SketchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case replayMsg:
		if !m.replaying {
			return m, nil
		}
		step := max(1, m.sketch.MaxIter()/100)
		m.apply(app.DrawCurIter{N: m.sketch.CurIter() + step})
		if m.sketch.CurIter() >= m.sketch.MaxIter() {
			m.replaying = false
			m.status = "replay done"
			return m, nil
		}
		return m, m.replayTick()
	}
	return m, nil
}

func (m SketchModel) replayTick() tea.Cmd {
	return tea.Tick(m.replayInterval, func(t time.Time) tea.Msg { return replayMsg(t) })
}

func (m *SketchModel) apply(msg app.Msg) {
	if err := m.sketch.Update(msg); err != nil {
		m.status = err.Error()
		log.Error("sketch update failed", zap.Error(err))
	}
}

func (m SketchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.sketch.SliderStep()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Theme):
		m.status = "theme: " + NextTheme().Name
	case key.Matches(msg, m.keys.Undo):
		m.apply(app.RemoveVertex{})
	case key.Matches(msg, m.keys.Clear):
		m.replaying = false
		if err := m.sketch.LoadVertices(nil); err != nil {
			m.status = err.Error()
		}
	case key.Matches(msg, m.keys.Export):
		m.status = m.export()
	}

	if !m.sketch.ControlsVisible() {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.MaxUp):
		m.apply(app.SetMaxIter{N: m.sketch.MaxIter() + step})
	case key.Matches(msg, m.keys.MaxDown):
		m.apply(app.SetMaxIter{N: m.sketch.MaxIter() - step})
	case key.Matches(msg, m.keys.CurUp):
		m.apply(app.SetCurIter{N: m.sketch.CurIter() + step})
	case key.Matches(msg, m.keys.CurDown):
		m.apply(app.SetCurIter{N: m.sketch.CurIter() - step})
	case key.Matches(msg, m.keys.CurFull):
		m.apply(app.SetCurIter{N: m.sketch.MaxIter()})
	case key.Matches(msg, m.keys.Replay):
		if m.replaying || m.sketch.MaxIter() == 0 {
			m.replaying = false
			return m, nil
		}
		m.replaying = true
		m.status = "replaying"
		m.apply(app.DrawCurIter{N: 0})
		return m, m.replayTick()
	}
	return m, nil
}

func (m *SketchModel) handleMouse(msg tea.MouseMsg) {
	l := m.layout()
	switch msg.Action {
	case tea.MouseActionRelease:
		m.dragging = -1
		return
	case tea.MouseActionMotion:
		if m.dragging >= 0 && msg.Button == tea.MouseButtonLeft {
			m.setSlider(m.dragging, l.sliderValue(msg.X, m.sketch.SliderMax()))
		}
		return
	case tea.MouseActionPress:
	default:
		return
	}

	if m.sketch.ControlsVisible() && msg.Button == tea.MouseButtonLeft {
		if i := l.sliderAt(msg.X, msg.Y); i >= 0 {
			m.dragging = i
			m.setSlider(i, l.sliderValue(msg.X, m.sketch.SliderMax()))
			return
		}
	}

	button := app.ButtonOther
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = app.ButtonLeft
	case tea.MouseButtonRight:
		button = app.ButtonRight
	}
	m.apply(app.Click{P: l.toLogical(msg.X, msg.Y, m.sketch.Bounds()), Button: button})
}

func (m *SketchModel) setSlider(i, v int) {
	m.replaying = false
	if i == 0 {
		m.apply(app.SetMaxIter{N: v})
		return
	}
	m.apply(app.SetCurIter{N: v})
}

func (m SketchModel) export() string {
	path := exportPath(m.exportDir, "sketch")
	if err := export.WriteFile(path, m.sketch.Snapshot()); err != nil {
		log.Error("export failed", zap.String("path", path), zap.Error(err))
		return "export failed: " + err.Error()
	}
	log.Info("exported sketch", zap.String("path", path), zap.Int("points", m.sketch.CurIter()))
	return "saved " + path
}

func (m SketchModel) View() string {
	theme := CurrentTheme
	l := m.layout()
	canvas := m.raster.paint(l, m.sketch)

	header := titleStyle(theme).Render("SIERPINSKI SKETCH") + "\n" +
		statusStyle(theme).Render(m.status)

	side := panelStyle(theme).MaxHeight(l.rows).Render(m.stats(theme))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().PaddingLeft(padX).Render(canvas.Render(theme)),
		side,
	)

	var sliders string
	if m.sketch.ControlsVisible() {
		pad := strings.Repeat(" ", padX)
		sliders = pad + m.maxSlider.View(m.sketch.MaxIter(), m.sketch.SliderMax(), l.barW, theme) + "\n" +
			pad + m.curSlider.View(m.sketch.CurIter(), m.sketch.SliderMax(), l.barW, theme)
	} else {
		sliders = "\n"
	}

	footer := lipgloss.NewStyle().PaddingLeft(padX).Render(m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, sliders, "", footer)
}

func (m SketchModel) stats(theme Theme) string {
	var s strings.Builder
	s.WriteString(statRow(theme, "Vertices", fmt.Sprintf("%d", len(m.sketch.Vertices()))) + "\n")
	s.WriteString(statRow(theme, "Generated", fmt.Sprintf("%d", m.sketch.Generated())) + "\n")
	s.WriteString(statRow(theme, "Drawn", fmt.Sprintf("%d / %d", m.sketch.CurIter(), m.sketch.MaxIter())) + "\n")
	s.WriteString(statRow(theme, "Theme", theme.Name) + "\n\n")
	for i, v := range m.sketch.Vertices() {
		s.WriteString(statusStyle(theme).Render(fmt.Sprintf("v%d %s", i, v)) + "\n")
	}
	return s.String()
}
