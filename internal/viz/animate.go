package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/chaosgame/internal/app"
	"github.com/san-kum/chaosgame/internal/export"
	"github.com/san-kum/chaosgame/internal/log"
	"go.uber.org/zap"
)

const animateChromeRows = 1 // blank line above the help

type tickMsg time.Time

// AnimateModel drives app.Animation from a tea.Tick loop.
type AnimateModel struct {
	anim          *app.Animation
	interval      time.Duration
	refreshEvery  int
	keys          animateKeys
	help          help.Model
	raster        *raster
	width, height int
	paused        bool
	status        string
	exportDir     string
}

func NewAnimateModel(a *app.Animation, interval time.Duration, refreshEvery int, exportDir string) AnimateModel {
	return AnimateModel{
		anim:         a,
		interval:     interval,
		refreshEvery: refreshEvery,
		keys:         newAnimateKeys(),
		help:         help.New(),
		raster:       &raster{},
		status:       "running",
		exportDir:    exportDir,
	}
}

func (m AnimateModel) layout() layout {
	footer := animateChromeRows + lipgloss.Height(m.help.View(m.keys))
	return computeLayout(m.width, m.height, m.anim.Bounds(), sideWidth, footer)
}

func (m AnimateModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m AnimateModel) Init() tea.Cmd { return m.tick() }

func (m AnimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			m.status = "running"
			if m.paused {
				m.status = "paused"
			}
		case key.Matches(msg, m.keys.Export):
			m.status = m.export()
		case key.Matches(msg, m.keys.Theme):
			m.status = "theme: " + NextTheme().Name
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tickMsg:
		if !m.paused {
			if err := m.anim.Tick(); err != nil {
				log.Error("tick failed", zap.Error(err))
				m.status = err.Error()
				m.paused = true
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m AnimateModel) export() string {
	path := exportPath(m.exportDir, "animate")
	if err := export.WriteFile(path, m.anim.Snapshot()); err != nil {
		log.Error("export failed", zap.String("path", path), zap.Error(err))
		return "export failed: " + err.Error()
	}
	log.Info("exported animation", zap.String("path", path), zap.Int("points", m.anim.Len()))
	return "saved " + path
}

func (m AnimateModel) View() string {
	theme := CurrentTheme
	l := m.layout()
	canvas := m.raster.paint(l, m.anim)

	header := titleStyle(theme).Render("SIERPINSKI ANIMATION") + "\n" +
		statusStyle(theme).Render(m.status)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().PaddingLeft(padX).Render(canvas.Render(theme)),
		panelStyle(theme).MaxHeight(l.rows).Render(m.stats(theme)),
	)
	footer := lipgloss.NewStyle().PaddingLeft(padX).Render(m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, "", footer)
}

func (m AnimateModel) stats(theme Theme) string {
	var s strings.Builder
	s.WriteString(statRow(theme, "Points", fmt.Sprintf("%d / %d", m.anim.Len(), m.anim.Capacity())) + "\n")
	s.WriteString(statRow(theme, "Ticks", fmt.Sprintf("%d", m.anim.Ticks())) + "\n")
	s.WriteString(statRow(theme, "Refresh", fmt.Sprintf("every %d", m.refreshEvery)) + "\n")
	s.WriteString(statRow(theme, "Interval", m.interval.String()) + "\n")
	s.WriteString(statRow(theme, "Theme", theme.Name) + "\n\n")

	hist := m.anim.DimensionHistory()
	if len(hist) > 0 {
		s.WriteString(statRow(theme, "Dimension", fmt.Sprintf("%.3f", hist[len(hist)-1])) + "\n\n")
	}
	if len(hist) > 1 {
		chart := asciigraph.Plot(hist,
			asciigraph.Height(5),
			asciigraph.Width(sideWidth-12),
			asciigraph.Precision(2),
			asciigraph.Caption("box dimension"))
		s.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(chart))
	}
	return s.String()
}
