package viz

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// sliderLabelWidth fits "max iter: 10000 ".
const sliderLabelWidth = 16

type slider struct {
	label string
	bar   progress.Model
}

func newSlider(label string) slider {
	return slider{
		label: label,
		bar:   progress.New(progress.WithoutPercentage(), progress.WithSolidFill(string(CurrentTheme.Accent))),
	}
}

func (s slider) View(value, maxValue, width int, theme Theme) string {
	s.bar.Width = width
	s.bar.FullColor = string(theme.Accent)
	s.bar.EmptyColor = string(theme.Muted)
	ratio := 0.0
	if maxValue > 0 {
		ratio = float64(value) / float64(maxValue)
	}
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(sliderLabelWidth).
		Render(fmt.Sprintf("%s: %d", s.label, value))
	return label + s.bar.ViewAs(ratio)
}
