package viz

import "github.com/charmbracelet/lipgloss"

const sideWidth = 34

func titleStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

func statusStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func panelStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Muted).
		Padding(0, 2).
		MarginLeft(2).
		Width(sideWidth - 2)
}

func labelStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Width(12)
}

func valueStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func statRow(t Theme, label, value string) string {
	return labelStyle(t).Render(label) + valueStyle(t).Render(value)
}
