package viz

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts a full-screen program for m and blocks until it quits.
func Run(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
