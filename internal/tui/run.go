package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"goaffine/internal/scene"
)

// Run starts the interactive viewer and blocks until it quits.
func Run(scn scene.Scene, demo scene.NormalDemo) error {
	_, err := tea.NewProgram(New(scn, demo), tea.WithAltScreen()).Run()
	return err
}
