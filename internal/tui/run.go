package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/argue/internal/semantics"
)

// Run starts the explore view over pre-computed labellings and blocks until
// the user quits.
func Run(title string, labellings []*semantics.Labelling) error {
	p := tea.NewProgram(NewModel(title, labellings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
