package explorer

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mabhi256/marshal48/internal/marshal/model"
	"github.com/mabhi256/marshal48/internal/marshal/registry"
)

// Run starts the interactive explorer over a decoded value and the
// Session that owns it, grounded on internal/tui/app.go's StartTUI.
func Run(root *model.Value, session *registry.Session) error {
	m := New(root, session)

	program := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
