package explorer

import "github.com/charmbracelet/lipgloss"

// Palette grounded on internal/tui/styles.go's color vars, narrowed to
// what a tree browser needs.
var (
	textColor   = lipgloss.Color("#CCCCCC")
	mutedColor  = lipgloss.Color("#888888")
	infoColor   = lipgloss.Color("#4682B4")
	borderColor = lipgloss.Color("#666666")
	accentColor = lipgloss.Color("#228B22")
)

var (
	textStyle     = lipgloss.NewStyle().Foreground(textColor)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	kindStyle     = lipgloss.NewStyle().Foreground(infoColor)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(accentColor).Bold(true)

	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Padding(0, 1)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
)
