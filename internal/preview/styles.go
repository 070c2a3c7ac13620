package preview

import "github.com/charmbracelet/lipgloss"

var (
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	offsetFg  = lipgloss.Color("#22C55E")
	errorFg   = lipgloss.Color("#EF4444")
	borderCol = lipgloss.Color("#243141")

	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	offsetStyle = lipgloss.NewStyle().Foreground(offsetFg)
	errorStyle  = lipgloss.NewStyle().Foreground(errorFg)
)
