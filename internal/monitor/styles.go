package monitor

import "github.com/charmbracelet/lipgloss"

// The dashboard uses four logical color roles, mapped to base ANSI colors
// so the user's terminal palette applies.
const (
	colorHeader   lipgloss.Color = "6" // cyan: title
	colorValue    lipgloss.Color = "2" // green: live readings
	colorSensorID lipgloss.Color = "3" // yellow: sensor id labels
	colorOffline  lipgloss.Color = "1" // red: offline markers
)

// Styles are applied per rendered cell or line, so attribute scope can
// never leak across draw calls.
var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	disclaimerStyle = lipgloss.NewStyle().Faint(true)
	headerStyle     = lipgloss.NewStyle().Underline(true)
	idStyle         = lipgloss.NewStyle().Foreground(colorSensorID)
	valueStyle      = lipgloss.NewStyle().Foreground(colorValue)
	offlineStyle    = lipgloss.NewStyle().Foreground(colorOffline)
)
