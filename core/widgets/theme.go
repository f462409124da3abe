package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, true-color hex values.
// https://catppuccin.com/palette
const (
	ColorRed      lipgloss.Color = "#f38ba8"
	ColorPeach    lipgloss.Color = "#fab387"
	ColorYellow   lipgloss.Color = "#f9e2af"
	ColorGreen    lipgloss.Color = "#a6e3a1"
	ColorTeal     lipgloss.Color = "#94e2d5"
	ColorSky      lipgloss.Color = "#89dceb"
	ColorSapphire lipgloss.Color = "#74c7ec"
	ColorBlue     lipgloss.Color = "#89b4fa"
	ColorLavender lipgloss.Color = "#b4befe"

	ColorText     lipgloss.Color = "#cdd6f4"
	ColorSubtext0 lipgloss.Color = "#a6adc8"
	ColorOverlay1 lipgloss.Color = "#7f849c"
	ColorOverlay0 lipgloss.Color = "#6c7086"
	ColorSurface2 lipgloss.Color = "#585b70"
	ColorSurface1 lipgloss.Color = "#45475a"
	ColorSurface0 lipgloss.Color = "#313244"
	ColorBase     lipgloss.Color = "#1e1e2e"
	ColorMantle   lipgloss.Color = "#181825"
)

// Accent names a card color family.
type Accent string

const (
	AccentBlue   Accent = "blue"
	AccentGreen  Accent = "green"
	AccentOrange Accent = "orange"
	AccentRed    Accent = "red"
)

// Color maps an accent to its palette entry. Unknown accents fall back to blue.
func (a Accent) Color() lipgloss.Color {
	switch a {
	case AccentGreen:
		return ColorGreen
	case AccentOrange:
		return ColorPeach
	case AccentRed:
		return ColorRed
	default:
		return ColorBlue
	}
}

// Secondary is the lighter end of the accent's gradient.
func (a Accent) Secondary() lipgloss.Color {
	switch a {
	case AccentGreen:
		return ColorTeal
	case AccentOrange:
		return ColorYellow
	case AccentRed:
		return ColorPeach
	default:
		return ColorSky
	}
}
