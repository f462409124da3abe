package core

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/glacionet/core/widgets"
)

const (
	colorText     = widgets.ColorText
	colorMuted    = widgets.ColorSubtext0
	colorBorder   = widgets.ColorSurface2
	colorAccent   = widgets.ColorBlue
	colorBrand    = widgets.ColorSky
	colorSuccess  = widgets.ColorGreen
	colorError    = widgets.ColorRed
	colorTabOff   = widgets.ColorOverlay1
	colorSurface0 = widgets.ColorSurface0
	colorMantle   = widgets.ColorMantle
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
