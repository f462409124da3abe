package widgets

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gauge shows a whole-number score as "NN / 100" over a proportional bar.
// Callers round; Score is clamped to 0..100.
type Gauge struct {
	Score   int
	Caption string
	Color   Accent
}

func (g Gauge) clamped() int {
	return min(100, max(0, g.Score))
}

func (g Gauge) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	accent := g.Color.Color()
	headline := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(strconv.Itoa(g.clamped())) +
		lipgloss.NewStyle().Foreground(ColorOverlay1).Render(" / 100")

	filled := (g.clamped()*width + 50) / 100
	bar := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ColorSurface1).Render(strings.Repeat("░", width-filled))

	rows := []string{headline, bar}
	if strings.TrimSpace(g.Caption) != "" {
		rows = append(rows, Text{Body: g.Caption, Color: ColorSubtext0}.Render(width, max(1, height-2)))
	}
	return ClipLines(strings.Join(rows, "\n"), height)
}
