package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a rounded box with its title set into the top border. A zero
// Height fills the space the layout offers.
type Pane struct {
	Title    string
	Height   int
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) marker() (string, lipgloss.Color) {
	switch {
	case p.Focused:
		return "● ", ColorGreen
	case p.Selected:
		return "▶ ", ColorBlue
	default:
		return "", ColorOverlay0
	}
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	width = max(width, 4)
	h := p.Height
	if h <= 0 || (height > 0 && h > height) {
		h = height
	}
	h = max(h, 3)

	marker, color := p.marker()
	edge := lipgloss.NewStyle().Foreground(color)
	inner := width - 2
	body := inner - 2

	label, fill := "", inner-1
	if inner >= 4 {
		title := ansi.Truncate(marker+strings.TrimSpace(p.Title), inner-3, "")
		label = lipgloss.NewStyle().Foreground(ColorText).Bold(true).Render(" " + title + " ")
		fill = inner - 3 - ansi.StringWidth(title)
	}

	rows := make([]string, 0, h)
	rows = append(rows, edge.Render("╭─")+label+edge.Render(strings.Repeat("─", fill)+"╮"))

	var content []string
	if strings.TrimSpace(p.Content) != "" {
		content = strings.Split(p.Content, "\n")
	}
	side := edge.Render("│")
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(content) {
			line = ansi.Truncate(content[i], body, "")
		}
		rows = append(rows, side+" "+padRight(line, body)+" "+side)
	}
	rows = append(rows, edge.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(rows, "\n")
}
