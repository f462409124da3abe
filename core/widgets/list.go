package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// List renders bulleted items. When the items overflow, Offset picks the
// first visible one.
type List struct {
	Items  []string
	Bullet string
	Cursor int
	Offset int
	Active bool
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bullet := l.Bullet
	if bullet == "" {
		bullet = "•"
	}
	bulletStyle := lipgloss.NewStyle().Foreground(ColorPeach)
	itemStyle := lipgloss.NewStyle().Foreground(ColorText)
	cursorStyle := lipgloss.NewStyle().Foreground(ColorBase).Background(ColorBlue)

	offset := max(0, min(l.Offset, len(l.Items)-1))
	rows := make([]string, 0, height)
	for i := offset; i < len(l.Items) && len(rows) < height; i++ {
		text := ansi.Truncate(l.Items[i], max(1, width-2), "…")
		style := itemStyle
		if l.Active && i == l.Cursor {
			style = cursorStyle
		}
		rows = append(rows, bulletStyle.Render(bullet)+" "+style.Render(text))
	}
	return strings.Join(rows, "\n")
}
