package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorLavender).
	Padding(1, 2)

// RenderPopup centers popup, framed, over base. Rows outside the popup keep
// the base content, and so do the columns either side of it.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := canvas(base, width, height)
	card := strings.Split(popupStyle.Render(popup), "\n")
	cardWidth := 0
	for _, line := range card {
		cardWidth = max(cardWidth, ansi.StringWidth(line))
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(card))/2)
	for i, line := range card {
		r := y + i
		if r >= height {
			break
		}
		left := ansi.Truncate(rows[r], x, "")
		right := ansi.TruncateLeft(rows[r], x+cardWidth, "")
		rows[r] = padRight(left+padRight(line, cardWidth)+right, width)
	}
	return strings.Join(rows, "\n")
}

// canvas returns exactly height rows of s, each padded or clipped to width.
func canvas(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	rows := make([]string, height)
	for i := range rows {
		if i < len(lines) {
			rows[i] = lines[i]
		}
		rows[i] = padRight(rows[i], width)
	}
	return rows
}
