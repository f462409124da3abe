package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text is a word-wrapped paragraph.
type Text struct {
	Body  string
	Color lipgloss.Color
	Bold  bool
}

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Width(width).Bold(t.Bold)
	if t.Color != "" {
		style = style.Foreground(t.Color)
	}
	return ClipLines(strings.TrimRight(style.Render(t.Body), " \n"), height)
}

// Lines stacks widgets that each take their natural height with no gap.
type Lines []Widget

func (l Lines) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	out := make([]string, 0, len(l))
	used := 0
	for _, w := range l {
		if used >= height {
			break
		}
		block := w.Render(width, height-used)
		if block == "" {
			out = append(out, "")
			used++
			continue
		}
		n := strings.Count(block, "\n") + 1
		out = append(out, block)
		used += n
	}
	return ClipLines(strings.Join(out, "\n"), height)
}

// Blank renders a single empty row inside Lines.
var Blank = Func(func(int, int) string { return "" })
