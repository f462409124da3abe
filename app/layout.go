package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/glacionet/core/widgets"
)

const (
	cardHeight  = 6
	minCardWide = 26
	// contentInset is what the body margin plus pane chrome take from the
	// terminal width before a pane's content is laid out.
	contentInset = 6
)

// cardGrid lays cards out in equal rows. The column count is the largest
// divisor of the card count that keeps every card at least minCardWide.
type cardGrid struct {
	cards []widgets.Widget
}

func (g cardGrid) columns(width int) int {
	n := len(g.cards)
	for cols := n; cols > 1; cols-- {
		if n%cols == 0 && (width-(cols-1))/cols >= minCardWide {
			return cols
		}
	}
	return 1
}

// Height is the number of rows the grid needs at width.
func (g cardGrid) Height(width int) int {
	if len(g.cards) == 0 {
		return 0
	}
	cols := g.columns(width)
	rows := (len(g.cards) + cols - 1) / cols
	return rows * cardHeight
}

func (g cardGrid) Render(width, height int) string {
	if len(g.cards) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	cols := g.columns(width)
	rows := make([]widgets.Widget, 0, len(g.cards)/cols+1)
	fixed := make([]int, 0, cap(rows))
	for i := 0; i < len(g.cards); i += cols {
		end := min(i+cols, len(g.cards))
		rows = append(rows, widgets.HStack{Widgets: g.cards[i:end], Gap: 1})
		fixed = append(fixed, cardHeight)
	}
	return widgets.VStack{Widgets: rows, Fixed: fixed}.Render(width, height)
}

// captioned draws a chart with its caption wrapped under it.
type captioned struct {
	chart   widgets.Widget
	caption string
}

func (c captioned) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	caption := widgets.Text{Body: c.caption, Color: widgets.ColorSubtext0}.Render(width, height)
	rows := strings.Count(caption, "\n") + 1
	if rows >= height {
		return caption
	}
	return widgets.ClipLines(c.chart.Render(width, height-rows), height-rows) + "\n" + caption
}

// centered places a block in the middle of the space it is given.
type centered struct {
	inner widgets.Widget
}

func (c centered) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	block := c.inner.Render(width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

// naturalHeight is how many rows w uses at width when height is unbounded.
func naturalHeight(w widgets.Widget, width int) int {
	out := strings.TrimRight(w.Render(max(1, width), 200), "\n")
	if out == "" {
		return 0
	}
	return strings.Count(out, "\n") + 1
}

// paneHeight is the fixed height of a pane whose content is w at terminal width.
func paneHeight(w widgets.Widget, termWidth int) int {
	return naturalHeight(w, termWidth-contentInset) + 2
}
