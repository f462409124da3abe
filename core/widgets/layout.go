package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets vertically. Fixed, when it has one entry per widget,
// pins rows for entries > 0; the remaining rows are split by Ratios (or
// evenly) among the zero entries, each getting at least its Min.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
	Fixed   []int
	Min     []int
}

// Tagged widgets can be found in a layout by Locate.
type Tagged interface {
	Tag() string
}

// Locator reports the rows a tagged widget occupies when rendered at
// width x height.
type Locator interface {
	Locate(tag string, width, height int) (top, rows int, ok bool)
}

// MinHeight is the fewest rows that show every entry uncut. It is zero when
// the stack has no Fixed plan.
func (v VStack) MinHeight() int {
	if len(v.Fixed) != len(v.Widgets) {
		return 0
	}
	total := max(0, v.Spacing*(len(v.Widgets)-1))
	for i, f := range v.Fixed {
		if f > 0 {
			total += f
			continue
		}
		total += v.minAt(i)
	}
	return total
}

func (v VStack) minAt(i int) int {
	if i < len(v.Min) {
		return max(0, v.Min[i])
	}
	return 0
}

func (v VStack) Locate(tag string, width, height int) (int, int, bool) {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	heights := v.heights(max(1, height-spacingTotal))
	y := 0
	for i, w := range v.Widgets {
		if heights[i] > 0 {
			if top, rows, ok := locateIn(w, tag, width, heights[i]); ok {
				return y + top, rows, true
			}
			y += heights[i] + v.Spacing
		}
	}
	return 0, 0, false
}

func locateIn(w Widget, tag string, width, height int) (int, int, bool) {
	if t, ok := w.(Tagged); ok && t.Tag() == tag {
		return 0, height, true
	}
	if l, ok := w.(Locator); ok {
		return l.Locate(tag, width, height)
	}
	return 0, 0, false
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	usable := max(1, height-spacingTotal)
	heights := v.heights(usable)
	lines := make([]string, 0, len(v.Widgets)*2)
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		lines = append(lines, fitLines(w.Render(width, heights[i]), heights[i]))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (v VStack) heights(usable int) []int {
	n := len(v.Widgets)
	if len(v.Fixed) != n {
		return splitWidths(usable, n, v.Ratios)
	}
	out := make([]int, n)
	flex := make([]int, 0, n)
	remaining := usable
	for i, f := range v.Fixed {
		if f > 0 {
			out[i] = min(f, remaining)
			remaining -= out[i]
			continue
		}
		flex = append(flex, i)
	}
	if len(flex) == 0 {
		return out
	}
	if remaining <= 0 {
		for _, i := range flex {
			out[i] = v.minAt(i)
		}
		return out
	}
	var ratios []float64
	if len(v.Ratios) == n {
		ratios = make([]float64, 0, len(flex))
		for _, i := range flex {
			ratios = append(ratios, v.Ratios[i])
		}
	}
	for j, h := range splitWidths(remaining, len(flex), ratios) {
		out[flex[j]] = max(h, v.minAt(flex[j]))
	}
	return out
}

func fitLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitWidths(usable, len(h.Widgets), h.Ratios)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

func (h HStack) Locate(tag string, width, height int) (int, int, bool) {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := splitWidths(max(1, width-gapTotal), len(h.Widgets), h.Ratios)
	for i, w := range h.Widgets {
		if top, rows, ok := locateIn(w, tag, max(1, widths[i]), height); ok {
			return top, rows, true
		}
	}
	return 0, 0, false
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((ratios[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
