package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// MetricCard is a headline number with an icon, title and optional subtitle
// and trend badge.
type MetricCard struct {
	Title    string
	Value    string
	Subtitle string
	Icon     string
	// Trend is a signed percentage. Nil or zero hides the badge.
	Trend *float64
	Color Accent
}

// Trend is a convenience for building MetricCard.Trend.
func Trend(v float64) *float64 { return &v }

// TrendBadge renders the badge text: up arrow for positive trends, down for
// negative, followed by the magnitude.
func TrendBadge(trend *float64) (string, bool) {
	if trend == nil || *trend == 0 {
		return "", false
	}
	arrow := "↓"
	if *trend > 0 {
		arrow = "↑"
	}
	return fmt.Sprintf("%s %s%%", arrow, trimFloat(math.Abs(*trend))), true
}

func (c MetricCard) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	accent := c.Color.Color()
	iconStyle := lipgloss.NewStyle().Foreground(ColorBase).Background(accent).Bold(true).Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Foreground(ColorSubtext0)
	valueStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(ColorOverlay1)

	inner := max(1, width-4)
	icon := iconStyle.Render(strings.TrimSpace(c.Icon))
	top := icon
	if badge, ok := TrendBadge(c.Trend); ok {
		badgeColor := ColorGreen
		if *c.Trend > 0 {
			badgeColor = ColorRed
		}
		b := lipgloss.NewStyle().Foreground(badgeColor).Background(ColorSurface0).Bold(true).Render(" " + badge + " ")
		gap := inner - ansi.StringWidth(icon) - ansi.StringWidth(b)
		if gap < 1 {
			gap = 1
		}
		top = icon + strings.Repeat(" ", gap) + b
	}

	rows := []string{top, titleStyle.Render(c.Title), valueStyle.Render(c.Value)}
	if strings.TrimSpace(c.Subtitle) != "" {
		rows = append(rows, subStyle.Render(c.Subtitle))
	}
	for i := range rows {
		rows[i] = ansi.Truncate(rows[i], inner, "…")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(max(1, width-2))
	if height > 2 {
		box = box.Height(min(len(rows), height-2))
	}
	return ClipLines(box.Render(strings.Join(rows, "\n")), height)
}

// ClipLines keeps at most height lines of s.
func ClipLines(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
