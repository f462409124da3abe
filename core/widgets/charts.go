package widgets

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

const (
	minLineChartWidth  = 24
	minLineChartHeight = 6
	minBarChartWidth   = 24
	minBarChartHeight  = 5
)

// ChartPoint is one labelled value.
type ChartPoint struct {
	Label string
	Value float64
}

// Chart is the plain-text fallback: one row of '#' per point.
type Chart struct {
	Title string
	Data  []ChartPoint
	Unit  string
}

func (c Chart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, len(c.Data)+1)
	if c.Title != "" {
		lines = append(lines, c.Title)
	}
	if len(c.Data) == 0 {
		return strings.Join(append(lines, "(no data)"), "\n")
	}
	maxV := 0.0
	labelW := 1
	for _, p := range c.Data {
		maxV = max(maxV, p.Value)
		labelW = max(labelW, len(p.Label))
	}
	if maxV <= 0 {
		maxV = 1
	}
	valueStrs := make([]string, len(c.Data))
	valueW := 0
	for i, p := range c.Data {
		valueStrs[i] = strconv.FormatFloat(p.Value, 'f', -1, 64) + c.Unit
		valueW = max(valueW, len(valueStrs[i]))
	}
	barSpace := max(1, width-labelW-valueW-2)
	for i, p := range c.Data {
		if len(lines) >= height {
			break
		}
		w := int((p.Value / maxV) * float64(barSpace))
		if w < 1 {
			w = 1
		}
		bar := strings.Repeat("#", w) + strings.Repeat(" ", barSpace-w)
		lines = append(lines, fmt.Sprintf("%-*s %s %s", labelW, p.Label, bar, valueStrs[i]))
	}
	return strings.Join(lines, "\n")
}

// LineChart plots a series indexed by day number 1..N as a braille line.
// Day 1 sits on Anchor, later days on consecutive dates.
type LineChart struct {
	Days   []int
	Values []float64
	Anchor time.Time
	Color  lipgloss.Color
	Every  int
}

// DayTime maps a day number onto the chart's time axis.
func (c LineChart) DayTime(day int) time.Time {
	anchor := c.Anchor.UTC().Truncate(24 * time.Hour)
	return anchor.AddDate(0, 0, day-1)
}

// DayAt maps a time axis position back to the nearest day number.
func (c LineChart) DayAt(unix float64) int {
	anchor := c.DayTime(1).Unix()
	return int(math.Round((unix-float64(anchor))/86400)) + 1
}

func (c LineChart) labelEvery() int {
	if c.Every > 0 {
		return c.Every
	}
	return 5
}

// XLabels returns the formatter for the day axis. Each labelled day is shown
// once, then repeats are blanked.
func (c LineChart) XLabels() linechart.LabelFormatter {
	seen := map[int]bool{}
	every := c.labelEvery()
	last := 0
	if n := len(c.Days); n > 0 {
		last = c.Days[n-1]
	}
	return func(_ int, v float64) string {
		day := c.DayAt(v)
		if day < 1 || (last > 0 && day > last) || seen[day] {
			return ""
		}
		if day != 1 && day%every != 0 {
			return ""
		}
		seen[day] = true
		return strconv.Itoa(day)
	}
}

func (c LineChart) fallback() Chart {
	data := make([]ChartPoint, 0, len(c.Days))
	for i, d := range c.Days {
		if i >= len(c.Values) {
			break
		}
		data = append(data, ChartPoint{Label: "D" + strconv.Itoa(d), Value: c.Values[i]})
	}
	return Chart{Data: data}
}

func (c LineChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	n := min(len(c.Days), len(c.Values))
	if n < 2 || width < minLineChartWidth || height < minLineChartHeight {
		return c.fallback().Render(width, height)
	}

	maxV := 0.0
	for _, v := range c.Values[:n] {
		maxV = max(maxV, v)
	}
	yMax := math.Ceil(maxV*1.1/10) * 10
	if yMax <= 0 {
		yMax = 10
	}
	start, end := c.DayTime(c.Days[0]), c.DayTime(c.Days[n-1])

	color := c.Color
	if color == "" {
		color = ColorSapphire
	}
	chart := tslc.New(width, height)
	chart.SetXStep(1)
	chart.SetYStep(2)
	chart.SetStyle(lipgloss.NewStyle().Foreground(color))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(ColorSurface2)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(ColorOverlay1)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, yMax)
	chart.SetViewYRange(0, yMax)
	chart.Model.XLabelFormatter = c.XLabels()
	for i := 0; i < n; i++ {
		chart.Push(tslc.TimePoint{Time: c.DayTime(c.Days[i]), Value: c.Values[i]})
	}
	chart.DrawBraille()
	return chart.View()
}

// BarChart draws one vertical bar per point.
type BarChart struct {
	Data  []ChartPoint
	Color lipgloss.Color
	Unit  string
}

func (c BarChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	n := len(c.Data)
	if n == 0 || width < minBarChartWidth || height < minBarChartHeight {
		return Chart{Data: c.Data, Unit: c.Unit}.Render(width, height)
	}
	gap := 1
	if (width-gap*(n-1))/n < 1 {
		return Chart{Data: c.Data, Unit: c.Unit}.Render(width, height)
	}

	color := c.Color
	if color == "" {
		color = ColorTeal
	}
	style := lipgloss.NewStyle().Foreground(color)
	bars := make([]barchart.BarData, 0, n)
	for _, p := range c.Data {
		bars = append(bars, barchart.BarData{
			Label:  p.Label,
			Values: []barchart.BarValue{{Name: p.Label, Value: p.Value, Style: style}},
		})
	}
	chart := barchart.New(width, height,
		barchart.WithBarGap(gap),
		barchart.WithStyles(lipgloss.NewStyle().Foreground(ColorSurface2), lipgloss.NewStyle().Foreground(ColorOverlay1)),
	)
	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}

// Legend lists colored swatches with their meaning, one per row.
type Legend struct {
	Items []LegendItem
}

type LegendItem struct {
	Label string
	Color lipgloss.Color
}

func (l Legend) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		swatch := lipgloss.NewStyle().Foreground(it.Color).Render("■")
		rows = append(rows, swatch+" "+lipgloss.NewStyle().Foreground(ColorSubtext0).Render(it.Label))
	}
	return ClipLines(strings.Join(rows, "\n"), height)
}
