package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestTrendBadge(t *testing.T) {
	cases := []struct {
		trend *float64
		want  string
		ok    bool
	}{
		{nil, "", false},
		{Trend(0), "", false},
		{Trend(-6), "↓ 6%", true},
		{Trend(2.3), "↑ 2.3%", true},
	}
	for _, tc := range cases {
		got, ok := TrendBadge(tc.trend)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("TrendBadge = (%q, %v), want (%q, %v)", got, ok, tc.want, tc.ok)
		}
	}
}

func TestMetricCardContent(t *testing.T) {
	card := MetricCard{Title: "Glacier Area", Value: "12.4 km²", Subtitle: "Down 6% from last year", Icon: "❄", Trend: Trend(-6), Color: AccentBlue}
	out := ansi.Strip(card.Render(40, 8))
	for _, want := range []string{"Glacier Area", "12.4 km²", "Down 6% from last year", "↓ 6%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in card:\n%s", want, out)
		}
	}

	bare := ansi.Strip(MetricCard{Title: "GLOF Risk Score", Value: "78%", Color: AccentRed}.Render(40, 8))
	if strings.Contains(bare, "↑") || strings.Contains(bare, "↓") {
		t.Fatalf("card without trend should not show a badge:\n%s", bare)
	}
	if got := strings.Count(bare, "\n") + 1; got != 5 {
		t.Fatalf("card without subtitle should be 5 rows, got %d:\n%s", got, bare)
	}
}

func TestGaugeScoreAndBar(t *testing.T) {
	g := Gauge{Score: 78, Caption: "High risk", Color: AccentRed}
	out := ansi.Strip(g.Render(20, 4))
	if !strings.Contains(out, "78 / 100") {
		t.Fatalf("expected headline, got:\n%s", out)
	}
	if got := strings.Count(out, "█"); got != 16 {
		t.Fatalf("filled cells = %d, want 16", got)
	}
	full := ansi.Strip(Gauge{Score: 170}.Render(10, 2))
	if !strings.Contains(full, "100 / 100") || strings.Count(full, "█") != 10 {
		t.Fatalf("scores above 100 should clamp:\n%s", full)
	}
	empty := ansi.Strip(Gauge{Score: -5}.Render(10, 2))
	if !strings.Contains(empty, "0 / 100") || strings.Contains(empty, "█") {
		t.Fatalf("negative scores should clamp:\n%s", empty)
	}
}

func TestChartFallback(t *testing.T) {
	c := Chart{Title: "Area", Data: []ChartPoint{{"Jan", 13.2}, {"Dec", 12.4}}}
	out := c.Render(30, 5)
	if !strings.Contains(out, "Jan") || !strings.Contains(out, "#") || !strings.Contains(out, "12.4") {
		t.Fatalf("unexpected fallback chart:\n%s", out)
	}
	if got := (Chart{}).Render(10, 3); !strings.Contains(got, "(no data)") {
		t.Fatalf("expected empty marker, got %q", got)
	}
}

func TestLineChartDayMapping(t *testing.T) {
	c := LineChart{Days: []int{1, 2, 3}, Values: []float64{1, 2, 3}, Anchor: time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)}
	if got := c.DayTime(1); !got.Equal(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("day 1 = %v", got)
	}
	if got := c.DayAt(float64(c.DayTime(3).Unix()) + 3600); got != 3 {
		t.Fatalf("DayAt = %d, want 3", got)
	}

	c.Days = []int{1, 5, 10}
	f := c.XLabels()
	if f(0, float64(c.DayTime(1).Unix())) != "1" {
		t.Fatalf("expected label for day 1")
	}
	if f(0, float64(c.DayTime(1).Unix())) != "" {
		t.Fatalf("repeat labels should be blank")
	}
	if f(0, float64(c.DayTime(3).Unix())) != "" {
		t.Fatalf("off-step day should be blank")
	}
	if f(0, float64(c.DayTime(5).Unix())) != "5" {
		t.Fatalf("expected label for day 5")
	}
}

func TestLineChartSmallUsesFallback(t *testing.T) {
	c := LineChart{Days: []int{1, 2}, Values: []float64{45.2, 48.1}, Anchor: time.Unix(0, 0)}
	out := c.Render(20, 3)
	if !strings.Contains(out, "D1") || !strings.Contains(out, "#") {
		t.Fatalf("expected text fallback, got:\n%s", out)
	}
}

func TestLegendAndList(t *testing.T) {
	legend := ansi.Strip(Legend{Items: []LegendItem{{"Glacier Boundary", ColorBlue}, {"Glacial Lake", ColorSky}}}.Render(30, 5))
	if !strings.Contains(legend, "■ Glacier Boundary") || !strings.Contains(legend, "■ Glacial Lake") {
		t.Fatalf("unexpected legend:\n%s", legend)
	}

	l := List{Items: []string{"one", "two", "three"}, Offset: 1}
	out := ansi.Strip(l.Render(20, 5))
	if strings.Contains(out, "one") || !strings.Contains(out, "• two") {
		t.Fatalf("offset should skip first item:\n%s", out)
	}
}

func TestRenderPopupClampsWidth(t *testing.T) {
	out := RenderPopup("base", strings.Repeat("x", 40), 20, 9)
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Fatalf("line %d width = %d, want <= 20", i, w)
		}
	}
}

func TestTextWraps(t *testing.T) {
	out := ansi.Strip(Text{Body: "alpha beta gamma delta"}.Render(11, 5))
	if got := strings.Count(out, "\n") + 1; got < 2 {
		t.Fatalf("expected wrapped text, got:\n%s", out)
	}
}

func TestPaneFramesContent(t *testing.T) {
	out := Pane{Title: "Glacier Info", Content: "Location\nElevation\nCurrent Area", Focused: true}.Render(24, 4)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("pane rows = %d, want 4", len(lines))
	}
	for _, l := range lines {
		if ansi.StringWidth(l) != 24 {
			t.Fatalf("row %q width = %d, want 24", l, ansi.StringWidth(l))
		}
	}
	if !strings.HasPrefix(lines[0], "╭─ ● Glacier Info ") || !strings.Contains(lines[2], "Elevation") {
		t.Fatalf("unexpected pane:\n%s", strings.Join(lines, "\n"))
	}
	if strings.Contains(out, "Current Area") {
		t.Fatalf("content past the pane height should be clipped")
	}
}
