package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/jask/glacionet/core"
	"github.com/jask/glacionet/core/widgets"
	"github.com/jask/glacionet/internal/glacier"
)

const (
	predictionsTitle    = "AI Predictions"
	predictionsSubtitle = "30-day meltwater forecast and risk analysis"
	risksPaneScope      = "pane:predictions:risks"
)

// chartPaneRows keeps both charts drawable; shorter bodies scroll.
const chartPaneRows = 12

// Actions of the risk factors list.
const (
	ActionRiskNext  = "risk-next"
	ActionRiskPrev  = "risk-prev"
	ActionRiskFirst = "risk-first"
	ActionRiskLast  = "risk-last"
)

// NewPredictionsTab builds the forecast page. Day 1 of the forecast is the
// clock's current date.
func NewPredictionsTab(ds glacier.Dataset, clock clockwork.Clock) core.Tab {
	p := ds.Predictions
	anchor := clock.Now()
	header := widgets.Text{
		Body:  predictionsSubtitle + " · day 1 is " + anchor.Format("Jan 2, 2006"),
		Color: widgets.ColorSubtext0,
	}
	summary := widgets.Text{Body: p.AISummary, Color: widgets.ColorText}
	glof := widgets.Gauge{Score: glacier.Score100(p.GLOFRisk), Caption: glofAdvice(p.GLOFRisk), Color: widgets.AccentRed}
	water := widgets.Gauge{Score: glacier.Score100(p.WaterSecurityIndex), Caption: waterAdvice(p.WaterSecurityIndex), Color: widgets.AccentBlue}
	forecast := captioned{chart: forecastChart(p, anchor), caption: peakCaption(p)}
	area := captioned{chart: areaChart(p), caption: lossCaption(p)}

	specs := []core.PaneSpec{
		{ID: "title", Title: predictionsTitle, Scope: "pane:predictions:title", JumpKey: 't', Focusable: false, Content: header},
		{ID: "summary", Title: "AI Analysis Summary", Scope: "pane:predictions:summary", JumpKey: 's', Focusable: true, Content: summary},
		{ID: "glof", Title: "GLOF Risk Score", Scope: "pane:predictions:glof", JumpKey: 'g', Focusable: true, Content: glof},
		{ID: "water", Title: "Water Security Index", Scope: "pane:predictions:water", JumpKey: 'w', Focusable: true, Content: water},
		{ID: "forecast", Title: "30-Day Meltwater Forecast", Scope: "pane:predictions:forecast", JumpKey: 'f', Focusable: true, Content: forecast},
		{ID: "area", Title: "Glacier Area - 12 Month Trend", Scope: "pane:predictions:area", JumpKey: 'a', Focusable: true, Content: area},
		{ID: "risks", Title: "Key Risk Factors", Scope: risksPaneScope, JumpKey: 'r', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return NewRiskFactorsPane(spec, p.RiskFactors)
		}},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		half := (m.Width() - 1) / 2
		gauges := widgets.HStack{Widgets: []widgets.Widget{host.BuildPane("glof"), host.BuildPane("water")}, Gap: 1}
		charts := widgets.HStack{Widgets: []widgets.Widget{host.BuildPane("forecast"), host.BuildPane("area")}, Gap: 1}
		return widgets.VStack{
			Widgets: []widgets.Widget{
				host.BuildPane("title"),
				host.BuildPane("summary"),
				gauges,
				charts,
				host.BuildPane("risks"),
			},
			Fixed: []int{
				paneHeight(header, m.Width()),
				paneHeight(summary, m.Width()),
				max(paneHeight(glof, half), paneHeight(water, half)),
				0,
				len(p.RiskFactors) + 2,
			},
			Min: []int{0, 0, 0, chartPaneRows, 0},
		}
	}
	return core.NewGeneratedTab(PagePredictions.String(), PagePredictions.Title(), specs, layout)
}

func forecastChart(p glacier.Predictions, anchor time.Time) widgets.LineChart {
	days := make([]int, 0, len(p.MeltwaterForecast))
	flows := make([]float64, 0, len(p.MeltwaterForecast))
	for _, fp := range p.MeltwaterForecast {
		days = append(days, fp.Day)
		flows = append(flows, fp.Flow)
	}
	return widgets.LineChart{Days: days, Values: flows, Anchor: anchor, Color: widgets.ColorSapphire}
}

func areaChart(p glacier.Predictions) widgets.BarChart {
	data := make([]widgets.ChartPoint, 0, len(p.GlacierAreaHistory))
	for _, ap := range p.GlacierAreaHistory {
		data = append(data, widgets.ChartPoint{Label: ap.Month, Value: ap.Area})
	}
	return widgets.BarChart{Data: data, Color: widgets.ColorSapphire, Unit: " km²"}
}

func peakCaption(p glacier.Predictions) string {
	peak, ok := p.PeakFlow()
	if !ok {
		return "No forecast available"
	}
	return fmt.Sprintf("Peak meltwater flow expected around day %d", peak.Day)
}

func lossCaption(p glacier.Predictions) string {
	month, ok := p.SteepestDrop()
	if !ok {
		return "No area loss observed"
	}
	return "Consistent area loss observed since " + month.Month
}

func glofAdvice(risk float64) string {
	switch {
	case risk >= 0.7:
		return "High risk - immediate monitoring recommended"
	case risk >= 0.4:
		return "Moderate risk - regular monitoring advised"
	}
	return "Low risk - routine monitoring"
}

func waterAdvice(index float64) string {
	switch {
	case index < 0.5:
		return "Serious concern - water supply planning required"
	case index < 0.75:
		return "Moderate concern - seasonal monitoring advised"
	}
	return "Low concern - routine monitoring"
}

// RiskFactorsPane lists risk factors with a cursor that the risk actions move
// while the pane is focused.
type RiskFactorsPane struct {
	core.PaneBase
	items   []string
	cursor  int
	focused bool
}

func NewRiskFactorsPane(spec core.PaneSpec, items []string) *RiskFactorsPane {
	return &RiskFactorsPane{PaneBase: core.NewPaneBase(spec), items: append([]string(nil), items...)}
}

func (p *RiskFactorsPane) Cursor() int { return p.cursor }

func (p *RiskFactorsPane) Update(msg tea.Msg) tea.Cmd {
	action, ok := msg.(core.PaneActionMsg)
	if !ok || !p.focused || len(p.items) == 0 {
		return nil
	}
	switch action.Action {
	case ActionRiskNext:
		p.cursor = min(p.cursor+1, len(p.items)-1)
	case ActionRiskPrev:
		p.cursor = max(p.cursor-1, 0)
	case ActionRiskFirst:
		p.cursor = 0
	case ActionRiskLast:
		p.cursor = len(p.items) - 1
	default:
		return nil
	}
	return core.StatusCmd(fmt.Sprintf("Risk factor %d of %d", p.cursor+1, len(p.items)))
}

func (p *RiskFactorsPane) OnFocus() tea.Cmd {
	p.focused = true
	return nil
}

func (p *RiskFactorsPane) OnBlur() tea.Cmd {
	p.focused = false
	return nil
}

func (p *RiskFactorsPane) View(width, height int, selected, focused bool) string {
	visible := max(1, height-2)
	offset := 0
	if p.cursor >= visible {
		offset = p.cursor - visible + 1
	}
	content := widgets.List{
		Items:  p.items,
		Bullet: lipgloss.NewStyle().Foreground(widgets.ColorRed).Render("⚠"),
		Cursor: p.cursor,
		Offset: offset,
		Active: focused,
	}.Render(max(1, width-4), visible)
	if len(p.items) == 0 {
		content = "No risk factors reported"
	}
	return p.Frame(content, width, height, selected, focused)
}
