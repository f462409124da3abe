package app

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/glacionet/core"
	"github.com/jask/glacionet/core/widgets"
	"github.com/jask/glacionet/internal/glacier"
)

const (
	heroTitle   = "AI-Powered Glacier Health Monitoring"
	heroTagline = "Real-time glacier meltwater tracking and GLOF risk assessment to protect communities and water security"

	challengeIntro   = "Glaciers worldwide are melting at unprecedented rates due to climate change. This poses two critical threats:"
	glofTitle        = "Glacial Lake Outburst Floods (GLOFs)"
	glofBody         = "Rapid glacier melt creates unstable lakes that can burst catastrophically, devastating downstream communities with little warning."
	waterTitle       = "Water Security Crisis"
	waterBody        = "Over 2 billion people depend on glacier meltwater. Accelerated melting disrupts seasonal water supply for agriculture, energy, and drinking water."
	challengeClosing = "GlacioNet uses AI and satellite data to predict meltwater patterns and GLOF risks, enabling early warnings and informed water management decisions."
)

// Keys of the overview calls to action.
const (
	ctaMapKey         = "m"
	ctaPredictionsKey = "p"
)

// NewOverviewTab builds the landing page: hero, status cards and the climate
// challenge.
func NewOverviewTab(ds glacier.Dataset) core.Tab {
	hero := heroWidget()
	cards := cardGrid{cards: statusCards(ds)}
	challenge := challengeWidget()

	specs := []core.PaneSpec{
		{ID: "hero", Title: "GlacioNet", Scope: "pane:home:hero", JumpKey: 'g', Focusable: false, Content: hero},
		{ID: "status", Title: "Current Status", Scope: "pane:home:status", JumpKey: 's', Focusable: true, Content: cards},
		{ID: "challenge", Title: "The Climate Challenge", Scope: "pane:home:challenge", JumpKey: 'c', Focusable: true, Content: challenge},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.VStack{
			Widgets: []widgets.Widget{
				host.BuildPane("hero"),
				host.BuildPane("status"),
				host.BuildPane("challenge"),
			},
			Fixed: []int{
				paneHeight(hero, m.Width()),
				cards.Height(m.Width()-contentInset) + 2,
				0,
			},
			Min: []int{0, 0, paneHeight(challenge, m.Width())},
		}
	}
	return core.NewGeneratedTab(PageHome.String(), PageHome.Title(), specs, layout)
}

func heroWidget() widgets.Widget {
	key := lipgloss.NewStyle().Foreground(widgets.ColorBase).Background(widgets.ColorBlue).Bold(true).Padding(0, 1)
	secondary := lipgloss.NewStyle().Foreground(widgets.ColorText).Background(widgets.ColorSurface0).Bold(true).Padding(0, 1)
	ctas := widgets.Func(func(width, height int) string {
		return key.Render(ctaMapKey+"  View Map →") + "  " + secondary.Render(ctaPredictionsKey+"  See Predictions")
	})
	return widgets.Lines{
		widgets.Text{Body: heroTitle, Color: widgets.ColorText, Bold: true},
		widgets.Text{Body: heroTagline, Color: widgets.ColorSubtext0},
		widgets.Blank,
		ctas,
	}
}

// statusCards are the four headline metrics of the overview.
func statusCards(ds glacier.Dataset) []widgets.Widget {
	p := ds.Predictions
	areaTrend, areaSub := areaTrend(p)
	return []widgets.Widget{
		widgets.MetricCard{
			Title:    "Glacier Area",
			Value:    glacier.FormatArea(ds.Glacier.AreaKm2),
			Subtitle: areaSub,
			Icon:     "▲",
			Trend:    areaTrend,
			Color:    widgets.AccentBlue,
		},
		widgets.MetricCard{
			Title:    "Temperature Anomaly",
			Value:    glacier.FormatAnomaly(p.TempAnomaly),
			Subtitle: baselineLabel(p.TempAnomaly),
			Icon:     "↗",
			Trend:    widgets.Trend(p.TempAnomaly),
			Color:    widgets.AccentOrange,
		},
		widgets.MetricCard{
			Title:    "GLOF Risk Score",
			Value:    glacier.Percent(p.GLOFRisk),
			Subtitle: riskLevel(p.GLOFRisk),
			Icon:     "!",
			Color:    widgets.AccentRed,
		},
		widgets.MetricCard{
			Title:    "Water Security",
			Value:    glacier.Percent(p.WaterSecurityIndex),
			Subtitle: securityConcern(p.WaterSecurityIndex),
			Icon:     "≈",
			Color:    widgets.AccentGreen,
		},
	}
}

// areaTrend is the yearly area change rounded to a whole percent, with the
// sentence the overview card shows under it.
func areaTrend(p glacier.Predictions) (*float64, string) {
	change, ok := p.AreaChangePercent()
	if !ok {
		return nil, ""
	}
	pct := math.Round(change)
	switch {
	case pct < 0:
		return widgets.Trend(pct), fmt.Sprintf("Down %s%% from last year", glacier.Number(-pct))
	case pct > 0:
		return widgets.Trend(pct), fmt.Sprintf("Up %s%% from last year", glacier.Number(pct))
	}
	return nil, "No change from last year"
}

func baselineLabel(anomaly float64) string {
	switch {
	case anomaly > 0:
		return "Above baseline"
	case anomaly < 0:
		return "Below baseline"
	}
	return "At baseline"
}

func riskLevel(risk float64) string {
	switch {
	case risk >= 0.7:
		return "High risk level"
	case risk >= 0.4:
		return "Moderate risk level"
	}
	return "Low risk level"
}

func securityConcern(index float64) string {
	switch {
	case index < 0.5:
		return "Serious concern"
	case index < 0.75:
		return "Moderate concern"
	}
	return "Low concern"
}

func challengeWidget() widgets.Widget {
	threat := func(title, body string, color lipgloss.Color) widgets.Widget {
		return widgets.Lines{
			widgets.Text{Body: "◆ " + title, Color: color, Bold: true},
			widgets.Text{Body: body, Color: widgets.ColorSubtext0},
		}
	}
	threats := widgets.Func(func(width, height int) string {
		glof := threat(glofTitle, glofBody, widgets.ColorRed)
		water := threat(waterTitle, waterBody, widgets.ColorBlue)
		if width < 2*minCardWide+2 {
			return widgets.Lines{glof, widgets.Blank, water}.Render(width, height)
		}
		return widgets.HStack{Widgets: []widgets.Widget{glof, water}, Gap: 3}.Render(width, height)
	})
	return widgets.Lines{
		widgets.Text{Body: challengeIntro, Color: widgets.ColorSubtext0},
		widgets.Blank,
		threats,
		widgets.Blank,
		widgets.Text{Body: challengeClosing, Color: widgets.ColorText, Bold: true},
	}
}
