package app

import (
	"fmt"
	"math"

	"github.com/jask/glacionet/core"
	"github.com/jask/glacionet/core/widgets"
	"github.com/jask/glacionet/internal/glacier"
)

const (
	mapTitle    = "Glacier Monitor"
	mapSubtitle = "Real-time satellite imagery and risk zones"
)

// mapLegend is the key of the placeholder map.
var mapLegend = widgets.Legend{Items: []widgets.LegendItem{
	{Label: "Glacier Boundary", Color: widgets.ColorBlue},
	{Label: "Glacial Lake", Color: widgets.ColorSky},
	{Label: "High Risk Zone", Color: widgets.ColorRed},
}}

// NewMapTab builds the map page: the placeholder map and the glacier info cards.
func NewMapTab(ds glacier.Dataset) core.Tab {
	header := widgets.Text{Body: mapSubtitle, Color: widgets.ColorSubtext0}
	info := cardGrid{cards: infoCards(ds)}
	block := mapBlock(ds.Glacier)

	specs := []core.PaneSpec{
		{ID: "monitor", Title: mapTitle, Scope: "pane:map:monitor", JumpKey: 'g', Focusable: false, Content: header},
		{ID: "view", Title: "Interactive Map View", Scope: "pane:map:view", JumpKey: 'm', Focusable: true, Content: centered{inner: block}},
		{ID: "info", Title: "Glacier Info", Scope: "pane:map:info", JumpKey: 'i', Focusable: true, Content: info},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.VStack{
			Widgets: []widgets.Widget{
				host.BuildPane("monitor"),
				host.BuildPane("view"),
				host.BuildPane("info"),
			},
			Fixed: []int{
				paneHeight(header, m.Width()),
				0,
				info.Height(m.Width()-contentInset) + 2,
			},
			Min: []int{0, paneHeight(block, m.Width()) + 2, 0},
		}
	}
	return core.NewGeneratedTab(PageMap.String(), PageMap.Title(), specs, layout)
}

// mapBlock is the placeholder text drawn in the middle of the map pane.
func mapBlock(g glacier.Glacier) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		inner := min(width, 44)
		return widgets.Lines{
			widgets.Text{Body: "Interactive Map View", Color: widgets.ColorText, Bold: true},
			widgets.Text{Body: fmt.Sprintf("%s, %s", g.Name, g.Region), Color: widgets.ColorSubtext0},
			widgets.Text{Body: glacier.FormatCoordinates(g.Lat(), g.Lon()), Color: widgets.ColorOverlay1},
			widgets.Blank,
			mapLegend,
		}.Render(inner, height)
	})
}

// infoCards are the location, elevation and area panels under the map.
func infoCards(ds glacier.Dataset) []widgets.Widget {
	g := ds.Glacier
	return []widgets.Widget{
		widgets.MetricCard{Title: "Location", Value: g.Name, Subtitle: g.Region, Icon: "◎", Color: widgets.AccentBlue},
		widgets.MetricCard{Title: "Elevation", Value: glacier.FormatElevation(g.Elevation), Subtitle: "Above sea level", Icon: "▲", Color: widgets.AccentGreen},
		widgets.MetricCard{Title: "Current Area", Value: glacier.FormatArea(g.AreaKm2), Subtitle: annualLoss(ds.Predictions), Icon: "◇", Color: widgets.AccentRed},
	}
}

// annualLoss is the subtitle of the current area card, e.g. "↓ 6% annual loss".
func annualLoss(p glacier.Predictions) string {
	change, ok := p.AreaChangePercent()
	if !ok {
		return ""
	}
	pct := math.Round(change)
	switch {
	case pct < 0:
		return fmt.Sprintf("↓ %s%% annual loss", glacier.Number(-pct))
	case pct > 0:
		return fmt.Sprintf("↑ %s%% annual growth", glacier.Number(pct))
	}
	return "Stable over the year"
}
