package app

import (
	"github.com/jonboulle/clockwork"

	"github.com/jask/glacionet/core"
	"github.com/jask/glacionet/internal/glacier"
)

// Tabs builds the dashboard pages in navigation order. The clock anchors the
// forecast's first day.
func Tabs(ds glacier.Dataset, clock clockwork.Clock) []core.Tab {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return []core.Tab{
		NewOverviewTab(ds),
		NewMapTab(ds),
		NewPredictionsTab(ds, clock),
	}
}

// PageTitles are the navigation labels, in the order Tabs returns them.
func PageTitles() []string {
	pages := Pages()
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, p.Title())
	}
	return out
}
