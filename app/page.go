package app

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPage is returned by ParsePage for names outside Pages.
var ErrUnknownPage = errors.New("unknown page")

// Page identifies one of the dashboard views. Its string form is the tab id.
type Page string

const (
	PageHome        Page = "home"
	PageMap         Page = "map"
	PagePredictions Page = "predictions"
)

// Pages lists every view in navigation order.
func Pages() []Page {
	return []Page{PageHome, PageMap, PagePredictions}
}

// Title is the navigation label.
func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Overview"
	case PageMap:
		return "Map"
	case PagePredictions:
		return "AI Predictions"
	}
	return string(p)
}

func (p Page) String() string { return string(p) }

// ParsePage accepts a page id in any case, with surrounding space ignored.
func ParsePage(s string) (Page, error) {
	want := Page(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range Pages() {
		if p == want {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPage, s)
}
