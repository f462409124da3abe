// Package glacier holds the sample dataset rendered by the dashboard.
//
// The values are constant for the lifetime of the program: they are decoded
// once at startup, validated, and never mutated afterwards.
package glacier

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultTOML string

// ErrInvalidDataset is returned when a dataset fails validation.
var ErrInvalidDataset = errors.New("invalid dataset")

// Glacier describes the monitored glacier.
type Glacier struct {
	Name        string    `toml:"name"`
	Region      string    `toml:"region"`
	Elevation   int       `toml:"elevation"`
	AreaKm2     float64   `toml:"area_km2"`
	TempAnomaly float64   `toml:"temp_anomaly"`
	MeltRate    float64   `toml:"melt_rate"`
	Coordinates []float64 `toml:"coordinates"`
}

// Lat returns the latitude, or zero when coordinates are missing.
func (g Glacier) Lat() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

// Lon returns the longitude, or zero when coordinates are missing.
func (g Glacier) Lon() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

// FlowPoint is one day of the meltwater forecast, in m³/s.
type FlowPoint struct {
	Day  int     `toml:"day"`
	Flow float64 `toml:"flow"`
}

// AreaPoint is one month of glacier area history, in km².
type AreaPoint struct {
	Month string  `toml:"month"`
	Area  float64 `toml:"area"`
}

// Predictions holds the model outputs shown on the predictions view.
type Predictions struct {
	GLOFRisk           float64     `toml:"glof_risk"`
	WaterSecurityIndex float64     `toml:"water_security_index"`
	TempAnomaly        float64     `toml:"temp_anomaly"`
	GlacierAreaCurrent float64     `toml:"glacier_area_current"`
	MeltwaterForecast  []FlowPoint `toml:"meltwater_forecast"`
	GlacierAreaHistory []AreaPoint `toml:"glacier_area_history"`
	AISummary          string      `toml:"ai_summary"`
	RiskFactors        []string    `toml:"risk_factors"`
}

// Dataset is everything the dashboard displays.
type Dataset struct {
	Glacier     Glacier     `toml:"glacier"`
	Predictions Predictions `toml:"predictions"`
}

// Default returns the built-in sample dataset.
func Default() Dataset {
	ds, err := Parse(defaultTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded dataset: %v", err))
	}
	return ds
}

// Parse decodes and validates a TOML dataset document.
func Parse(doc string) (Dataset, error) {
	var ds Dataset
	if _, err := toml.Decode(doc, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Load reads a dataset file. An empty path yields the built-in dataset.
func Load(path string) (Dataset, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	var ds Dataset
	if _, err := toml.DecodeFile(path, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Validate checks the invariants the views rely on.
func (ds Dataset) Validate() error {
	g, p := ds.Glacier, ds.Predictions
	switch {
	case strings.TrimSpace(g.Name) == "":
		return fmt.Errorf("%w: glacier name is empty", ErrInvalidDataset)
	case g.Elevation <= 0:
		return fmt.Errorf("%w: elevation must be positive, got %d", ErrInvalidDataset, g.Elevation)
	case g.AreaKm2 <= 0:
		return fmt.Errorf("%w: area must be positive, got %v", ErrInvalidDataset, g.AreaKm2)
	case len(g.Coordinates) != 0 && len(g.Coordinates) != 2:
		return fmt.Errorf("%w: coordinates need lat and lon, got %d values", ErrInvalidDataset, len(g.Coordinates))
	}
	if err := checkFinite(ds); err != nil {
		return err
	}
	if err := checkScore("glof_risk", p.GLOFRisk); err != nil {
		return err
	}
	if err := checkScore("water_security_index", p.WaterSecurityIndex); err != nil {
		return err
	}
	for i := 1; i < len(p.MeltwaterForecast); i++ {
		if p.MeltwaterForecast[i].Day <= p.MeltwaterForecast[i-1].Day {
			return fmt.Errorf("%w: forecast days must increase (day %d after day %d)",
				ErrInvalidDataset, p.MeltwaterForecast[i].Day, p.MeltwaterForecast[i-1].Day)
		}
	}
	return nil
}

func checkScore(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s must be within [0,1], got %v", ErrInvalidDataset, name, v)
	}
	return nil
}

// checkFinite rejects NaN and infinite measurements; TOML accepts both.
func checkFinite(ds Dataset) error {
	g, p := ds.Glacier, ds.Predictions
	type value struct {
		name string
		v    float64
	}
	values := []value{{"area_km2", g.AreaKm2}, {"temp_anomaly", g.TempAnomaly}, {"melt_rate", g.MeltRate}}
	for i, c := range g.Coordinates {
		values = append(values, value{fmt.Sprintf("coordinates[%d]", i), c})
	}
	for _, fp := range p.MeltwaterForecast {
		values = append(values, value{fmt.Sprintf("flow on day %d", fp.Day), fp.Flow})
	}
	for _, ap := range p.GlacierAreaHistory {
		values = append(values, value{"area in " + ap.Month, ap.Area})
	}
	for _, v := range values {
		if math.IsNaN(v.v) || math.IsInf(v.v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidDataset, v.name)
		}
	}
	return nil
}

// PeakFlow returns the forecast day with the highest flow. The first day wins ties.
func (p Predictions) PeakFlow() (FlowPoint, bool) {
	if len(p.MeltwaterForecast) == 0 {
		return FlowPoint{}, false
	}
	peak := p.MeltwaterForecast[0]
	for _, fp := range p.MeltwaterForecast[1:] {
		if fp.Flow > peak.Flow {
			peak = fp
		}
	}
	return peak, true
}

// AreaChangePercent is the relative change between the first and last
// month of the area history. A shrinking glacier yields a negative value.
func (p Predictions) AreaChangePercent() (float64, bool) {
	h := p.GlacierAreaHistory
	if len(h) < 2 || h[0].Area == 0 {
		return 0, false
	}
	return (h[len(h)-1].Area - h[0].Area) / h[0].Area * 100, true
}

// SteepestDrop returns the month that lost the most area relative to the
// month before it. It reports false when the history never shrinks.
func (p Predictions) SteepestDrop() (AreaPoint, bool) {
	h := p.GlacierAreaHistory
	best, drop := -1, 0.0
	for i := 1; i < len(h); i++ {
		if d := h[i-1].Area - h[i].Area; d > drop {
			best, drop = i, d
		}
	}
	if best < 0 {
		return AreaPoint{}, false
	}
	return h[best], true
}
