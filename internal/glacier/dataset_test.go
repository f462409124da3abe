package glacier

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesSampleData(t *testing.T) {
	ds := Default()

	g := ds.Glacier
	require.Equal(t, "Kolahoi Glacier", g.Name)
	require.Equal(t, "Himalayas", g.Region)
	require.Equal(t, 4700, g.Elevation)
	require.InDelta(t, 12.4, g.AreaKm2, 1e-9)
	require.InDelta(t, 2.3, g.TempAnomaly, 1e-9)
	require.InDelta(t, 0.45, g.MeltRate, 1e-9)
	require.InDelta(t, 34.0250, g.Lat(), 1e-9)
	require.InDelta(t, 75.3275, g.Lon(), 1e-9)

	p := ds.Predictions
	require.InDelta(t, 0.78, p.GLOFRisk, 1e-9)
	require.InDelta(t, 0.62, p.WaterSecurityIndex, 1e-9)
	require.Len(t, p.MeltwaterForecast, 30)
	require.Len(t, p.GlacierAreaHistory, 12)
	require.Len(t, p.RiskFactors, 3)
	assert.Equal(t, FlowPoint{Day: 1, Flow: 45.2}, p.MeltwaterForecast[0])
	assert.Equal(t, FlowPoint{Day: 30, Flow: 73.8}, p.MeltwaterForecast[29])
	assert.Equal(t, AreaPoint{Month: "Jan", Area: 13.2}, p.GlacierAreaHistory[0])
	assert.Equal(t, AreaPoint{Month: "Dec", Area: 12.4}, p.GlacierAreaHistory[11])
	assert.Contains(t, p.AISummary, "14% increase in meltwater flow")
	assert.Equal(t, "Downstream population: ~45,000 people at risk", p.RiskFactors[2])
}

func TestPeakFlow(t *testing.T) {
	peak, ok := Default().Predictions.PeakFlow()
	require.True(t, ok)
	require.Equal(t, 20, peak.Day)
	require.InDelta(t, 92.4, peak.Flow, 1e-9)

	_, ok = Predictions{}.PeakFlow()
	require.False(t, ok)
}

func TestAreaChangePercent(t *testing.T) {
	change, ok := Default().Predictions.AreaChangePercent()
	require.True(t, ok)
	require.InDelta(t, -6.06, change, 0.01)

	_, ok = Predictions{GlacierAreaHistory: []AreaPoint{{Month: "Jan", Area: 1}}}.AreaChangePercent()
	require.False(t, ok)
}

func TestValidateRejectsBadData(t *testing.T) {
	base := Default()
	cases := []struct {
		name   string
		mutate func(ds *Dataset)
	}{
		{"empty name", func(ds *Dataset) { ds.Glacier.Name = "  " }},
		{"zero elevation", func(ds *Dataset) { ds.Glacier.Elevation = 0 }},
		{"negative area", func(ds *Dataset) { ds.Glacier.AreaKm2 = -1 }},
		{"one coordinate", func(ds *Dataset) { ds.Glacier.Coordinates = []float64{1} }},
		{"risk above one", func(ds *Dataset) { ds.Predictions.GLOFRisk = 1.2 }},
		{"negative security", func(ds *Dataset) { ds.Predictions.WaterSecurityIndex = -0.1 }},
		{"nan risk", func(ds *Dataset) { ds.Predictions.GLOFRisk = math.NaN() }},
		{"nan security", func(ds *Dataset) { ds.Predictions.WaterSecurityIndex = math.NaN() }},
		{"infinite area", func(ds *Dataset) { ds.Glacier.AreaKm2 = math.Inf(1) }},
		{"nan melt rate", func(ds *Dataset) { ds.Glacier.MeltRate = math.NaN() }},
		{"nan coordinate", func(ds *Dataset) { ds.Glacier.Coordinates = []float64{math.NaN(), 79} }},
		{"nan flow", func(ds *Dataset) {
			ds.Predictions.MeltwaterForecast = []FlowPoint{{Day: 1, Flow: math.NaN()}}
		}},
		{"infinite history area", func(ds *Dataset) {
			ds.Predictions.GlacierAreaHistory = []AreaPoint{{Month: "Jan", Area: math.Inf(-1)}}
		}},
		{"days out of order", func(ds *Dataset) {
			ds.Predictions.MeltwaterForecast = []FlowPoint{{Day: 2, Flow: 1}, {Day: 1, Flow: 2}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := base
			ds.Glacier.Coordinates = append([]float64(nil), base.Glacier.Coordinates...)
			tc.mutate(&ds)
			require.ErrorIs(t, ds.Validate(), ErrInvalidDataset)
		})
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default().Glacier.Name, ds.Glacier.Name)
}

func TestLoadFile(t *testing.T) {
	doc := `
[glacier]
name = "Gangotri Glacier"
region = "Garhwal Himalaya"
elevation = 4000
area_km2 = 143.0

[predictions]
glof_risk = 0.41
water_security_index = 0.7
meltwater_forecast = [{ day = 1, flow = 10.0 }, { day = 2, flow = 12.5 }]
`
	path := filepath.Join(t.TempDir(), "gangotri.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Gangotri Glacier", ds.Glacier.Name)
	require.Equal(t, 4000, ds.Glacier.Elevation)
	require.Len(t, ds.Predictions.MeltwaterForecast, 2)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[glacier]\nname = \"x\"\nelevation = 1\narea_km2 = 1.0\n[predictions]\nglof_risk = 3.0\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidDataset)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestParseRejectsNaNRisk(t *testing.T) {
	doc := strings.Replace(defaultTOML, "glof_risk = 0.78", "glof_risk = nan", 1)
	require.NotEqual(t, defaultTOML, doc)
	_, err := Parse(doc)
	require.ErrorIs(t, err, ErrInvalidDataset)
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse("[glacier\nname=")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidDataset)
}

func TestSteepestDrop(t *testing.T) {
	month, ok := Default().Predictions.SteepestDrop()
	require.True(t, ok)
	require.Equal(t, "May", month.Month)

	flat := Predictions{GlacierAreaHistory: []AreaPoint{{"Jan", 2}, {"Feb", 2}, {"Mar", 2.5}}}
	_, ok = flat.SteepestDrop()
	require.False(t, ok)
}
