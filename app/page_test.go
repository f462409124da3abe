package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/glacionet/internal/glacier"
)

func TestParsePage(t *testing.T) {
	p, err := ParsePage(" Predictions ")
	require.NoError(t, err)
	require.Equal(t, PagePredictions, p)

	_, err = ParsePage("settings")
	require.ErrorIs(t, err, ErrUnknownPage)
}

func TestDerivedLabels(t *testing.T) {
	p := glacier.Default().Predictions
	trend, sub := areaTrend(p)
	require.NotNil(t, trend)
	assert.InDelta(t, -6, *trend, 1e-9)
	assert.Equal(t, "Down 6% from last year", sub)
	assert.Equal(t, "↓ 6% annual loss", annualLoss(p))
	assert.Equal(t, "Peak meltwater flow expected around day 20", peakCaption(p))
	assert.Equal(t, "Consistent area loss observed since May", lossCaption(p))

	growing := glacier.Predictions{GlacierAreaHistory: []glacier.AreaPoint{{Month: "Jan", Area: 10}, {Month: "Feb", Area: 11}}}
	trend, sub = areaTrend(growing)
	require.NotNil(t, trend)
	assert.Equal(t, "Up 10% from last year", sub)
	assert.Equal(t, "No area loss observed", lossCaption(growing))
	assert.Equal(t, "No forecast available", peakCaption(growing))

	trend, sub = areaTrend(glacier.Predictions{})
	assert.Nil(t, trend)
	assert.Empty(t, sub)

	assert.Equal(t, "Below baseline", baselineLabel(-0.5))
	assert.Equal(t, "Moderate risk level", riskLevel(0.5))
	assert.Equal(t, "Low concern", securityConcern(0.9))
	assert.Equal(t, "Low risk - routine monitoring", glofAdvice(0.1))
	assert.Equal(t, "Serious concern - water supply planning required", waterAdvice(0.2))
}

func TestCardGridColumns(t *testing.T) {
	g := cardGrid{cards: statusCards(glacier.Default())}
	assert.Equal(t, 4, g.columns(134))
	assert.Equal(t, 2, g.columns(94))
	assert.Equal(t, 1, g.columns(40))
	assert.Equal(t, 2*cardHeight, g.Height(94))
}
