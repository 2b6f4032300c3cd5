package viz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkskyoregon/sqm-backend-go/internal/category"
	"github.com/darkskyoregon/sqm-backend-go/internal/models"
	"github.com/darkskyoregon/sqm-backend-go/internal/viz"
)

func row(site string, col models.Column, v float64, color string) models.MeasurementRow {
	r := models.MeasurementRow{SiteName: site, Color: color}
	r.SetMetric(col, v)
	return r
}

var barCfg = category.BarConfig{
	Title:     "test ranking",
	Metric:    models.ColXBrighter,
	AxisLabel: "darker to brighter",
	TickMode:  "log",
	TickVals:  []float64{1, 10},
	TickText:  []string{"1", "10"},
}

func TestBuildRanking_SortsAscending(t *testing.T) {
	rows := []models.MeasurementRow{
		row("Bend", models.ColXBrighter, 5.0, "rgba(1, 1, 1, 1)"),
		row("Hart Mountain", models.ColXBrighter, 1.0, "rgba(2, 2, 2, 1)"),
		row("Portland", models.ColXBrighter, 20.0, "rgba(3, 3, 3, 1)"),
	}

	chart := viz.BuildRanking(rows, barCfg, nil)

	require.Len(t, chart.Bars, 3)
	assert.Equal(t, "Hart Mountain", chart.Bars[0].SiteName)
	assert.Equal(t, "Bend", chart.Bars[1].SiteName)
	assert.Equal(t, "Portland", chart.Bars[2].SiteName)
}

func TestBuildRanking_DropsRowsMissingMetricOrSite(t *testing.T) {
	withFlux := row("Sisters East", models.ColFluxRatio, 2.0, "")
	rows := []models.MeasurementRow{
		row("Bend", models.ColXBrighter, 5.0, ""),
		withFlux, // has a different metric but not the ranking one
		row("", models.ColXBrighter, 3.0, ""),
	}

	chart := viz.BuildRanking(rows, barCfg, nil)

	require.Len(t, chart.Bars, 1)
	assert.Equal(t, "Bend", chart.Bars[0].SiteName)
}

func TestBuildRanking_StableTieBreak(t *testing.T) {
	rows := []models.MeasurementRow{
		row("First", models.ColXBrighter, 2.0, ""),
		row("Second", models.ColXBrighter, 2.0, ""),
		row("Third", models.ColXBrighter, 1.0, ""),
	}

	chart := viz.BuildRanking(rows, barCfg, nil)

	require.Len(t, chart.Bars, 3)
	// equal values keep load order
	assert.Equal(t, "Third", chart.Bars[0].SiteName)
	assert.Equal(t, "First", chart.Bars[1].SiteName)
	assert.Equal(t, "Second", chart.Bars[2].SiteName)
}

func TestBuildRanking_Idempotent(t *testing.T) {
	rows := []models.MeasurementRow{
		row("Bend", models.ColXBrighter, 5.0, "rgba(1, 1, 1, 1)"),
		row("Hart Mountain", models.ColXBrighter, 1.0, "rgba(2, 2, 2, 1)"),
	}

	first := viz.BuildRanking(rows, barCfg, nil)
	second := viz.BuildRanking(rows, barCfg, nil)

	assert.Equal(t, first, second)
}

func TestBuildRanking_HighlightDecoratesWithoutReordering(t *testing.T) {
	rows := []models.MeasurementRow{
		row("Bend", models.ColXBrighter, 5.0, "rgba(1, 1, 1, 1)"),
		row("Hart Mountain", models.ColXBrighter, 1.0, "rgba(2, 2, 2, 1)"),
		row("Portland", models.ColXBrighter, 20.0, "rgba(3, 3, 3, 1)"),
	}

	plain := viz.BuildRanking(rows, barCfg, nil)
	marked := viz.BuildRanking(rows, barCfg, map[string]bool{"Bend": true})

	for i := range plain.Bars {
		assert.Equal(t, plain.Bars[i].SiteName, marked.Bars[i].SiteName)
	}

	bend := marked.Bars[1]
	require.True(t, bend.Highlighted)
	assert.Equal(t, viz.HighlightColor, bend.LineColor)
	assert.Equal(t, 8.0, bend.LineWidth)
	// fill color is untouched, only the border changes
	assert.Equal(t, "rgba(1, 1, 1, 1)", bend.FillColor)

	other := marked.Bars[0]
	assert.False(t, other.Highlighted)
	assert.Equal(t, other.FillColor, other.LineColor)
	assert.Equal(t, 1.0, other.LineWidth)
}

func TestBuildRanking_PassesThroughAxisConfig(t *testing.T) {
	chart := viz.BuildRanking(nil, barCfg, nil)

	assert.Equal(t, "log", chart.TickMode)
	assert.Equal(t, []float64{1, 10}, chart.TickVals)
	assert.Equal(t, []string{"1", "10"}, chart.TickText)
	assert.Equal(t, "Note: the x-axis is shown in log scale", chart.AxisNote)
	assert.Empty(t, chart.Bars)
}
