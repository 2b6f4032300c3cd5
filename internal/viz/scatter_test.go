package viz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkskyoregon/sqm-backend-go/internal/category"
	"github.com/darkskyoregon/sqm-backend-go/internal/models"
	"github.com/darkskyoregon/sqm-backend-go/internal/viz"
)

func scatterRow(site string, x, y float64, color string) models.MeasurementRow {
	r := models.MeasurementRow{SiteName: site, Color: color}
	r.SetMetric(models.ColMedianBrightness, x)
	r.SetMetric(models.ColXBrighter, y)
	return r
}

func scatterCfg(threshold *float64) category.ScatterConfig {
	return category.ScatterConfig{
		Title:      "test scatter",
		XCol:       models.ColMedianBrightness,
		YCol:       models.ColXBrighter,
		XLabel:     "brightness",
		YLabel:     "x-times brighter",
		ThresholdX: threshold,
	}
}

func TestBuildScatter_ExcludesRowsMissingEitherAxis(t *testing.T) {
	onlyX := models.MeasurementRow{SiteName: "OnlyX"}
	onlyX.SetMetric(models.ColMedianBrightness, 21.0)
	onlyY := models.MeasurementRow{SiteName: "OnlyY"}
	onlyY.SetMetric(models.ColXBrighter, 2.0)

	rows := []models.MeasurementRow{
		scatterRow("Both", 21.5, 1.2, "rgba(0, 0, 0, 1)"),
		onlyX,
		onlyY,
	}

	chart := viz.BuildScatter(rows, scatterCfg(nil), nil)

	require.Len(t, chart.Points, 1)
	assert.Equal(t, "Both", chart.Points[0].SiteName)
	assert.Empty(t, chart.Emphasis)
}

func TestBuildScatter_HighlightedPointsDrawnTwice(t *testing.T) {
	rows := []models.MeasurementRow{
		scatterRow("Bend", 19.5, 8.0, "rgba(1, 1, 1, 1)"),
		scatterRow("Hart Mountain", 21.8, 1.0, "rgba(2, 2, 2, 1)"),
	}

	chart := viz.BuildScatter(rows, scatterCfg(nil), map[string]bool{"Bend": true})

	// the base layer keeps every point in its normal color
	require.Len(t, chart.Points, 2)
	assert.Equal(t, "rgba(1, 1, 1, 1)", chart.Points[0].Color)

	// the highlighted subset is re-emitted on top
	require.Len(t, chart.Emphasis, 1)
	emphasis := chart.Emphasis[0]
	assert.Equal(t, "Bend", emphasis.SiteName)
	assert.Equal(t, viz.HighlightColor, emphasis.Color)
	assert.Equal(t, 19.5, emphasis.X)
	assert.Equal(t, 8.0, emphasis.Y)
	assert.Greater(t, emphasis.Size, chart.Points[0].Size)
}

func TestBuildScatter_ThresholdLine(t *testing.T) {
	threshold := 21.2
	rows := []models.MeasurementRow{
		scatterRow("Dark", 21.8, 1.0, ""),
		scatterRow("Bright", 18.0, 30.0, ""),
	}

	chart := viz.BuildScatter(rows, scatterCfg(&threshold), nil)

	require.NotNil(t, chart.Threshold)
	assert.Equal(t, 21.2, chart.Threshold.X)
	assert.Equal(t, "Dark-Sky Qualified if >= 21.2 mag/arcsec²", chart.Threshold.Label)
	// the line is a reference only; no point is filtered by it
	assert.Len(t, chart.Points, 2)
}

func TestBuildScatter_NoThresholdWhenUnset(t *testing.T) {
	chart := viz.BuildScatter(nil, scatterCfg(nil), nil)
	assert.Nil(t, chart.Threshold)
	assert.Empty(t, chart.Points)
}
