package viz

import (
	"fmt"

	"github.com/darkskyoregon/sqm-backend-go/internal/category"
	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

const (
	scatterSizeBase     = 15.0
	scatterSizeEmphasis = 20.0

	scatterLineWidthDefault  = 1.0
	scatterLineWidthSelected = 5.0
)

// BuildScatter pairs the category's x/y columns per site. Rows missing
// either axis value are excluded. The highlighted subset is emitted twice:
// once in the base layer with its own color, and again in the emphasis
// layer drawn on top, so selected points are never occluded.
func BuildScatter(rows []models.MeasurementRow, cfg category.ScatterConfig, highlighted map[string]bool) models.ScatterChart {
	chart := models.ScatterChart{
		Title:  cfg.Title,
		XLabel: cfg.XLabel,
		YLabel: cfg.YLabel,
	}

	for _, r := range rows {
		x, okX := r.Metric(cfg.XCol)
		y, okY := r.Metric(cfg.YCol)
		if r.SiteName == "" || !okX || !okY {
			continue
		}

		point := models.ScatterPoint{
			SiteName:  r.SiteName,
			X:         x,
			Y:         y,
			Color:     r.Color,
			Size:      scatterSizeBase,
			LineColor: r.Color,
			LineWidth: scatterLineWidthDefault,
		}
		if highlighted[r.SiteName] {
			point.LineColor = "black"
			point.LineWidth = scatterLineWidthSelected
			chart.Emphasis = append(chart.Emphasis, models.ScatterPoint{
				SiteName: r.SiteName,
				X:        x,
				Y:        y,
				Color:    HighlightColor,
				Size:     scatterSizeEmphasis,
			})
		}
		chart.Points = append(chart.Points, point)
	}

	if cfg.ThresholdX != nil {
		chart.Threshold = &models.ThresholdLine{
			X:     *cfg.ThresholdX,
			Label: fmt.Sprintf("Dark-Sky Qualified if >= %.1f mag/arcsec²", *cfg.ThresholdX),
		}
	}

	return chart
}
