// Package viz turns colored measurement rows into chart-ready payloads for
// the three dashboard views. All builders are pure: they never mutate their
// input and the same input always produces the same output.
package viz

import (
	"sort"

	"github.com/darkskyoregon/sqm-backend-go/internal/category"
	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

// Highlight styling shared by the three views.
const (
	HighlightColor = "cyan"

	barLineWidthDefault   = 1.0
	barLineWidthHighlight = 8.0
)

// BuildRanking sorts sites ascending by the category's ranking metric and
// decorates each bar. Rows missing the metric or the site name are dropped;
// ties keep repository load order (stable sort). Highlighting only changes
// border styling, never the order.
func BuildRanking(rows []models.MeasurementRow, cfg category.BarConfig, highlighted map[string]bool) models.RankingChart {
	type ranked struct {
		row   models.MeasurementRow
		value float64
	}

	kept := make([]ranked, 0, len(rows))
	for _, r := range rows {
		if r.SiteName == "" {
			continue
		}
		v, ok := r.Metric(cfg.Metric)
		if !ok {
			continue
		}
		kept = append(kept, ranked{row: r, value: v})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].value < kept[j].value
	})

	bars := make([]models.BarRow, 0, len(kept))
	for _, k := range kept {
		bar := models.BarRow{
			SiteName:  k.row.SiteName,
			Value:     k.value,
			FillColor: k.row.Color,
			LineColor: k.row.Color,
			LineWidth: barLineWidthDefault,
		}
		if highlighted[k.row.SiteName] {
			bar.LineColor = HighlightColor
			bar.LineWidth = barLineWidthHighlight
			bar.Highlighted = true
		}
		bars = append(bars, bar)
	}

	return models.RankingChart{
		Title:     cfg.Title,
		AxisLabel: cfg.AxisLabel,
		TickMode:  cfg.TickMode,
		TickVals:  cfg.TickVals,
		TickText:  cfg.TickText,
		AxisNote:  "Note: the x-axis is shown in " + cfg.TickMode + " scale",
		Bars:      bars,
	}
}
