package viz

import (
	"sort"
	"strings"

	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

const (
	markerSizeBase      = 15.0
	markerSizeHighlight = 20.0
)

// BuildMap collapses sites sharing an exact coordinate into one marker.
// The marker takes its color from the member with the maximum value of
// colorMetric — the brightest (worst) representative, deliberately not an
// average. A marker is highlighted when any member site is selected, which
// overrides color and size. Rows without coordinates never reach the map.
//
// Output order is by coordinate, so permuting the input leaves the marker
// sequence unchanged.
func BuildMap(rows []models.MeasurementRow, colorMetric models.Column, highlighted map[string]bool) []models.MapMarker {
	type location struct {
		lat, lon float64
	}
	groups := make(map[location][]models.MeasurementRow)
	for _, r := range rows {
		if r.SiteName == "" || r.Latitude == nil || r.Longitude == nil {
			continue
		}
		key := location{lat: *r.Latitude, lon: *r.Longitude}
		groups[key] = append(groups[key], r)
	}

	keys := make([]location, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].lat != keys[j].lat {
			return keys[i].lat < keys[j].lat
		}
		return keys[i].lon < keys[j].lon
	})

	markers := make([]models.MapMarker, 0, len(keys))
	for _, key := range keys {
		group := groups[key]

		names := make([]string, 0, len(group))
		for _, r := range group {
			names = append(names, r.SiteName)
		}
		sort.Strings(names)

		marker := models.MapMarker{
			Latitude:  key.lat,
			Longitude: key.lon,
			SiteNames: names,
			Label:     strings.Join(names, ", "),
			Color:     representativeColor(group, colorMetric),
			Size:      markerSizeBase,
		}
		for _, name := range names {
			if highlighted[name] {
				marker.Color = HighlightColor
				marker.Size = markerSizeHighlight
				marker.Highlighted = true
				break
			}
		}
		markers = append(markers, marker)
	}

	return markers
}

// representativeColor picks the color of the member row with the maximum
// value of the metric. Members missing the metric are skipped; if none has
// it, the first member's color is used so the marker still renders.
func representativeColor(group []models.MeasurementRow, metric models.Column) string {
	color := group[0].Color
	best := 0.0
	found := false
	for _, r := range group {
		v, ok := r.Metric(metric)
		if !ok {
			continue
		}
		if !found || v > best {
			best = v
			color = r.Color
			found = true
		}
	}
	return color
}
