package repository

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/darkskyoregon/sqm-backend-go/internal/colormap"
	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

// csvColumns maps raw CSV header names (lowercased) to metric columns.
var csvColumns = map[string]models.Column{
	"median_brightness_mag_arcsec2":                     models.ColMedianBrightness,
	"x_brighter_than_darkest_night_sky":                 models.ColXBrighter,
	"median_linear_scale_flux_ratio":                    models.ColFluxRatio,
	"bortle_sky_level":                                  models.ColBortleLevel,
	"rate_of_change_vs_prineville_reservoir_state_park": models.ColTrendRate,
	"regression_line_slope_x_10000":                     models.ColRegressionSlope,
	"percent_change_per_year":                           models.ColPercentChangePerYear,
	"number_of_years_of_data":                           models.ColYearsOfData,
	"ratio_index":                                       models.ColRatioIndex,
	"difference_index_mag_arcsec2":                      models.ColDifferenceIndex,
	"percent_clear_night_samples_all_months":            models.ColPercentClearNights,
}

// readMeasurementCSV loads one measurement dataset. Unknown columns are
// ignored; unparsable or empty cells leave the metric unset rather than
// failing the whole file.
func readMeasurementCSV(path string) ([]models.MeasurementRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	siteIdx := -1
	metricIdx := make(map[int]models.Column)
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "site_name" {
			siteIdx = i
			continue
		}
		if col, ok := csvColumns[name]; ok {
			metricIdx[i] = col
		}
	}
	if siteIdx == -1 {
		return nil, fmt.Errorf("dataset %s has no site_name column", path)
	}

	rows := make([]models.MeasurementRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if siteIdx >= len(record) {
			continue
		}
		row := models.MeasurementRow{SiteName: strings.TrimSpace(record[siteIdx])}
		for i, col := range metricIdx {
			if i >= len(record) {
				continue
			}
			if v, ok := parseFloat(record[i]); ok {
				row.SetMetric(col, v)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadSitesCSV loads the site coordinates dataset.
func ReadSitesCSV(path string) ([]models.Site, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	idx := headerIndex(records[0])
	nameIdx, okName := idx["site_name"]
	latIdx, okLat := idx["latitude"]
	lonIdx, okLon := idx["longitude"]
	if !okName || !okLat || !okLon {
		return nil, fmt.Errorf("coordinates dataset %s missing site_name/latitude/longitude columns", path)
	}
	elevIdx, hasElev := idx["elevation_m"]

	sites := make([]models.Site, 0, len(records)-1)
	for _, record := range records[1:] {
		if nameIdx >= len(record) || latIdx >= len(record) || lonIdx >= len(record) {
			continue
		}
		lat, okA := parseFloat(record[latIdx])
		lon, okB := parseFloat(record[lonIdx])
		name := strings.TrimSpace(record[nameIdx])
		if name == "" || !okA || !okB {
			continue
		}
		site := models.Site{Name: name, Latitude: lat, Longitude: lon}
		if hasElev && elevIdx < len(record) {
			if elev, ok := parseFloat(record[elevIdx]); ok {
				site.Elevation = elev
			}
		}
		sites = append(sites, site)
	}
	return sites, nil
}

// readColorMapCSV loads the SQM reading bin table. Each record carries a
// brightness threshold and an RGB triple.
func readColorMapCSV(path string) (colormap.Table, error) {
	records, err := readCSV(path)
	if err != nil {
		return colormap.Table{}, err
	}
	if len(records) < 2 {
		return colormap.Table{}, fmt.Errorf("color map %s is empty", path)
	}

	idx := headerIndex(records[0])
	thIdx, okT := idx["brightness_mag_arcsec2"]
	rIdx, okR := idx["red"]
	gIdx, okG := idx["green"]
	bIdx, okB := idx["blue"]
	if !okT || !okR || !okG || !okB {
		return colormap.Table{}, fmt.Errorf("color map %s missing brightness/red/green/blue columns", path)
	}

	bins := make([]colormap.Bin, 0, len(records)-1)
	for _, record := range records[1:] {
		th, ok := parseFloat(record[thIdx])
		if !ok {
			continue
		}
		r, okR := parseFloat(record[rIdx])
		g, okG := parseFloat(record[gIdx])
		b, okB := parseFloat(record[bIdx])
		if !okR || !okG || !okB {
			continue
		}
		bins = append(bins, colormap.Bin{
			Threshold: th,
			Color:     fmt.Sprintf("rgba(%d, %d, %d, 1)", int(r), int(g), int(b)),
		})
	}
	// the file carries no ordering guarantee
	sort.Slice(bins, func(i, j int) bool { return bins[i].Threshold < bins[j].Threshold })
	return colormap.NewTable(bins)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
