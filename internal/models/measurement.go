package models

// Column identifies a numeric metric column on a MeasurementRow. Using a
// closed set of columns instead of string map keys means a bad column name
// is a compile error, not a runtime miss.
type Column string

const (
	ColMedianBrightness     Column = "median_brightness_mag_arcsec2"
	ColXBrighter            Column = "x_brighter_than_darkest_night_sky"
	ColFluxRatio            Column = "median_linear_scale_flux_ratio"
	ColBortleLevel          Column = "bortle_sky_level"
	ColTrendRate            Column = "rate_of_change_vs_prineville_reservoir"
	ColRegressionSlope      Column = "regression_line_slope_x_10000"
	ColPercentChangePerYear Column = "percent_change_per_year"
	ColYearsOfData          Column = "number_of_years_of_data"
	ColRatioIndex           Column = "ratio_index"
	ColDifferenceIndex      Column = "difference_index_mag_arcsec2"
	ColPercentClearNights   Column = "percent_clear_night_samples_all_months"
)

// MeasurementRow is one site's record for a measurement category, joined
// with its coordinates. Metric pointers are nil when the source dataset has
// no value for that column; Latitude/Longitude are nil when the site could
// not be resolved against the coordinates dataset (the row is still kept,
// it just never reaches the map).
type MeasurementRow struct {
	SiteName  string   `json:"site_name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Elevation *float64 `json:"elevation_m,omitempty"`

	MedianBrightness     *float64 `json:"median_brightness_mag_arcsec2,omitempty"`
	XBrighter            *float64 `json:"x_brighter_than_darkest_night_sky,omitempty"`
	FluxRatio            *float64 `json:"median_linear_scale_flux_ratio,omitempty"`
	BortleLevel          *float64 `json:"bortle_sky_level,omitempty"`
	TrendRate            *float64 `json:"rate_of_change,omitempty"`
	RegressionSlope      *float64 `json:"regression_slope_x_10000,omitempty"`
	PercentChangePerYear *float64 `json:"percent_change_per_year,omitempty"`
	YearsOfData          *float64 `json:"number_of_years_of_data,omitempty"`
	RatioIndex           *float64 `json:"ratio_index,omitempty"`
	DifferenceIndex      *float64 `json:"difference_index_mag_arcsec2,omitempty"`
	PercentClearNights   *float64 `json:"percent_clear_nights,omitempty"`

	// Derived flags, only meaningful for the clear-night category.
	DarkSkyCertified bool `json:"dark_sky_certified,omitempty"`
	DarkSkyQualified bool `json:"dark_sky_qualified,omitempty"`

	// Resolved display color for the active category, e.g. "rgba(60, 0, 60, 1)".
	Color string `json:"color_rgba,omitempty"`
}

// Metric returns the value of the given column and whether it is present.
func (r MeasurementRow) Metric(col Column) (float64, bool) {
	var p *float64
	switch col {
	case ColMedianBrightness:
		p = r.MedianBrightness
	case ColXBrighter:
		p = r.XBrighter
	case ColFluxRatio:
		p = r.FluxRatio
	case ColBortleLevel:
		p = r.BortleLevel
	case ColTrendRate:
		p = r.TrendRate
	case ColRegressionSlope:
		p = r.RegressionSlope
	case ColPercentChangePerYear:
		p = r.PercentChangePerYear
	case ColYearsOfData:
		p = r.YearsOfData
	case ColRatioIndex:
		p = r.RatioIndex
	case ColDifferenceIndex:
		p = r.DifferenceIndex
	case ColPercentClearNights:
		p = r.PercentClearNights
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// SetMetric stores a value into the given column. Used by the CSV loader.
func (r *MeasurementRow) SetMetric(col Column, v float64) {
	val := v
	switch col {
	case ColMedianBrightness:
		r.MedianBrightness = &val
	case ColXBrighter:
		r.XBrighter = &val
	case ColFluxRatio:
		r.FluxRatio = &val
	case ColBortleLevel:
		r.BortleLevel = &val
	case ColTrendRate:
		r.TrendRate = &val
	case ColRegressionSlope:
		r.RegressionSlope = &val
	case ColPercentChangePerYear:
		r.PercentChangePerYear = &val
	case ColYearsOfData:
		r.YearsOfData = &val
	case ColRatioIndex:
		r.RatioIndex = &val
	case ColDifferenceIndex:
		r.DifferenceIndex = &val
	case ColPercentClearNights:
		r.PercentClearNights = &val
	}
}
