// Package category holds the closed set of measurement categories and their
// chart configuration. Each category maps one raw dataset to one dashboard
// question; the configuration is fixed at compile time so an unknown column
// or missing key cannot surface at runtime.
package category

import (
	"fmt"

	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

// Key identifies a measurement category.
type Key string

const (
	ClearNightsBrightness  Key = "clear_nights_brightness"
	CloudyNightsBrightness Key = "cloudy_nights_brightness"
	LongTermTrends         Key = "long_term_trends"
	MilkyWayVisibility     Key = "milky_way_visibility"
	PercentClearNights     Key = "percent_clear_nights"
)

// DarkSkyQualifiedThreshold is the median brightness (mag/arcsec2) above
// which a site counts as Dark-Sky Qualified.
const DarkSkyQualifiedThreshold = 21.2

// ColorScale selects how row colors are resolved for a category.
type ColorScale int

const (
	// ScaleBinTable uses the SQM reading bin table (threshold ceiling lookup).
	ScaleBinTable ColorScale = iota
	// ScaleDiverging ramps green to red across the column's min/max range.
	ScaleDiverging
	// ScaleMono ramps black to magenta across the column's min/max range.
	ScaleMono
)

// BarConfig is the ranking chart configuration for a category. Tick metadata
// is presentation config consumed as-is; the ranking pipeline never computes
// it.
type BarConfig struct {
	Title     string
	Metric    models.Column
	AxisLabel string
	TickMode  string // "linear" or "log"
	TickVals  []float64
	TickText  []string
}

// ScatterConfig is the scatter plot configuration, present only for the
// brightness categories.
type ScatterConfig struct {
	Title      string
	XCol       models.Column
	YCol       models.Column
	XLabel     string
	YLabel     string
	ThresholdX *float64 // optional vertical reference line
}

// Config is the complete per-category configuration.
type Config struct {
	Key      Key
	Dataset  string // CSV file name under the raw data directory
	Question string

	Bar     BarConfig
	Scatter *ScatterConfig

	// ColorColumn feeds the color scale and the map's representative-color
	// rule.
	ColorColumn models.Column
	ColorScale  ColorScale

	// MetricNotes explain the category's metrics in the help panel.
	MetricNotes []string
}

var scatterBrightness = ScatterConfig{
	Title:  "Ranking metric vs Median Night Sky Brightness",
	XCol:   models.ColMedianBrightness,
	YCol:   models.ColXBrighter,
	XLabel: "Median Night Sky Brightness (mag/arcsec²)",
	YLabel: "X-times brighter",
}

func thresholdPtr(v float64) *float64 { return &v }

var configs = map[Key]Config{
	ClearNightsBrightness: {
		Key:      ClearNightsBrightness,
		Dataset:  "clear_night_measurements.csv",
		Question: "Clear Nights – where is the Night Sky most pristine?",
		Bar: BarConfig{
			Title:     "Clear Nights - Ranking sites by how much brighter they are compared to our darkest night sky measurement site",
			Metric:    models.ColXBrighter,
			AxisLabel: "<--- Darker -------------------------------- Brighter --->",
			TickMode:  "log",
			TickVals:  []float64{1, 2, 10, 20},
			TickText:  []string{"1", "2", "10", "20"},
		},
		Scatter: func() *ScatterConfig {
			s := scatterBrightness
			s.ThresholdX = thresholdPtr(DarkSkyQualifiedThreshold)
			return &s
		}(),
		ColorColumn: models.ColMedianBrightness,
		ColorScale:  ScaleBinTable,
		MetricNotes: []string{
			"The darkest Night Sky Location for clear nights based on current data is Hart Mountain.",
			"Bortle scale is a visual measure of night sky brightness, ranging from 1 for pristine night skies to 9 at light polluted urban night skies.",
			"Median Night Sky Brightness shown in a log scale of Magnitudes/Arcsecond squared is a common measure used in astronomy.",
			"Flux Ratio shows a linear scale of night sky brightness.",
		},
	},
	CloudyNightsBrightness: {
		Key:      CloudyNightsBrightness,
		Dataset:  "cloudy_night_measurements.csv",
		Question: "Cloudy Nights – where is the Night Sky most pristine?",
		Bar: BarConfig{
			Title:     "Cloudy Nights - Ranking sites by how much brighter they are compared to our darkest night sky measurement site",
			Metric:    models.ColXBrighter,
			AxisLabel: "<--- Darker -------------------------------- Brighter --->",
			TickMode:  "log",
			TickVals:  []float64{1, 10, 100, 1000},
			TickText:  []string{"1", "10", "100", "1000"},
		},
		Scatter: func() *ScatterConfig {
			s := scatterBrightness
			return &s
		}(),
		ColorColumn: models.ColMedianBrightness,
		ColorScale:  ScaleBinTable,
		MetricNotes: []string{
			"The darkest Night Sky Location for cloudy nights based on current data is Crater Lake National Park.",
			"Cloudy nights magnify the night sky brightness contrast between pristine and light polluted sites.",
			"Median Night Sky Brightness is in a log scale of Magnitudes/Arcsecond squared, a common measure used in astronomy.",
			"Flux Ratio shows a linear scale of night sky brightness.",
		},
	},
	LongTermTrends: {
		Key:      LongTermTrends,
		Dataset:  "longterm_trends.csv",
		Question: "Starry night skies – where are they disappearing or recovering?",
		Bar: BarConfig{
			Title:     "Ranking sites by the rate of change in night sky brightness compared to a certified Dark Sky Park",
			Metric:    models.ColTrendRate,
			AxisLabel: "<--- Slower ------------------- Faster --->",
			TickMode:  "linear",
			TickVals:  []float64{0, 50, 100, 150},
			TickText:  []string{"0", "50", "100", "150"},
		},
		ColorColumn: models.ColTrendRate,
		ColorScale:  ScaleDiverging,
		MetricNotes: []string{
			"Only the sites with at least 2 years of data are included to calculate the long-term trends.",
			"Rate of Change in Night Sky Brightness is compared to Prineville Reservoir State Park which is a certified Dark Sky Park.",
			"Trendline Slope is calculated from regression fit of change over time scaled by a factor of 10000.",
		},
	},
	MilkyWayVisibility: {
		Key:      MilkyWayVisibility,
		Dataset:  "milky_way_visibility.csv",
		Question: "Milky Way – where does it stand out best?",
		Bar: BarConfig{
			Title:     "Milky Way – Ranking sites by how well it stands out in the clear night sky.",
			Metric:    models.ColRatioIndex,
			AxisLabel: "<--- Not visible --------------------------- Clearly visible --->",
			TickMode:  "log",
			TickVals:  []float64{1, 1.2, 1.4, 1.6},
			TickText:  []string{"1", "1.2", "1.4", "1.6"},
		},
		ColorColumn: models.ColRatioIndex,
		ColorScale:  ScaleMono,
		MetricNotes: []string{
			"Ratio Index: Ratio of Night Sky Brightness between Milky Way and nearby sky.",
			"Difference Index: Difference in Night Sky Brightness between Milky Way and nearby sky.",
		},
	},
	PercentClearNights: {
		Key:      PercentClearNights,
		Dataset:  "cloud_coverage.csv",
		Question: "Clear Nights – where are they most common and least cloudy?",
		Bar: BarConfig{
			Title:     "Clear Nights – Ranking sites by the percentage of clear, not cloudy nights.",
			Metric:    models.ColPercentClearNights,
			AxisLabel: "<--- Cloudiest -------------------------------- Clearest --->",
			TickMode:  "linear",
			TickVals:  []float64{0, 20, 40, 60, 80, 100},
			TickText:  []string{"0%", "20%", "40%", "60%", "80%", "100%"},
		},
		ColorColumn: models.ColPercentClearNights,
		ColorScale:  ScaleMono,
		MetricNotes: []string{
			"Percentage of Clear nights mean the nights without any clouds in the night sky.",
			"Measurement at each site is averaged over all months of the year.",
		},
	},
}

// order is the fixed presentation order of the questions.
var order = []Key{
	ClearNightsBrightness,
	CloudyNightsBrightness,
	LongTermTrends,
	MilkyWayVisibility,
	PercentClearNights,
}

// ErrUnknownCategory is returned by Parse for keys outside the closed set.
var ErrUnknownCategory = fmt.Errorf("unknown measurement category")

// Parse validates a category key from the API surface.
func Parse(s string) (Key, error) {
	k := Key(s)
	if _, ok := configs[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return k, nil
}

// Get returns the configuration for a known key. It panics on unknown keys;
// callers go through Parse first.
func Get(k Key) Config {
	cfg, ok := configs[k]
	if !ok {
		panic(fmt.Sprintf("category: no config for key %q", k))
	}
	return cfg
}

// All returns the categories in presentation order.
func All() []Config {
	out := make([]Config, 0, len(order))
	for _, k := range order {
		out = append(out, configs[k])
	}
	return out
}
