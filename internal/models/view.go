package models

// BarRow is one bar of the ranking chart, already colored and decorated.
type BarRow struct {
	SiteName    string  `json:"site_name"`
	Value       float64 `json:"value"`
	FillColor   string  `json:"fill_color"`
	LineColor   string  `json:"line_color"`
	LineWidth   float64 `json:"line_width"`
	Highlighted bool    `json:"highlighted"`
}

// RankingChart is the bar-chart payload for one category, sorted ascending
// by the ranking metric.
type RankingChart struct {
	Title     string    `json:"title"`
	AxisLabel string    `json:"axis_label"`
	TickMode  string    `json:"tick_mode"` // "linear" or "log"
	TickVals  []float64 `json:"tick_vals"`
	TickText  []string  `json:"tick_text"`
	AxisNote  string    `json:"axis_note"`
	Bars      []BarRow  `json:"bars"`
}

// ScatterPoint is one marker of the scatter plot.
type ScatterPoint struct {
	SiteName  string  `json:"site_name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Color     string  `json:"color"`
	Size      float64 `json:"size"`
	LineColor string  `json:"line_color"`
	LineWidth float64 `json:"line_width"`
}

// ThresholdLine is an optional vertical reference line on the scatter plot.
// Points are never filtered by it.
type ThresholdLine struct {
	X     float64 `json:"x"`
	Label string  `json:"label"`
}

// ScatterChart is the scatter-plot payload. Emphasis holds the highlighted
// subset drawn again on top of the base layer so selected points are never
// occluded.
type ScatterChart struct {
	Title     string         `json:"title"`
	XLabel    string         `json:"x_label"`
	YLabel    string         `json:"y_label"`
	Points    []ScatterPoint `json:"points"`
	Emphasis  []ScatterPoint `json:"emphasis"`
	Threshold *ThresholdLine `json:"threshold,omitempty"`
}

// MapMarker is one aggregated map marker. Co-located sites collapse into a
// single marker carrying all of their names.
type MapMarker struct {
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	SiteNames   []string `json:"site_names"`
	Label       string   `json:"label"`
	Color       string   `json:"color"`
	Size        float64  `json:"size"`
	Highlighted bool     `json:"highlighted"`
}

// SiteDetail is the human-readable detail block for a highlighted site.
type SiteDetail struct {
	SiteName string   `json:"site_name"`
	Badges   []string `json:"badges,omitempty"`
	Lines    []string `json:"lines"`
}
