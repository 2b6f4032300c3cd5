package service

import (
	"github.com/darkskyoregon/sqm-backend-go/internal/category"
	"github.com/darkskyoregon/sqm-backend-go/internal/models"
	"github.com/darkskyoregon/sqm-backend-go/internal/repository"
	"github.com/darkskyoregon/sqm-backend-go/internal/session"
	"github.com/darkskyoregon/sqm-backend-go/internal/spatial"
	"github.com/darkskyoregon/sqm-backend-go/internal/viz"
)

// helpGuide is shown for every category.
var helpGuide = []string{
	"Click on a marker, a bar or a scatter point to select a SQM site. The site will be highlighted on all views and its measurements will be shown.",
	"Use the controls of each view to zoom, pan or reset.",
	"The dashboard will remember your site selection and map view across different questions.",
}

// MapView is the aggregated map payload plus its captions.
type MapView struct {
	Title   string             `json:"title"`
	Note    string             `json:"note"`
	Markers []models.MapMarker `json:"markers"`
}

// DashboardView is the full render output for one category and one session
// state: the three synchronized views, detail blocks for the highlighted
// sites, and the viewport to restore.
type DashboardView struct {
	Category string `json:"category"`
	Question string `json:"question"`

	Map     MapView              `json:"map"`
	Bar     models.RankingChart  `json:"bar_chart"`
	Scatter *models.ScatterChart `json:"scatter_plot,omitempty"`

	Details []models.SiteDetail `json:"details,omitempty"`
	State   session.State       `json:"state"`

	HelpGuide   []string `json:"help_guide"`
	MetricNotes []string `json:"metric_notes"`
}

// DashboardService orchestrates one render cycle: load the category table,
// feed the session's highlight set and viewport into the three pipelines,
// and format the detail blocks.
type DashboardService struct {
	repo     *repository.MeasurementRepository
	sessions *session.Store
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo *repository.MeasurementRepository, sessions *session.Store) *DashboardService {
	return &DashboardService{repo: repo, sessions: sessions}
}

// Sessions exposes the session store to the transport layer.
func (s *DashboardService) Sessions() *session.Store {
	return s.sessions
}

// Render builds the complete dashboard payload for a category under the
// given session state. An empty dataset yields empty views, not an error.
func (s *DashboardService) Render(key category.Key, state session.State) (DashboardView, error) {
	cfg := category.Get(key)
	rows, err := s.repo.Load(key)
	if err != nil {
		return DashboardView{}, err
	}

	highlighted := state.HighlightSet()

	view := DashboardView{
		Category: string(key),
		Question: cfg.Question,
		Map: MapView{
			Title:   "SQM measurement site map",
			Note:    "Note: all locations shown in the map are approximated for privacy.",
			Markers: viz.BuildMap(rows, cfg.ColorColumn, highlighted),
		},
		Bar:         viz.BuildRanking(rows, cfg.Bar, highlighted),
		Details:     buildDetails(key, rows, highlighted),
		State:       state,
		HelpGuide:   helpGuide,
		MetricNotes: cfg.MetricNotes,
	}

	if cfg.Scatter != nil {
		chart := viz.BuildScatter(rows, *cfg.Scatter, highlighted)
		view.Scatter = &chart
	}

	return view, nil
}

// ApplyEvent runs the selection reducer for one trigger against the current
// category's site set and returns the new state plus the views whose
// pending click payloads must be scrubbed.
func (s *DashboardService) ApplyEvent(key category.Key, state session.State, event session.Event) (session.State, session.ClearViews, error) {
	known, err := s.repo.KnownSites(key)
	if err != nil {
		return state, session.ClearViews{}, err
	}
	next, clear := session.Reduce(state, event, known)
	return next, clear, nil
}

// NearestSite returns the geocoded site closest to the given coordinate and
// the distance to it in meters.
func (s *DashboardService) NearestSite(lat, lon float64) (models.Site, float64, bool, error) {
	sites, err := s.repo.Sites()
	if err != nil {
		return models.Site{}, 0, false, err
	}
	site, dist, ok := spatial.NearestSite(sites, lat, lon)
	return site, dist, ok, nil
}
