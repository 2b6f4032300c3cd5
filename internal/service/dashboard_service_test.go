package service_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkskyoregon/sqm-backend-go/internal/category"
	"github.com/darkskyoregon/sqm-backend-go/internal/models"
	"github.com/darkskyoregon/sqm-backend-go/internal/repository"
	"github.com/darkskyoregon/sqm-backend-go/internal/service"
	"github.com/darkskyoregon/sqm-backend-go/internal/session"
)

type stubGeocodes struct {
	sites map[string]models.Site
}

func (s *stubGeocodes) All() (map[string]models.Site, error) {
	return s.sites, nil
}

func newTestService(t *testing.T) *service.DashboardService {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("clear_night_measurements.csv",
		"site_name,median_brightness_mag_arcsec2,x_brighter_than_darkest_night_sky,median_linear_scale_flux_ratio,bortle_sky_level\n"+
			"Hart Mountain,21.85,1.00,1.00,1\n"+
			"Sisters East,21.46,1.43,1.43,2\n"+
			"Sisters High School,21.40,1.51,1.51,3\n"+
			"Bend,19.50,8.71,8.71,6\n")
	write("color_map_for_SQM_readings.csv",
		"brightness_mag_arcsec2,red,green,blue\n"+
			"18.0,255,0,0\n"+
			"20.0,255,255,0\n"+
			"22.0,0,128,0\n")
	write("cloud_coverage.csv",
		"site_name,percent_clear_night_samples_all_months\n"+
			"Hart Mountain,62.0\n"+
			"Bend,41.0\n")

	geocodes := &stubGeocodes{sites: map[string]models.Site{
		"Hart Mountain":       {Name: "Hart Mountain", Latitude: 42.55, Longitude: -119.65},
		"Sisters East":        {Name: "Sisters East", Latitude: 44.29, Longitude: -121.55},
		"Sisters High School": {Name: "Sisters High School", Latitude: 44.29, Longitude: -121.55},
		"Bend":                {Name: "Bend", Latitude: 44.06, Longitude: -121.31},
	}}

	repo := repository.NewMeasurementRepository(dir, geocodes, time.Minute)
	return service.NewDashboardService(repo, session.NewStore(time.Hour))
}

func TestRender_AllViewsConsistent(t *testing.T) {
	svc := newTestService(t)

	state := session.DefaultState()
	state.Highlighted = []string{"Bend"}

	view, err := svc.Render(category.ClearNightsBrightness, state)
	require.NoError(t, err)

	assert.Equal(t, "clear_nights_brightness", view.Category)
	assert.Equal(t, "Clear Nights – where is the Night Sky most pristine?", view.Question)

	// ranking: ascending, Bend brightest last and highlighted
	require.Len(t, view.Bar.Bars, 4)
	last := view.Bar.Bars[3]
	assert.Equal(t, "Bend", last.SiteName)
	assert.True(t, last.Highlighted)

	// map: co-located Sisters sites collapse, Bend marker highlighted
	require.Len(t, view.Map.Markers, 3)
	var bendMarker *models.MapMarker
	for i := range view.Map.Markers {
		if view.Map.Markers[i].SiteNames[0] == "Bend" {
			bendMarker = &view.Map.Markers[i]
		}
	}
	require.NotNil(t, bendMarker)
	assert.True(t, bendMarker.Highlighted)

	// scatter present for the brightness category, with the emphasis layer
	require.NotNil(t, view.Scatter)
	require.Len(t, view.Scatter.Emphasis, 1)
	assert.Equal(t, "Bend", view.Scatter.Emphasis[0].SiteName)
	require.NotNil(t, view.Scatter.Threshold)

	// detail block for the highlighted site
	require.Len(t, view.Details, 1)
	assert.Equal(t, "Bend", view.Details[0].SiteName)
	assert.Contains(t, view.Details[0].Lines, "8.71-times brighter than the darkest Night Sky")
}

func TestRender_CertificationBadges(t *testing.T) {
	svc := newTestService(t)

	state := session.DefaultState()
	state.Highlighted = []string{"Hart Mountain", "Sisters East"}

	view, err := svc.Render(category.ClearNightsBrightness, state)
	require.NoError(t, err)

	require.Len(t, view.Details, 2)
	for _, d := range view.Details {
		// both are in the certified list; certification hides the
		// qualification badge
		assert.Equal(t, []string{"Dark Sky Certified"}, d.Badges)
	}
}

func TestRender_NoScatterForCloudCoverage(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.Render(category.PercentClearNights, session.DefaultState())
	require.NoError(t, err)

	assert.Nil(t, view.Scatter)
	require.Len(t, view.Bar.Bars, 2)
	assert.Equal(t, "Bend", view.Bar.Bars[0].SiteName) // 41% sorts before 62%
}

func TestRender_MissingDatasetYieldsEmptyViews(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.Render(category.MilkyWayVisibility, session.DefaultState())
	require.NoError(t, err)

	assert.Empty(t, view.Bar.Bars)
	assert.Empty(t, view.Map.Markers)
	assert.Nil(t, view.Scatter)
	assert.Empty(t, view.Details)
}

func TestRender_StaleHighlightProducesNoDetail(t *testing.T) {
	svc := newTestService(t)

	state := session.DefaultState()
	state.Highlighted = []string{"Ghost Site"}

	view, err := svc.Render(category.ClearNightsBrightness, state)
	require.NoError(t, err)
	assert.Empty(t, view.Details)
}

func TestApplyEvent_RunsReducerAgainstCategorySites(t *testing.T) {
	svc := newTestService(t)
	state := session.DefaultState()

	next, clear, err := svc.ApplyEvent(category.ClearNightsBrightness, state, session.Event{
		Type: session.EventBarClick,
		Site: "Bend",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bend"}, next.Highlighted)
	assert.Equal(t, session.ClearViews{Bar: true}, clear)

	// a site from another category's table is stale here
	next, _, err = svc.ApplyEvent(category.ClearNightsBrightness, next, session.Event{
		Type: session.EventBarClick,
		Site: "Unlisted Site",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bend"}, next.Highlighted)
}

func TestNearestSite(t *testing.T) {
	svc := newTestService(t)

	site, distance, ok, err := svc.NearestSite(44.05, -121.30)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Bend", site.Name)
	assert.Less(t, distance, 5000.0)
}
