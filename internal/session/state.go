// Package session owns the cross-view selection and viewport state: which
// sites are highlighted, where the map is, and how click events from the
// three views mutate that state. The reducer is a pure function; each
// browser session holds its own State in the Store, so there is no shared
// mutable dashboard state anywhere in the process.
package session

import "github.com/darkskyoregon/sqm-backend-go/internal/models"

// Viewport defaults and limits.
const (
	DefaultZoom = 6.0
	MaxZoom     = 10.0

	DefaultCenterLat = 44.0
	DefaultCenterLng = -121.0
)

// State is the per-session selection and viewport state. The zero highlight
// set means "nothing selected"; the three views then fall back to their
// default styling.
type State struct {
	Highlighted []string      `json:"highlighted_sites"`
	Zoom        float64       `json:"zoom"`
	Center      models.LatLng `json:"center"`

	// MaxZoomExceeded is set for the render cycle in which a viewport
	// request had to be clamped, so the UI can show a notice.
	MaxZoomExceeded bool `json:"max_zoom_exceeded"`
}

// DefaultState returns the initial state for a fresh session: no highlight,
// map centered on Oregon.
func DefaultState() State {
	return State{
		Zoom:   DefaultZoom,
		Center: models.LatLng{Lat: DefaultCenterLat, Lng: DefaultCenterLng},
	}
}

// HighlightSet returns the highlighted sites as a lookup set.
func (s State) HighlightSet() map[string]bool {
	if len(s.Highlighted) == 0 {
		return nil
	}
	set := make(map[string]bool, len(s.Highlighted))
	for _, name := range s.Highlighted {
		set[name] = true
	}
	return set
}
