package session

// Reduce applies one trigger event to the session state and returns the new
// state plus the views whose pending click payload must be scrubbed.
//
// knownSites is the set of site names present in the currently rendered
// category. A click naming a site outside it (a stale click carried over
// from another category) is consumed but changes nothing.
//
// Rules, mirroring the dashboard's behavior:
//   - refresh resets highlight and viewport to defaults and scrubs all views
//   - a click on any view replaces the whole highlight set (never merges)
//     and scrubs that view's payload
//   - viewport changes touch only zoom/center; zoom is clamped at MaxZoom
//     and the clamp is surfaced via MaxZoomExceeded for one cycle
//   - category changes leave selection and viewport untouched
func Reduce(s State, e Event, knownSites map[string]bool) (State, ClearViews) {
	out := s
	// The clamp notice applies to the cycle that caused it only.
	out.MaxZoomExceeded = false

	switch e.Type {
	case EventRefresh:
		return DefaultState(), ClearAll()

	case EventMapClick:
		if selected := knownSubset(e.Sites, knownSites); len(selected) > 0 {
			out.Highlighted = selected
		}
		return out, ClearViews{Map: true}

	case EventBarClick:
		if knownSites[e.Site] {
			out.Highlighted = []string{e.Site}
		}
		return out, ClearViews{Bar: true}

	case EventScatterClick:
		if knownSites[e.Site] {
			out.Highlighted = []string{e.Site}
		}
		return out, ClearViews{Scatter: true}

	case EventViewportChange:
		if e.Zoom != nil {
			zoom := *e.Zoom
			if zoom > MaxZoom {
				zoom = MaxZoom
				out.MaxZoomExceeded = true
			}
			out.Zoom = zoom
		}
		if e.Center != nil {
			out.Center = *e.Center
		}
		return out, ClearViews{}

	case EventCategoryChange:
		// Selection and viewport persist across question switches.
		return out, ClearViews{}
	}

	// No trigger: steady state.
	return out, ClearViews{}
}

// knownSubset filters names down to those present in known, preserving
// order.
func knownSubset(names []string, known map[string]bool) []string {
	var out []string
	for _, n := range names {
		if known[n] {
			out = append(out, n)
		}
	}
	return out
}
