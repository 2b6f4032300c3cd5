package session

import (
	"fmt"

	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

// EventType tags a trigger event. Exactly one trigger fires per render
// cycle; the tag makes the reducer's dispatch an explicit switch instead of
// guessing which input changed.
type EventType string

const (
	EventMapClick       EventType = "map_click"
	EventBarClick       EventType = "bar_click"
	EventScatterClick   EventType = "scatter_click"
	EventRefresh        EventType = "refresh"
	EventViewportChange EventType = "viewport_change"
	EventCategoryChange EventType = "category_change"
)

// Event is the tagged union of dashboard triggers. Which payload fields are
// meaningful depends on Type.
type Event struct {
	Type EventType `json:"type"`

	// Sites carries every site name behind a clicked map marker
	// (co-located sites are selected together).
	Sites []string `json:"sites,omitempty"`

	// Site is the single site behind a bar or scatter click.
	Site string `json:"site,omitempty"`

	// Zoom and Center carry a viewport change; a nil field leaves the
	// corresponding state value untouched.
	Zoom   *float64       `json:"zoom,omitempty"`
	Center *models.LatLng `json:"center,omitempty"`
}

// Validate checks that the event's payload matches its tag.
func (e Event) Validate() error {
	switch e.Type {
	case EventMapClick:
		if len(e.Sites) == 0 {
			return fmt.Errorf("map_click event without sites")
		}
	case EventBarClick, EventScatterClick:
		if e.Site == "" {
			return fmt.Errorf("%s event without a site", e.Type)
		}
	case EventViewportChange:
		if e.Zoom == nil && e.Center == nil {
			return fmt.Errorf("viewport_change event without zoom or center")
		}
	case EventRefresh, EventCategoryChange:
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	return nil
}

// ClearViews tells the caller which views must drop their pending click
// payload after this event was consumed. The underlying UI event model
// treats a click as a durable property rather than an edge-triggered pulse;
// without this scrub a stale click re-fires on the next unrelated render.
type ClearViews struct {
	Map     bool `json:"map"`
	Bar     bool `json:"bar"`
	Scatter bool `json:"scatter"`
}

// ClearAll marks every view's pending click for scrubbing.
func ClearAll() ClearViews {
	return ClearViews{Map: true, Bar: true, Scatter: true}
}
