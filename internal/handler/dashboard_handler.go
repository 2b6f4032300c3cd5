package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/darkskyoregon/sqm-backend-go/internal/category"
	"github.com/darkskyoregon/sqm-backend-go/internal/service"
	"github.com/darkskyoregon/sqm-backend-go/internal/session"
	"github.com/darkskyoregon/sqm-backend-go/pkg/response"
)

// DashboardHandler serves the rendered dashboard and consumes its trigger
// events.
type DashboardHandler struct {
	service  *service.DashboardService
	sessions *SessionHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc *service.DashboardService, sessions *SessionHandler) *DashboardHandler {
	return &DashboardHandler{service: svc, sessions: sessions}
}

// ListCategories handles GET /api/v1/categories
func (h *DashboardHandler) ListCategories(c *gin.Context) {
	type item struct {
		Key      string `json:"key"`
		Question string `json:"question"`
	}
	items := make([]item, 0)
	for _, cfg := range category.All() {
		items = append(items, item{Key: string(cfg.Key), Question: cfg.Question})
	}
	response.Success(c, items)
}

// GetDashboard handles GET /api/v1/dashboard?category=K
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	key, err := category.Parse(c.Query("category"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	_, state, _, err := h.sessions.Resolve(c)
	if err != nil {
		response.Unauthorized(c, "Invalid session token")
		return
	}

	view, err := h.service.Render(key, state)
	if err != nil {
		response.InternalError(c, "Failed to render dashboard")
		return
	}

	response.Success(c, view)
}

// eventRequest is the POST body for a trigger event.
type eventRequest struct {
	Category string        `json:"category" binding:"required"`
	Event    session.Event `json:"event" binding:"required"`
}

// PostEvent handles POST /api/v1/dashboard/events. The new state is stored
// on the session and returned together with the clear-view directives.
func (h *DashboardHandler) PostEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid event payload")
		return
	}

	key, err := category.Parse(req.Category)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Event.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, state, ok, err := h.sessions.Resolve(c)
	if err != nil {
		response.Unauthorized(c, "Invalid session token")
		return
	}
	if !ok {
		response.Unauthorized(c, "Event requires a session; POST /api/v1/session first")
		return
	}

	next, clear, err := h.service.ApplyEvent(key, state, req.Event)
	if err != nil {
		response.InternalError(c, "Failed to apply event")
		return
	}

	if err := h.sessions.Store().Put(id, next); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			response.Unauthorized(c, "Session expired")
			return
		}
		response.InternalError(c, "Failed to store session state")
		return
	}

	response.Success(c, gin.H{
		"state":       next,
		"clear_views": clear,
	})
}
