package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/darkskyoregon/sqm-backend-go/internal/service"
	"github.com/darkskyoregon/sqm-backend-go/pkg/response"
)

// SiteHandler serves site-level lookups.
type SiteHandler struct {
	service *service.DashboardService
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(svc *service.DashboardService) *SiteHandler {
	return &SiteHandler{service: svc}
}

// GetNearest handles GET /api/v1/sites/nearest?lat=&lon=
func (h *SiteHandler) GetNearest(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lat parameter")
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lon parameter")
		return
	}

	site, distance, ok, err := h.service.NearestSite(lat, lon)
	if err != nil {
		response.InternalError(c, "Failed to look up nearest site")
		return
	}
	if !ok {
		response.NotFound(c, "No geocoded sites available")
		return
	}

	response.Success(c, gin.H{
		"site":            site,
		"distance_meters": distance,
	})
}
