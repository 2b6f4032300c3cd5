package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darkskyoregon/sqm-backend-go/internal/config"
	"github.com/darkskyoregon/sqm-backend-go/internal/handler"
	"github.com/darkskyoregon/sqm-backend-go/internal/middleware"
	"github.com/darkskyoregon/sqm-backend-go/internal/service"
)

// SetupRouter wires the HTTP surface of the dashboard backend.
func SetupRouter(cfg *config.Config, svc *service.DashboardService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Session-Token")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	limiter := middleware.NewRateLimiter(120, time.Minute)
	r.Use(limiter.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "SQM Dashboard API is running",
		})
	})

	sessionHandler := handler.NewSessionHandler(svc.Sessions(), cfg.JWTSecret, cfg.SessionTTL)
	dashboardHandler := handler.NewDashboardHandler(svc, sessionHandler)
	siteHandler := handler.NewSiteHandler(svc)

	api := r.Group("/api/v1")
	{
		api.GET("/categories", dashboardHandler.ListCategories)
		api.POST("/session", sessionHandler.Create)
		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.POST("/dashboard/events", dashboardHandler.PostEvent)
		api.GET("/sites/nearest", siteHandler.GetNearest)
	}

	return r
}
