package main

import (
	"log"
	"path/filepath"

	"github.com/darkskyoregon/sqm-backend-go/internal/api"
	"github.com/darkskyoregon/sqm-backend-go/internal/config"
	"github.com/darkskyoregon/sqm-backend-go/internal/database"
	"github.com/darkskyoregon/sqm-backend-go/internal/repository"
	"github.com/darkskyoregon/sqm-backend-go/internal/service"
	"github.com/darkskyoregon/sqm-backend-go/internal/session"
)

func main() {
	cfg := config.Load()

	geocodes := setupGeocodes(cfg)
	defer database.Close()

	repo := repository.NewMeasurementRepository(cfg.DataDir, geocodes, cfg.CacheTTL)

	sessions := session.NewStore(cfg.SessionTTL)
	stop := make(chan struct{})
	defer close(stop)
	sessions.StartSweeper(cfg.SessionTTL/4, stop)

	svc := service.NewDashboardService(repo, sessions)

	router := api.SetupRouter(cfg, svc)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// setupGeocodes picks the geocode source: the sqlite cache seeded from the
// coordinates dataset when DB_PATH is set, the CSV directly otherwise.
func setupGeocodes(cfg *config.Config) repository.GeocodeSource {
	coordsPath := filepath.Join(cfg.DataDir, "sites_coordinates.csv")

	if cfg.DBPath == "" {
		return repository.NewCSVGeocodeSource(coordsPath)
	}

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Printf("WARN: geocode cache unavailable, reading coordinates from CSV: %v", err)
		return repository.NewCSVGeocodeSource(coordsPath)
	}
	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Printf("WARN: geocode cache migration failed, reading coordinates from CSV: %v", err)
		return repository.NewCSVGeocodeSource(coordsPath)
	}

	geoRepo := repository.NewGeocodeRepository(db)
	sites, err := repository.ReadSitesCSV(coordsPath)
	if err != nil {
		log.Printf("WARN: coordinates dataset unreadable, cache keeps previous contents: %v", err)
	} else if err := geoRepo.Seed(sites); err != nil {
		log.Printf("WARN: failed to seed geocode cache: %v", err)
	} else {
		log.Printf("Geocode cache seeded with %d sites", len(sites))
	}
	return geoRepo
}
