package repository

import (
	"database/sql"
	"fmt"

	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

// GeocodeSource supplies site coordinates for the measurement join.
type GeocodeSource interface {
	All() (map[string]models.Site, error)
}

// GeocodeRepository is the sqlite-backed geocode cache. It is seeded from
// the coordinates dataset at startup so repeated dashboard renders never
// re-read the CSV.
type GeocodeRepository struct {
	db *sql.DB
}

// NewGeocodeRepository creates a new geocode repository
func NewGeocodeRepository(db *sql.DB) *GeocodeRepository {
	return &GeocodeRepository{db: db}
}

// Seed upserts the given sites into the cache in one transaction.
func (r *GeocodeRepository) Seed(sites []models.Site) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO site_geocodes (site_name, latitude, longitude, elevation_m)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(site_name) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			elevation_m = excluded.elevation_m,
			updated_at = CURRENT_TIMESTAMP
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, s := range sites {
		if _, err := stmt.Exec(s.Name, s.Latitude, s.Longitude, s.Elevation); err != nil {
			return fmt.Errorf("failed to upsert geocode for %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit geocode seed: %w", err)
	}
	return nil
}

// All returns every cached site keyed by name.
func (r *GeocodeRepository) All() (map[string]models.Site, error) {
	rows, err := r.db.Query(`SELECT site_name, latitude, longitude, elevation_m FROM site_geocodes`)
	if err != nil {
		return nil, fmt.Errorf("failed to query geocodes: %w", err)
	}
	defer rows.Close()

	sites := make(map[string]models.Site)
	for rows.Next() {
		var s models.Site
		var elev sql.NullFloat64
		if err := rows.Scan(&s.Name, &s.Latitude, &s.Longitude, &elev); err != nil {
			return nil, fmt.Errorf("failed to scan geocode: %w", err)
		}
		if elev.Valid {
			s.Elevation = elev.Float64
		}
		sites[s.Name] = s
	}
	return sites, rows.Err()
}

// Lookup returns the coordinates for one site.
func (r *GeocodeRepository) Lookup(siteName string) (models.Site, error) {
	var s models.Site
	var elev sql.NullFloat64
	err := r.db.QueryRow(
		`SELECT site_name, latitude, longitude, elevation_m FROM site_geocodes WHERE site_name = ?`,
		siteName,
	).Scan(&s.Name, &s.Latitude, &s.Longitude, &elev)
	if err == sql.ErrNoRows {
		return models.Site{}, fmt.Errorf("site not found: %s", siteName)
	}
	if err != nil {
		return models.Site{}, fmt.Errorf("failed to look up geocode: %w", err)
	}
	if elev.Valid {
		s.Elevation = elev.Float64
	}
	return s, nil
}

// Count returns the number of cached sites.
func (r *GeocodeRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM site_geocodes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count geocodes: %w", err)
	}
	return count, nil
}

// CSVGeocodeSource serves coordinates straight from the dataset file, used
// when no cache database is configured.
type CSVGeocodeSource struct {
	path string
}

// NewCSVGeocodeSource creates a CSV-backed geocode source.
func NewCSVGeocodeSource(path string) *CSVGeocodeSource {
	return &CSVGeocodeSource{path: path}
}

// All reads the coordinates dataset and returns sites keyed by name.
func (c *CSVGeocodeSource) All() (map[string]models.Site, error) {
	sites, err := ReadSitesCSV(c.path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.Site, len(sites))
	for _, s := range sites {
		out[s.Name] = s
	}
	return out, nil
}
