package repository

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/darkskyoregon/sqm-backend-go/internal/category"
	"github.com/darkskyoregon/sqm-backend-go/internal/colormap"
	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

// darkSkyCertifiedSites are the officially certified locations, flagged on
// the clear-night dataset.
var darkSkyCertifiedSites = map[string]bool{
	"Hart Mountain":                   true,
	"Sisters East":                    true,
	"Sisters High School":             true,
	"Oregon Observatory Sunriver":     true,
	"Prineville Reservoir State Park": true,
	"Oregon Caves National Monument":  true,
	"Antelope":                        true,
	"Cottonwood Canyon State Park":    true,
}

// ColorMapFile is the bin table dataset for SQM brightness readings.
const ColorMapFile = "color_map_for_SQM_readings.csv"

type cacheEntry struct {
	rows     []models.MeasurementRow
	loadedAt time.Time
}

// MeasurementRepository loads per-category measurement tables from the raw
// data directory, joins them with site coordinates, derives certification
// flags and display colors, and memoizes the result per category for a
// bounded time window.
type MeasurementRepository struct {
	dataDir  string
	geocodes GeocodeSource
	ttl      time.Duration

	mu       sync.Mutex
	cache    map[category.Key]cacheEntry
	binTable *colormap.Table
}

// NewMeasurementRepository creates a measurement repository. dataDir is the
// directory holding the raw CSV datasets.
func NewMeasurementRepository(dataDir string, geocodes GeocodeSource, ttl time.Duration) *MeasurementRepository {
	return &MeasurementRepository{
		dataDir:  dataDir,
		geocodes: geocodes,
		ttl:      ttl,
		cache:    make(map[category.Key]cacheEntry),
	}
}

// Load returns the joined, colored measurement table for a category.
//
// A missing dataset degrades to an empty table with a logged warning, never
// an error: the dashboard renders empty views instead of failing. Rows
// whose site has no geocode keep nil coordinates and are still returned;
// only the map excludes them. Callers must treat the returned slice as
// read-only.
func (r *MeasurementRepository) Load(key category.Key) ([]models.MeasurementRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.cache[key]; ok && time.Since(entry.loadedAt) < r.ttl {
		return entry.rows, nil
	}

	cfg := category.Get(key)
	rows := r.loadDataset(cfg)
	r.joinGeocodes(rows)
	deriveClearNightFlags(key, rows)
	r.assignColors(cfg, rows)

	r.cache[key] = cacheEntry{rows: rows, loadedAt: time.Now()}
	return rows, nil
}

// KnownSites returns the set of site names present in a category's table,
// used by the selection reducer to drop stale clicks.
func (r *MeasurementRepository) KnownSites(key category.Key) (map[string]bool, error) {
	rows, err := r.Load(key)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.SiteName != "" {
			known[row.SiteName] = true
		}
	}
	return known, nil
}

// Sites returns all geocoded sites sorted by name.
func (r *MeasurementRepository) Sites() ([]models.Site, error) {
	byName, err := r.geocodes.All()
	if err != nil {
		return nil, err
	}
	sites := make([]models.Site, 0, len(byName))
	for _, s := range byName {
		sites = append(sites, s)
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i].Name < sites[j].Name })
	return sites, nil
}

// Invalidate drops the memoized table for a category (all categories when
// key is empty).
func (r *MeasurementRepository) Invalidate(key category.Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if key == "" {
		r.cache = make(map[category.Key]cacheEntry)
		r.binTable = nil
		return
	}
	delete(r.cache, key)
}

func (r *MeasurementRepository) loadDataset(cfg category.Config) []models.MeasurementRow {
	path := filepath.Join(r.dataDir, cfg.Dataset)
	rows, err := readMeasurementCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("WARN: dataset %s not found, serving empty table for %s", cfg.Dataset, cfg.Key)
		} else {
			log.Printf("WARN: failed to read dataset %s: %v", cfg.Dataset, err)
		}
		return nil
	}
	return rows
}

func (r *MeasurementRepository) joinGeocodes(rows []models.MeasurementRow) {
	geocodes, err := r.geocodes.All()
	if err != nil {
		log.Printf("WARN: geocode lookup failed, rows keep null coordinates: %v", err)
		return
	}
	for i := range rows {
		site, ok := geocodes[rows[i].SiteName]
		if !ok {
			// left join: unresolved sites keep nil coordinates
			continue
		}
		lat, lon := site.Latitude, site.Longitude
		rows[i].Latitude = &lat
		rows[i].Longitude = &lon
		if site.Elevation != 0 {
			elev := site.Elevation
			rows[i].Elevation = &elev
		}
	}
}

// deriveClearNightFlags sets the certification and qualification flags on
// the clear-night table.
func deriveClearNightFlags(key category.Key, rows []models.MeasurementRow) {
	if key != category.ClearNightsBrightness {
		return
	}
	for i := range rows {
		rows[i].DarkSkyCertified = darkSkyCertifiedSites[rows[i].SiteName]
		if v, ok := rows[i].Metric(models.ColMedianBrightness); ok && v > category.DarkSkyQualifiedThreshold {
			rows[i].DarkSkyQualified = true
		}
	}
}

// assignColors resolves each row's display color from the category's color
// column. Rows missing the column keep an empty color; they are excluded
// from the views before any bin lookup happens.
func (r *MeasurementRepository) assignColors(cfg category.Config, rows []models.MeasurementRow) {
	switch cfg.ColorScale {
	case category.ScaleBinTable:
		table, err := r.loadBinTable()
		if err != nil {
			log.Printf("WARN: color map unavailable, rows stay uncolored: %v", err)
			return
		}
		for i := range rows {
			if v, ok := rows[i].Metric(cfg.ColorColumn); ok {
				rows[i].Color = table.Lookup(v)
			}
		}

	case category.ScaleDiverging, category.ScaleMono:
		min, max, any := columnRange(rows, cfg.ColorColumn)
		if !any {
			return
		}
		for i := range rows {
			v, ok := rows[i].Metric(cfg.ColorColumn)
			if !ok {
				continue
			}
			if cfg.ColorScale == category.ScaleDiverging {
				rows[i].Color = colormap.DivergingRamp(v, min, max)
			} else {
				rows[i].Color = colormap.MonoRamp(v, min, max)
			}
		}
	}
}

func (r *MeasurementRepository) loadBinTable() (colormap.Table, error) {
	if r.binTable != nil {
		return *r.binTable, nil
	}
	table, err := readColorMapCSV(filepath.Join(r.dataDir, ColorMapFile))
	if err != nil {
		return colormap.Table{}, err
	}
	r.binTable = &table
	return table, nil
}

func columnRange(rows []models.MeasurementRow, col models.Column) (min, max float64, any bool) {
	for _, row := range rows {
		v, ok := row.Metric(col)
		if !ok {
			continue
		}
		if !any || v < min {
			min = v
		}
		if !any || v > max {
			max = v
		}
		any = true
	}
	return min, max, any
}
