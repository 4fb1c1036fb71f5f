package mapview

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jonas-p/go-shp"
	"go.uber.org/zap"

	"github.com/ngmaloney/wandersoul/internal/database"
)

const (
	// Natural Earth 1:110m coastline, public domain
	coastlineURL  = "https://naciscdn.org/naturalearth/110m/physical/ne_110m_coastline.zip"
	shapefileBase = "ne_110m_coastline"
)

// ProvisionBasemap downloads the coastline shapefile and imports it into the
// basemap_lines table unless it already exists
func ProvisionBasemap(ctx context.Context, db *sql.DB, dataDir string, logger *zap.Logger) error {
	exists, err := database.TableExists(db, "basemap_lines")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	logger.Info("basemap table not found, provisioning")

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	zipPath := filepath.Join(dataDir, shapefileBase+".zip")
	logger.Info("downloading coastline", zap.String("url", coastlineURL))
	client := &http.Client{Timeout: 2 * time.Minute}
	if err := database.Download(ctx, client, coastlineURL, zipPath); err != nil {
		return fmt.Errorf("downloading shapefile: %w", err)
	}
	defer os.Remove(zipPath)

	extractDir := filepath.Join(dataDir, shapefileBase)
	if err := database.Unzip(zipPath, extractDir); err != nil {
		return fmt.Errorf("extracting shapefile: %w", err)
	}
	defer os.RemoveAll(extractDir)

	count, err := ImportShapefile(db, filepath.Join(extractDir, shapefileBase+".shp"))
	if err != nil {
		return fmt.Errorf("building basemap: %w", err)
	}

	logger.Info("basemap provisioned", zap.Int("lines", count))
	return nil
}

// ImportShapefile stores every part of every line or polygon in the shapefile
// as its own basemap line
func ImportShapefile(db *sql.DB, shapefilePath string) (int, error) {
	shape, err := shp.Open(shapefilePath)
	if err != nil {
		return 0, fmt.Errorf("opening shapefile: %w", err)
	}
	defer shape.Close()

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS basemap_lines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			geometry TEXT NOT NULL,
			bbox_min_lat REAL NOT NULL,
			bbox_max_lat REAL NOT NULL,
			bbox_min_lon REAL NOT NULL,
			bbox_max_lon REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_basemap_bbox ON basemap_lines(
			bbox_min_lat, bbox_max_lat, bbox_min_lon, bbox_max_lon
		);
	`)
	if err != nil {
		return 0, fmt.Errorf("creating table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO basemap_lines (geometry, bbox_min_lat, bbox_max_lat, bbox_min_lon, bbox_max_lon)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for shape.Next() {
		_, geom := shape.Shape()
		for _, part := range lineParts(geom) {
			if len(part) < 2 {
				continue
			}
			geometry, err := encodeGeometry(part)
			if err != nil {
				return count, err
			}
			b := BoundsOf(part)
			if _, err := stmt.Exec(geometry, b.South, b.North, b.West, b.East); err != nil {
				return count, fmt.Errorf("inserting line: %w", err)
			}
			count++
		}
	}
	if err := shape.Err(); err != nil {
		return count, fmt.Errorf("reading shapefile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// lineParts splits a polyline or polygon into its parts
func lineParts(geom shp.Shape) [][]LatLon {
	var parts []int32
	var points []shp.Point

	switch g := geom.(type) {
	case *shp.PolyLine:
		parts, points = g.Parts, g.Points
	case *shp.Polygon:
		parts, points = g.Parts, g.Points
	default:
		return nil
	}

	out := make([][]LatLon, 0, len(parts))
	for i := range parts {
		start := int(parts[i])
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		if start < 0 || end > len(points) || start >= end {
			continue
		}
		line := make([]LatLon, 0, end-start)
		for _, p := range points[start:end] {
			line = append(line, LatLon{Lat: p.Y, Lon: p.X})
		}
		out = append(out, line)
	}
	return out
}
