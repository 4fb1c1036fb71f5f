package mapview

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ngmaloney/wandersoul/internal/database"
)

// Line is one coastline polyline
type Line struct {
	Points []LatLon
	Bounds Bounds
}

// Basemap holds the coastline drawn under the markers
type Basemap struct {
	lines []Line
}

// NewBasemap builds a basemap from polylines, skipping degenerate ones
func NewBasemap(polylines [][]LatLon) *Basemap {
	b := &Basemap{}
	for _, pts := range polylines {
		if len(pts) < 2 {
			continue
		}
		b.lines = append(b.lines, Line{Points: pts, Bounds: BoundsOf(pts)})
	}
	return b
}

// Len returns the number of lines
func (b *Basemap) Len() int {
	if b == nil {
		return 0
	}
	return len(b.lines)
}

// Visible returns the lines whose bounding box touches bounds
func (b *Basemap) Visible(bounds Bounds) []Line {
	if b == nil {
		return nil
	}
	var out []Line
	for _, l := range b.lines {
		if l.Bounds.Intersects(bounds) {
			out = append(out, l)
		}
	}
	return out
}

// LoadBasemap reads the provisioned coastline. A store that was never
// provisioned yields an empty basemap.
func LoadBasemap(db *sql.DB) (*Basemap, error) {
	exists, err := database.TableExists(db, "basemap_lines")
	if err != nil {
		return nil, err
	}
	if !exists {
		return NewBasemap(nil), nil
	}

	rows, err := db.Query("SELECT geometry FROM basemap_lines ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying basemap: %w", err)
	}
	defer rows.Close()

	var polylines [][]LatLon
	for rows.Next() {
		var geometry string
		if err := rows.Scan(&geometry); err != nil {
			return nil, fmt.Errorf("scanning basemap line: %w", err)
		}
		pts, err := decodeGeometry(geometry)
		if err != nil {
			return nil, err
		}
		polylines = append(polylines, pts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading basemap: %w", err)
	}

	return NewBasemap(polylines), nil
}

// geometry is stored as [[lon,lat],...] like the source shapefile
func encodeGeometry(points []LatLon) (string, error) {
	coords := make([][2]float64, len(points))
	for i, p := range points {
		coords[i] = [2]float64{p.Lon, p.Lat}
	}
	data, err := json.Marshal(coords)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeGeometry(s string) ([]LatLon, error) {
	var coords [][2]float64
	if err := json.Unmarshal([]byte(s), &coords); err != nil {
		return nil, fmt.Errorf("decoding basemap geometry: %w", err)
	}
	points := make([]LatLon, len(coords))
	for i, c := range coords {
		points[i] = LatLon{Lat: c[1], Lon: c[0]}
	}
	return points, nil
}
