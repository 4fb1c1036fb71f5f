// Package mapview draws destinations on a character-grid map
package mapview

import (
	"errors"
	"fmt"
	"math"

	"github.com/ngmaloney/wandersoul/internal/models"
)

const (
	// DefaultZoom is used when there is nothing to fit
	DefaultZoom = 10
	// FitPadding keeps fitted markers this many cells away from the edge
	FitPadding = 2

	// cellPixels is the width of one character cell in 256px tile pixels
	cellPixels = 8
	// cellAspect is how many times taller a terminal cell is than wide
	cellAspect = 2
)

// ErrRemoved is returned when a torn-down map is modified
var ErrRemoved = errors.New("map has been removed")

// MarkerKind tells the user marker apart from destinations
type MarkerKind int

const (
	UserMarker MarkerKind = iota
	DestinationMarker
)

// Marker is one point on the map
type Marker struct {
	Kind        MarkerKind
	Position    LatLon
	Title       string
	Destination models.Destination // zero for the user marker
}

// Popup returns the lines shown when the marker is selected
func (m Marker) Popup() []string {
	if m.Kind == UserMarker {
		return []string{m.Title}
	}
	return []string{
		m.Destination.Name,
		fmt.Sprintf("Match: %d%%", m.Destination.RoundedScore()),
	}
}

// Map is one rendered map instance. A new one is built for every result set
// and the previous one removed.
type Map struct {
	center  LatLon
	zoom    int
	fit     bool
	padding int
	markers []Marker
	basemap *Basemap
	removed bool
}

// New creates an empty map centred on center at the default zoom
func New(center LatLon, basemap *Basemap) *Map {
	return &Map{center: center, zoom: DefaultZoom, basemap: basemap}
}

// Plot builds the map for a result set: the user marker first, then one marker
// per destination in order. With destinations the view fits all markers,
// otherwise it centres on the user.
func Plot(destinations []models.Destination, center LatLon, basemap *Basemap) *Map {
	m := New(center, basemap)
	_ = m.AddMarker(Marker{Kind: UserMarker, Position: center, Title: "Your Location"})
	for _, d := range destinations {
		_ = m.AddMarker(Marker{
			Kind:        DestinationMarker,
			Position:    LatLon{Lat: d.Lat, Lon: d.Lon},
			Title:       d.Name,
			Destination: d,
		})
	}

	if len(destinations) > 0 {
		m.FitBounds(FitPadding)
	} else {
		m.SetView(center, DefaultZoom)
	}
	return m
}

// AddMarker appends a marker
func (m *Map) AddMarker(mk Marker) error {
	if m.removed {
		return ErrRemoved
	}
	m.markers = append(m.markers, mk)
	return nil
}

// Markers returns the markers in insertion order
func (m *Map) Markers() []Marker {
	out := make([]Marker, len(m.markers))
	copy(out, m.markers)
	return out
}

// DestinationMarkers returns the number of destination markers
func (m *Map) DestinationMarkers() int {
	n := 0
	for _, mk := range m.markers {
		if mk.Kind == DestinationMarker {
			n++
		}
	}
	return n
}

// SetView centres the map at a fixed zoom
func (m *Map) SetView(center LatLon, zoom int) {
	m.center = center
	m.zoom = zoom
	m.fit = false
}

// FitBounds makes the view contain every marker, padding cells from the edge
func (m *Map) FitBounds(padding int) {
	m.fit = true
	m.padding = padding
}

// Fitted reports whether the view follows the marker bounds
func (m *Map) Fitted() bool { return m.fit }

// Zoom returns the fixed zoom used when the view is not fitted
func (m *Map) Zoom() int { return m.zoom }

// Center returns the configured centre
func (m *Map) Center() LatLon { return m.center }

// Remove tears the map down; it renders nothing afterwards
func (m *Map) Remove() {
	m.removed = true
	m.markers = nil
	m.basemap = nil
}

// Removed reports whether Remove was called
func (m *Map) Removed() bool { return m.removed }

// viewport maps normalised mercator coordinates onto a width x height grid
type viewport struct {
	cx, cy float64 // centre
	cell   float64 // width of one cell
	width  int
	height int
}

func (m *Map) viewport(width, height int) viewport {
	cx, cy := mercator(m.center)
	v := viewport{cx: cx, cy: cy, cell: zoomCell(m.zoom), width: width, height: height}

	if !m.fit || len(m.markers) == 0 {
		return v
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, mk := range m.markers {
		x, y := mercator(mk.Position)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	innerW := math.Max(float64(width-2*m.padding-1), 1)
	innerH := math.Max(float64(height-2*m.padding-1), 1)
	cell := math.Max((maxX-minX)/innerW, (maxY-minY)/(cellAspect*innerH))

	v.cx, v.cy = (minX+maxX)/2, (minY+maxY)/2
	// every marker on one spot: keep the zoom, just recentre
	if cell > 0 {
		v.cell = cell
	}
	return v
}

func zoomCell(zoom int) float64 {
	return cellPixels / (256 * math.Pow(2, float64(zoom)))
}

// project returns the cell for p
func (v viewport) project(p LatLon) (col, row int) {
	x, y := mercator(p)
	col = int(math.Floor((x-v.cx)/v.cell + float64(v.width)/2))
	row = int(math.Floor((y-v.cy)/(cellAspect*v.cell) + float64(v.height)/2))
	return col, row
}

func (v viewport) inside(col, row int) bool {
	return col >= 0 && col < v.width && row >= 0 && row < v.height
}

// bounds returns the geographic area covered by the grid
func (v viewport) bounds() Bounds {
	halfW := float64(v.width) / 2 * v.cell
	halfH := float64(v.height) / 2 * cellAspect * v.cell
	nw := inverseMercator(v.cx-halfW, v.cy-halfH)
	se := inverseMercator(v.cx+halfW, v.cy+halfH)
	return Bounds{South: se.Lat, West: nw.Lon, North: nw.Lat, East: se.Lon}
}

// Project returns the grid cell of p when the map is drawn at width x height
func (m *Map) Project(p LatLon, width, height int) (col, row int, ok bool) {
	if m.removed || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	v := m.viewport(width, height)
	col, row = v.project(p)
	return col, row, v.inside(col, row)
}

// MarkerAt returns the index of the marker drawn at a cell, or -1.
// Destinations win over the user marker when they share a cell.
func (m *Map) MarkerAt(col, row, width, height int) int {
	if m.removed || width <= 0 || height <= 0 {
		return -1
	}
	v := m.viewport(width, height)
	found := -1
	for i, mk := range m.markers {
		c, r := v.project(mk.Position)
		if c != col || r != row {
			continue
		}
		if found == -1 || mk.Kind == DestinationMarker {
			found = i
		}
	}
	return found
}
