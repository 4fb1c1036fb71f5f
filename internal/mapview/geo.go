package mapview

import "math"

// maxMercatorLat is where Web Mercator is cut off
const maxMercatorLat = 85.05112878

// LatLon is a geographic coordinate in degrees
type LatLon struct {
	Lat float64
	Lon float64
}

// Bounds is a lat/lon box
type Bounds struct {
	South float64
	West  float64
	North float64
	East  float64
}

// BoundsOf returns the smallest box containing every point
func BoundsOf(points []LatLon) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{South: points[0].Lat, North: points[0].Lat, West: points[0].Lon, East: points[0].Lon}
	for _, p := range points[1:] {
		b.South = math.Min(b.South, p.Lat)
		b.North = math.Max(b.North, p.Lat)
		b.West = math.Min(b.West, p.Lon)
		b.East = math.Max(b.East, p.Lon)
	}
	return b
}

// Intersects reports whether two boxes overlap
func (b Bounds) Intersects(o Bounds) bool {
	return b.South <= o.North && o.South <= b.North && b.West <= o.East && o.West <= b.East
}

// Contains reports whether p lies inside the box
func (b Bounds) Contains(p LatLon) bool {
	return p.Lat >= b.South && p.Lat <= b.North && p.Lon >= b.West && p.Lon <= b.East
}

// mercator projects p to normalised Web Mercator coordinates in [0,1], y growing south
func mercator(p LatLon) (x, y float64) {
	lat := math.Max(-maxMercatorLat, math.Min(maxMercatorLat, p.Lat))
	x = (p.Lon + 180) / 360
	s := math.Sin(lat * math.Pi / 180)
	y = 0.5 - math.Log((1+s)/(1-s))/(4*math.Pi)
	return x, y
}

// inverseMercator turns normalised coordinates back into degrees
func inverseMercator(x, y float64) LatLon {
	lon := x*360 - 180
	n := math.Pi - 2*math.Pi*y
	lat := 180 / math.Pi * math.Atan(math.Sinh(n))
	return LatLon{Lat: lat, Lon: lon}
}
