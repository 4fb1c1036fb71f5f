package geocoding

import (
	"database/sql"
	"strings"

	"go.uber.org/zap"
)

func cacheKey(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}

// cached returns a previous Nominatim answer for query
func (g *Geocoder) cached(query string) (*Location, bool) {
	var loc Location
	err := g.db.QueryRow(
		"SELECT name, latitude, longitude FROM geocode_cache WHERE query = ?",
		cacheKey(query),
	).Scan(&loc.Name, &loc.Latitude, &loc.Longitude)
	if err != nil {
		if err != sql.ErrNoRows {
			g.logger.Warn("geocode cache read failed", zap.Error(err))
		}
		return nil, false
	}
	return &loc, true
}

// store remembers a Nominatim answer; failures only cost a future lookup
func (g *Geocoder) store(query string, loc *Location) {
	_, err := g.db.Exec(
		"INSERT OR REPLACE INTO geocode_cache (query, name, latitude, longitude) VALUES (?, ?, ?, ?)",
		cacheKey(query), loc.Name, loc.Latitude, loc.Longitude,
	)
	if err != nil {
		g.logger.Warn("geocode cache write failed", zap.Error(err))
	}
}
