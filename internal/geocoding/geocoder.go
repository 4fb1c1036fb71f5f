// Package geocoding resolves a typed location into coordinates
package geocoding

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	nominatimURL = "https://nominatim.openstreetmap.org/search"
)

var (
	zipcodePattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	cityStatePattern = regexp.MustCompile(`^([^,]+),\s*([A-Za-z]{2})$`)
)

// Geocoder converts ZIP codes and place names to coordinates.
// ZIP codes and "City, ST" resolve locally; everything else goes to Nominatim.
type Geocoder struct {
	db         *sql.DB
	httpClient *http.Client
	baseURL    string
	userAgent  string // required by Nominatim ToS
	logger     *zap.Logger

	mu       sync.Mutex
	lastCall time.Time
}

// Location represents a geocoded location
type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
}

// NewGeocoder creates a geocoder backed by db, which may be nil when no local
// store is available
func NewGeocoder(db *sql.DB, userAgent string, logger *zap.Logger) *Geocoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Geocoder{
		db: db,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   nominatimURL,
		userAgent: userAgent,
		logger:    logger,
	}
}

// Geocode converts a query (zipcode, "City, ST", any place name) to coordinates
func (g *Geocoder) Geocode(ctx context.Context, query string) (*Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	if isZipcode(query) {
		if g.db == nil {
			return nil, fmt.Errorf("zipcode lookup unavailable")
		}
		return lookupZipcodeInDB(g.db, query[:5])
	}

	if g.db != nil {
		if m := cityStatePattern.FindStringSubmatch(query); m != nil {
			loc, err := lookupCityStateInDB(g.db, strings.TrimSpace(m[1]), strings.ToUpper(m[2]))
			if err == nil {
				return loc, nil
			}
			g.logger.Debug("city/state not in local table", zap.String("query", query), zap.Error(err))
		}

		if loc, ok := g.cached(query); ok {
			return loc, nil
		}
	}

	loc, err := g.search(ctx, query)
	if err != nil {
		return nil, err
	}

	if g.db != nil {
		g.store(query, loc)
	}
	return loc, nil
}

// isZipcode checks if a string looks like a US zipcode
func isZipcode(s string) bool {
	return zipcodePattern.MatchString(s)
}
