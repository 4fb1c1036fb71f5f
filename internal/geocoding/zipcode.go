package geocoding

import (
	"database/sql"
	"fmt"
)

// lookupZipcodeInDB looks up a zipcode in the zipcodes table
func lookupZipcodeInDB(db *sql.DB, zipcode string) (*Location, error) {
	var city, state string
	var lat, lon float64

	err := db.QueryRow(
		"SELECT city, state, latitude, longitude FROM zipcodes WHERE zipcode = ?",
		zipcode,
	).Scan(&city, &state, &lat, &lon)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("zipcode %s not found", zipcode)
	}
	if err != nil {
		return nil, fmt.Errorf("querying zipcode: %w", err)
	}

	return &Location{
		Latitude:  lat,
		Longitude: lon,
		Name:      fmt.Sprintf("%s, %s %s", city, state, zipcode),
	}, nil
}

// lookupCityStateInDB looks up a city and state in the zipcodes table.
// If multiple zipcodes match, returns the first one (by zipcode).
func lookupCityStateInDB(db *sql.DB, city, state string) (*Location, error) {
	var zipcode, foundCity, foundState string
	var lat, lon float64

	err := db.QueryRow(
		"SELECT zipcode, city, state, latitude, longitude FROM zipcodes WHERE city = ? COLLATE NOCASE AND state = ? ORDER BY zipcode LIMIT 1",
		city, state,
	).Scan(&zipcode, &foundCity, &foundState, &lat, &lon)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no location found for %s, %s", city, state)
	}
	if err != nil {
		return nil, fmt.Errorf("querying city/state: %w", err)
	}

	return &Location{
		Latitude:  lat,
		Longitude: lon,
		Name:      fmt.Sprintf("%s, %s %s", foundCity, foundState, zipcode),
	}, nil
}
