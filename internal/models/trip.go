package models

import (
	"fmt"
	"strconv"
	"time"
)

// SavedTrip is a destination the user saved. The backend owns its lifecycle;
// the client only creates and lists them.
type SavedTrip struct {
	ID          int64     `json:"id"`
	XID         string    `json:"xid"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Notes       string    `json:"notes"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapURL links to the trip's coordinates on an external map
func (t SavedTrip) MapURL() string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s",
		strconv.FormatFloat(t.Lat, 'f', -1, 64),
		strconv.FormatFloat(t.Lon, 'f', -1, 64))
}

// SavedOn formats the creation date for the trip card
func (t SavedTrip) SavedOn() string {
	if t.CreatedAt.IsZero() {
		return "unknown date"
	}
	return t.CreatedAt.Format("2006-01-02 15:04")
}
