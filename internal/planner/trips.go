package planner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ngmaloney/wandersoul/internal/models"
)

// TripRequest is the body of a save-trip call
type TripRequest struct {
	XID   string  `json:"xid"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Kinds string  `json:"kinds"` // display category label
}

// NewTripRequest builds the save body for a destination
func NewTripRequest(d models.Destination) TripRequest {
	return TripRequest{
		XID:   d.XID,
		Name:  d.Name,
		Lat:   d.Lat,
		Lon:   d.Lon,
		Kinds: d.Category().Label,
	}
}

// SaveTrip stores a destination in the user's trips
func (c *APIClient) SaveTrip(ctx context.Context, trip TripRequest) error {
	if err := c.call(ctx, "save trip", "POST", "/save-trip/", nil, trip, nil); err != nil {
		return err
	}
	c.logger.Info("trip saved", zap.String("xid", trip.XID), zap.String("name", trip.Name))
	return nil
}

type tripPayload struct {
	ID          int64   `json:"id"`
	XID         string  `json:"xid"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes"`
	CreatedAt   string  `json:"created_at"`
}

type tripsResponse struct {
	Trips []tripPayload `json:"trips"`
}

// createdAtLayouts are tried in order when parsing created_at
var createdAtLayouts = []string{"2006-01-02 15:04", time.RFC3339}

// ListTrips returns the user's saved trips in backend order
func (c *APIClient) ListTrips(ctx context.Context) ([]models.SavedTrip, error) {
	var resp tripsResponse
	if err := c.call(ctx, "load trips", "GET", "/my-trips/", nil, nil, &resp); err != nil {
		return nil, err
	}

	trips := make([]models.SavedTrip, 0, len(resp.Trips))
	for _, p := range resp.Trips {
		created, err := parseCreatedAt(p.CreatedAt)
		if err != nil {
			c.logger.Warn("unparseable trip date", zap.Int64("id", p.ID), zap.Error(err))
		}
		trips = append(trips, models.SavedTrip{
			ID:          p.ID,
			XID:         p.XID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Notes:       p.Notes,
			Lat:         p.Lat,
			Lon:         p.Lon,
			CreatedAt:   created,
		})
	}

	return trips, nil
}

func parseCreatedAt(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing created_at %q", s)
}
