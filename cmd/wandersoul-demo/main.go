package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/wandersoul/internal/models"
	"github.com/ngmaloney/wandersoul/internal/planner"
	"github.com/ngmaloney/wandersoul/internal/ui"
)

// demoClient serves canned destinations around Thrissur, Kerala
type demoClient struct {
	mu    sync.Mutex
	trips []models.SavedTrip
}

var demoDestinations = []models.Destination{
	{XID: "N1", Name: "Athirappilly Falls", Kinds: "natural,waterfalls,interesting_places", Lat: 10.2851, Lon: 76.5698, Score: 92, Distance: 52300},
	{XID: "N2", Name: "Vadakkunnathan Temple", Kinds: "religion,hindu_temples,architecture", Lat: 10.5246, Lon: 76.2144, Score: 84, Distance: 340},
	{XID: "N3", Name: "St. Mary's Church", Kinds: "religion,churches", Lat: 10.5167, Lon: 76.2167, Score: 71, Distance: 1250},
	{XID: "N4", Name: "Shakthan Thampuran Palace", Kinds: "historic,museums,palaces", Lat: 10.5185, Lon: 76.2107, Score: 66, Distance: 1050},
	{XID: "N5", Name: "Vilangan Kunnu", Kinds: "natural,hills", Lat: 10.5534, Lon: 76.1504, Score: 58, Distance: 7600},
	{XID: "N6", Name: "Thrissur Zoo", Kinds: "tourist_facilities,zoos", Lat: 10.5303, Lon: 76.2226, Score: 43, Distance: 950},
}

func (c *demoClient) FetchRecommendations(ctx context.Context, profile models.PreferenceProfile) (*planner.RecommendationResult, error) {
	time.Sleep(600 * time.Millisecond)
	return &planner.RecommendationResult{Destinations: demoDestinations, Profile: profile}, nil
}

func (c *demoClient) FetchDetails(ctx context.Context, xid string) (*planner.DetailResult, error) {
	time.Sleep(300 * time.Millisecond)
	for _, d := range demoDestinations {
		if d.XID != xid {
			continue
		}
		return &planner.DetailResult{
			Destination: models.DestinationDetail{
				Destination:  d,
				Extract:      fmt.Sprintf("%s is one of the best loved places around Thrissur, the cultural capital of Kerala.", d.Name),
				City:         "Thrissur",
				State:        "Kerala",
				ReferenceURL: "https://en.wikipedia.org/wiki/Thrissur",
			},
			Weather: &models.WeatherSnapshot{Temperature: 29.3, Description: "scattered clouds", Humidity: 74, WindSpeed: 3.1},
		}, nil
	}
	return nil, &planner.LogicalError{Op: "details", Status: 404, Reason: "Destination not found"}
}

func (c *demoClient) SaveTrip(ctx context.Context, trip planner.TripRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.trips {
		if t.XID == trip.XID {
			return &planner.LogicalError{Op: "save trip", Status: 400, Reason: "Trip already saved"}
		}
	}
	c.trips = append(c.trips, models.SavedTrip{
		ID:        int64(len(c.trips) + 1),
		XID:       trip.XID,
		Name:      trip.Name,
		Category:  trip.Kinds,
		Lat:       trip.Lat,
		Lon:       trip.Lon,
		CreatedAt: time.Now(),
	})
	return nil
}

func (c *demoClient) ListTrips(ctx context.Context) ([]models.SavedTrip, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	trips := make([]models.SavedTrip, len(c.trips))
	copy(trips, c.trips)
	return trips, nil
}

// This demo shows the UI with mock data
func main() {
	client := &demoClient{trips: []models.SavedTrip{
		{
			ID:        1,
			XID:       "N5",
			Name:      "Vilangan Kunnu",
			Category:  "Natural",
			Notes:     "Sunset view over the paddy fields",
			Lat:       10.5534,
			Lon:       76.1504,
			CreatedAt: time.Now().Add(-72 * time.Hour),
		},
	}}

	m := ui.NewModel(ui.Options{
		Client:           client,
		DefaultLatitude:  10.5276,
		DefaultLongitude: 76.2144,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
