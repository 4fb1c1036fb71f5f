// Package session holds the view state of one running client: the current
// result set, the profile it was requested with, and the map showing it
package session

import (
	"github.com/ngmaloney/wandersoul/internal/mapview"
	"github.com/ngmaloney/wandersoul/internal/models"
	"github.com/ngmaloney/wandersoul/internal/planner"
)

// State is owned by the UI loop and not safe for concurrent use
type State struct {
	issued   uint64
	rendered uint64

	destinations []models.Destination
	profile      *models.PreferenceProfile
	current      *mapview.Map
}

// New creates an empty session
func New() *State {
	return &State{}
}

// BeginQuery numbers a new recommendation request
func (s *State) BeginQuery() uint64 {
	s.issued++
	return s.issued
}

// Apply installs a result set if seq is newer than the one on screen.
// The previous map is torn down before the new one is built, so markers of two
// result sets never coexist. Stale responses return false and change nothing.
func (s *State) Apply(seq uint64, result *planner.RecommendationResult, center mapview.LatLon, basemap *mapview.Basemap) bool {
	if result == nil || seq <= s.rendered {
		return false
	}
	s.rendered = seq

	destinations := make([]models.Destination, len(result.Destinations))
	copy(destinations, result.Destinations)
	profile := result.Profile

	if s.current != nil {
		s.current.Remove()
	}
	s.destinations = destinations
	s.profile = &profile
	s.current = mapview.Plot(destinations, center, basemap)
	return true
}

// Rendered returns the sequence number of the result set on screen, 0 for none
func (s *State) Rendered() uint64 { return s.rendered }

// Pending reports whether a newer query than the one on screen was issued
func (s *State) Pending() bool { return s.issued > s.rendered }

// HasResults reports whether any result set has been applied
func (s *State) HasResults() bool { return s.profile != nil }

// Destinations returns the current result set
func (s *State) Destinations() []models.Destination {
	out := make([]models.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out
}

// Destination returns the i-th destination of the current result set
func (s *State) Destination(i int) (models.Destination, bool) {
	if i < 0 || i >= len(s.destinations) {
		return models.Destination{}, false
	}
	return s.destinations[i], true
}

// Profile returns the profile of the current result set
func (s *State) Profile() (models.PreferenceProfile, bool) {
	if s.profile == nil {
		return models.PreferenceProfile{}, false
	}
	return *s.profile, true
}

// Map returns the current map, nil before the first result set
func (s *State) Map() *mapview.Map {
	return s.current
}

// Reset tears everything down. Sequence numbers keep counting so responses
// to queries issued before the reset are still recognised as stale.
func (s *State) Reset() {
	if s.current != nil {
		s.current.Remove()
	}
	s.current = nil
	s.destinations = nil
	s.profile = nil
	s.rendered = s.issued
}
