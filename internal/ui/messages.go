package ui

import (
	"github.com/ngmaloney/wandersoul/internal/geocoding"
	"github.com/ngmaloney/wandersoul/internal/mapview"
	"github.com/ngmaloney/wandersoul/internal/models"
	"github.com/ngmaloney/wandersoul/internal/planner"
)

// Message types for async operations

// recommendationsMsg carries the answer to one numbered recommendation query
type recommendationsMsg struct {
	seq     uint64
	profile models.PreferenceProfile
	result  *planner.RecommendationResult
	err     error
}

// detailsMsg is sent when a destination detail has been fetched
type detailsMsg struct {
	xid    string
	result *planner.DetailResult
	err    error
}

// tripSavedMsg is sent when a save-trip call completes
type tripSavedMsg struct {
	name string
	err  error
}

// tripsLoadedMsg is sent when the saved trips have been fetched
type tripsLoadedMsg struct {
	trips []models.SavedTrip
	err   error
}

// geocodeMsg is sent when a location lookup completes
type geocodeMsg struct {
	query    string
	location *geocoding.Location
	err      error
}

// scrollToMapMsg fires shortly after a result set is rendered
type scrollToMapMsg struct {
	seq uint64
}

// notificationExpiredMsg removes a notification after its TTL
type notificationExpiredMsg struct {
	id string
}

// linkOpenedMsg reports how a link was handed to the user
type linkOpenedMsg struct {
	url    string
	copied bool // no browser; the url went to the clipboard
	err    error
}

// setupStepMsg is sent when one first-run setup step finishes
type setupStepMsg struct {
	index int
	err   error
}

// basemapLoadedMsg carries the coastline read from the local store
type basemapLoadedMsg struct {
	basemap *mapview.Basemap
	err     error
}
