package planner

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/ngmaloney/wandersoul/internal/models"
)

// RecommendationResult is one complete set of recommendations
type RecommendationResult struct {
	Destinations []models.Destination
	Profile      models.PreferenceProfile
}

type recommendationResponse struct {
	Recommendations []models.Destination      `json:"recommendations"`
	Profile         *models.PreferenceProfile `json:"profile"`
}

// FetchRecommendations asks the backend for destinations matching profile
func (c *APIClient) FetchRecommendations(ctx context.Context, profile models.PreferenceProfile) (*RecommendationResult, error) {
	query := url.Values{}
	query.Set("crowd", string(profile.Crowd))
	query.Set("activity", string(profile.Activity))
	query.Set("distance", string(profile.Distance))
	query.Set("nature", strconv.FormatBool(profile.Nature))
	query.Set("culture", strconv.FormatBool(profile.Culture))
	query.Set("budget", strconv.FormatBool(profile.Budget))
	query.Set("lat", strconv.FormatFloat(profile.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(profile.Longitude, 'f', -1, 64))

	var resp recommendationResponse
	if err := c.call(ctx, "get recommendations", "GET", "/api/personality-recommendations/", query, nil, &resp); err != nil {
		return nil, err
	}

	result := &RecommendationResult{
		Destinations: resp.Recommendations,
		Profile:      profile,
	}
	if result.Destinations == nil {
		result.Destinations = []models.Destination{}
	}

	// The echoed profile carries no coordinates; the request's are kept.
	if resp.Profile != nil {
		result.Profile = *resp.Profile
		result.Profile.Latitude = profile.Latitude
		result.Profile.Longitude = profile.Longitude
	}

	c.logger.Info("recommendations received", zap.Int("count", len(result.Destinations)))
	return result, nil
}
