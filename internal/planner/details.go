package planner

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ngmaloney/wandersoul/internal/models"
)

// DetailResult is a destination detail plus the weather at its location, if any
type DetailResult struct {
	Destination models.DestinationDetail
	Weather     *models.WeatherSnapshot
}

// otmDetail follows the OpenTripMap place object the backend passes through
type otmDetail struct {
	XID     string `json:"xid"`
	Name    string `json:"name"`
	Kinds   string `json:"kinds"`
	Image   string `json:"image"`
	Preview *struct {
		Source string `json:"source"`
	} `json:"preview"`
	WikipediaExtracts *struct {
		Text string `json:"text"`
	} `json:"wikipedia_extracts"`
	Address *struct {
		City  string `json:"city"`
		State string `json:"state"`
	} `json:"address"`
	Wikipedia string `json:"wikipedia"`
	Point     *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"point"`
}

// owmWeather follows the OpenWeatherMap current weather object
type owmWeather struct {
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type detailResponse struct {
	Destination *otmDetail  `json:"destination"`
	Weather     *owmWeather `json:"weather"`
}

// FetchDetails loads the detail view for xid
func (c *APIClient) FetchDetails(ctx context.Context, xid string) (*DetailResult, error) {
	const op = "load details"

	var resp detailResponse
	path := "/api/destination-details/" + url.PathEscape(xid) + "/"
	if err := c.call(ctx, op, "GET", path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Destination == nil {
		return nil, &TransportError{Op: op, Status: http.StatusOK, Err: errMissingDestination}
	}

	detail := normalizeDetail(*resp.Destination)
	if detail.XID == "" {
		detail.XID = xid
	}
	if detail.ImageURL != models.PlaceholderImageURL && !c.imageLoads(ctx, detail.ImageURL) {
		c.logger.Debug("image unavailable, using placeholder", zap.String("url", detail.ImageURL))
		detail.ImageURL = models.PlaceholderImageURL
	}

	return &DetailResult{
		Destination: detail,
		Weather:     normalizeWeather(resp.Weather),
	}, nil
}

func normalizeDetail(raw otmDetail) models.DestinationDetail {
	detail := models.DestinationDetail{
		Destination: models.Destination{
			XID:   raw.XID,
			Name:  raw.Name,
			Kinds: raw.Kinds,
		},
		ReferenceURL: raw.Wikipedia,
		ImageURL:     raw.Image,
	}
	if raw.Preview != nil && raw.Preview.Source != "" {
		detail.ImageURL = raw.Preview.Source
	}
	if detail.ImageURL == "" {
		detail.ImageURL = models.PlaceholderImageURL
	}
	if raw.WikipediaExtracts != nil {
		detail.Extract = raw.WikipediaExtracts.Text
	}
	if raw.Address != nil {
		detail.City = raw.Address.City
		detail.State = raw.Address.State
	}
	if raw.Point != nil {
		detail.Lat = raw.Point.Lat
		detail.Lon = raw.Point.Lon
	}
	return detail
}

// normalizeWeather returns nil when the backend had no usable weather
func normalizeWeather(raw *owmWeather) *models.WeatherSnapshot {
	if raw == nil || raw.Main == nil {
		return nil
	}
	snapshot := &models.WeatherSnapshot{
		Temperature: raw.Main.Temp,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
	}
	if len(raw.Weather) > 0 {
		snapshot.Description = raw.Weather[0].Description
	}
	return snapshot
}

// imageLoads probes an image URL; servers that refuse HEAD get a GET
func (c *APIClient) imageLoads(ctx context.Context, imageURL string) bool {
	for _, method := range []string{http.MethodHead, http.MethodGet} {
		req, err := http.NewRequestWithContext(ctx, method, imageURL, nil)
		if err != nil {
			return false
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.imageClient.Do(req)
		if err != nil {
			return false
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusMethodNotAllowed {
			continue
		}
		return resp.StatusCode >= 200 && resp.StatusCode <= 299
	}
	return false
}
