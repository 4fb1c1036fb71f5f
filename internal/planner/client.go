// Package planner talks to the WanderSoul recommendation backend
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ngmaloney/wandersoul/internal/models"
)

// RecommendationClient fetches personality-matched destinations
type RecommendationClient interface {
	FetchRecommendations(ctx context.Context, profile models.PreferenceProfile) (*RecommendationResult, error)
}

// DetailClient fetches the detail view of a single destination
type DetailClient interface {
	FetchDetails(ctx context.Context, xid string) (*DetailResult, error)
}

// TripClient saves and lists trips
type TripClient interface {
	SaveTrip(ctx context.Context, trip TripRequest) error
	ListTrips(ctx context.Context) ([]models.SavedTrip, error)
}

// Client is everything the UI needs from the backend
type Client interface {
	RecommendationClient
	DetailClient
	TripClient
}

// APIClient implements Client over the backend's JSON API
type APIClient struct {
	baseURL     string
	httpClient  *http.Client
	imageClient *http.Client
	userAgent   string
	logger      *zap.Logger
}

// NewClient creates a backend client for baseURL
func NewClient(baseURL, userAgent string, logger *zap.Logger) *APIClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		imageClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		userAgent: userAgent,
		logger:    logger,
	}
}

// envelope is the status part every backend response carries
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// call performs one backend request and decodes the response into dst.
// A decodable body with success=false is a logical error whatever the status.
func (c *APIClient) call(ctx context.Context, op, method, path string, query url.Values, body, dst any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("encoding request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("creating request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("backend request",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", reqURL),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if !env.Success {
		return &LogicalError{Op: op, Status: resp.StatusCode, Reason: env.Error}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if dst != nil {
		if err := json.Unmarshal(raw, dst); err != nil {
			return &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
		}
	}

	return nil
}
