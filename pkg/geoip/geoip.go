package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "http://ip-api.com"

// Location is the ip-api.com response shape. Message is only present on
// failure and gets forwarded to the caller.
type Location struct {
	Status      string  `json:"status"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Message     string  `json:"message,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a fixture server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Lookup resolves a client IP to a location. A non-"success" upstream
// status fails the lookup; the upstream message is kept when present.
// Single blocking call, no retry.
func (c *Client) Lookup(ctx context.Context, clientIP string) (*Location, error) {
	url := fmt.Sprintf("%s/json/%s", c.baseURL, clientIP)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil, err
	}

	if loc.Status != "success" {
		if loc.Message != "" {
			return nil, fmt.Errorf("%s", loc.Message)
		}
		return nil, fmt.Errorf("failed to get location")
	}

	return &loc, nil
}
