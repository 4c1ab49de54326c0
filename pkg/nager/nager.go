package nager

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/daypanel/daypanel-backend/internal/models"
)

const defaultBaseURL = "https://date.nager.at"

// Client talks to the date.nager.at public-holiday registry.
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

func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// PublicHolidays fetches the registry array for (year, country) and
// returns it as decoded. Callers treat any error as "no holidays".
func (c *Client) PublicHolidays(ctx context.Context, year int, country string) ([]models.Holiday, error) {
	url := fmt.Sprintf("%s/api/v3/PublicHolidays/%d/%s", c.baseURL, year, country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday registry returned status %d", resp.StatusCode)
	}

	var holidays []models.Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, err
	}

	return holidays, nil
}
