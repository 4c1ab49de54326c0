package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com"

// Forecast mirrors the Open-Meteo response for the field set the
// dashboard requests. The payload is parsed at this boundary; a shape
// mismatch fails the decode instead of propagating zero values silently.
type Forecast struct {
	DailyUnits struct {
		Time             string `json:"time"`
		Temperature2mMax string `json:"temperature_2m_max"`
		Temperature2mMin string `json:"temperature_2m_min"`
	} `json:"daily_units"`
	CurrentUnits struct {
		Temperature2m       string `json:"temperature_2m"`
		ApparentTemperature string `json:"apparent_temperature"`
		WeatherCode         string `json:"weather_code"`
		RelativeHumidity2m  string `json:"relative_humidity_2m"`
		WindSpeed10m        string `json:"wind_speed_10m"`
	} `json:"current_units"`
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
	Current struct {
		Temperature2m       float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		WeatherCode         int     `json:"weather_code"`
		RelativeHumidity2m  float64 `json:"relative_humidity_2m"`
		WindSpeed10m        float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Error  bool   `json:"error"`
	Reason string `json:"reason,omitempty"`
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

func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// GetForecast requests current conditions and the daily min/max series.
func (c *Client) GetForecast(ctx context.Context, lat, lon string) (*Forecast, error) {
	q := url.Values{}
	q.Set("latitude", lat)
	q.Set("longitude", lon)
	q.Set("current", "temperature_2m,apparent_temperature,weather_code,relative_humidity_2m,wind_speed_10m")
	q.Set("daily", "temperature_2m_max,temperature_2m_min")

	reqURL := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var forecast Forecast
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, err
	}

	return &forecast, nil
}
