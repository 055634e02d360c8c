package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
	"github.com/yanqian/outfit-advisor/pkg/metrics"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client. A zero timeout falls back to 10s.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Current retrieves the reading for a city or coordinate pair in metric units.
func (c *Client) Current(ctx context.Context, loc outfit.Location) (outfit.WeatherReading, error) {
	start := time.Now()
	defer func() { metrics.ObserveWeatherFetch("api", time.Since(start)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(loc), nil)
	if err != nil {
		return outfit.WeatherReading{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full query string, api key included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return outfit.WeatherReading{}, fmt.Errorf("weather request to %s failed: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return outfit.WeatherReading{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return outfit.WeatherReading{}, fmt.Errorf("decode weather response: %w", err)
	}
	if raw.Main.Temp == nil {
		return outfit.WeatherReading{}, errors.New("weather response missing main.temp")
	}

	reading := outfit.WeatherReading{
		Temperature: *raw.Main.Temp,
		Location:    raw.Name,
	}
	if len(raw.Weather) > 0 {
		reading.Description = capitalize(raw.Weather[0].Description)
	}
	return reading, nil
}

func (c *Client) endpoint(loc outfit.Location) string {
	query := url.Values{}
	if loc.Coordinates != nil {
		query.Set("lat", strconv.FormatFloat(loc.Coordinates.Lat, 'f', -1, 64))
		query.Set("lon", strconv.FormatFloat(loc.Coordinates.Lon, 'f', -1, 64))
	} else {
		query.Set("q", loc.City)
	}
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	return c.baseURL + "?" + query.Encode()
}

type apiResponse struct {
	Main    apiMain      `json:"main"`
	Weather []apiWeather `json:"weather"`
	Name    string       `json:"name"`
}

type apiMain struct {
	Temp *float64 `json:"temp"`
}

type apiWeather struct {
	Description string `json:"description"`
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

var _ outfit.WeatherClient = (*Client)(nil)
