// In file: internal/weather/client.go
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"

	userAgent = "Weather-Gateway-Agent/1.0"
)

// ClientOptions configures an OpenMeteoClient. Zero values select the public
// Open-Meteo endpoints and an http.Client without a timeout.
type ClientOptions struct {
	GeocodingURL string        `yaml:"geocoding_url"`
	ForecastURL  string        `yaml:"forecast_url"`
	Timeout      time.Duration `yaml:"http_timeout"`

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client `yaml:"-"`
}

// OpenMeteoClient talks to the Open-Meteo geocoding and forecast APIs.
type OpenMeteoClient struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
}

var _ Provider = (*OpenMeteoClient)(nil)

// NewOpenMeteoClient builds a client from opts.
func NewOpenMeteoClient(opts ClientOptions) *OpenMeteoClient {
	c := &OpenMeteoClient{
		geocodingURL: opts.GeocodingURL,
		forecastURL:  opts.ForecastURL,
		httpClient:   opts.HTTPClient,
	}
	if c.geocodingURL == "" {
		c.geocodingURL = DefaultGeocodingURL
	}
	if c.forecastURL == "" {
		c.forecastURL = DefaultForecastURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return c
}

type geocodingResponse struct {
	Results []struct {
		Name      *string  `json:"name"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Current *struct {
		Temperature *json.Number `json:"temperature_2m"`
		WeatherCode *json.Number `json:"weather_code"`
	} `json:"current"`
}

// Geocode looks up the first English-language match for city.
func (c *OpenMeteoClient) Geocode(ctx context.Context, city string) (*GeoResult, error) {
	params := url.Values{}
	params.Set("name", city)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	var resp geocodingResponse
	if err := c.getJSON(ctx, "geocoding", c.geocodingURL, params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	first := resp.Results[0]
	switch {
	case first.Latitude == nil:
		return nil, errors.New("geocoding result is missing 'latitude'")
	case first.Longitude == nil:
		return nil, errors.New("geocoding result is missing 'longitude'")
	case first.Name == nil:
		return nil, errors.New("geocoding result is missing 'name'")
	}
	return &GeoResult{Name: *first.Name, Latitude: *first.Latitude, Longitude: *first.Longitude}, nil
}

// Current fetches temperature (°C) and WMO weather code at a coordinate.
// Wind speed units are requested in m/s to match the upstream contract even
// though the wind speed itself is not read.
func (c *OpenMeteoClient) Current(ctx context.Context, latitude, longitude float64) (*Reading, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("current", "temperature_2m,weather_code")
	params.Set("wind_speed_unit", "ms")

	var resp forecastResponse
	if err := c.getJSON(ctx, "forecast", c.forecastURL, params, &resp); err != nil {
		return nil, err
	}
	reading := &Reading{}
	if resp.Current != nil {
		reading.Temperature = resp.Current.Temperature
		reading.WeatherCode = resp.Current.WeatherCode
	}
	return reading, nil
}

// getJSON issues a GET and decodes the JSON body into out.
func (c *OpenMeteoClient) getJSON(ctx context.Context, service, rawURL string, params url.Values, out any) error {
	base, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid %s URL: %w", service, err)
	}
	base.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", service, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s API: %w", service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Open-Meteo explains rejected requests as {"error": true, "reason": "..."}.
		var apiErr struct {
			Reason string `json:"reason"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Reason != "" {
			return fmt.Errorf("%s API returned status %d: %s", service, resp.StatusCode, apiErr.Reason)
		}
		return fmt.Errorf("%s API returned status %d", service, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", service, err)
	}
	return nil
}
