package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, geo, forecast http.HandlerFunc) *OpenMeteoClient {
	t.Helper()
	mux := http.NewServeMux()
	if geo != nil {
		mux.HandleFunc("/v1/search", geo)
	}
	if forecast != nil {
		mux.HandleFunc("/v1/forecast", forecast)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewOpenMeteoClient(ClientOptions{
		GeocodingURL: srv.URL + "/v1/search",
		ForecastURL:  srv.URL + "/v1/forecast",
	})
}

func TestNewOpenMeteoClientDefaults(t *testing.T) {
	c := NewOpenMeteoClient(ClientOptions{})
	assert.Equal(t, DefaultGeocodingURL, c.geocodingURL)
	assert.Equal(t, DefaultForecastURL, c.forecastURL)
	require.NotNil(t, c.httpClient)
	assert.Zero(t, c.httpClient.Timeout)
}

func TestGeocodeSendsExpectedQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "São Paulo", q.Get("name"))
		assert.Equal(t, "1", q.Get("count"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "json", q.Get("format"))
		w.Write([]byte(`{"results":[{"name":"São Paulo","latitude":-23.5475,"longitude":-46.63611}]}`))
	}, nil)

	geo, err := c.Geocode(context.Background(), "São Paulo")
	require.NoError(t, err)
	require.NotNil(t, geo)
	assert.Equal(t, GeoResult{Name: "São Paulo", Latitude: -23.5475, Longitude: -46.63611}, *geo)
}

func TestGeocodeNoResults(t *testing.T) {
	for name, body := range map[string]string{
		"empty list":    `{"results":[]}`,
		"missing field": `{"generationtime_ms":0.5}`,
		"null":          `{"results":null}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}, nil)
			geo, err := c.Geocode(context.Background(), "Atlantis")
			require.NoError(t, err)
			assert.Nil(t, geo)
		})
	}
}

func TestGeocodeMissingKey(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"name":"Paris","longitude":2.35}]}`))
	}, nil)
	_, err := c.Geocode(context.Background(), "Paris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}

func TestGeocodeErrorStatusCarriesReason(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":true,"reason":"Parameter count must be between 1 and 100."}`))
	}, nil)
	_, err := c.Geocode(context.Background(), "Paris")
	require.Error(t, err)
	assert.Equal(t, "geocoding API returned status 400: Parameter count must be between 1 and 100.", err.Error())
}

func TestCurrentSendsExpectedQuery(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "48.85", q.Get("latitude"))
		assert.Equal(t, "2.35", q.Get("longitude"))
		assert.Equal(t, "temperature_2m,weather_code", q.Get("current"))
		assert.Equal(t, "ms", q.Get("wind_speed_unit"))
		w.Write([]byte(`{"current":{"time":"2024-01-01T12:00","temperature_2m":15.2,"weather_code":3}}`))
	})

	reading, err := c.Current(context.Background(), 48.85, 2.35)
	require.NoError(t, err)
	assert.Equal(t, "15.2", reading.TemperatureText())
	assert.Equal(t, "Mainly clear, partly cloudy, and overcast", reading.Description())
}

func TestCurrentWithoutCurrentSection(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude":48.85}`))
	})
	reading, err := c.Current(context.Background(), 48.85, 2.35)
	require.NoError(t, err)
	assert.Nil(t, reading.Temperature)
	assert.Nil(t, reading.WeatherCode)
}

func TestCurrentMalformedJSON(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	})
	_, err := c.Current(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse forecast response")
}
