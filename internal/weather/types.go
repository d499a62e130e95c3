// In file: internal/weather/types.go

// Package weather resolves a city name into a one-line description of its
// current weather using the Open-Meteo geocoding and forecast services.
package weather

import (
	"context"
	"encoding/json"
)

// NotAvailable stands in for a reading the forecast service did not report.
const NotAvailable = "N/A"

// GeoResult is the best geocoding match for a city query.
type GeoResult struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Reading holds the current conditions at a coordinate. Values keep the exact
// numeric text the forecast service sent; nil means the field was absent.
type Reading struct {
	Temperature *json.Number
	WeatherCode *json.Number
}

// TemperatureText returns the temperature as sent, or NotAvailable.
func (r Reading) TemperatureText() string {
	if r.Temperature == nil {
		return NotAvailable
	}
	return r.Temperature.String()
}

// Description maps the reading's weather code through the WMO table.
func (r Reading) Description() string {
	if r.WeatherCode == nil {
		return unknownLabel
	}
	if code, err := r.WeatherCode.Int64(); err == nil {
		return Describe(int(code))
	}
	// Some producers emit integral codes as 3.0.
	f, err := r.WeatherCode.Float64()
	if err != nil || f != float64(int(f)) {
		return unknownLabel
	}
	return Describe(int(f))
}

// Provider performs the two lookups a resolution needs. Geocode returns a nil
// result without error when the service knows no such place.
type Provider interface {
	Geocode(ctx context.Context, city string) (*GeoResult, error)
	Current(ctx context.Context, latitude, longitude float64) (*Reading, error)
}
