// In file: internal/weather/resolver.go
package weather

import (
	"context"
	"fmt"

	"github.com/dileep-u-k/weather-gateway/internal/log"
)

// Resolver turns a city name into a human-readable weather line.
type Resolver struct {
	provider Provider
}

// NewResolver creates a Resolver backed by provider.
func NewResolver(provider Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve never fails: lookup problems come back as descriptive text so the
// calling agent can relay them to the user.
func (r *Resolver) Resolve(ctx context.Context, city string) (result string) {
	defer func() {
		if p := recover(); p != nil {
			log.Errorf("weather resolution for %q panicked: %v", city, p)
			result = fmt.Sprintf("Error fetching weather: %v", p)
		}
	}()

	text, err := r.resolve(ctx, city)
	if err != nil {
		log.Warnf("weather lookup for %q failed: %v", city, err)
		return fmt.Sprintf("Error fetching weather: %v", err)
	}
	return text
}

func (r *Resolver) resolve(ctx context.Context, city string) (string, error) {
	geo, err := r.provider.Geocode(ctx, city)
	if err != nil {
		return "", err
	}
	if geo == nil {
		log.Infof("no coordinates found for %q", city)
		return fmt.Sprintf("Could not find coordinates for %s.", city), nil
	}
	// Only the first match is used; ambiguous names are not surfaced.
	log.Debugf("resolved %q to %s (%v, %v)", city, geo.Name, geo.Latitude, geo.Longitude)

	reading, err := r.provider.Current(ctx, geo.Latitude, geo.Longitude)
	if err != nil {
		return "", err
	}
	if reading == nil {
		reading = &Reading{}
	}
	return fmt.Sprintf("Weather in %s: %s°C, %s", geo.Name, reading.TemperatureText(), reading.Description()), nil
}
