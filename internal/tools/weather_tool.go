// In file: internal/tools/weather_tool.go
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// WeatherToolName is the function name the model uses to request weather.
const WeatherToolName = "get_current_weather"

// CityResolver produces a weather line for a city. weather.Resolver satisfies it.
type CityResolver interface {
	Resolve(ctx context.Context, city string) string
}

// WeatherTool exposes a CityResolver to the agent.
type WeatherTool struct {
	resolver CityResolver
}

var _ ToolExecutor = (*WeatherTool)(nil)

func NewWeatherTool(resolver CityResolver) *WeatherTool {
	return &WeatherTool{resolver: resolver}
}

func (wt *WeatherTool) Definition() Tool {
	return NewFunctionTool(
		WeatherToolName,
		"Get the current weather for a city using Open-Meteo.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"city": {
					Type:        "string",
					Description: "The city name, e.g. Paris or Kharagpur",
				},
			},
			Required: []string{"city"},
		},
	)
}

// Execute decodes {"city": "..."} and returns the resolver's text. Lookup
// failures are already folded into that text; only malformed arguments
// produce an error.
func (wt *WeatherTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		City *string `json:"city"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for weather tool: %w", err)
	}
	if args.City == nil || strings.TrimSpace(*args.City) == "" {
		return "", fmt.Errorf("invalid arguments for weather tool: 'city' is required")
	}
	return wt.resolver.Resolve(ctx, *args.City), nil
}
