package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingResolver struct {
	cities []string
	reply  string
}

func (r *recordingResolver) Resolve(ctx context.Context, city string) string {
	r.cities = append(r.cities, city)
	return r.reply
}

func TestWeatherToolDefinition(t *testing.T) {
	def := NewWeatherTool(&recordingResolver{}).Definition()

	assert.Equal(t, WeatherToolName, def.Function.Name)
	assert.Equal(t, "object", def.Function.Parameters.Type)
	assert.Equal(t, []string{"city"}, def.Function.Parameters.Required)
	require.Contains(t, def.Function.Parameters.Properties, "city")
	assert.Equal(t, "string", def.Function.Parameters.Properties["city"].Type)

	raw, err := json.Marshal(def)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "function",
		"function": {
			"name": "get_current_weather",
			"description": "Get the current weather for a city using Open-Meteo.",
			"parameters": {
				"type": "object",
				"properties": {"city": {"type": "string", "description": "The city name, e.g. Paris or Kharagpur"}},
				"required": ["city"]
			}
		}
	}`, string(raw))
}

func TestWeatherToolExecute(t *testing.T) {
	res := &recordingResolver{reply: "Weather in Paris: 15.2°C, Fog"}
	out, err := NewWeatherTool(res).Execute(context.Background(), `{"city":"Paris"}`)

	require.NoError(t, err)
	assert.Equal(t, "Weather in Paris: 15.2°C, Fog", out)
	assert.Equal(t, []string{"Paris"}, res.cities)
}

func TestWeatherToolBadArguments(t *testing.T) {
	for name, args := range map[string]string{
		"not json":   `city=Paris`,
		"wrong type": `{"city": 42}`,
		"missing":    `{}`,
		"blank":      `{"city": "  "}`,
	} {
		t.Run(name, func(t *testing.T) {
			res := &recordingResolver{}
			_, err := NewWeatherTool(res).Execute(context.Background(), args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid arguments for weather tool")
			assert.Empty(t, res.cities)
		})
	}
}
