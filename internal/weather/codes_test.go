package weather

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeKnownCodes(t *testing.T) {
	want := map[int]string{
		0:  "Clear sky",
		1:  "Mainly clear, partly cloudy, and overcast",
		2:  "Mainly clear, partly cloudy, and overcast",
		3:  "Mainly clear, partly cloudy, and overcast",
		45: "Fog",
		48: "Fog",
		51: "Drizzle",
		53: "Drizzle",
		55: "Drizzle",
		61: "Rain",
		63: "Rain",
		65: "Rain",
		71: "Snow fall",
		73: "Snow fall",
		75: "Snow fall",
		95: "Thunderstorm",
		96: "Thunderstorm",
		99: "Thunderstorm",
	}
	for code, label := range want {
		assert.Equal(t, label, Describe(code), "code %d", code)
	}
}

func TestDescribeUnknownCodes(t *testing.T) {
	listed := map[int]bool{}
	for _, g := range Descriptions {
		for _, c := range g.Codes {
			listed[c] = true
		}
	}
	for code := -5; code <= 120; code++ {
		if listed[code] {
			continue
		}
		assert.Equal(t, "Unknown", Describe(code), "code %d", code)
	}
}

func TestReadingDescription(t *testing.T) {
	num := func(s string) *json.Number {
		n := json.Number(s)
		return &n
	}
	tests := []struct {
		name string
		code *json.Number
		want string
	}{
		{"missing", nil, "Unknown"},
		{"integer", num("61"), "Rain"},
		{"integral float", num("3.0"), "Mainly clear, partly cloudy, and overcast"},
		{"fractional", num("3.5"), "Unknown"},
		{"unlisted", num("80"), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reading{WeatherCode: tt.code}.Description())
		})
	}
}

func TestReadingTemperatureText(t *testing.T) {
	assert.Equal(t, "N/A", Reading{}.TemperatureText())

	n := json.Number("15.0")
	assert.Equal(t, "15.0", Reading{Temperature: &n}.TemperatureText())
}
