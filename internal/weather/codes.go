// In file: internal/weather/codes.go
package weather

const unknownLabel = "Unknown"

// CodeGroup labels a set of WMO weather codes.
type CodeGroup struct {
	Codes []int
	Label string
}

// Descriptions is the ordered WMO code table. Codes not listed are "Unknown".
var Descriptions = []CodeGroup{
	{Codes: []int{0}, Label: "Clear sky"},
	{Codes: []int{1, 2, 3}, Label: "Mainly clear, partly cloudy, and overcast"},
	{Codes: []int{45, 48}, Label: "Fog"},
	{Codes: []int{51, 53, 55}, Label: "Drizzle"},
	{Codes: []int{61, 63, 65}, Label: "Rain"},
	{Codes: []int{71, 73, 75}, Label: "Snow fall"},
	{Codes: []int{95, 96, 99}, Label: "Thunderstorm"},
}

// Describe returns the short English label for a WMO weather code.
func Describe(code int) string {
	for _, group := range Descriptions {
		for _, c := range group.Codes {
			if c == code {
				return group.Label
			}
		}
	}
	return unknownLabel
}
