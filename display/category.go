package display

// Category is the visual emphasis bucket derived from a condition description
type Category int

const (
	// Neutral is used for every description not in the table
	Neutral Category = iota
	Sunny
	Cloudy
	Hazy
	Precipitation
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case Sunny:
		return "sunny"
	case Cloudy:
		return "cloudy"
	case Hazy:
		return "hazy"
	case Precipitation:
		return "precipitation"
	default:
		return "neutral"
	}
}

// categories maps OpenWeatherMap descriptions to categories. Matching is exact
// and case-sensitive.
var categories = map[string]Category{
	"clear sky": Sunny,

	"few clouds":       Cloudy,
	"scattered clouds": Cloudy,
	"broken clouds":    Cloudy,

	"overcast clouds": Hazy,
	"mist":            Hazy,
	"haze":            Hazy,
	"smoke":           Hazy,
	"sand":            Hazy,
	"dust":            Hazy,
	"fog":             Hazy,
	"squalls":         Hazy,

	"shower rain":  Precipitation,
	"rain":         Precipitation,
	"thunderstorm": Precipitation,
	"tornado":      Precipitation,
	"snow":         Precipitation,
}

// Categorize returns the category for a condition description
func Categorize(description string) Category {
	if c, ok := categories[description]; ok {
		return c
	}
	return Neutral
}
