package datasource

import (
	"context"

	"weather-cli/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current weather for a city in the given country
	GetWeather(ctx context.Context, city, countryCode string) (models.WeatherReport, error)

	// Name returns the provider's name
	Name() string
}
