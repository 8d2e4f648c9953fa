package datasource

import (
	"encoding/json"
	"errors"

	"weather-cli/models"
)

// currentWeatherResponse mirrors the subset of the OpenWeatherMap current
// weather payload that is read. Pointers distinguish absent or null fields
// from zero values.
type currentWeatherResponse struct {
	Weather *[]struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
		Pressure *float64 `json:"pressure"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Name *string `json:"name"`
}

// DecodeWeatherReport parses a current weather response body.
// Decoding is all-or-nothing: on error the zero report is returned.
func DecodeWeatherReport(body []byte) (models.WeatherReport, error) {
	var resp currentWeatherResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if typeErr.Field == "" {
				return models.WeatherReport{}, malformed("expected a JSON object, got %s", typeErr.Value)
			}
			return models.WeatherReport{}, malformed("field %q: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
		}
		return models.WeatherReport{}, malformed("invalid JSON: %v", err)
	}

	if resp.Weather == nil {
		return models.WeatherReport{}, malformed("missing field %q", "weather")
	}
	if len(*resp.Weather) == 0 {
		return models.WeatherReport{}, malformed("empty %q list", "weather")
	}
	conditions := make([]models.Condition, 0, len(*resp.Weather))
	for _, w := range *resp.Weather {
		if w.Description == nil {
			return models.WeatherReport{}, malformed("missing field %q", "weather.description")
		}
		conditions = append(conditions, models.Condition{Description: *w.Description})
	}

	if resp.Main == nil {
		return models.WeatherReport{}, malformed("missing field %q", "main")
	}
	if resp.Main.Temp == nil {
		return models.WeatherReport{}, malformed("missing field %q", "main.temp")
	}
	if resp.Main.Humidity == nil {
		return models.WeatherReport{}, malformed("missing field %q", "main.humidity")
	}
	if resp.Main.Pressure == nil {
		return models.WeatherReport{}, malformed("missing field %q", "main.pressure")
	}
	if resp.Wind == nil {
		return models.WeatherReport{}, malformed("missing field %q", "wind")
	}
	if resp.Wind.Speed == nil {
		return models.WeatherReport{}, malformed("missing field %q", "wind.speed")
	}
	if resp.Name == nil {
		return models.WeatherReport{}, malformed("missing field %q", "name")
	}

	return models.WeatherReport{
		Location:    *resp.Name,
		Conditions:  conditions,
		Temperature: *resp.Main.Temp,
		Humidity:    *resp.Main.Humidity,
		Pressure:    *resp.Main.Pressure,
		WindSpeed:   *resp.Wind.Speed,
	}, nil
}

// providerMessage extracts the "message" field OpenWeatherMap puts in error
// bodies such as {"cod":401,"message":"Invalid API key..."}
func providerMessage(body []byte) string {
	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.Message
}
