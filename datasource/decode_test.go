package datasource

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"weather-cli/models"
)

const londonBody = `{"weather":[{"description":"clear sky"}],"main":{"temp":15.0,"humidity":70.0,"pressure":1012.0},"wind":{"speed":3.2},"name":"London"}`

func TestDecodeWeatherReport(t *testing.T) {
	report, err := DecodeWeatherReport([]byte(londonBody))
	if err != nil {
		t.Fatalf("DecodeWeatherReport failed: %v", err)
	}

	want := models.WeatherReport{
		Location:    "London",
		Conditions:  []models.Condition{{Description: "clear sky"}},
		Temperature: 15.0,
		Humidity:    70.0,
		Pressure:    1012.0,
		WindSpeed:   3.2,
	}
	if !reflect.DeepEqual(report, want) {
		t.Fatalf("got %+v, want %+v", report, want)
	}
}

func TestDecodeWeatherReportKeepsPrecisionAndIgnoresExtras(t *testing.T) {
	body := `{
		"coord": {"lon": -0.1257, "lat": 51.5085},
		"weather": [
			{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"},
			{"id": 701, "main": "Mist", "description": "mist", "icon": "50d"}
		],
		"main": {"temp": -3.456789, "feels_like": -7.1, "humidity": 93, "pressure": 998.25},
		"wind": {"speed": 12.3456, "deg": 250},
		"name": "Reykjavík",
		"cod": 200
	}`

	report, err := DecodeWeatherReport([]byte(body))
	if err != nil {
		t.Fatalf("DecodeWeatherReport failed: %v", err)
	}
	if report.Temperature != -3.456789 || report.Humidity != 93 || report.Pressure != 998.25 || report.WindSpeed != 12.3456 {
		t.Fatalf("numeric fields changed: %+v", report)
	}
	if report.Location != "Reykjavík" {
		t.Fatalf("location = %q", report.Location)
	}
	if len(report.Conditions) != 2 || report.PrimaryCondition().Description != "light rain" {
		t.Fatalf("conditions = %+v", report.Conditions)
	}
}

func TestDecodeWeatherReportMalformed(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		reason string
	}{
		{"empty weather", `{"weather":[],"main":{"temp":1,"humidity":2,"pressure":3},"wind":{"speed":4},"name":"X"}`, `empty "weather"`},
		{"missing weather", `{"main":{"temp":1,"humidity":2,"pressure":3},"wind":{"speed":4},"name":"X"}`, `"weather"`},
		{"null weather", `{"weather":null,"main":{"temp":1,"humidity":2,"pressure":3},"wind":{"speed":4},"name":"X"}`, `"weather"`},
		{"missing description", `{"weather":[{"main":"Clear"}],"main":{"temp":1,"humidity":2,"pressure":3},"wind":{"speed":4},"name":"X"}`, `"weather.description"`},
		{"missing main", `{"weather":[{"description":"rain"}],"wind":{"speed":4},"name":"X"}`, `"main"`},
		{"missing temp", `{"weather":[{"description":"rain"}],"main":{"humidity":2,"pressure":3},"wind":{"speed":4},"name":"X"}`, `"main.temp"`},
		{"missing humidity", `{"weather":[{"description":"rain"}],"main":{"temp":1,"pressure":3},"wind":{"speed":4},"name":"X"}`, `"main.humidity"`},
		{"missing pressure", `{"weather":[{"description":"rain"}],"main":{"temp":1,"humidity":2},"wind":{"speed":4},"name":"X"}`, `"main.pressure"`},
		{"missing wind", `{"weather":[{"description":"rain"}],"main":{"temp":1,"humidity":2,"pressure":3},"name":"X"}`, `"wind"`},
		{"missing speed", `{"weather":[{"description":"rain"}],"main":{"temp":1,"humidity":2,"pressure":3},"wind":{"deg":10},"name":"X"}`, `"wind.speed"`},
		{"missing name", `{"weather":[{"description":"rain"}],"main":{"temp":1,"humidity":2,"pressure":3},"wind":{"speed":4}}`, `"name"`},
		{"string temp", `{"weather":[{"description":"rain"}],"main":{"temp":"warm","humidity":2,"pressure":3},"wind":{"speed":4},"name":"X"}`, `main.temp`},
		{"numeric name", `{"weather":[{"description":"rain"}],"main":{"temp":1,"humidity":2,"pressure":3},"wind":{"speed":4},"name":7}`, `name`},
		{"top level array", `[]`, "JSON object"},
		{"not json", `<html>502 Bad Gateway</html>`, "invalid JSON"},
		{"empty body", ``, "invalid JSON"},
		{"provider error", `{"cod":401,"message":"Invalid API key."}`, `"weather"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := DecodeWeatherReport([]byte(tt.body))
			if err == nil {
				t.Fatalf("expected an error, got report %+v", report)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *DecodeError, got %T", err)
			}
			if !strings.Contains(decodeErr.Reason, tt.reason) {
				t.Errorf("reason %q does not mention %q", decodeErr.Reason, tt.reason)
			}
			if !reflect.DeepEqual(report, models.WeatherReport{}) {
				t.Errorf("report partially populated: %+v", report)
			}
		})
	}
}

func TestProviderMessage(t *testing.T) {
	if got := providerMessage([]byte(`{"cod":"404","message":"city not found"}`)); got != "city not found" {
		t.Errorf("providerMessage = %q", got)
	}
	if got := providerMessage([]byte(`not json`)); got != "" {
		t.Errorf("providerMessage on garbage = %q", got)
	}
}
