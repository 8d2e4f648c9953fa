package models

// Condition is a single weather condition descriptor reported by the provider
type Condition struct {
	Description string `json:"description"` // e.g. "clear sky", "light rain"
}

// WeatherReport represents the current weather for one location
type WeatherReport struct {
	Location    string      `json:"location"`    // place name as reported by the provider
	Conditions  []Condition `json:"conditions"`  // never empty for a decoded report
	Temperature float64     `json:"temperature"` // in Celsius
	Humidity    float64     `json:"humidity"`    // percentage
	Pressure    float64     `json:"pressure"`    // in hPa
	WindSpeed   float64     `json:"windSpeed"`   // in m/s
}

// PrimaryCondition returns the first condition descriptor of the report
func (r WeatherReport) PrimaryCondition() Condition {
	if len(r.Conditions) == 0 {
		return Condition{}
	}
	return r.Conditions[0]
}
