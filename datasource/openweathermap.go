package datasource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"weather-cli/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultOpenWeatherMapURL is the base URL of the OpenWeatherMap 2.5 API
const DefaultOpenWeatherMapURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapProvider fetches current weather from OpenWeatherMap
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// Ensure OpenWeatherMapProvider implements WeatherProvider
var _ WeatherProvider = (*OpenWeatherMapProvider)(nil)

// Option configures an OpenWeatherMapProvider
type Option func(*OpenWeatherMapProvider)

// WithBaseURL points the provider at a different API root
func WithBaseURL(baseURL string) Option {
	return func(p *OpenWeatherMapProvider) {
		p.baseURL = baseURL
	}
}

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(client *http.Client) Option {
	return func(p *OpenWeatherMapProvider) {
		p.httpClient = client
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(log *zap.Logger) Option {
	return func(p *OpenWeatherMapProvider) {
		p.log = log
	}
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider.
// The default client has no timeout: a lookup blocks until the transport
// resolves or fails.
func NewOpenWeatherMapProvider(apiKey string, opts ...Option) *OpenWeatherMapProvider {
	p := &OpenWeatherMapProvider{
		apiKey:     apiKey,
		baseURL:    DefaultOpenWeatherMapURL,
		httpClient: &http.Client{},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// requestURL builds the current weather URL. City and country code are
// passed through as given.
func (p *OpenWeatherMapProvider) requestURL(city, countryCode string) string {
	params := url.Values{}
	params.Add("q", city+","+countryCode)
	params.Add("appid", p.apiKey)
	params.Add("units", "metric")
	return fmt.Sprintf("%s/weather?%s", p.baseURL, params.Encode())
}

// GetWeather fetches current weather for a city in the given country
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, city, countryCode string) (models.WeatherReport, error) {
	log := p.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("provider", p.Name()),
		zap.String("city", city),
		zap.String("country", countryCode),
	)

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.requestURL(city, countryCode), nil)
	if err != nil {
		return models.WeatherReport{}, &TransportError{Op: "create request", Err: err}
	}

	log.Debug("requesting current weather")

	// Execute request
	resp, err := p.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the request URL, which carries the credential
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		log.Debug("request failed", zap.Error(err))
		return models.WeatherReport{}, &TransportError{Op: "execute request", Err: err}
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherReport{}, &TransportError{Op: "read response body", Err: err}
	}

	log.Debug("received response", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(body)))

	// The status is not checked up front; an error body fails to decode
	report, err := DecodeWeatherReport(body)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) && (resp.StatusCode < 200 || resp.StatusCode > 299) {
			decodeErr.Status = resp.StatusCode
			decodeErr.ProviderMessage = providerMessage(body)
		}
		log.Debug("decode failed", zap.Error(err))
		return models.WeatherReport{}, err
	}

	log.Debug("decoded report",
		zap.String("location", report.Location),
		zap.String("condition", report.PrimaryCondition().Description),
	)
	return report, nil
}
