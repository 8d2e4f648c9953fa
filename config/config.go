package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	// APIKeyVar holds the OpenWeatherMap API key
	APIKeyVar = "OPENWEATHER_API_KEY"
	// LogLevelVar selects the diagnostic log level
	LogLevelVar = "WEATHER_LOG_LEVEL"
	// DefaultEnvFile is the key=value file merged in at startup
	DefaultEnvFile = ".env"

	defaultLogLevel = "warn"
)

// ErrMissingCredential is returned when no source provides the API key
var ErrMissingCredential = errors.New("API credential not set")

// Error is a fatal configuration error
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Config holds the resolved application configuration
type Config struct {
	APIKey       string
	APIKeySource string // name of the source that provided APIKey
	LogLevel     string
}

// Load resolves the configuration from the given sources in order.
// A missing credential is returned as *Error wrapping ErrMissingCredential.
func Load(log *zap.Logger, sources ...Source) (*Config, error) {
	for _, src := range sources {
		if fs, ok := src.(*FileSource); ok {
			if err := fs.Err(); err != nil {
				log.Warn("ignoring env file", zap.String("path", fs.Path()), zap.Error(err))
			}
		}
	}

	apiKey, from, ok := Lookup(sources, APIKeyVar)
	if !ok {
		return nil, &Error{Key: APIKeyVar, Err: ErrMissingCredential}
	}
	log.Debug("resolved API credential", zap.String("source", from))

	return &Config{
		APIKey:       apiKey,
		APIKeySource: from,
		LogLevel:     LogLevel(sources),
	}, nil
}

// LogLevel returns the configured log level, or the default
func LogLevel(sources []Source) string {
	if level, _, ok := Lookup(sources, LogLevelVar); ok {
		return level
	}
	return defaultLogLevel
}
