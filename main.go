package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"weather-cli/config"
	"weather-cli/datasource"
	"weather-cli/display"
	"weather-cli/logger"
	"weather-cli/session"

	"go.uber.org/zap"
)

// app holds everything main wires together; tests swap the streams and
// point the provider at a local server
type app struct {
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	envFile      string
	providerOpts []datasource.Option
}

func main() {
	a := app{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		envFile: config.DefaultEnvFile,
	}
	os.Exit(a.run(context.Background()))
}

// run returns the process exit status
func (a app) run(ctx context.Context) int {
	sources := config.DefaultSources(a.envFile)

	log := logger.New(config.LogLevel(sources), a.stderr)
	defer log.Sync()

	// Load configuration; nothing touches the network without a credential
	cfg, err := config.Load(log, sources...)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}

	opts := append([]datasource.Option{datasource.WithLogger(log)}, a.providerOpts...)
	provider := datasource.NewOpenWeatherMapProvider(cfg.APIKey, opts...)
	log.Info("using weather provider", zap.String("provider", provider.Name()), zap.String("credential_source", cfg.APIKeySource))

	s := session.New(a.stdin, a.stdout, a.stderr, provider, display.NewPresenter(a.stdout), log)
	if err := s.Run(ctx); err != nil {
		// Only input failures end a session early
		fmt.Fprintln(a.stderr, err)
		return 1
	}
	return 0
}
