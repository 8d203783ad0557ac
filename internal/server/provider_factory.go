package server

import (
	"log/slog"
	"strings"

	"nba-update-service/internal/config"
	"nba-update-service/internal/metrics"
	"nba-update-service/internal/providers"
	"nba-update-service/internal/providers/fixture"
	"nba-update-service/internal/providers/sportsdata"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	name := strings.ToLower(cfg.Provider)
	base := selectProvider(name, cfg)
	return providers.NewInstrumentedProvider(base, name, f.logger, f.metrics)
}

func selectProvider(name string, cfg config.Config) providers.GameProvider {
	switch name {
	case "fixture":
		return fixture.New()
	default:
		return sportsdata.NewClient(sportsdata.Config{
			BaseURL: cfg.Sportsdata.BaseURL,
			APIKey:  cfg.Updates.APIKey,
		})
	}
}
