package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-update-service/internal/domain"
	"nba-update-service/internal/logging"
	"nba-update-service/internal/metrics"
)

// instrumentedProvider wraps a GameProvider with logging and metrics.
// Failures pass through untouched; every invocation is terminal by design of
// the update pipeline, so no retry or rate-limit behavior lives here.
type instrumentedProvider struct {
	inner    GameProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewInstrumentedProvider decorates the given provider with fetch logging and metrics.
func NewInstrumentedProvider(inner GameProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) GameProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
	}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	start := time.Now()
	games, err := p.inner.FetchGames(ctx, date)
	duration := time.Since(start)

	if p.recorder != nil {
		p.recorder.RecordProviderAttempt(p.name, duration, err)
	}

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logging.Error(logger, "provider fetch failed", err,
			slog.String(logging.FieldProvider, p.name),
			slog.String(logging.FieldDate, date),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
		return nil, err
	}

	logging.Info(logger, "provider fetch complete",
		slog.String(logging.FieldProvider, p.name),
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return games, nil
}
