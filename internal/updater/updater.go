package updater

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nba-update-service/internal/config"
	"nba-update-service/internal/format"
	"nba-update-service/internal/logging"
	"nba-update-service/internal/metrics"
	"nba-update-service/internal/notify"
	"nba-update-service/internal/providers"
	"nba-update-service/internal/timeutil"
)

// blockSeparator joins per-game text blocks into one notification body.
const blockSeparator = "\n---\n"

// Result is the terminal outcome of one invocation: a status code plus a
// short human-readable body, returned to whatever triggered the run.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Updater orchestrates one fetch-format-publish invocation. Every failure is
// terminal; retries, if any, belong to the external scheduler.
type Updater struct {
	cfg      config.UpdatesConfig
	provider providers.GameProvider
	sink     notify.Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// New constructs an Updater. The provider and sink are required for successful
// runs but config validation happens per invocation, so a partially wired
// Updater still reports a configuration error instead of panicking.
func New(cfg config.UpdatesConfig, provider providers.GameProvider, sink notify.Sink, logger *slog.Logger, recorder *metrics.Recorder) *Updater {
	return &Updater{
		cfg:      cfg,
		provider: provider,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Run executes one invocation end to end and returns its terminal result.
func (u *Updater) Run(ctx context.Context) Result {
	start := u.now()
	res := u.run(ctx)
	if u.metrics != nil {
		u.metrics.RecordRunCycle(time.Since(start), res.StatusCode)
	}
	return res
}

func (u *Updater) run(ctx context.Context) Result {
	logger := logging.FromContext(ctx, u.logger)

	if u.cfg.Missing() {
		logging.Error(logger, "missing required configuration", nil)
		return Result{StatusCode: http.StatusInternalServerError, Body: "Missing environment variables"}
	}

	date := timeutil.CentralDate(u.now())
	logging.Info(logger, "fetching games", slog.String(logging.FieldDate, date))

	games, err := u.provider.FetchGames(ctx, date)
	if err != nil {
		return u.fetchFailure(logger, err)
	}

	if len(games) == 0 {
		logging.Info(logger, "no games for date", slog.String(logging.FieldDate, date))
		return Result{StatusCode: http.StatusOK, Body: "No games available for today."}
	}

	blocks := make([]string, 0, len(games))
	for _, game := range games {
		blocks = append(blocks, format.Game(game))
	}
	body := strings.Join(blocks, blockSeparator)

	publishStart := u.now()
	err = u.sink.Publish(ctx, u.cfg.Subject, body)
	if u.metrics != nil {
		u.metrics.RecordPublish(u.cfg.Topic, time.Since(publishStart), err)
	}
	if err != nil {
		return u.publishFailure(logger, err)
	}

	logging.Info(logger, "update published",
		slog.String(logging.FieldTopic, u.cfg.Topic),
		slog.Int(logging.FieldCount, len(games)),
	)
	return Result{StatusCode: http.StatusOK, Body: "Data processed and published"}
}

func (u *Updater) fetchFailure(logger *slog.Logger, err error) Result {
	if httpErr, ok := providers.AsHTTPError(err); ok {
		logging.Error(logger, "upstream returned error status", err,
			slog.Int(logging.FieldStatusCode, httpErr.StatusCode))
		return Result{StatusCode: httpErr.StatusCode, Body: fmt.Sprintf("HTTP Error: %s", httpErr.Reason)}
	}
	if trErr, ok := providers.AsTransportError(err); ok {
		logging.Error(logger, "upstream unreachable", err)
		return Result{StatusCode: http.StatusInternalServerError, Body: fmt.Sprintf("URL Error: %v", trErr.Err)}
	}
	if _, ok := providers.AsDecodeError(err); ok {
		logging.Error(logger, "upstream response malformed", err)
		return Result{StatusCode: http.StatusInternalServerError, Body: "Error decoding JSON response"}
	}
	logging.Error(logger, "unexpected fetch failure", err)
	return Result{StatusCode: http.StatusInternalServerError, Body: fmt.Sprintf("Unexpected error: %v", err)}
}

func (u *Updater) publishFailure(logger *slog.Logger, err error) Result {
	if _, ok := notify.AsPublishError(err); ok {
		logging.Error(logger, "publish to topic failed", err,
			slog.String(logging.FieldTopic, u.cfg.Topic))
		return Result{StatusCode: http.StatusInternalServerError, Body: "Error publishing to topic"}
	}
	logging.Error(logger, "unexpected publish failure", err)
	return Result{StatusCode: http.StatusInternalServerError, Body: fmt.Sprintf("Unexpected error: %v", err)}
}
