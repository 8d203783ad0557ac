package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"nba-update-service/internal/config"
	httpserver "nba-update-service/internal/http"
	"nba-update-service/internal/http/handlers"
	"nba-update-service/internal/http/middleware"
	"nba-update-service/internal/logging"
	"nba-update-service/internal/metrics"
	"nba-update-service/internal/notify"
	"nba-update-service/internal/runner"
	"nba-update-service/internal/updater"
)

var metricsSetup = metrics.Setup

// Runner abstracts the interval scheduler for testing.
type Runner interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() runner.Status
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	redisClient   *redis.Client
	updater       *updater.Updater
	runner        Runner
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider, sink, and runner wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	provider := newProviderFactory(logger, recorder).build(cfg)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	sink := notify.NewRedisSink(redisClient, cfg.Updates.Topic)
	upd := updater.New(cfg.Updates, provider, sink, logger, recorder)

	var run Runner
	if cfg.RunnerEnabled {
		run = runner.New(upd, logger, cfg.RunInterval)
	}

	srv := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		redisClient:   redisClient,
		updater:       upd,
		runner:        run,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
	srv.httpServer = buildHTTPServer(cfg, upd, run, logger, recorder)
	return srv
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, run Runner) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		runner:     run,
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recorder, promHandler, shutdown, err := metricsSetup(context.Background(), metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		return metrics.NewRecorder(), nil, nil
	}
	if promHandler == nil {
		return recorder, nil, shutdown
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promHandler)
	srv := &http.Server{
		Addr:         ":" + cfg.Metrics.Port,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return recorder, netHTTPServer{srv: srv}, shutdown
}

func buildHTTPServer(cfg config.Config, upd *updater.Updater, run Runner, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var statusFn func() runner.Status
	if run != nil {
		statusFn = run.Status
	}

	handler := handlers.NewHandler(upd, statusFn, logger)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the runner and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.runner != nil {
		s.runner.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(logger, name+" server failed", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.runner != nil {
		if err := s.runner.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop runner", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			logging.Warn(s.logger, "redis close failed", "error", err)
		}
	}
}
