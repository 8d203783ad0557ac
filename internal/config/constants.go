package config

import "time"

const (
	envPort          = "PORT"
	envRunInterval   = "RUN_INTERVAL"
	envRunnerEnabled = "RUNNER_ENABLED"
	envProvider      = "PROVIDER"
	envAPIKey        = "NBA_API_KEY"
	envTopic         = "UPDATE_TOPIC"
	envSubject       = "UPDATE_SUBJECT"
	envBaseURL       = "SPORTSDATA_BASE_URL"
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "sportsdata"
	// Conservative default cadence; upstream scores refresh roughly once a minute.
	defaultRunInterval   = 15 * Duration(time.Minute)
	defaultRunnerEnabled = true
	defaultSubject       = "NBA Game Updates"
	defaultBaseURL       = "https://api.sportsdata.io/v3/nba/scores/json/GamesByDate"
	defaultRedisAddr     = "localhost:6379"
	defaultMetricsPort   = "9090"
)
