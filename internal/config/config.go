package config

// UpdatesConfig carries the two values every invocation requires.
type UpdatesConfig struct {
	APIKey  string
	Topic   string
	Subject string
}

// Missing reports whether a required value is absent. Invocations short-circuit
// on this before any network call.
func (u UpdatesConfig) Missing() bool {
	return u.APIKey == "" || u.Topic == ""
}

// SportsdataConfig controls how the upstream scores API is reached.
type SportsdataConfig struct {
	BaseURL string
}

// RedisConfig controls the connection to the notification broker.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Config holds runtime configuration for the service.
type Config struct {
	Port          string
	RunInterval   Duration
	RunnerEnabled bool
	Provider      string
	Updates       UpdatesConfig
	Sportsdata    SportsdataConfig
	Redis         RedisConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		RunInterval:   durationEnvOrDefault(envRunInterval, defaultRunInterval),
		RunnerEnabled: boolEnvOrDefault(envRunnerEnabled, defaultRunnerEnabled),
		Provider:      envOrDefault(envProvider, defaultProvider),
		Updates: UpdatesConfig{
			APIKey:  envOrDefault(envAPIKey, ""),
			Topic:   envOrDefault(envTopic, ""),
			Subject: envOrDefault(envSubject, defaultSubject),
		},
		Sportsdata: SportsdataConfig{
			BaseURL: envOrDefault(envBaseURL, defaultBaseURL),
		},
		Redis: RedisConfig{
			Addr:     envOrDefault(envRedisAddr, defaultRedisAddr),
			Password: envOrDefault(envRedisPassword, ""),
			DB:       intEnvOrDefault(envRedisDB, 0),
		},
		Metrics: loadMetrics(),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, ""),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
