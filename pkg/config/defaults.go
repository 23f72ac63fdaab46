package config

import "time"

// Default values for configuration fields.
const (
	// Parser defaults
	DefaultMaxFileSize  = int64(10 * 1024 * 1024) // 10MB
	DefaultContextLines = 2

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "text"

	// Metrics defaults
	DefaultMetricsEnabled       = true
	DefaultMetricsListenAddress = "127.0.0.1:9464"
	DefaultMetricsPath          = "/metrics"

	// Tracing defaults
	DefaultTracingExporter    = "otlp"
	DefaultTracingEndpoint    = "localhost:4317"
	DefaultTracingInsecure    = true
	DefaultTracingSampler     = "always"
	DefaultTracingSampleRatio = 1.0
	DefaultTracingServiceName = "mechcfg"

	// History defaults
	DefaultHistoryDriver        = "sqlite"
	DefaultHistoryPath          = "data/history.db"
	DefaultHistoryRetentionDays = 30
	DefaultHistoryPruneSchedule = "0 3 * * *"

	// Cache defaults
	DefaultCacheEnabled         = true
	DefaultCacheTTL             = 5 * time.Minute
	DefaultCacheCleanupInterval = 10 * time.Minute

	// Watch defaults
	DefaultWatchDebounce = 200 * time.Millisecond

	// Git defaults
	DefaultGitRef      = "main"
	DefaultGitUsername = "git"
	DefaultGitDepth    = 1
)

// DefaultConfig returns a configuration with every default applied.
// Boolean switches that default to true are set here, since ApplyDefaults
// cannot tell an explicit false from an omitted field.
func DefaultConfig() *Config {
	cfg := &Config{
		Metrics: MetricsConfig{Enabled: DefaultMetricsEnabled},
		Tracing: TracingConfig{Insecure: DefaultTracingInsecure},
		Cache:   CacheConfig{Enabled: DefaultCacheEnabled},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Parser defaults
	if cfg.Parser.MaxFileSize == 0 {
		cfg.Parser.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Parser.ContextLines == 0 {
		cfg.Parser.ContextLines = DefaultContextLines
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}

	// Metrics defaults
	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}

	// Tracing defaults
	if cfg.Tracing.Exporter == "" {
		cfg.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Tracing.Endpoint == "" {
		cfg.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Tracing.Sampler == "" {
		cfg.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = DefaultTracingSampleRatio
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = DefaultTracingServiceName
	}

	// History defaults
	if cfg.History.Driver == "" {
		cfg.History.Driver = DefaultHistoryDriver
	}
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath
	}
	if cfg.History.RetentionDays == 0 {
		cfg.History.RetentionDays = DefaultHistoryRetentionDays
	}
	if cfg.History.PruneSchedule == "" {
		cfg.History.PruneSchedule = DefaultHistoryPruneSchedule
	}

	// Cache defaults
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}
	if cfg.Cache.CleanupInterval == 0 {
		cfg.Cache.CleanupInterval = DefaultCacheCleanupInterval
	}

	// Watch defaults
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultWatchDebounce
	}

	// Git defaults
	if cfg.Git.Ref == "" {
		cfg.Git.Ref = DefaultGitRef
	}
	if cfg.Git.Username == "" {
		cfg.Git.Username = DefaultGitUsername
	}
	if cfg.Git.Depth == 0 {
		cfg.Git.Depth = DefaultGitDepth
	}
}
