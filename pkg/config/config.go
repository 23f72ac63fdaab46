package config

import "time"

// Config is the root configuration structure for the mechcfg tool.
// It holds the settings for parsing, telemetry, the validation history and
// the watch loop. The parsed mechanism documents themselves are not part of
// it.
type Config struct {
	// Parser contains limits applied when reading mechanism documents.
	Parser ParserConfig `yaml:"parser" toml:"parser"`

	// Logging contains structured logging settings.
	Logging LoggingConfig `yaml:"logging" toml:"logging"`

	// Metrics contains Prometheus metrics settings.
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`

	// Tracing contains OpenTelemetry tracing settings.
	Tracing TracingConfig `yaml:"tracing" toml:"tracing"`

	// History contains settings for the store of past validation runs.
	History HistoryConfig `yaml:"history" toml:"history"`

	// Cache contains settings for the parse result cache.
	Cache CacheConfig `yaml:"cache" toml:"cache"`

	// Watch contains settings for watch mode.
	Watch WatchConfig `yaml:"watch" toml:"watch"`

	// Git contains settings for reading configurations from a git repository.
	Git GitConfig `yaml:"git" toml:"git"`
}

// ParserConfig contains settings for reading mechanism documents.
type ParserConfig struct {
	// MaxFileSize is the largest document, in bytes, that will be read.
	// Default: 10485760 (10MB)
	MaxFileSize int64 `yaml:"max_file_size" toml:"max_file_size"`

	// ContextLines is the number of source lines shown around each error
	// when context is requested.
	// Default: 2
	ContextLines int `yaml:"context_lines" toml:"context_lines"`
}

// LoggingConfig contains settings for structured logging.
type LoggingConfig struct {
	// Level is the minimum level: "debug", "info", "warn" or "error".
	// Default: "info"
	Level string `yaml:"level" toml:"level"`

	// Format is the output format: "json", "text" or "console".
	// Default: "text"
	Format string `yaml:"format" toml:"format"`

	// AddSource adds the source file and line of the log call.
	// Default: false
	AddSource bool `yaml:"add_source" toml:"add_source"`
}

// MetricsConfig contains settings for Prometheus metrics.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected.
	// Default: true
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// ListenAddress is where watch mode serves the metrics endpoint.
	// Default: "127.0.0.1:9464"
	ListenAddress string `yaml:"listen_address" toml:"listen_address"`

	// Path is the HTTP path of the metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path" toml:"path"`
}

// TracingConfig contains settings for OpenTelemetry tracing.
type TracingConfig struct {
	// Enabled controls whether spans are exported.
	// Default: false
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// Exporter is "otlp" (gRPC) or "stdout".
	// Default: "otlp"
	Exporter string `yaml:"exporter" toml:"exporter"`

	// Endpoint is the OTLP collector address (host:port).
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint" toml:"endpoint"`

	// Insecure disables TLS towards the collector.
	// Default: true
	Insecure bool `yaml:"insecure" toml:"insecure"`

	// Sampler is "always", "never", "ratio" or "parent".
	// Default: "always"
	Sampler string `yaml:"sampler" toml:"sampler"`

	// SampleRatio is used by the "ratio" and "parent" samplers.
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio" toml:"sample_ratio"`

	// ServiceName is reported as the service.name resource attribute.
	// Default: "mechcfg"
	ServiceName string `yaml:"service_name" toml:"service_name"`
}

// HistoryConfig contains settings for the validation history store.
type HistoryConfig struct {
	// Enabled controls whether runs are recorded.
	// Default: false
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// Driver selects the backend: "sqlite3" (cgo), "sqlite" (pure Go) or
	// "memory".
	// Default: "sqlite"
	Driver string `yaml:"driver" toml:"driver"`

	// Path is the database file for the SQLite drivers.
	// Default: "data/history.db"
	Path string `yaml:"path" toml:"path"`

	// RetentionDays is how long runs are kept. Zero keeps them forever.
	// Default: 30
	RetentionDays int `yaml:"retention_days" toml:"retention_days"`

	// MaxRecords caps the number of stored runs. Zero means no cap.
	// Default: 0
	MaxRecords int64 `yaml:"max_records" toml:"max_records"`

	// PruneSchedule is the cron expression for automatic pruning.
	// Default: "0 3 * * *"
	PruneSchedule string `yaml:"prune_schedule" toml:"prune_schedule"`
}

// CacheConfig contains settings for the parse result cache.
type CacheConfig struct {
	// Enabled controls whether parse results are cached.
	// Default: true
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// TTL is how long a cached result stays valid.
	// Default: 5m
	TTL time.Duration `yaml:"ttl" toml:"ttl"`

	// CleanupInterval is how often expired entries are removed.
	// Default: 10m
	CleanupInterval time.Duration `yaml:"cleanup_interval" toml:"cleanup_interval"`
}

// WatchConfig contains settings for watch mode.
type WatchConfig struct {
	// Debounce is the quiet period after a change before re-validating.
	// Default: 200ms
	Debounce time.Duration `yaml:"debounce" toml:"debounce"`
}

// GitConfig contains settings for reading configurations from git.
type GitConfig struct {
	// Ref is the branch or tag to check out.
	// Default: "main"
	Ref string `yaml:"ref" toml:"ref"`

	// Token is used for HTTPS authentication. It is usually supplied
	// through MECHCFG_GIT_TOKEN rather than a file.
	Token string `yaml:"token" toml:"token"`

	// Username is used with Token for basic authentication.
	// Default: "git"
	Username string `yaml:"username" toml:"username"`

	// Depth limits the clone history. Zero clones everything.
	// Default: 1
	Depth int `yaml:"depth" toml:"depth"`
}
