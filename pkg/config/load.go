package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "MECHCFG_"

// LoadConfig loads configuration from a YAML or TOML file at the specified
// path. Files ending in ".toml" are read as TOML, anything else as YAML.
// It applies default values, validates the configuration, and returns any errors.
// The configuration is not modified by environment variables; use LoadConfigWithEnvOverrides
// for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	// Decode on top of the defaults so that omitted switches keep their
	// default value.
	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a file and applies
// environment variable overrides. Environment variables follow the naming
// convention MECHCFG_SECTION_FIELD (e.g., MECHCFG_LOGGING_LEVEL).
// Environment variables always take precedence over file-based configuration.
//
// An empty path skips the file and starts from the defaults.
//
// The loading sequence is:
// 1. Load the file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = DefaultConfig()
	} else {
		var err error
		cfg, err = LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

func envString(name string, dst *string) {
	if val := os.Getenv(EnvPrefix + name); val != "" {
		*dst = val
	}
}

func envBool(name string, dst *bool) {
	if val := os.Getenv(EnvPrefix + name); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*dst = b
		}
	}
}

func envInt(name string, dst *int) {
	if val := os.Getenv(EnvPrefix + name); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			*dst = i
		}
	}
}

func envInt64(name string, dst *int64) {
	if val := os.Getenv(EnvPrefix + name); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			*dst = i
		}
	}
}

func envFloat(name string, dst *float64) {
	if val := os.Getenv(EnvPrefix + name); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*dst = f
		}
	}
}

func envDuration(name string, dst *time.Duration) {
	if val := os.Getenv(EnvPrefix + name); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*dst = d
		}
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Values that do not parse are ignored.
func applyEnvOverrides(cfg *Config) {
	// Parser overrides
	envInt64("PARSER_MAX_FILE_SIZE", &cfg.Parser.MaxFileSize)
	envInt("PARSER_CONTEXT_LINES", &cfg.Parser.ContextLines)

	// Logging overrides
	envString("LOGGING_LEVEL", &cfg.Logging.Level)
	envString("LOGGING_FORMAT", &cfg.Logging.Format)
	envBool("LOGGING_ADD_SOURCE", &cfg.Logging.AddSource)

	// Metrics overrides
	envBool("METRICS_ENABLED", &cfg.Metrics.Enabled)
	envString("METRICS_LISTEN_ADDRESS", &cfg.Metrics.ListenAddress)
	envString("METRICS_PATH", &cfg.Metrics.Path)

	// Tracing overrides
	envBool("TRACING_ENABLED", &cfg.Tracing.Enabled)
	envString("TRACING_EXPORTER", &cfg.Tracing.Exporter)
	envString("TRACING_ENDPOINT", &cfg.Tracing.Endpoint)
	envBool("TRACING_INSECURE", &cfg.Tracing.Insecure)
	envString("TRACING_SAMPLER", &cfg.Tracing.Sampler)
	envFloat("TRACING_SAMPLE_RATIO", &cfg.Tracing.SampleRatio)
	envString("TRACING_SERVICE_NAME", &cfg.Tracing.ServiceName)

	// History overrides
	envBool("HISTORY_ENABLED", &cfg.History.Enabled)
	envString("HISTORY_DRIVER", &cfg.History.Driver)
	envString("HISTORY_PATH", &cfg.History.Path)
	envInt("HISTORY_RETENTION_DAYS", &cfg.History.RetentionDays)
	envInt64("HISTORY_MAX_RECORDS", &cfg.History.MaxRecords)
	envString("HISTORY_PRUNE_SCHEDULE", &cfg.History.PruneSchedule)

	// Cache overrides
	envBool("CACHE_ENABLED", &cfg.Cache.Enabled)
	envDuration("CACHE_TTL", &cfg.Cache.TTL)
	envDuration("CACHE_CLEANUP_INTERVAL", &cfg.Cache.CleanupInterval)

	// Watch overrides
	envDuration("WATCH_DEBOUNCE", &cfg.Watch.Debounce)

	// Git overrides
	envString("GIT_REF", &cfg.Git.Ref)
	envString("GIT_TOKEN", &cfg.Git.Token)
	envString("GIT_USERNAME", &cfg.Git.Username)
	envInt("GIT_DEPTH", &cfg.Git.Depth)
}
