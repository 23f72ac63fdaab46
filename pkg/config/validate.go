package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "logging.level").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

var (
	validLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats   = map[string]bool{"json": true, "text": true, "console": true}
	validExporters = map[string]bool{"otlp": true, "stdout": true}
	validSamplers  = map[string]bool{"always": true, "never": true, "ratio": true, "parent": true}
	validDrivers   = map[string]bool{"sqlite3": true, "sqlite": true, "memory": true}
)

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateParser(&cfg.Parser)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateMetrics(&cfg.Metrics)...)
	errs = append(errs, validateTracing(&cfg.Tracing)...)
	errs = append(errs, validateHistory(&cfg.History)...)
	errs = append(errs, validateCache(&cfg.Cache)...)

	if cfg.Watch.Debounce < 0 {
		errs = append(errs, FieldError{Field: "watch.debounce", Message: "debounce must not be negative"})
	}
	if cfg.Git.Depth < 0 {
		errs = append(errs, FieldError{Field: "git.depth", Message: "depth must not be negative"})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

func validateParser(cfg *ParserConfig) []FieldError {
	var errs []FieldError

	if cfg.MaxFileSize <= 0 {
		errs = append(errs, FieldError{
			Field:   "parser.max_file_size",
			Message: "max file size must be positive",
		})
	}
	if cfg.ContextLines < 0 {
		errs = append(errs, FieldError{
			Field:   "parser.context_lines",
			Message: "context lines must not be negative",
		})
	}

	return errs
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	if cfg.Level == "" {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: "logging level is required",
		})
	} else if !validLevels[cfg.Level] {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Level),
		})
	}

	if cfg.Format == "" {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: "logging format is required",
		})
	} else if !validFormats[cfg.Format] {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json', 'text' or 'console'", cfg.Format),
		})
	}

	return errs
}

func validateMetrics(cfg *MetricsConfig) []FieldError {
	if !cfg.Enabled {
		return nil
	}
	var errs []FieldError

	if cfg.Path == "" {
		errs = append(errs, FieldError{
			Field:   "metrics.path",
			Message: "metrics path is required when metrics are enabled",
		})
	} else if cfg.Path[0] != '/' {
		errs = append(errs, FieldError{
			Field:   "metrics.path",
			Message: "metrics path must start with /",
		})
	}
	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "metrics.listen_address",
			Message: "listen address is required when metrics are enabled",
		})
	}

	return errs
}

func validateTracing(cfg *TracingConfig) []FieldError {
	var errs []FieldError

	if !validExporters[cfg.Exporter] {
		errs = append(errs, FieldError{
			Field:   "tracing.exporter",
			Message: fmt.Sprintf("invalid exporter %q: must be 'otlp' or 'stdout'", cfg.Exporter),
		})
	}
	if cfg.Enabled && cfg.Exporter == "otlp" && cfg.Endpoint == "" {
		errs = append(errs, FieldError{
			Field:   "tracing.endpoint",
			Message: "tracing endpoint is required when the otlp exporter is enabled",
		})
	}
	if !validSamplers[cfg.Sampler] {
		errs = append(errs, FieldError{
			Field:   "tracing.sampler",
			Message: fmt.Sprintf("invalid sampler %q: must be 'always', 'never', 'ratio' or 'parent'", cfg.Sampler),
		})
	}
	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1.0 {
		errs = append(errs, FieldError{
			Field:   "tracing.sample_ratio",
			Message: "sample ratio must be between 0.0 and 1.0",
		})
	}

	return errs
}

func validateHistory(cfg *HistoryConfig) []FieldError {
	var errs []FieldError

	if !validDrivers[cfg.Driver] {
		errs = append(errs, FieldError{
			Field:   "history.driver",
			Message: fmt.Sprintf("invalid driver %q: must be 'sqlite3', 'sqlite' or 'memory'", cfg.Driver),
		})
	} else if cfg.Driver != "memory" && cfg.Path == "" {
		errs = append(errs, FieldError{
			Field:   "history.path",
			Message: "database path is required for the sqlite drivers",
		})
	}
	if cfg.RetentionDays < 0 {
		errs = append(errs, FieldError{
			Field:   "history.retention_days",
			Message: "retention days must not be negative",
		})
	}
	if cfg.MaxRecords < 0 {
		errs = append(errs, FieldError{
			Field:   "history.max_records",
			Message: "max records must not be negative",
		})
	}
	if _, err := cron.ParseStandard(cfg.PruneSchedule); err != nil {
		errs = append(errs, FieldError{
			Field:   "history.prune_schedule",
			Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.PruneSchedule, err),
		})
	}

	return errs
}

func validateCache(cfg *CacheConfig) []FieldError {
	var errs []FieldError

	if cfg.Enabled && cfg.TTL <= 0 {
		errs = append(errs, FieldError{
			Field:   "cache.ttl",
			Message: "cache TTL must be positive when the cache is enabled",
		})
	}
	if cfg.CleanupInterval < 0 {
		errs = append(errs, FieldError{
			Field:   "cache.cleanup_interval",
			Message: "cleanup interval must not be negative",
		})
	}

	return errs
}
